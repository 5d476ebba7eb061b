package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// AvailabilityStatus estado de disponibilidad derivado de cantidad y fecha de reposición.
type AvailabilityStatus string

const (
	StatusInStock         AvailabilityStatus = "in_stock"
	StatusAvailableOnDate AvailabilityStatus = "available_on_date"
	StatusOutOfStock      AvailabilityStatus = "out_of_stock"
)

// DateLayout formato de AvailableDate en respuestas y semillas.
const DateLayout = "2006-01-02"

// InventoryItem representa un producto con su existencia actual.
// El estado no se almacena: se calcula con Status() en cada lectura.
type InventoryItem struct {
	ProductID     int64
	Name          string
	Description   string
	Price         decimal.Decimal
	Quantity      int
	AvailableDate *time.Time // próxima fecha de disponibilidad (nil = desconocida)
}

// Status deriva el estado de disponibilidad.
func (i InventoryItem) Status() AvailabilityStatus {
	switch {
	case i.Quantity > 0:
		return StatusInStock
	case i.AvailableDate != nil:
		return StatusAvailableOnDate
	default:
		return StatusOutOfStock
	}
}
