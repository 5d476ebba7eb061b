package dto

import "github.com/shopspring/decimal"

// InventoryItemResponse cuerpo de GET /inventory/{id}.
type InventoryItemResponse struct {
	ProductID     int64           `json:"product_id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	Quantity      int             `json:"quantity"`
	Status        string          `json:"status"`
	AvailableDate *string         `json:"available_date"` // YYYY-MM-DD o null
}

// StockChangeResponse cuerpo de POST /inventory/reserve y /inventory/receive.
type StockChangeResponse struct {
	Status    string `json:"status"` // reserved | received
	ProductID int64  `json:"product_id"`
	Qty       int    `json:"qty"`
}
