package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inventory-tool-api/internal/domain/entity"
)

func TestInventoryItem_Status(t *testing.T) {
	future := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		item entity.InventoryItem
		want entity.AvailabilityStatus
	}{
		{"con existencia", entity.InventoryItem{Quantity: 10}, entity.StatusInStock},
		{"con existencia y fecha", entity.InventoryItem{Quantity: 10, AvailableDate: &future}, entity.StatusInStock},
		{"sin existencia con fecha", entity.InventoryItem{Quantity: 0, AvailableDate: &future}, entity.StatusAvailableOnDate},
		{"sin existencia sin fecha", entity.InventoryItem{Quantity: 0}, entity.StatusOutOfStock},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.item.Status())
		})
	}
}

// El estado se recalcula: cambiar la cantidad cambia el estado sin tocar nada más.
func TestInventoryItem_StatusSigueALaCantidad(t *testing.T) {
	item := entity.InventoryItem{ProductID: 1, Quantity: 1}
	assert.Equal(t, entity.StatusInStock, item.Status())

	item.Quantity = 0
	assert.Equal(t, entity.StatusOutOfStock, item.Status())
}

func TestDiscountFor(t *testing.T) {
	assert.Equal(t, 1, entity.DiscountFor(entity.BillingMethodCreditCard))
	assert.Equal(t, 0, entity.DiscountFor(entity.BillingMethodInvoice))
	assert.Equal(t, 0, entity.DiscountFor(""))
}
