package memory

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-tool-api/internal/domain"
	"github.com/jhoicas/inventory-tool-api/internal/domain/entity"
	"github.com/jhoicas/inventory-tool-api/internal/domain/repository"
)

var _ repository.InventoryBackend = (*InventoryBackend)(nil)

// InventoryBackend backend mock para desarrollo local: catálogo fijo de solo lectura.
// AdjustQuantity no persiste nada; solo valida que el producto exista.
type InventoryBackend struct {
	catalog map[int64]entity.InventoryItem
}

// DefaultCatalog catálogo usado cuando no hay DATABASE_URL.
func DefaultCatalog() []entity.InventoryItem {
	next := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	return []entity.InventoryItem{
		{
			ProductID:     1,
			Name:          "Test Item",
			Description:   "Producto de prueba para desarrollo local",
			Price:         decimal.RequireFromString("19.99"),
			Quantity:      10,
			AvailableDate: &next,
		},
	}
}

// NewInventoryBackend construye el mock con los productos dados (nil = DefaultCatalog).
func NewInventoryBackend(items []entity.InventoryItem) *InventoryBackend {
	if items == nil {
		items = DefaultCatalog()
	}
	catalog := make(map[int64]entity.InventoryItem, len(items))
	for _, it := range items {
		catalog[it.ProductID] = it
	}
	return &InventoryBackend{catalog: catalog}
}

// Fetch devuelve una copia del producto; domain.ErrNotFound si no existe.
func (b *InventoryBackend) Fetch(_ context.Context, productID int64) (*entity.InventoryItem, error) {
	it, ok := b.catalog[productID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if it.AvailableDate != nil {
		d := *it.AvailableDate
		it.AvailableDate = &d
	}
	return &it, nil
}

// AdjustQuantity no modifica el catálogo.
func (b *InventoryBackend) AdjustQuantity(_ context.Context, productID int64, _ int) error {
	if _, ok := b.catalog[productID]; !ok {
		return domain.ErrNotFound
	}
	return nil
}

// Kind identifica la implementación.
func (b *InventoryBackend) Kind() string { return "memory" }
