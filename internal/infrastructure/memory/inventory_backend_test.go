package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-tool-api/internal/domain"
	"github.com/jhoicas/inventory-tool-api/internal/domain/entity"
	"github.com/jhoicas/inventory-tool-api/internal/infrastructure/memory"
)

func TestFetch_CatalogoPorDefecto(t *testing.T) {
	b := memory.NewInventoryBackend(nil)

	item, err := b.Fetch(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(1), item.ProductID)
	assert.Equal(t, "Test Item", item.Name)
	assert.Equal(t, 10, item.Quantity)
	require.NotNil(t, item.AvailableDate)
	assert.Equal(t, "2026-01-15", item.AvailableDate.Format(entity.DateLayout))
	assert.Equal(t, entity.StatusInStock, item.Status())
}

func TestFetch_ProductoDesconocido(t *testing.T) {
	b := memory.NewInventoryBackend(nil)

	_, err := b.Fetch(context.Background(), 999999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// El mock no guarda estado: ajustar no cambia lo que devuelve Fetch.
func TestAdjustQuantity_NoPersiste(t *testing.T) {
	ctx := context.Background()
	b := memory.NewInventoryBackend(nil)

	require.NoError(t, b.AdjustQuantity(ctx, 1, -3))
	require.NoError(t, b.AdjustQuantity(ctx, 1, 50))

	item, err := b.Fetch(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 10, item.Quantity)
}

func TestAdjustQuantity_ProductoDesconocido(t *testing.T) {
	b := memory.NewInventoryBackend(nil)
	assert.ErrorIs(t, b.AdjustQuantity(context.Background(), 42, 1), domain.ErrNotFound)
}

// Modificar el resultado de Fetch no altera el catálogo interno.
func TestFetch_DevuelveCopia(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	b := memory.NewInventoryBackend([]entity.InventoryItem{{ProductID: 7, Name: "Guantes", AvailableDate: &date}})

	first, err := b.Fetch(ctx, 7)
	require.NoError(t, err)
	first.Quantity = 100
	*first.AvailableDate = first.AvailableDate.AddDate(1, 0, 0)

	second, err := b.Fetch(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Quantity)
	assert.Equal(t, date, *second.AvailableDate)
	assert.Equal(t, entity.StatusAvailableOnDate, second.Status())
}

func TestKind(t *testing.T) {
	assert.Equal(t, "memory", memory.NewInventoryBackend(nil).Kind())
}
