package repository

import (
	"context"

	"github.com/jhoicas/inventory-tool-api/internal/domain/entity"
)

// InventoryBackend define el puerto de almacenamiento de existencias (mock en memoria o PostgreSQL).
// Las implementaciones son intercambiables; el servicio no sabe cuál se eligió al arrancar.
type InventoryBackend interface {
	// Fetch devuelve domain.ErrNotFound si el producto no existe.
	Fetch(ctx context.Context, productID int64) (*entity.InventoryItem, error)
	// AdjustQuantity suma delta a la existencia; domain.ErrNotFound si el producto no existe.
	AdjustQuantity(ctx context.Context, productID int64, delta int) error
	// Kind identifica la implementación ("memory", "postgres").
	Kind() string
}
