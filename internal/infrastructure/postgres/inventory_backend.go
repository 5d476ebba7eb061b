package postgres

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/inventory-tool-api/internal/domain"
	"github.com/jhoicas/inventory-tool-api/internal/domain/entity"
	"github.com/jhoicas/inventory-tool-api/internal/domain/repository"
)

var _ repository.InventoryBackend = (*InventoryBackend)(nil)

// InventoryBackend implementación de InventoryBackend sobre PostgreSQL (usable con pool o tx).
//
// Política de piso: la existencia almacenada nunca baja de cero. Reservar más de lo
// disponible deja la fila en 0; reservar sobre un producto sin fila de inventario
// inserta la fila con 0.
type InventoryBackend struct {
	q Querier
}

// NewInventoryBackend construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryBackend(q Querier) *InventoryBackend {
	return &InventoryBackend{q: q}
}

// Fetch obtiene producto y existencia. Un producto sin fila en inventory se reporta con cantidad 0.
func (r *InventoryBackend) Fetch(ctx context.Context, productID int64) (*entity.InventoryItem, error) {
	query := `
		SELECT p.product_id, p.name, p.description, p.price,
		       COALESCE(i.quantity_in_stock, 0), i.next_available_date
		FROM products p
		LEFT JOIN inventory i ON i.product_id = p.product_id
		WHERE p.product_id = $1`
	var it entity.InventoryItem
	err := r.q.QueryRow(ctx, query, productID).Scan(
		&it.ProductID, &it.Name, &it.Description, &it.Price, &it.Quantity, &it.AvailableDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, unavailable("fetch inventory", err)
	}
	return &it, nil
}

// AdjustQuantity aplica delta en una sola sentencia: inserta la fila si no existe o la
// actualiza si existe. Ninguna fila afectada significa que el producto no existe.
// Un delta o un resultado fuera del rango de integer es entrada inválida, no falla del backend.
func (r *InventoryBackend) AdjustQuantity(ctx context.Context, productID int64, delta int) error {
	if delta > math.MaxInt32 || delta < -math.MaxInt32 {
		return fmt.Errorf("%w: delta %d fuera de rango", domain.ErrInvalidInput, delta)
	}
	query := `
		INSERT INTO inventory (product_id, quantity_in_stock, next_available_date, last_updated)
		SELECT p.product_id, GREATEST($2::integer, 0), NULL, now()
		FROM products p
		WHERE p.product_id = $1
		ON CONFLICT (product_id)
		DO UPDATE SET quantity_in_stock = GREATEST(inventory.quantity_in_stock + $2::integer, 0),
		              last_updated = now()`
	tag, err := r.q.Exec(ctx, query, productID, delta)
	if err != nil {
		if isOutOfRange(err) {
			return fmt.Errorf("%w: la existencia resultante excede el máximo", domain.ErrInvalidInput)
		}
		return unavailable("adjust inventory", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Kind identifica la implementación.
func (r *InventoryBackend) Kind() string { return "postgres" }
