package postgres

import (
	"context"

	"github.com/jhoicas/inventory-tool-api/internal/domain/entity"
)

// UpsertCatalog carga productos con ID explícito y su fila de inventario (herramienta de seed y tests).
// Productos existentes se sobrescriben.
func UpsertCatalog(ctx context.Context, q Querier, items []entity.InventoryItem) error {
	for _, it := range items {
		_, err := q.Exec(ctx, `
			INSERT INTO products (product_id, name, description, price)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (product_id)
			DO UPDATE SET name = EXCLUDED.name, description = EXCLUDED.description, price = EXCLUDED.price`,
			it.ProductID, it.Name, it.Description, it.Price,
		)
		if err != nil {
			return unavailable("upsert product", err)
		}
		_, err = q.Exec(ctx, `
			INSERT INTO inventory (product_id, quantity_in_stock, next_available_date, last_updated)
			VALUES ($1, $2, $3, now())
			ON CONFLICT (product_id)
			DO UPDATE SET quantity_in_stock = EXCLUDED.quantity_in_stock,
			              next_available_date = EXCLUDED.next_available_date,
			              last_updated = now()`,
			it.ProductID, it.Quantity, it.AvailableDate,
		)
		if err != nil {
			return unavailable("upsert inventory", err)
		}
	}
	// BIGSERIAL no avanza con IDs explícitos.
	_, err := q.Exec(ctx, `
		SELECT setval(pg_get_serial_sequence('products', 'product_id'),
		              GREATEST((SELECT COALESCE(MAX(product_id), 0) FROM products), 1))`)
	if err != nil {
		return unavailable("sync product sequence", err)
	}
	return nil
}
