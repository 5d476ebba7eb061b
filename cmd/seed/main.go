// seed aplica las migraciones y carga un catálogo de productos con su existencia inicial.
//
// Uso: go run ./cmd/seed [ruta/catalogo.json]
// Sin argumento carga el catálogo de ejemplo (el mismo que sirve el backend en memoria).
// Requiere DATABASE_URL.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-tool-api/internal/domain/entity"
	"github.com/jhoicas/inventory-tool-api/internal/infrastructure/memory"
	"github.com/jhoicas/inventory-tool-api/internal/infrastructure/postgres"
	"github.com/jhoicas/inventory-tool-api/pkg/config"
	"github.com/jhoicas/inventory-tool-api/pkg/logger"
)

// seedItem formato de cada entrada del archivo JSON.
type seedItem struct {
	ProductID     int64           `json:"product_id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	Quantity      int             `json:"quantity"`
	AvailableDate string          `json:"available_date"` // YYYY-MM-DD o vacío
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "seed"})

	if !cfg.DB.Enabled() {
		log.Fatal().Msg("DATABASE_URL es obligatorio para el seed")
	}

	items := memory.DefaultCatalog()
	if len(os.Args) > 1 {
		items, err = readCatalog(os.Args[1])
		if err != nil {
			log.Fatal().Err(err).Str("file", os.Args[1]).Msg("leer catálogo")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	applied, err := postgres.Migrate(ctx, cfg.DB.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	log.Info().Ints64("versions", applied).Msg("migraciones aplicadas")

	pool, err := postgres.NewPool(ctx, cfg.DB.DatabaseURL, 2)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := loadCatalog(ctx, postgres.NewTxRunner(pool), items); err != nil {
		log.Fatal().Err(err).Str("file", catalogSource()).Msg("cargar catálogo")
	}
	log.Info().Int("products", len(items)).Msg("catálogo cargado")
}

// txRunner lo implementa *postgres.TxRunner.
type txRunner interface {
	Run(ctx context.Context, fn func(q postgres.Querier) error) error
}

// loadCatalog carga todo el catálogo en una sola transacción; cualquier fallo se propaga
// para que el proceso termine con código distinto de cero.
func loadCatalog(ctx context.Context, tx txRunner, items []entity.InventoryItem) error {
	if err := tx.Run(ctx, func(q postgres.Querier) error {
		return postgres.UpsertCatalog(ctx, q, items)
	}); err != nil {
		return fmt.Errorf("upsert de %d productos: %w", len(items), err)
	}
	return nil
}

func catalogSource() string {
	if len(os.Args) > 1 {
		return os.Args[1]
	}
	return "ejemplo"
}

func readCatalog(path string) ([]entity.InventoryItem, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var in []seedItem
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, fmt.Errorf("decodificar JSON: %w", err)
	}
	out := make([]entity.InventoryItem, 0, len(in))
	for i, s := range in {
		if s.ProductID <= 0 || s.Name == "" || s.Quantity < 0 {
			return nil, fmt.Errorf("entrada %d: product_id > 0, name y quantity >= 0 son obligatorios", i)
		}
		it := entity.InventoryItem{
			ProductID:   s.ProductID,
			Name:        s.Name,
			Description: s.Description,
			Price:       s.Price,
			Quantity:    s.Quantity,
		}
		if s.AvailableDate != "" {
			d, err := time.Parse(entity.DateLayout, s.AvailableDate)
			if err != nil {
				return nil, fmt.Errorf("entrada %d: available_date: %w", i, err)
			}
			it.AvailableDate = &d
		}
		out = append(out, it)
	}
	return out, nil
}
