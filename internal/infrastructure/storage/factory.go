// Package storage elige el backend de inventario una sola vez al arrancar el proceso.
package storage

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/inventory-tool-api/internal/domain/repository"
	"github.com/jhoicas/inventory-tool-api/internal/infrastructure/memory"
	"github.com/jhoicas/inventory-tool-api/internal/infrastructure/postgres"
)

// Config entrada del factory. ConnectionString vacío = backend en memoria.
type Config struct {
	ConnectionString string
	MaxConns         int32
}

// Store backends seleccionados. Accounts es nil con el backend en memoria.
type Store struct {
	Inventory repository.InventoryBackend
	Accounts  repository.BusinessAccountRepository

	pool *pgxpool.Pool
}

// Open construye el Store según cfg. No abre conexiones: usar Ping para verificar la base.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	dsn := strings.TrimSpace(cfg.ConnectionString)
	if dsn == "" {
		return &Store{Inventory: memory.NewInventoryBackend(nil)}, nil
	}

	pool, err := postgres.NewPool(ctx, dsn, cfg.MaxConns)
	if err != nil {
		return nil, err
	}
	return &Store{
		Inventory: postgres.NewInventoryBackend(pool),
		Accounts:  postgres.NewBusinessAccountRepository(pool, postgres.NewTxRunner(pool)),
		pool:      pool,
	}, nil
}

// Kind nombre del backend de inventario elegido.
func (s *Store) Kind() string {
	return s.Inventory.Kind()
}

// Ping verifica la conexión. Con el backend en memoria siempre es nil.
func (s *Store) Ping(ctx context.Context) error {
	if s.pool == nil {
		return nil
	}
	return s.pool.Ping(ctx)
}

// Pool devuelve el pool PostgreSQL (nil con el backend en memoria).
func (s *Store) Pool() *pgxpool.Pool {
	return s.pool
}

// Close libera el pool si existe.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}
