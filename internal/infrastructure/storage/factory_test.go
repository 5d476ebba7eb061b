package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-tool-api/internal/infrastructure/storage"
)

func TestOpen_SinConnectionStringUsaMemoria(t *testing.T) {
	s, err := storage.Open(context.Background(), storage.Config{})
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, "memory", s.Kind())
	assert.Nil(t, s.Accounts, "el mock no persiste cuentas")
	assert.Nil(t, s.Pool())
	assert.NoError(t, s.Ping(context.Background()))
}

func TestOpen_EspaciosCuentanComoVacio(t *testing.T) {
	s, err := storage.Open(context.Background(), storage.Config{ConnectionString: "  "})
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, "memory", s.Kind())
}

// Con connection string se elige PostgreSQL sin conectar (el pool es perezoso).
func TestOpen_ConConnectionStringUsaPostgres(t *testing.T) {
	s, err := storage.Open(context.Background(), storage.Config{
		ConnectionString: "postgres://u:p@127.0.0.1:1/inventory?sslmode=disable",
		MaxConns:         2,
	})
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, "postgres", s.Kind())
	assert.NotNil(t, s.Accounts)
	require.NotNil(t, s.Pool())
	assert.Equal(t, int32(2), s.Pool().Config().MaxConns)
}

func TestOpen_ConnectionStringInvalido(t *testing.T) {
	_, err := storage.Open(context.Background(), storage.Config{ConnectionString: "postgres://u:p@host:puerto/db"})
	assert.Error(t, err)
}
