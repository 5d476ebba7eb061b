package postgres_test

import (
	"context"
	"math"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-tool-api/internal/domain"
	"github.com/jhoicas/inventory-tool-api/internal/domain/entity"
	"github.com/jhoicas/inventory-tool-api/internal/infrastructure/postgres"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests de integración: requieren INVENTORY_TEST_DATABASE_URL apuntando a una
// base desechable. Sin la variable se omiten.
// ──────────────────────────────────────────────────────────────────────────────

const (
	itemConFila = int64(900001)
	itemSinFila = int64(900002)
	itemAgotado = int64(900003)
)

func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("INVENTORY_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("INVENTORY_TEST_DATABASE_URL no definido")
	}
	ctx := context.Background()

	_, err := postgres.Migrate(ctx, dsn)
	require.NoError(t, err)

	pool, err := postgres.NewPool(ctx, dsn, 4)
	require.NoError(t, err)
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		t.Skipf("PostgreSQL no disponible: %v", err)
	}
	t.Cleanup(pool.Close)

	next := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	require.NoError(t, postgres.UpsertCatalog(ctx, pool, []entity.InventoryItem{
		{ProductID: itemConFila, Name: "Martillo", Description: "Acero", Price: decimal.RequireFromString("12.50"), Quantity: 10, AvailableDate: &next},
		{ProductID: itemAgotado, Name: "Taladro", Quantity: 0, AvailableDate: &next},
	}))
	_, err = pool.Exec(ctx, `
		INSERT INTO products (product_id, name) VALUES ($1, 'Sin fila')
		ON CONFLICT (product_id) DO NOTHING`, itemSinFila)
	require.NoError(t, err)
	_, err = pool.Exec(ctx, `DELETE FROM inventory WHERE product_id = $1`, itemSinFila)
	require.NoError(t, err)
	return pool
}

func TestInventoryBackend_Fetch(t *testing.T) {
	pool := testPool(t)
	b := postgres.NewInventoryBackend(pool)

	item, err := b.Fetch(context.Background(), itemConFila)
	require.NoError(t, err)
	assert.Equal(t, "Martillo", item.Name)
	assert.Equal(t, 10, item.Quantity)
	assert.True(t, decimal.RequireFromString("12.50").Equal(item.Price))
	require.NotNil(t, item.AvailableDate)
	assert.Equal(t, "2026-01-15", item.AvailableDate.Format(entity.DateLayout))
	assert.Equal(t, entity.StatusInStock, item.Status())

	agotado, err := b.Fetch(context.Background(), itemAgotado)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusAvailableOnDate, agotado.Status())
}

func TestInventoryBackend_FetchDesconocido(t *testing.T) {
	pool := testPool(t)
	b := postgres.NewInventoryBackend(pool)

	_, err := b.Fetch(context.Background(), 999999999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInventoryBackend_AdjustActualizaFila(t *testing.T) {
	ctx := context.Background()
	pool := testPool(t)
	b := postgres.NewInventoryBackend(pool)

	require.NoError(t, b.AdjustQuantity(ctx, itemConFila, -2))
	require.NoError(t, b.AdjustQuantity(ctx, itemConFila, 5))

	item, err := b.Fetch(ctx, itemConFila)
	require.NoError(t, err)
	assert.Equal(t, 13, item.Quantity)
}

func TestInventoryBackend_AdjustSinFilaInserta(t *testing.T) {
	ctx := context.Background()
	pool := testPool(t)
	b := postgres.NewInventoryBackend(pool)

	require.NoError(t, b.AdjustQuantity(ctx, itemSinFila, 4))

	item, err := b.Fetch(ctx, itemSinFila)
	require.NoError(t, err)
	assert.Equal(t, 4, item.Quantity)
	assert.Nil(t, item.AvailableDate)
}

// Reservar sin fila previa inserta la fila en el piso (0), no en negativo.
func TestInventoryBackend_AdjustNegativoRespetaPiso(t *testing.T) {
	ctx := context.Background()
	pool := testPool(t)
	b := postgres.NewInventoryBackend(pool)

	require.NoError(t, b.AdjustQuantity(ctx, itemSinFila, -2))
	item, err := b.Fetch(ctx, itemSinFila)
	require.NoError(t, err)
	assert.Equal(t, 0, item.Quantity)
	assert.Equal(t, entity.StatusOutOfStock, item.Status())

	require.NoError(t, b.AdjustQuantity(ctx, itemConFila, -1000))
	item, err = b.Fetch(ctx, itemConFila)
	require.NoError(t, err)
	assert.Equal(t, 0, item.Quantity)
}

func TestInventoryBackend_AdjustDesconocido(t *testing.T) {
	pool := testPool(t)
	b := postgres.NewInventoryBackend(pool)

	err := b.AdjustQuantity(context.Background(), 999999999, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBusinessAccountRepo_CreateYGetByDomain(t *testing.T) {
	ctx := context.Background()
	pool := testPool(t)
	repo := postgres.NewBusinessAccountRepository(pool, postgres.NewTxRunner(pool))

	d := "it-" + time.Now().Format("20060102150405.000000") + ".example.com"
	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(), `DELETE FROM business_accounts WHERE domain = $1`, d)
	})

	id, err := repo.Create(ctx, &entity.BusinessAccount{
		CompanyName:      "Contoso",
		BillingMethod:    entity.BillingMethodCreditCard,
		DiscountPercent:  1,
		Domain:           d,
		AuthorizedEmails: []string{"b@" + d, "a@" + d},
	})
	require.NoError(t, err)
	assert.Positive(t, id)

	got, err := repo.GetByDomain(ctx, d)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, []string{"a@" + d, "b@" + d}, got.AuthorizedEmails)

	_, err = repo.Create(ctx, &entity.BusinessAccount{CompanyName: "Otra", BillingMethod: entity.BillingMethodInvoice, Domain: d})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = repo.GetByDomain(ctx, "no-existe."+d)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Un desbordamiento de integer es entrada inválida y no modifica la fila.
func TestInventoryBackend_AdjustFueraDeRango(t *testing.T) {
	ctx := context.Background()
	pool := testPool(t)
	b := postgres.NewInventoryBackend(pool)

	before, err := b.Fetch(ctx, itemConFila)
	require.NoError(t, err)

	err = b.AdjustQuantity(ctx, itemConFila, math.MaxInt32)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.NotErrorIs(t, err, domain.ErrBackendUnavailable)

	delta := math.MinInt32
	delta--
	err = b.AdjustQuantity(ctx, itemConFila, delta)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	after, err := b.Fetch(ctx, itemConFila)
	require.NoError(t, err)
	assert.Equal(t, before.Quantity, after.Quantity)
}
