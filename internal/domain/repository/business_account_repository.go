package repository

import (
	"context"

	"github.com/jhoicas/inventory-tool-api/internal/domain/entity"
)

// BusinessAccountRepository define el puerto de persistencia para cuentas de empresa.
type BusinessAccountRepository interface {
	// Create persiste la cuenta y sus correos autorizados; devuelve el ID generado.
	Create(ctx context.Context, account *entity.BusinessAccount) (int64, error)
	// GetByDomain devuelve domain.ErrNotFound si no hay cuenta para el dominio.
	GetByDomain(ctx context.Context, domain string) (*entity.BusinessAccount, error)
}
