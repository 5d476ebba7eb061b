package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/inventory-tool-api/internal/domain"
	"github.com/jhoicas/inventory-tool-api/internal/domain/entity"
	"github.com/jhoicas/inventory-tool-api/internal/domain/repository"
)

var _ repository.BusinessAccountRepository = (*BusinessAccountRepo)(nil)

// BusinessAccountRepo persistencia de cuentas de empresa y sus correos autorizados.
type BusinessAccountRepo struct {
	q  Querier
	tx *TxRunner
}

// NewBusinessAccountRepository construye el adaptador. Create usa tx para escribir ambas tablas.
func NewBusinessAccountRepository(q Querier, tx *TxRunner) *BusinessAccountRepo {
	return &BusinessAccountRepo{q: q, tx: tx}
}

// Create inserta la cuenta y sus correos en una transacción.
func (r *BusinessAccountRepo) Create(ctx context.Context, a *entity.BusinessAccount) (int64, error) {
	var id int64
	err := r.tx.Run(ctx, func(q Querier) error {
		err := q.QueryRow(ctx, `
			INSERT INTO business_accounts (company_name, address, business_type, billing_method, discount_percent, domain)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING account_id, created_at`,
			a.CompanyName, a.Address, a.BusinessType, a.BillingMethod, a.DiscountPercent, a.Domain,
		).Scan(&id, &a.CreatedAt)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return unavailable("insert business account", err)
		}
		if len(a.AuthorizedEmails) == 0 {
			return nil
		}
		_, err = q.Exec(ctx, `
			INSERT INTO authorized_emails (account_id, email)
			SELECT $1, unnest($2::text[])`,
			id, a.AuthorizedEmails,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return unavailable("insert authorized emails", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	a.ID = id
	return id, nil
}

// GetByDomain obtiene la cuenta con sus correos autorizados ordenados.
func (r *BusinessAccountRepo) GetByDomain(ctx context.Context, d string) (*entity.BusinessAccount, error) {
	query := `
		SELECT a.account_id, a.company_name, a.address, a.business_type, a.billing_method,
		       a.discount_percent, a.domain, a.created_at,
		       COALESCE(array_agg(e.email ORDER BY e.email) FILTER (WHERE e.email IS NOT NULL), '{}')
		FROM business_accounts a
		LEFT JOIN authorized_emails e ON e.account_id = a.account_id
		WHERE a.domain = $1
		GROUP BY a.account_id`
	var a entity.BusinessAccount
	err := r.q.QueryRow(ctx, query, d).Scan(
		&a.ID, &a.CompanyName, &a.Address, &a.BusinessType, &a.BillingMethod,
		&a.DiscountPercent, &a.Domain, &a.CreatedAt, &a.AuthorizedEmails,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, unavailable("get business account", err)
	}
	return &a, nil
}
