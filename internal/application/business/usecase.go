package business

import (
	"context"
	"sort"
	"strings"

	"github.com/jhoicas/inventory-tool-api/internal/application/dto"
	"github.com/jhoicas/inventory-tool-api/internal/domain"
	"github.com/jhoicas/inventory-tool-api/internal/domain/entity"
	"github.com/jhoicas/inventory-tool-api/internal/domain/repository"
)

// UseCase alta y consulta de cuentas de empresa por dominio de correo.
type UseCase struct {
	repo repository.BusinessAccountRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.BusinessAccountRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Create valida y registra la cuenta. Devuelve domain.ErrDuplicate si el dominio ya existe.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateBusinessRequest) (*dto.CreateBusinessResponse, error) {
	d := NormalizeDomain(in.Domain)
	name := strings.TrimSpace(in.CompanyName)
	method := strings.ToLower(strings.TrimSpace(in.BillingMethod))
	if name == "" || !validDomain(d) {
		return nil, domain.ErrInvalidInput
	}
	if method != entity.BillingMethodCreditCard && method != entity.BillingMethodInvoice {
		return nil, domain.ErrInvalidInput
	}
	emails, err := normalizeEmails(in.AuthorizedEmails)
	if err != nil {
		return nil, err
	}

	account := &entity.BusinessAccount{
		CompanyName:      name,
		Address:          strings.TrimSpace(in.Address),
		BusinessType:     strings.TrimSpace(in.BusinessType),
		BillingMethod:    method,
		DiscountPercent:  entity.DiscountFor(method),
		Domain:           d,
		AuthorizedEmails: emails,
	}
	id, err := uc.repo.Create(ctx, account)
	if err != nil {
		return nil, err
	}
	return &dto.CreateBusinessResponse{AccountID: id}, nil
}

// GetByDomain obtiene la cuenta por dominio (sin distinguir mayúsculas).
func (uc *UseCase) GetByDomain(ctx context.Context, rawDomain string) (*dto.BusinessAccountResponse, error) {
	d := NormalizeDomain(rawDomain)
	if !validDomain(d) {
		return nil, domain.ErrInvalidInput
	}
	a, err := uc.repo.GetByDomain(ctx, d)
	if err != nil {
		return nil, err
	}
	return toAccountResponse(a), nil
}

// NormalizeDomain pasa a minúsculas y quita espacios y un "@" inicial.
func NormalizeDomain(d string) string {
	return strings.TrimPrefix(strings.ToLower(strings.TrimSpace(d)), "@")
}

func validDomain(d string) bool {
	if d == "" || strings.ContainsAny(d, "@ /") {
		return false
	}
	return strings.Contains(strings.Trim(d, "."), ".")
}

// normalizeEmails minúsculas, sin duplicados y ordenados.
func normalizeEmails(in []string) ([]string, error) {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, raw := range in {
		e := strings.ToLower(strings.TrimSpace(raw))
		local, host, ok := strings.Cut(e, "@")
		if !ok || local == "" || !validDomain(host) {
			return nil, domain.ErrInvalidInput
		}
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	sort.Strings(out)
	return out, nil
}

func toAccountResponse(a *entity.BusinessAccount) *dto.BusinessAccountResponse {
	emails := a.AuthorizedEmails
	if emails == nil {
		emails = []string{}
	}
	return &dto.BusinessAccountResponse{
		AccountID:        a.ID,
		CompanyName:      a.CompanyName,
		Address:          a.Address,
		BusinessType:     a.BusinessType,
		BillingMethod:    a.BillingMethod,
		DiscountPercent:  a.DiscountPercent,
		Domain:           a.Domain,
		AuthorizedEmails: emails,
		CreatedAt:        a.CreatedAt,
	}
}
