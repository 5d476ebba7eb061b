package dto

import "time"

// CreateBusinessRequest body para POST /business.
type CreateBusinessRequest struct {
	CompanyName      string   `json:"company_name"`
	Address          string   `json:"address"`
	BusinessType     string   `json:"business_type"`
	BillingMethod    string   `json:"billing_method"`
	Domain           string   `json:"domain"`
	AuthorizedEmails []string `json:"authorized_emails"`
}

// CreateBusinessResponse respuesta de POST /business.
type CreateBusinessResponse struct {
	AccountID int64 `json:"account_id"`
}

// BusinessAccountResponse cuerpo de GET /business/{domain}.
type BusinessAccountResponse struct {
	AccountID        int64     `json:"account_id"`
	CompanyName      string    `json:"company_name"`
	Address          string    `json:"address"`
	BusinessType     string    `json:"business_type"`
	BillingMethod    string    `json:"billing_method"`
	DiscountPercent  int       `json:"discount_percent"`
	Domain           string    `json:"domain"`
	AuthorizedEmails []string  `json:"authorized_emails"`
	CreatedAt        time.Time `json:"created_at"`
}
