package entity

import "time"

// Métodos de facturación aceptados al registrar una cuenta.
const (
	BillingMethodCreditCard = "credit_card"
	BillingMethodInvoice    = "invoice"
)

// BusinessAccount cuenta de empresa identificada por el dominio de correo de sus usuarios.
type BusinessAccount struct {
	ID               int64
	CompanyName      string
	Address          string
	BusinessType     string
	BillingMethod    string
	DiscountPercent  int // 1 si paga con tarjeta, 0 en otro caso
	Domain           string
	AuthorizedEmails []string
	CreatedAt        time.Time
}

// DiscountFor devuelve el descuento que corresponde al método de facturación.
func DiscountFor(billingMethod string) int {
	if billingMethod == BillingMethodCreditCard {
		return 1
	}
	return 0
}
