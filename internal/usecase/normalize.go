package usecase

import (
	"strings"

	"cuotas-recon/internal/domain"
)

// NormalizePayments canonicalizes raw payment records: the credit reference
// is normalized for joining, the payment date becomes a timezone-naive
// timestamp (nil when unparsable, which permanently excludes the payment
// from matching), and the amount is coerced to a number with zero fallback.
// Bad cells degrade per field; normalization never fails a run.
func NormalizePayments(records []domain.PaymentRecord) []domain.Payment {
	payments := make([]domain.Payment, 0, len(records))
	for _, r := range records {
		payments = append(payments, domain.Payment{
			ID:       strings.TrimSpace(r.ID),
			CreditID: domain.NormalizeID(r.CreditRef),
			Date:     domain.ParseFlexibleDate(r.Date),
			Amount:   domain.ParseAmount(r.Amount),
		})
	}
	return payments
}
