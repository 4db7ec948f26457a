package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Credit represents an installment-financing record for a player, as read
// from the credits snapshot. Fields that the schedule expansion depends on
// (installment count, start date) are pointers: a nil value means the source
// cell was missing or unparsable and the credit is excluded from expansion.
type Credit struct {
	ID                string          `json:"id"`
	PlayerID          string          `json:"player_id"`
	PlayerName        string          `json:"player_name"`
	InstallmentCount  *int            `json:"installment_count"`
	StartDate         *time.Time      `json:"start_date"`
	InstallmentAmount decimal.Decimal `json:"installment_amount"`
	FinancedAmount    decimal.Decimal `json:"financed_amount"`
	Finished          bool            `json:"finished"`
	Items             string          `json:"items"`
}

// PaymentRecord is a raw collection event exactly as it appears in the
// payments snapshot. All fields are kept as strings; canonicalization is the
// normalizer's job.
type PaymentRecord struct {
	ID        string `json:"id"`
	CreditRef string `json:"credit_ref"`
	Date      string `json:"date"`
	Amount    string `json:"amount"`
}

// Payment is a normalized collection event. A nil Date means the raw value
// did not parse; such payments never match an installment.
type Payment struct {
	ID       string          `json:"id"`
	CreditID string          `json:"credit_id"`
	Date     *time.Time      `json:"date,omitempty"`
	Amount   decimal.Decimal `json:"amount"`
}

// Player is a roster entry. The roster input is optional; when present it
// supplies categories for the monthly recap and "SIN CREDITO" summary rows
// for players without any credit.
type Player struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}
