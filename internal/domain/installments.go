package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is one of the fixed status labels the pipeline derives.
// The values are the exact strings the downstream dashboard filters on.
type PaymentStatus string

const (
	// Per-installment statuses.
	StatusPagado      PaymentStatus = "PAGADO"
	StatusPagoConMora PaymentStatus = "PAGO CON MORA"
	StatusAnticipado  PaymentStatus = "PagoAnticipado"
	StatusVigente     PaymentStatus = "VIGENTE"
	StatusMoroso      PaymentStatus = "MOROSO"

	// Cumulative / overall statuses.
	StatusAlCorriente PaymentStatus = "AL CORRIENTE"
	StatusSaldada     PaymentStatus = "DEUDA SALDADA"
	StatusExcedido    PaymentStatus = "PAGO EXCEDIDO"

	// Players on the roster with no credit at all.
	StatusSinCredito PaymentStatus = "SIN CREDITO"
)

// Installment is one scheduled payment period derived from a credit. It is
// rebuilt on every run and carries no identity across runs.
type Installment struct {
	CreditID    string          `json:"credit_id"`
	PlayerID    string          `json:"player_id"`
	PlayerName  string          `json:"player_name"`
	Sequence    int             `json:"sequence"`
	PeriodStart time.Time       `json:"period_start"`
	PeriodEnd   time.Time       `json:"period_end"`
	PeriodLabel string          `json:"period_label"`
	DueAmount   decimal.Decimal `json:"due_amount"`

	// Filled by the matcher. MatchedDates holds the distinct payment dates
	// in ISO form, sorted ascending; empty means no payment matched at all,
	// which is not the same as payments matching with a zero sum.
	MatchedDates []string        `json:"matched_dates,omitempty"`
	MatchedSum   decimal.Decimal `json:"matched_sum"`

	// Filled by the status engine.
	Status           PaymentStatus   `json:"status"`
	CumulativeDue    decimal.Decimal `json:"cumulative_due"`
	CumulativePaid   decimal.Decimal `json:"cumulative_paid"`
	CumulativeStatus PaymentStatus   `json:"cumulative_status"`
}

// PlayerSummary is the one-row-per-player reduction of the installment table.
// CreditID is the credit of the player's last installment, or empty for
// roster players without credits.
type PlayerSummary struct {
	CreditID   string          `json:"credit_id"`
	PlayerName string          `json:"player_name"`
	TotalDue   decimal.Decimal `json:"total_due"`
	TotalPaid  decimal.Decimal `json:"total_paid"`
	Overall    PaymentStatus   `json:"overall"`
}

// MonthlyRecap aggregates collected payments by calendar month and player
// category. Payments whose credit or player cannot be resolved land in the
// empty category rather than being dropped.
type MonthlyRecap struct {
	Year     int             `json:"year"`
	Month    string          `json:"month"` // YYYY-MM label
	Category string          `json:"category"`
	Count    int             `json:"count"`
	Total    decimal.Decimal `json:"total"`
}

// RunReport summarizes a single pipeline run for logging and the run log.
type RunReport struct {
	AsOf         time.Time `json:"as_of"`
	Credits      int       `json:"credits"`
	Payments     int       `json:"payments"`
	Players      int       `json:"players"`
	Installments int       `json:"installments"`
	Summaries    int       `json:"summaries"`
	RecapRows    int       `json:"recap_rows"`
}
