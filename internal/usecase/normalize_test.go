package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cuotas-recon/internal/domain"
)

func TestNormalizePayments(t *testing.T) {
	records := []domain.PaymentRecord{
		{ID: " 1 ", CreditRef: "10.0", Date: "2025-01-10T07:00:00Z", Amount: "100"},
		{ID: "2", CreditRef: " 11 ", Date: "2025-01-15", Amount: "bad"},
		{ID: "3", CreditRef: "12", Date: "never", Amount: "50"},
	}

	payments := NormalizePayments(records)
	require.Len(t, payments, 3)

	assert.Equal(t, "1", payments[0].ID)
	assert.Equal(t, "10", payments[0].CreditID)
	require.NotNil(t, payments[0].Date)
	assert.Equal(t, "2025-01-10", payments[0].Date.Format(time.DateOnly))
	assert.Equal(t, "100", payments[0].Amount.String())

	// Unparsable amount degrades to zero, the payment itself survives.
	assert.Equal(t, "11", payments[1].CreditID)
	assert.True(t, payments[1].Amount.IsZero())
	assert.NotNil(t, payments[1].Date)

	// Unparsable date nulls the date; the matcher will never see it.
	assert.Nil(t, payments[2].Date)
	assert.Equal(t, "50", payments[2].Amount.String())
}

func TestNormalizePaymentsEmpty(t *testing.T) {
	assert.Empty(t, NormalizePayments(nil))
}
