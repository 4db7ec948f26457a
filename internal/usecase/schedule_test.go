package usecase

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cuotas-recon/internal/domain"
)

func TestExpandSchedule(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		credits  []domain.Credit
		expected int
	}{
		{
			name:     "two installments",
			credits:  []domain.Credit{creditWith("C1", 2, &start)},
			expected: 2,
		},
		{
			name:     "missing count skips credit",
			credits:  []domain.Credit{{ID: "C1", StartDate: &start}},
			expected: 0,
		},
		{
			name:     "missing start date skips credit",
			credits:  []domain.Credit{creditWith("C1", 3, nil)},
			expected: 0,
		},
		{
			name:     "zero installments yields none",
			credits:  []domain.Credit{creditWith("C1", 0, &start)},
			expected: 0,
		},
		{
			name: "mixed credits expand independently",
			credits: []domain.Credit{
				creditWith("C1", 2, &start),
				{ID: "C2", PlayerName: "Bruno"},
				creditWith("C3", 1, &start),
			},
			expected: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, ExpandSchedule(tt.credits), tt.expected)
		})
	}
}

func TestExpandSchedulePeriods(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	installments := ExpandSchedule([]domain.Credit{creditWith("C1", 3, &start)})
	require.Len(t, installments, 3)

	for k, in := range installments {
		assert.Equal(t, k+1, in.Sequence)
		assert.Equal(t, start.AddDate(0, 0, 21*k), in.PeriodStart)
		assert.Equal(t, start.AddDate(0, 0, 21*(k+1)), in.PeriodEnd)
		assert.True(t, in.DueAmount.Equal(decimal.NewFromInt(100)))
	}

	// Consecutive periods share their boundary timestamp.
	assert.Equal(t, installments[0].PeriodEnd, installments[1].PeriodStart)
	assert.Equal(t, "2025-01-01 al 2025-01-22", installments[0].PeriodLabel)
	assert.Equal(t, "2025-01-22 al 2025-02-12", installments[1].PeriodLabel)
}

func creditWith(id string, count int, start *time.Time) domain.Credit {
	return domain.Credit{
		ID:                id,
		PlayerID:          "P-" + id,
		PlayerName:        "Jugador " + id,
		InstallmentCount:  &count,
		StartDate:         start,
		InstallmentAmount: decimal.NewFromInt(100),
	}
}
