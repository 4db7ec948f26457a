package usecase

import (
	"fmt"
	"time"

	"cuotas-recon/internal/domain"
)

// periodDays is the fixed length of one installment period.
const periodDays = 21

// ExpandSchedule turns each credit into its ordered sequence of fixed-length
// installment periods. A credit without a usable installment count or start
// date is skipped entirely; a zero-installment credit yields no rows.
// Installment k (1-indexed) spans [start+21*(k-1)d, start+21*k d).
func ExpandSchedule(credits []domain.Credit) []domain.Installment {
	var installments []domain.Installment
	for _, c := range credits {
		if c.InstallmentCount == nil || c.StartDate == nil {
			continue
		}
		n := *c.InstallmentCount
		for k := 1; k <= n; k++ {
			start := c.StartDate.AddDate(0, 0, periodDays*(k-1))
			end := c.StartDate.AddDate(0, 0, periodDays*k)
			installments = append(installments, domain.Installment{
				CreditID:    c.ID,
				PlayerID:    c.PlayerID,
				PlayerName:  c.PlayerName,
				Sequence:    k,
				PeriodStart: start,
				PeriodEnd:   end,
				PeriodLabel: periodLabel(start, end),
				DueAmount:   c.InstallmentAmount,
			})
		}
	}
	return installments
}

func periodLabel(start, end time.Time) string {
	return fmt.Sprintf("%s al %s", start.Format(time.DateOnly), end.Format(time.DateOnly))
}
