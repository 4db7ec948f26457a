package usecase

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"cuotas-recon/internal/domain"
)

// withinPeriod reports whether a payment timestamp falls inside an
// installment's period. Both boundaries are inclusive, but because an
// installment's end timestamp numerically equals the next installment's
// start, a payment landing exactly on that shared boundary belongs to the
// earlier installment only: the start is exclusive for every sequence after
// the first.
func withinPeriod(seq int, start, end, paid time.Time) bool {
	if paid.Equal(start) {
		return seq == 1
	}
	return paid.After(start) && !paid.After(end)
}

// absorbsLatePayment reports whether the final installment of a credit picks
// up a payment dated strictly after its period end. Late payments have no
// later period to fall into, so the last installment catches them.
func absorbsLatePayment(seq, lastSeq int, end, paid time.Time) bool {
	return seq == lastSeq && paid.After(end)
}

// MatchPayments assigns normalized payments to installments by credit id and
// fills MatchedDates and MatchedSum on each installment. Payments without a
// parsed date never match. MatchedDates holds the distinct payment dates in
// ISO form, sorted ascending; the sum covers every matched payment, so
// several payments on one date collapse to a single date entry but all count
// toward the sum.
func MatchPayments(installments []domain.Installment, payments []domain.Payment) []domain.Installment {
	byCredit := make(map[string][]domain.Payment)
	for _, p := range payments {
		if p.Date == nil {
			continue
		}
		byCredit[p.CreditID] = append(byCredit[p.CreditID], p)
	}

	lastSeq := make(map[string]int)
	for _, in := range installments {
		if in.Sequence > lastSeq[in.CreditID] {
			lastSeq[in.CreditID] = in.Sequence
		}
	}

	matched := make([]domain.Installment, len(installments))
	for i, in := range installments {
		sum := decimal.Zero
		seen := make(map[string]struct{})
		var dates []string
		for _, p := range byCredit[in.CreditID] {
			if !withinPeriod(in.Sequence, in.PeriodStart, in.PeriodEnd, *p.Date) &&
				!absorbsLatePayment(in.Sequence, lastSeq[in.CreditID], in.PeriodEnd, *p.Date) {
				continue
			}
			sum = sum.Add(p.Amount)
			day := p.Date.Format(time.DateOnly)
			if _, ok := seen[day]; !ok {
				seen[day] = struct{}{}
				dates = append(dates, day)
			}
		}
		sort.Strings(dates)
		in.MatchedDates = dates
		in.MatchedSum = sum
		matched[i] = in
	}
	return matched
}
