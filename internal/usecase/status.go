package usecase

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"cuotas-recon/internal/domain"
)

// dateOnly truncates a timestamp to its calendar date. Lateness judgments
// work at day granularity even though matching compares full timestamps.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// InstallmentStatus derives the status of a single installment from its own
// matched payments and boundaries, judged against the fixed as-of date. With
// payments, the latest matched date decides: inside the period is PAGADO,
// after the end is PAGO CON MORA, before the start is PagoAnticipado. With
// no payments (or matched dates that do not parse), the installment is
// MOROSO once its period end is behind the as-of date, otherwise VIGENTE.
func InstallmentStatus(in domain.Installment, asOf time.Time) domain.PaymentStatus {
	if latest, ok := latestMatchedDate(in.MatchedDates); ok {
		start, end := dateOnly(in.PeriodStart), dateOnly(in.PeriodEnd)
		switch {
		case !latest.Before(start) && !latest.After(end):
			return domain.StatusPagado
		case latest.After(end):
			return domain.StatusPagoConMora
		default:
			return domain.StatusAnticipado
		}
	}
	if dateOnly(in.PeriodEnd).Before(dateOnly(asOf)) {
		return domain.StatusMoroso
	}
	return domain.StatusVigente
}

func latestMatchedDate(dates []string) (time.Time, bool) {
	var latest time.Time
	found := false
	for _, s := range dates {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			continue
		}
		if !found || t.After(latest) {
			latest = t
			found = true
		}
	}
	return latest, found
}

// playerTotals holds a player's run-wide due and paid sums.
type playerTotals struct {
	due  decimal.Decimal
	paid decimal.Decimal
}

// CumulativeStatus derives the layered status of an installment from the
// player's run-wide totals and the running sums up to this installment.
func CumulativeStatus(totals playerTotals, cumDue, cumPaid decimal.Decimal) domain.PaymentStatus {
	switch {
	case totals.paid.GreaterThan(totals.due):
		return domain.StatusExcedido
	case cumPaid.Equal(totals.due):
		return domain.StatusSaldada
	case cumPaid.GreaterThanOrEqual(cumDue):
		return domain.StatusAlCorriente
	default:
		return domain.StatusMoroso
	}
}

// AnnotateStatuses orders the matched installments per player, computes the
// per-installment status, the running due/paid sums, and the cumulative
// status for each row. The returned slice is sorted by player name then
// sequence number, preserving credit input order within ties.
func AnnotateStatuses(installments []domain.Installment, asOf time.Time) []domain.Installment {
	annotated := make([]domain.Installment, len(installments))
	copy(annotated, installments)
	sort.SliceStable(annotated, func(i, j int) bool {
		if annotated[i].PlayerName != annotated[j].PlayerName {
			return annotated[i].PlayerName < annotated[j].PlayerName
		}
		return annotated[i].Sequence < annotated[j].Sequence
	})

	totals := make(map[string]playerTotals)
	for _, in := range annotated {
		t := totals[in.PlayerName]
		t.due = t.due.Add(in.DueAmount)
		t.paid = t.paid.Add(in.MatchedSum)
		totals[in.PlayerName] = t
	}

	cumDue := make(map[string]decimal.Decimal)
	cumPaid := make(map[string]decimal.Decimal)
	for i, in := range annotated {
		due := cumDue[in.PlayerName].Add(in.DueAmount)
		paid := cumPaid[in.PlayerName].Add(in.MatchedSum)
		cumDue[in.PlayerName] = due
		cumPaid[in.PlayerName] = paid

		in.Status = InstallmentStatus(in, asOf)
		in.CumulativeDue = due
		in.CumulativePaid = paid
		in.CumulativeStatus = CumulativeStatus(totals[in.PlayerName], due, paid)
		annotated[i] = in
	}
	return annotated
}

// OverallStatus reduces one player's ordered installments to a single
// status. A fully covered debt is DEUDA SALDADA (exact) or PAGO EXCEDIDO.
// While the final period is still open it cannot itself be judged
// delinquent, so the second-to-last cumulative status stands in for it.
// Otherwise the player is MOROSO if any expired installment is short of its
// running due, and AL CORRIENTE if none is.
func OverallStatus(group []domain.Installment, totalDue, totalPaid decimal.Decimal, asOf time.Time) domain.PaymentStatus {
	last := group[len(group)-1]
	if totalPaid.GreaterThanOrEqual(totalDue) {
		if totalPaid.Equal(totalDue) {
			return domain.StatusSaldada
		}
		return domain.StatusExcedido
	}
	if !dateOnly(last.PeriodEnd).Before(dateOnly(asOf)) {
		if len(group) > 1 {
			return group[len(group)-2].CumulativeStatus
		}
		return last.CumulativeStatus
	}
	for _, in := range group {
		if dateOnly(in.PeriodEnd).Before(dateOnly(asOf)) && in.CumulativeDue.GreaterThan(in.CumulativePaid) {
			return domain.StatusMoroso
		}
	}
	return domain.StatusAlCorriente
}

// SummarizePlayers reduces the annotated installment table to one row per
// player. The installments must already be in the order AnnotateStatuses
// produces. The summary row carries the credit id of the player's last
// installment.
func SummarizePlayers(annotated []domain.Installment, asOf time.Time) []domain.PlayerSummary {
	var names []string
	groups := make(map[string][]domain.Installment)
	for _, in := range annotated {
		if _, ok := groups[in.PlayerName]; !ok {
			names = append(names, in.PlayerName)
		}
		groups[in.PlayerName] = append(groups[in.PlayerName], in)
	}
	sort.Strings(names)

	summaries := make([]domain.PlayerSummary, 0, len(names))
	for _, name := range names {
		group := groups[name]
		totalDue, totalPaid := decimal.Zero, decimal.Zero
		for _, in := range group {
			totalDue = totalDue.Add(in.DueAmount)
			totalPaid = totalPaid.Add(in.MatchedSum)
		}
		summaries = append(summaries, domain.PlayerSummary{
			CreditID:   group[len(group)-1].CreditID,
			PlayerName: name,
			TotalDue:   totalDue,
			TotalPaid:  totalPaid,
			Overall:    OverallStatus(group, totalDue, totalPaid, asOf),
		})
	}
	return summaries
}
