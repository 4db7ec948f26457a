package usecase

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"cuotas-recon/internal/domain"
)

// BuildMonthlyRecap aggregates normalized payments with valid dates by
// calendar month and player category. The category is resolved through the
// payment's credit and the roster; payments that resolve to no player fall
// into the empty category bucket. Rows come out sorted by year, month label,
// then category.
func BuildMonthlyRecap(payments []domain.Payment, credits []domain.Credit, players []domain.Player) []domain.MonthlyRecap {
	playerByCredit := make(map[string]string, len(credits))
	for _, c := range credits {
		playerByCredit[c.ID] = c.PlayerID
	}
	categoryByPlayer := make(map[string]string, len(players))
	for _, p := range players {
		categoryByPlayer[p.ID] = p.Category
	}

	type key struct {
		year     int
		month    string
		category string
	}
	counts := make(map[key]int)
	totals := make(map[key]decimal.Decimal)
	for _, p := range payments {
		if p.Date == nil {
			continue
		}
		k := key{
			year:     p.Date.Year(),
			month:    fmt.Sprintf("%04d-%02d", p.Date.Year(), int(p.Date.Month())),
			category: categoryByPlayer[playerByCredit[p.CreditID]],
		}
		counts[k]++
		totals[k] = totals[k].Add(p.Amount)
	}

	recap := make([]domain.MonthlyRecap, 0, len(counts))
	for k, n := range counts {
		recap = append(recap, domain.MonthlyRecap{
			Year:     k.year,
			Month:    k.month,
			Category: k.category,
			Count:    n,
			Total:    totals[k],
		})
	}
	sort.Slice(recap, func(i, j int) bool {
		if recap[i].Year != recap[j].Year {
			return recap[i].Year < recap[j].Year
		}
		if recap[i].Month != recap[j].Month {
			return recap[i].Month < recap[j].Month
		}
		return recap[i].Category < recap[j].Category
	})
	return recap
}
