package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"cuotas-recon/internal/domain"
)

// PipelineUseCase orchestrates one reconciliation run: expand credits into
// installments, normalize and match payments, derive the layered statuses,
// and hand the resulting tables to the report writer.
type PipelineUseCase struct {
	repo   RecordRepository
	writer ReportWriter
	logger *logrus.Logger
}

// NewPipelineUseCase creates a new instance of the usecase.
func NewPipelineUseCase(repo RecordRepository, writer ReportWriter, logger *logrus.Logger) *PipelineUseCase {
	return &PipelineUseCase{repo: repo, writer: writer, logger: logger}
}

// Run executes the full pipeline over the given input snapshots. The as-of
// date is the fixed reference "today" for every lateness judgment, so
// identical snapshots and as-of date reproduce identical outputs.
// playersPath may be empty; the roster only feeds the monthly recap
// categories and the SIN CREDITO summary rows.
func (uc *PipelineUseCase) Run(ctx context.Context, creditsPath, paymentsPath, playersPath string, asOf time.Time) (*domain.RunReport, error) {
	credits, err := uc.repo.GetCredits(ctx, creditsPath)
	if err != nil {
		return nil, fmt.Errorf("could not get credits: %w", err)
	}
	paymentRecords, err := uc.repo.GetPayments(ctx, paymentsPath)
	if err != nil {
		return nil, fmt.Errorf("could not get payments: %w", err)
	}
	var players []domain.Player
	if playersPath != "" {
		players, err = uc.repo.GetPlayers(ctx, playersPath)
		if err != nil {
			return nil, fmt.Errorf("could not get players: %w", err)
		}
	}

	installments := ExpandSchedule(credits)
	payments := NormalizePayments(paymentRecords)
	installments = MatchPayments(installments, payments)
	installments = AnnotateStatuses(installments, asOf)

	summaries := SummarizePlayers(installments, asOf)
	summaries = append(summaries, noCreditSummaries(players, installments)...)
	recap := BuildMonthlyRecap(payments, credits, players)

	uc.logger.WithFields(logrus.Fields{
		"credits":      len(credits),
		"payments":     len(payments),
		"installments": len(installments),
		"summaries":    len(summaries),
		"as_of":        asOf.Format(time.DateOnly),
	}).Info("pipeline computed")

	if err := uc.writer.WriteInstallments(ctx, installments); err != nil {
		return nil, fmt.Errorf("could not write installment table: %w", err)
	}
	if err := uc.writer.WriteSummaries(ctx, summaries); err != nil {
		return nil, fmt.Errorf("could not write summary table: %w", err)
	}
	if err := uc.writer.WriteMonthlyRecap(ctx, recap); err != nil {
		return nil, fmt.Errorf("could not write monthly recap: %w", err)
	}

	return &domain.RunReport{
		AsOf:         asOf,
		Credits:      len(credits),
		Payments:     len(payments),
		Players:      len(players),
		Installments: len(installments),
		Summaries:    len(summaries),
		RecapRows:    len(recap),
	}, nil
}

// noCreditSummaries builds a zero-total SIN CREDITO summary row for every
// roster player that contributed no installment. A player with no credit is
// absent linkage, not an error; the status surfaces it downstream.
// Linkage goes through the player id (names drift between snapshots); the
// name is only consulted for roster rows that carry no id at all.
func noCreditSummaries(players []domain.Player, installments []domain.Installment) []domain.PlayerSummary {
	withCreditID := make(map[string]struct{})
	withCreditName := make(map[string]struct{})
	for _, in := range installments {
		if in.PlayerID != "" {
			withCreditID[in.PlayerID] = struct{}{}
		}
		withCreditName[in.PlayerName] = struct{}{}
	}
	var rows []domain.PlayerSummary
	for _, p := range players {
		if p.ID != "" {
			if _, ok := withCreditID[p.ID]; ok {
				continue
			}
		} else if _, ok := withCreditName[p.Name]; ok {
			continue
		}
		rows = append(rows, domain.PlayerSummary{
			PlayerName: p.Name,
			TotalDue:   decimal.Zero,
			TotalPaid:  decimal.Zero,
			Overall:    domain.StatusSinCredito,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].PlayerName < rows[j].PlayerName })
	return rows
}
