package usecase

import (
	"context"

	"cuotas-recon/internal/domain"
)

// RecordRepository defines the interface for fetching the input snapshots.
// The usecase layer depends on this interface, not on a concrete
// implementation.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go RecordRepository
type RecordRepository interface {
	GetCredits(ctx context.Context, path string) ([]domain.Credit, error)
	GetPayments(ctx context.Context, path string) ([]domain.PaymentRecord, error)
	GetPlayers(ctx context.Context, path string) ([]domain.Player, error)
}

// ReportWriter hands the derived tables to the downstream reporting
// collaborator. Serialization and storage are its concern, not the engine's.
type ReportWriter interface {
	WriteInstallments(ctx context.Context, installments []domain.Installment) error
	WriteSummaries(ctx context.Context, summaries []domain.PlayerSummary) error
	WriteMonthlyRecap(ctx context.Context, recap []domain.MonthlyRecap) error
}
