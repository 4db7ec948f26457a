package gateway

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"cuotas-recon/internal/domain"
)

// Expected column layouts of the input snapshots. The first row is a header
// and is skipped.
//
//	credits:  id, idJugador, nombreJugador, cantCuotas, fechaInicio,
//	          montoCuota, montoFinanciado, finalizado, articulos
//	payments: id, idCredito, fechaCobro, montoCobrado
//	players:  id, nombreJugador, categoria
const (
	creditCols  = 9
	paymentCols = 4
	playerCols  = 3
)

// CSVRecordRepository implements the RecordRepository interface for CSV
// snapshot files. Structural failures (unopenable file, broken row) abort;
// per-field data-quality issues degrade according to each field's parser.
type CSVRecordRepository struct{}

// NewCSVRecordRepository creates a new repository instance.
func NewCSVRecordRepository() *CSVRecordRepository {
	return &CSVRecordRepository{}
}

// GetCredits reads and parses the credits snapshot. Count and start date
// become nil when unparsable so the expander can skip the credit; amounts
// fall back to zero.
func (r *CSVRecordRepository) GetCredits(ctx context.Context, path string) ([]domain.Credit, error) {
	rows, err := readRows(path, creditCols)
	if err != nil {
		return nil, err
	}

	var credits []domain.Credit
	for _, record := range rows {
		credits = append(credits, domain.Credit{
			ID:                domain.NormalizeID(record[0]),
			PlayerID:          domain.NormalizeID(record[1]),
			PlayerName:        record[2],
			InstallmentCount:  domain.ParseCount(record[3]),
			StartDate:         domain.ParseFlexibleDate(record[4]),
			InstallmentAmount: domain.ParseAmount(record[5]),
			FinancedAmount:    domain.ParseAmount(record[6]),
			Finished:          domain.ParseBool(record[7]),
			Items:             record[8],
		})
	}
	return credits, nil
}

// GetPayments reads the payments snapshot. The records stay raw; the
// normalizer owns id, date, and amount canonicalization.
func (r *CSVRecordRepository) GetPayments(ctx context.Context, path string) ([]domain.PaymentRecord, error) {
	rows, err := readRows(path, paymentCols)
	if err != nil {
		return nil, err
	}

	var records []domain.PaymentRecord
	for _, record := range rows {
		records = append(records, domain.PaymentRecord{
			ID:        record[0],
			CreditRef: record[1],
			Date:      record[2],
			Amount:    record[3],
		})
	}
	return records, nil
}

// GetPlayers reads the optional roster snapshot.
func (r *CSVRecordRepository) GetPlayers(ctx context.Context, path string) ([]domain.Player, error) {
	rows, err := readRows(path, playerCols)
	if err != nil {
		return nil, err
	}

	var players []domain.Player
	for _, record := range rows {
		players = append(players, domain.Player{
			ID:       domain.NormalizeID(record[0]),
			Name:     record[1],
			Category: record[2],
		})
	}
	return players, nil
}

func readRows(path string, wantCols int) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Skip header, but check its width: a narrower table is structurally
	// unreadable, not a per-record data-quality issue.
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header from %s: %w", path, err)
	}
	if len(header) < wantCols {
		return nil, fmt.Errorf("unexpected header in %s: got %d columns, want %d", path, len(header), wantCols)
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading record from %s: %w", path, err)
		}
		rows = append(rows, record)
	}
	return rows, nil
}
