package gateway

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cuotas-recon/internal/domain"
)

func TestCSVRecordRepository_GetCredits(t *testing.T) {
	tests := []struct {
		name    string
		csvData [][]string
		check   func(t *testing.T, credits []domain.Credit)
		wantErr bool
	}{
		{
			name: "valid credits",
			csvData: [][]string{
				{"id", "idJugador", "nombreJugador", "cantCuotas", "fechaInicio", "montoCuota", "montoFinanciado", "finalizado", "articulos"},
				{"10", "1", "Ana", "2", "2025-01-01", "100", "200", "false", "camiseta"},
				{"11.0", "2", "Bruno", "3", "2025-02-01T00:00:00Z", "50.5", "151.5", "true", ""},
			},
			check: func(t *testing.T, credits []domain.Credit) {
				require.Len(t, credits, 2)

				assert.Equal(t, "10", credits[0].ID)
				assert.Equal(t, "Ana", credits[0].PlayerName)
				require.NotNil(t, credits[0].InstallmentCount)
				assert.Equal(t, 2, *credits[0].InstallmentCount)
				require.NotNil(t, credits[0].StartDate)
				assert.Equal(t, "2025-01-01", credits[0].StartDate.Format(time.DateOnly))
				assert.Equal(t, "100", credits[0].InstallmentAmount.String())
				assert.False(t, credits[0].Finished)

				// ".0" id artifact is normalized at read time.
				assert.Equal(t, "11", credits[1].ID)
				assert.Equal(t, "50.5", credits[1].InstallmentAmount.String())
				assert.True(t, credits[1].Finished)
			},
		},
		{
			name: "bad count and date degrade to nil",
			csvData: [][]string{
				{"id", "idJugador", "nombreJugador", "cantCuotas", "fechaInicio", "montoCuota", "montoFinanciado", "finalizado", "articulos"},
				{"10", "1", "Ana", "dos", "pronto", "abc", "", "", ""},
			},
			check: func(t *testing.T, credits []domain.Credit) {
				require.Len(t, credits, 1)
				assert.Nil(t, credits[0].InstallmentCount)
				assert.Nil(t, credits[0].StartDate)
				assert.True(t, credits[0].InstallmentAmount.IsZero())
			},
		},
		{
			name: "truncated header aborts",
			csvData: [][]string{
				{"id", "idJugador", "nombreJugador"},
				{"10", "1", "Ana"},
			},
			wantErr: true,
		},
		{
			name: "empty file with header only",
			csvData: [][]string{
				{"id", "idJugador", "nombreJugador", "cantCuotas", "fechaInicio", "montoCuota", "montoFinanciado", "finalizado", "articulos"},
			},
			check: func(t *testing.T, credits []domain.Credit) {
				assert.Empty(t, credits)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpFile, err := createTempCSV(t, tt.csvData)
			require.NoError(t, err)

			repo := NewCSVRecordRepository()
			credits, err := repo.GetCredits(context.Background(), tmpFile)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, credits)
		})
	}
}

func TestCSVRecordRepository_GetCreditsMissingFile(t *testing.T) {
	repo := NewCSVRecordRepository()
	_, err := repo.GetCredits(context.Background(), filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestCSVRecordRepository_GetPayments(t *testing.T) {
	tmpFile, err := createTempCSV(t, [][]string{
		{"id", "idCredito", "fechaCobro", "montoCobrado"},
		{"1", "10.0", "2025-01-10T07:00:00Z", "100"},
		{"2", "11", "garbage", "not-a-number"},
	})
	require.NoError(t, err)

	repo := NewCSVRecordRepository()
	records, err := repo.GetPayments(context.Background(), tmpFile)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Payments come back raw; canonicalization is the normalizer's job.
	assert.Equal(t, domain.PaymentRecord{ID: "1", CreditRef: "10.0", Date: "2025-01-10T07:00:00Z", Amount: "100"}, records[0])
	assert.Equal(t, domain.PaymentRecord{ID: "2", CreditRef: "11", Date: "garbage", Amount: "not-a-number"}, records[1])
}

func TestCSVRecordRepository_GetPlayers(t *testing.T) {
	tmpFile, err := createTempCSV(t, [][]string{
		{"id", "nombreJugador", "categoria"},
		{"1.0", "Ana", "Sub-12"},
		{"2", "Bruno", ""},
	})
	require.NoError(t, err)

	repo := NewCSVRecordRepository()
	players, err := repo.GetPlayers(context.Background(), tmpFile)
	require.NoError(t, err)

	assert.Equal(t, []domain.Player{
		{ID: "1", Name: "Ana", Category: "Sub-12"},
		{ID: "2", Name: "Bruno", Category: ""},
	}, players)
}

func createTempCSV(t testing.TB, data [][]string) (string, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snapshot.csv")
	file, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.WriteAll(data); err != nil {
		return "", err
	}
	return path, nil
}

// Benchmark tests

func BenchmarkGetCredits(b *testing.B) {
	data := [][]string{{"id", "idJugador", "nombreJugador", "cantCuotas", "fechaInicio", "montoCuota", "montoFinanciado", "finalizado", "articulos"}}
	for i := 0; i < 1000; i++ {
		data = append(data, []string{"10", "1", "Ana", "6", "2025-01-01", "100", "600", "false", ""})
	}

	tmpFile, err := createTempCSV(b, data)
	if err != nil {
		b.Fatalf("Failed to create temp file: %v", err)
	}

	repo := NewCSVRecordRepository()
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := repo.GetCredits(ctx, tmpFile); err != nil {
			b.Fatalf("Error in benchmark: %v", err)
		}
	}
}
