package gateway

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"cuotas-recon/internal/domain"
)

// Output file names, matching what the downstream dashboard imports.
const (
	InstallmentsFile = "cuotas_view.csv"
	SummariesFile    = "estado_general_view.csv"
	RecapFile        = "cobros_resumen_mes.csv"
)

// CSVReportWriter implements the ReportWriter interface, rendering the
// derived tables as CSV files in a fixed output directory. Column order and
// formatting are fixed so identical runs produce byte-identical files.
type CSVReportWriter struct {
	outDir string
}

// NewCSVReportWriter creates a writer that places files under outDir,
// creating the directory if needed.
func NewCSVReportWriter(outDir string) *CSVReportWriter {
	return &CSVReportWriter{outDir: outDir}
}

// WriteInstallments renders the installment table.
func (w *CSVReportWriter) WriteInstallments(ctx context.Context, installments []domain.Installment) error {
	rows := [][]string{{
		"idCredito", "nombreJugador", "nroCuota", "fechaInicio", "fechaFin",
		"rangoPago", "fechaPagoReal", "sumaPagos", "estadoPago",
		"montoCuotaAcum", "sumaPagosAcum", "estadoAcumulado",
	}}
	for _, in := range installments {
		rows = append(rows, []string{
			in.CreditID,
			in.PlayerName,
			strconv.Itoa(in.Sequence),
			in.PeriodStart.Format(time.DateOnly),
			in.PeriodEnd.Format(time.DateOnly),
			in.PeriodLabel,
			strings.Join(in.MatchedDates, ", "),
			in.MatchedSum.StringFixed(2),
			string(in.Status),
			in.CumulativeDue.StringFixed(2),
			in.CumulativePaid.StringFixed(2),
			string(in.CumulativeStatus),
		})
	}
	return w.writeFile(InstallmentsFile, rows)
}

// WriteSummaries renders the one-row-per-player summary table.
func (w *CSVReportWriter) WriteSummaries(ctx context.Context, summaries []domain.PlayerSummary) error {
	rows := [][]string{{"ID", "nombreJugador", "totalCuotas", "totalPagado", "estadoGeneral"}}
	for _, s := range summaries {
		rows = append(rows, []string{
			s.CreditID,
			s.PlayerName,
			s.TotalDue.StringFixed(2),
			s.TotalPaid.StringFixed(2),
			string(s.Overall),
		})
	}
	return w.writeFile(SummariesFile, rows)
}

// WriteMonthlyRecap renders the monthly collection recap.
func (w *CSVReportWriter) WriteMonthlyRecap(ctx context.Context, recap []domain.MonthlyRecap) error {
	rows := [][]string{{"anio", "mes", "categoria", "cantCobros", "totalCobrado"}}
	for _, r := range recap {
		rows = append(rows, []string{
			strconv.Itoa(r.Year),
			r.Month,
			r.Category,
			strconv.Itoa(r.Count),
			r.Total.StringFixed(2),
		})
	}
	return w.writeFile(RecapFile, rows)
}

func (w *CSVReportWriter) writeFile(name string, rows [][]string) error {
	if err := os.MkdirAll(w.outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", w.outDir, err)
	}
	path := filepath.Join(w.outDir, name)
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", path, err)
	}
	writer := csv.NewWriter(file)
	if err := writer.WriteAll(rows); err != nil {
		file.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return file.Close()
}
