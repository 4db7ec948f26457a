package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"cuotas-recon/internal/gateway"
	"cuotas-recon/internal/runlog"
	"cuotas-recon/internal/usecase"
)

func main() {
	// Define command-line flags
	creditsFile := flag.String("credits", "", "Path to the credits CSV snapshot (required)")
	paymentsFile := flag.String("payments", "", "Path to the payments CSV snapshot (required)")
	playersFile := flag.String("players", "", "Path to the roster CSV snapshot (optional)")
	outDir := flag.String("out", "data/processed", "Directory for the generated report CSVs")
	asOfStr := flag.String("asof", "", "Reference date for lateness judgments (YYYY-MM-DD, default today)")
	schedule := flag.String("schedule", "", "Cron expression; when set the pipeline runs periodically instead of once")
	runlogPath := flag.String("runlog", "", "Path to the sqlite run-log database (optional)")
	recent := flag.Int("recent", 0, "Print the last N run-log entries and exit (requires -runlog)")
	flag.Parse()

	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Inspection mode: dump the tail of the run log and exit.
	if *recent > 0 {
		if *runlogPath == "" {
			fmt.Println("Error: flag -recent requires -runlog.")
			flag.Usage()
			os.Exit(1)
		}
		if err := printRecentRuns(*runlogPath, *recent); err != nil {
			logger.Fatalf("Failed to read run log: %v", err)
		}
		return
	}

	// Validate required flags
	if *creditsFile == "" || *paymentsFile == "" {
		fmt.Println("Error: flags -credits and -payments are required.")
		flag.Usage()
		os.Exit(1)
	}

	// Parse the as-of date; it is fixed per run so reruns are reproducible.
	asOf := time.Now().UTC().Truncate(24 * time.Hour)
	if *asOfStr != "" {
		asOf, err = time.Parse(time.DateOnly, *asOfStr)
		if err != nil {
			logger.Fatalf("Error parsing as-of date: %v", err)
		}
	}

	// --- Dependency Injection (Wiring the application) ---
	repo := gateway.NewCSVRecordRepository()
	writer := gateway.NewCSVReportWriter(*outDir)
	pipeline := usecase.NewPipelineUseCase(repo, writer, logger)

	var store runlog.Store
	if *runlogPath != "" {
		store, err = runlog.NewSQLiteStore(*runlogPath)
		if err != nil {
			logger.Fatalf("Failed to open run log: %v", err)
		}
		defer store.Close()
	}

	runOnce := func() error {
		started := time.Now().UTC()
		report, runErr := pipeline.Run(context.Background(), *creditsFile, *paymentsFile, *playersFile, asOf)

		if store != nil {
			entry := &runlog.Entry{
				ID:         uuid.New(),
				StartedAt:  started,
				FinishedAt: time.Now().UTC(),
				Status:     "SUCCESS",
			}
			if runErr != nil {
				entry.Status = "ERROR"
				entry.Detail = runErr.Error()
			} else {
				entry.Credits = report.Credits
				entry.Payments = report.Payments
				entry.Installments = report.Installments
				entry.Summaries = report.Summaries
			}
			if logErr := store.Record(entry); logErr != nil {
				logger.Warnf("Failed to record run: %v", logErr)
			}
		}

		if runErr != nil {
			return runErr
		}
		logger.WithFields(logrus.Fields{
			"installments": report.Installments,
			"summaries":    report.Summaries,
			"recap_rows":   report.RecapRows,
			"out":          *outDir,
		}).Info("reports written")
		return nil
	}

	if *schedule == "" {
		if err := runOnce(); err != nil {
			logger.Fatalf("Pipeline failed: %v", err)
		}
		return
	}

	// Periodic mode: run immediately, then on the cron schedule.
	if err := runOnce(); err != nil {
		logger.Errorf("Pipeline failed: %v", err)
	}
	c := cron.New()
	if _, err := c.AddFunc(*schedule, func() {
		if err := runOnce(); err != nil {
			logger.Errorf("Pipeline failed: %v", err)
		}
	}); err != nil {
		logger.Fatalf("Invalid schedule %q: %v", *schedule, err)
	}
	logger.Infof("Starting scheduler with %q", *schedule)
	c.Run()
}

func printRecentRuns(path string, limit int) error {
	store, err := runlog.NewSQLiteStore(path)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.Recent(limit)
	if err != nil {
		return err
	}
	for _, e := range entries {
		line := fmt.Sprintf("%s  %-7s  started=%s  duration=%s",
			e.ID, e.Status,
			e.StartedAt.Format(time.RFC3339),
			e.FinishedAt.Sub(e.StartedAt).Round(time.Millisecond))
		if e.Status == "SUCCESS" {
			line += fmt.Sprintf("  credits=%d payments=%d installments=%d summaries=%d",
				e.Credits, e.Payments, e.Installments, e.Summaries)
		} else if e.Detail != "" {
			line += "  " + e.Detail
		}
		fmt.Println(line)
	}
	return nil
}
