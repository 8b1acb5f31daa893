package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"customer-insights/internal/config"
	"customer-insights/internal/database"
	"customer-insights/internal/repositories"
)

func main() {
	cfg := config.Load()

	transactionsPath := flag.String("transactions", cfg.Dataset.TransactionsPath, "Transaction CSV file to import")
	probabilitiesPath := flag.String("probabilities", cfg.Dataset.ProbabilitiesPath, "Customer probability CSV file to import")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Initialize(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	reader := repositories.NewCSVDatasetRepository(*transactionsPath, *probabilitiesPath)
	writer := repositories.NewDBDatasetRepository(db.DB)

	summary, err := importDataset(ctx, reader, writer)
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}

	log.Printf("Imported %d transactions and %d customer probabilities into %s",
		summary.Transactions, summary.Probabilities, cfg.Database.Driver)
}

type importSummary struct {
	Transactions  int
	Probabilities int
}

// importDataset copies both datasets from reader into writer, replacing what writer holds
func importDataset(
	ctx context.Context,
	reader repositories.DatasetRepositoryInterface,
	writer repositories.DatasetWriterInterface,
) (importSummary, error) {
	var summary importSummary

	transactions, err := reader.LoadTransactions(ctx)
	if err != nil {
		return summary, fmt.Errorf("failed to read transactions: %w", err)
	}
	probabilities, err := reader.LoadProbabilities(ctx)
	if err != nil {
		return summary, fmt.Errorf("failed to read customer probabilities: %w", err)
	}

	if err := writer.SaveTransactions(ctx, transactions); err != nil {
		return summary, err
	}
	summary.Transactions = len(transactions)

	if err := writer.SaveProbabilities(ctx, probabilities); err != nil {
		return summary, err
	}
	summary.Probabilities = len(probabilities)

	return summary, nil
}
