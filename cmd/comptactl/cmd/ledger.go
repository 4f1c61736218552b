package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/comptaflow/backend/internal/domain/billing"
	"github.com/comptaflow/backend/internal/domain/reconciliation"
)

func loadDocuments(path string) ([]billing.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read documents file: %w", err)
	}
	var docs []billing.Document
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("failed to parse documents file %s: %w", path, err)
	}
	return docs, nil
}

func loadBankEntries(path string) ([]reconciliation.BankEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read bank statement file: %w", err)
	}
	var entries []reconciliation.BankEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse bank statement file %s: %w", path, err)
	}
	return entries, nil
}

func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", path, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
