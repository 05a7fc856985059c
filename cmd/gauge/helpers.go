package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Veraticus/limit-gauge/internal/engine"
	"github.com/Veraticus/limit-gauge/internal/service"
	"github.com/Veraticus/limit-gauge/internal/storage"
)

// initStorage opens the design history and brings its schema up to date.
func initStorage(ctx context.Context) (service.DesignStore, error) {
	store, err := storage.NewSQLiteStorage(settings.DatabasePath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// closeStorage closes store, logging any failure.
func closeStorage(store service.DesignStore) {
	if err := store.Close(); err != nil {
		slog.Error("failed to close storage", "error", err)
	}
}

func newCalculator() (*engine.Calculator, error) {
	calc, err := engine.NewDefault()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize calculator: %w", err)
	}
	return calc, nil
}
