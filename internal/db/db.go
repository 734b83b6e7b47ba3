package db

import (
	"database/sql"
	"fmt"

	"locodhaasu-be/internal/config"
	"locodhaasu-be/internal/logger"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

// New opens the order store connection. When the store is not configured
// it returns (nil, nil): the server runs in degraded mode, taking orders
// and firing notifications without a durable record.
func New(cfg *config.Config) (*sql.DB, error) {
	if !cfg.StoreConfigured() {
		logger.L().Warn("order store not configured, running without persistence")
		return nil, nil
	}
	return open(cfg, "postgres")
}

func open(cfg *config.Config, driver string) (*sql.DB, error) {
	db, err := sql.Open(driver, buildDSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}

	logger.L().Info("order store connection established",
		zap.String("host", cfg.DBHost),
		zap.String("database", cfg.DBName),
	)
	return db, nil
}

func buildDSN(cfg *config.Config) string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)
}
