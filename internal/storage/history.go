package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"

	"gtp/internal/config"
	"gtp/internal/domain"
)

// HistoryStorage records run summaries in MySQL so pass/fail trends can
// be tracked across runs. Connection settings come from the project's
// .env file or the process environment.
type HistoryStorage struct {
	config *config.Config
}

// NewHistoryStorage creates a new HistoryStorage
func NewHistoryStorage(cfg *config.Config) *HistoryStorage {
	return &HistoryStorage{config: cfg}
}

const createRunsTable = `CREATE TABLE IF NOT EXISTS gtp_runs (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	total_packages INT NOT NULL,
	passed_packages INT NOT NULL,
	failed_packages INT NOT NULL,
	total_test_cases INT NOT NULL,
	failed_test_cases INT NOT NULL,
	duration_seconds DOUBLE NOT NULL,
	workers INT NOT NULL,
	created_at VARCHAR(64) NOT NULL
)`

func (h *HistoryStorage) open() (*sql.DB, error) {
	envPath := filepath.Join(h.config.ProjectPath, ".env")
	if err := godotenv.Load(envPath); err != nil {
		// .env file might not exist, that's okay - use environment variables
		_ = err
	}

	host := envOr("GTP_DB_HOST", "127.0.0.1")
	port := envOr("GTP_DB_PORT", "3306")
	user := envOr("GTP_DB_USERNAME", "root")
	password := envOr("GTP_DB_PASSWORD", "")
	name := envOr("GTP_DB_DATABASE", "gtp")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", user, password, host, port, name)
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database server: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database server: %w", err)
	}

	if _, err := db.Exec(createRunsTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create history table: %w", err)
	}

	return db, nil
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// SaveRun inserts one row summarizing a finished run.
func (h *HistoryStorage) SaveRun(meta domain.RunMeta) error {
	db, err := h.open()
	if err != nil {
		return err
	}
	defer db.Close()

	const insert = `INSERT INTO gtp_runs
		(total_packages, passed_packages, failed_packages, total_test_cases, failed_test_cases, duration_seconds, workers, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = db.Exec(insert,
		meta.TotalPackages,
		meta.PassedPackages,
		meta.FailedPackages,
		meta.TotalTestCases,
		meta.FailedTestCases,
		meta.DurationSeconds,
		meta.Workers,
		meta.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to save run history: %w", err)
	}
	return nil
}

// RecentRuns returns up to limit run summaries, newest first.
func (h *HistoryStorage) RecentRuns(limit int) ([]domain.RunMeta, error) {
	if limit <= 0 {
		limit = 10
	}

	db, err := h.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	const query = `SELECT total_packages, passed_packages, failed_packages,
		total_test_cases, failed_test_cases, duration_seconds, workers, created_at
		FROM gtp_runs ORDER BY id DESC LIMIT ?`

	rows, err := db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query run history: %w", err)
	}
	defer rows.Close()

	var runs []domain.RunMeta
	for rows.Next() {
		var meta domain.RunMeta
		if err := rows.Scan(
			&meta.TotalPackages,
			&meta.PassedPackages,
			&meta.FailedPackages,
			&meta.TotalTestCases,
			&meta.FailedTestCases,
			&meta.DurationSeconds,
			&meta.Workers,
			&meta.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("failed to scan run history: %w", err)
		}
		runs = append(runs, meta)
	}
	return runs, rows.Err()
}
