package network

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anatolykoptev/go_network/internal/engine"
)

// Package-level singleton, set from main.go. Nil when DATABASE_URL is unset;
// history recording is then a no-op.
var historyDB *HistoryDB

// SetHistoryDB sets the package-level history DB instance.
func SetHistoryDB(db *HistoryDB) { historyDB = db }

// GetHistoryDB returns the package-level history DB instance (may be nil).
func GetHistoryDB() *HistoryDB { return historyDB }

// HistoryDB holds the pgx connection pool for discovery history storage.
type HistoryDB struct {
	pool *pgxpool.Pool
}

// ConnectHistoryDB creates a pgx pool and ensures the history schema exists.
func ConnectHistoryDB(ctx context.Context, databaseURL string) (*HistoryDB, error) {
	if databaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}

	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse DATABASE_URL: %w", err)
	}
	config.MaxConns = 10
	config.MinConns = 1

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create pgx pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	db := &HistoryDB{pool: pool}
	if err := db.runMigrations(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	slog.Info("history postgres connected", slog.String("addr", config.ConnConfig.Host))
	return db, nil
}

func (db *HistoryDB) Close() {
	db.pool.Close()
}

func (db *HistoryDB) runMigrations(ctx context.Context) error {
	_, err := db.pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS discovery_history (
		id               BIGSERIAL PRIMARY KEY,
		request_id       TEXT NOT NULL,
		fingerprint      TEXT NOT NULL,
		contact_name     TEXT NOT NULL,
		contact_company  TEXT NOT NULL,
		objective        TEXT,
		depth            TEXT NOT NULL,
		connection_count INT NOT NULL,
		confidence       DOUBLE PRECISION NOT NULL,
		cached           BOOLEAN NOT NULL DEFAULT false,
		result           JSONB NOT NULL,
		created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
	)`)
	return err
}

// HistoryRecord is one stored discovery run.
type HistoryRecord struct {
	ID              int64   `json:"id"`
	RequestID       string  `json:"requestId"`
	ContactName     string  `json:"contactName"`
	ContactCompany  string  `json:"contactCompany"`
	Objective       string  `json:"objective,omitempty"`
	Depth           string  `json:"depth"`
	ConnectionCount int     `json:"connectionCount"`
	Confidence      float64 `json:"confidence"`
	Cached          bool    `json:"cached"`
	CreatedAt       string  `json:"created_at"`
}

// RecordDiscovery persists one discovery run. Failures are logged and
// swallowed so history never breaks the response path.
func (db *HistoryDB) RecordDiscovery(ctx context.Context, requestID string, req DiscoverRequest, result *Discovery, cached bool) {
	payload, err := json.Marshal(result)
	if err != nil {
		slog.Warn("history: marshal result", slog.Any("error", err))
		return
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO discovery_history (request_id, fingerprint, contact_name, contact_company, objective, depth, connection_count, confidence, cached, result)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		requestID, req.Fingerprint(), req.Contact.Name, req.Contact.Company, req.Objective, req.depth(),
		len(result.Connections), result.SearchSummary.ConfidenceScore, cached, payload,
	)
	if err != nil {
		slog.Warn("history: insert", slog.Any("error", err))
		return
	}
	engine.IncrHistoryWrites()
}

// ListHistory returns recent discovery runs, optionally filtered by contact
// name (case-insensitive substring).
func (db *HistoryDB) ListHistory(ctx context.Context, contactName string, limit int) ([]HistoryRecord, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	query := `SELECT id, request_id, contact_name, contact_company, COALESCE(objective,''), depth, connection_count, confidence, cached, created_at::text
	          FROM discovery_history`
	args := []any{}
	if contactName != "" {
		query += ` WHERE contact_name ILIKE '%' || $1 || '%'`
		args = append(args, contactName)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT %d`, limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("history: query: %w", err)
	}
	defer rows.Close()

	var records []HistoryRecord
	for rows.Next() {
		var r HistoryRecord
		if err := rows.Scan(&r.ID, &r.RequestID, &r.ContactName, &r.ContactCompany,
			&r.Objective, &r.Depth, &r.ConnectionCount, &r.Confidence, &r.Cached, &r.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	if records == nil {
		records = []HistoryRecord{}
	}
	return records, rows.Err()
}

// GetHistoryResult loads the full stored result for one history entry.
func (db *HistoryDB) GetHistoryResult(ctx context.Context, id int64) (*Discovery, error) {
	var payload []byte
	err := db.pool.QueryRow(ctx,
		`SELECT result FROM discovery_history WHERE id = $1`, id,
	).Scan(&payload)
	if err != nil {
		return nil, fmt.Errorf("history: get %d: %w", id, err)
	}
	var d Discovery
	if err := json.Unmarshal(payload, &d); err != nil {
		return nil, fmt.Errorf("history: decode %d: %w", id, err)
	}
	return &d, nil
}
