package roll_log

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/rollstats/internal/models"
	_ "modernc.org/sqlite"
)

const createRollsTable = `CREATE TABLE IF NOT EXISTS rolls (
	seq        INTEGER PRIMARY KEY AUTOINCREMENT,
	id         TEXT NOT NULL,
	user_id    TEXT NOT NULL,
	created_at INTEGER NOT NULL,
	payload    TEXT NOT NULL
)`

// SQLiteConfig holds configuration for the SQLite roll log repository
type SQLiteConfig struct {
	// Path to the database file, or ":memory:"
	Path string
}

// sqliteRepository implements the Repository interface on a SQLite table.
// The autoincrement sequence keeps append order.
type sqliteRepository struct {
	db *sql.DB
}

// NewSQLite opens the database and creates the rolls table if needed
func NewSQLite(cfg *SQLiteConfig) (*sqliteRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	path := strings.TrimSpace(cfg.Path)
	if path == "" {
		return nil, errors.New("sqlite path cannot be empty")
	}

	dsn := path
	if path != ":memory:" {
		dsn = path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}
	// one connection, so an in-memory database is shared by every query
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to sqlite: %w", err)
	}

	if _, err := db.Exec(createRollsTable); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create rolls table: %w", err)
	}

	return &sqliteRepository{db: db}, nil
}

// Close closes the database handle
func (r *sqliteRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// AppendRoll inserts a record at the end of the sequence
func (r *sqliteRepository) AppendRoll(ctx context.Context, input *AppendRollInput) error {
	if input == nil || input.Record == nil {
		return errors.New("input and record cannot be nil")
	}

	record := input.Record
	if record.ID == "" {
		return errors.New("roll record ID cannot be empty")
	}

	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal roll record: %w", err)
	}

	_, err = r.db.ExecContext(
		ctx,
		`INSERT INTO rolls (id, user_id, created_at, payload) VALUES (?, ?, ?, ?)`,
		record.ID,
		record.UserID,
		record.Timestamp.UTC().UnixMilli(),
		string(payload),
	)
	if err != nil {
		return fmt.Errorf("failed to append roll record: %w", err)
	}

	return nil
}

// ListRolls reads every row in sequence order. Rows that no longer decode are skipped.
func (r *sqliteRepository) ListRolls(ctx context.Context, input *ListRollsInput) (*ListRollsOutput, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT payload FROM rolls ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to list roll records: %w", err)
	}
	defer rows.Close()

	records := make([]*models.RollRecord, 0)
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan roll record: %w", err)
		}

		var record models.RollRecord
		if err := json.Unmarshal([]byte(payload), &record); err != nil {
			continue
		}
		records = append(records, &record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read roll records: %w", err)
	}

	return &ListRollsOutput{
		Records: records,
	}, nil
}

// ResetRolls deletes every row
func (r *sqliteRepository) ResetRolls(ctx context.Context, input *ResetRollsInput) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM rolls`); err != nil {
		return fmt.Errorf("failed to reset roll log: %w", err)
	}

	return nil
}
