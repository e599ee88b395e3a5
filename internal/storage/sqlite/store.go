// Package sqlite provides a SQLite-backed roll store implementation.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/louisbranch/dicebox/internal/dice"
	sqlitemigrate "github.com/louisbranch/dicebox/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/dicebox/internal/storage"
	"github.com/louisbranch/dicebox/internal/storage/sqlite/migrations"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// Store persists roll records in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite roll store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// SaveRoll inserts the roll and its ordered results in one transaction, so a
// reader never observes a roll with partial results.
func (s *Store) SaveRoll(ctx context.Context, roll storage.DiceRoll) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(roll.ID) == "" {
		return fmt.Errorf("roll id is required")
	}
	if len(roll.Results) == 0 {
		return fmt.Errorf("roll results are required")
	}
	createdAt := roll.CreatedAt.UTC()
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin save roll: %v", storage.ErrUnavailable, err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(
		ctx,
		`INSERT INTO rolls (id, created_at) VALUES (?, ?)`,
		roll.ID,
		toMillis(createdAt),
	)
	if err != nil {
		if isRollUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("%w: save roll: %v", storage.ErrUnavailable, err)
	}

	for position, result := range roll.Results {
		_, err = tx.ExecContext(
			ctx,
			`INSERT INTO roll_results (roll_id, position, die, value) VALUES (?, ?, ?, ?)`,
			roll.ID,
			position,
			result.Die.String(),
			result.Value,
		)
		if err != nil {
			return fmt.Errorf("%w: save roll result: %v", storage.ErrUnavailable, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit save roll: %v", storage.ErrUnavailable, err)
	}
	return nil
}

// GetRoll returns one roll record with results in request order.
func (s *Store) GetRoll(ctx context.Context, id string) (storage.DiceRoll, error) {
	if err := ctx.Err(); err != nil {
		return storage.DiceRoll{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.DiceRoll{}, fmt.Errorf("storage is not configured")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return storage.DiceRoll{}, fmt.Errorf("roll id is required")
	}

	row := s.sqlDB.QueryRowContext(ctx, `SELECT id, created_at FROM rolls WHERE id = ?`, id)
	var roll storage.DiceRoll
	var createdAt int64
	if err := row.Scan(&roll.ID, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.DiceRoll{}, storage.ErrNotFound
		}
		return storage.DiceRoll{}, fmt.Errorf("%w: get roll: %v", storage.ErrUnavailable, err)
	}
	roll.CreatedAt = fromMillis(createdAt)

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT die, value FROM roll_results WHERE roll_id = ? ORDER BY position ASC`,
		id,
	)
	if err != nil {
		return storage.DiceRoll{}, fmt.Errorf("%w: get roll results: %v", storage.ErrUnavailable, err)
	}
	defer rows.Close()

	for rows.Next() {
		var notation string
		var value int
		if err := rows.Scan(&notation, &value); err != nil {
			return storage.DiceRoll{}, fmt.Errorf("%w: get roll results: %v", storage.ErrUnavailable, err)
		}
		die, err := dice.ParseDieType(notation)
		if err != nil {
			return storage.DiceRoll{}, fmt.Errorf("decode stored die: %w", err)
		}
		roll.Results = append(roll.Results, dice.RolledDie{Die: die, Value: value})
	}
	if err := rows.Err(); err != nil {
		return storage.DiceRoll{}, fmt.Errorf("%w: get roll results: %v", storage.ErrUnavailable, err)
	}
	return roll, nil
}

func isRollUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	message := strings.ToLower(err.Error())
	return strings.Contains(message, "unique constraint failed") &&
		strings.Contains(message, "rolls.id")
}

var _ storage.RollStore = (*Store)(nil)
