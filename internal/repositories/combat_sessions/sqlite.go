package combatsessions

import (
	"context"
	"database/sql"
	"encoding/json"
	stderrors "errors"
	"path/filepath"
	"strings"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/KirkDiggler/rpg-campaign-api/internal/entities/combat"
	"github.com/KirkDiggler/rpg-campaign-api/internal/errors"
	"github.com/KirkDiggler/rpg-campaign-api/internal/pkg/sqlitemigrate"
	"github.com/KirkDiggler/rpg-campaign-api/internal/repositories/combat_sessions/migrations"
)

// SQLiteRepository implements Repository on a SQLite database. The session
// document is stored as JSON next to the columns used for filtering.
type SQLiteRepository struct {
	db *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

// OpenSQLite opens the database at path and applies embedded migrations
func OpenSQLite(ctx context.Context, path string) (*SQLiteRepository, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.InvalidArgument("sqlite path is required")
	}

	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sqlite db")
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to ping sqlite db")
	}

	if err := sqlitemigrate.Apply(ctx, db, migrations.FS); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to run migrations")
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database handle
func (r *SQLiteRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// Create inserts a new session row
func (r *SQLiteRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateSession(input.Session); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Session)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal session")
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO combat_sessions (id, name, status, data, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		input.Session.ID,
		input.Session.Name,
		string(input.Session.Status),
		string(data),
		toMillis(input.Session.CreatedAt),
		toMillis(input.Session.UpdatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, errors.AlreadyExistsf("session with ID %s already exists", input.Session.ID)
		}
		return nil, errors.Wrapf(err, "failed to create session")
	}

	return &CreateOutput{Session: input.Session}, nil
}

// Get loads a session by ID
func (r *SQLiteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := validateID(input.ID); err != nil {
		return nil, err
	}

	var data string
	err := r.db.QueryRowContext(ctx,
		`SELECT data FROM combat_sessions WHERE id = ?`,
		input.ID,
	).Scan(&data)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundf("session with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get session")
	}

	session, err := decodeSession([]byte(data))
	if err != nil {
		return nil, err
	}

	return &GetOutput{Session: session}, nil
}

// Update replaces a session row
func (r *SQLiteRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateSession(input.Session); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Session)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal session")
	}

	result, err := r.db.ExecContext(ctx,
		`UPDATE combat_sessions
		    SET name = ?, status = ?, data = ?, updated_at = ?
		  WHERE id = ?`,
		input.Session.Name,
		string(input.Session.Status),
		string(data),
		toMillis(input.Session.UpdatedAt),
		input.Session.ID,
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update session")
	}

	if err := requireRow(result, input.Session.ID); err != nil {
		return nil, err
	}

	return &UpdateOutput{Session: input.Session}, nil
}

// Delete removes a session row
func (r *SQLiteRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := validateID(input.ID); err != nil {
		return nil, err
	}

	result, err := r.db.ExecContext(ctx, `DELETE FROM combat_sessions WHERE id = ?`, input.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete session")
	}

	if err := requireRow(result, input.ID); err != nil {
		return nil, err
	}

	return &DeleteOutput{}, nil
}

// List returns sessions newest first, optionally filtered by status
func (r *SQLiteRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	query := `SELECT data FROM combat_sessions`
	var args []any
	if input.Status != "" {
		query += ` WHERE status = ?`
		args = append(args, string(input.Status))
	}
	query += ` ORDER BY updated_at DESC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list sessions")
	}
	defer func() { _ = rows.Close() }()

	sessions := make([]*combat.Session, 0)
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, errors.Wrapf(err, "failed to scan session")
		}

		session, err := decodeSession([]byte(data))
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to iterate sessions")
	}

	// the column only has millisecond precision
	sortNewestFirst(sessions)

	return &ListOutput{Sessions: sessions}, nil
}

func requireRow(result sql.Result, id string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrapf(err, "failed to read affected rows")
	}
	if affected == 0 {
		return errors.NotFoundf("session with ID %s not found", id)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if stderrors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}
