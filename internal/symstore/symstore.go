// Package symstore persists the symbol table of finished runs in a SQLite
// database so that runs can be inspected after the process exits.
package symstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/funvibe/datelang/internal/symbols"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id      TEXT PRIMARY KEY,
	source      TEXT NOT NULL,
	created_at  TEXT NOT NULL,
	ok          INTEGER NOT NULL,
	diagnostics INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS symbols (
	run_id TEXT NOT NULL REFERENCES runs(run_id),
	seq    INTEGER NOT NULL,
	name   TEXT NOT NULL,
	kind   TEXT NOT NULL,
	type   TEXT NOT NULL,
	line   INTEGER NOT NULL,
	value  TEXT,
	PRIMARY KEY (run_id, seq)
);
`

// timeLayout is fixed width so that created_at sorts as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// RunRecord is one run as stored.
type RunRecord struct {
	RunID       string
	Source      string // File path, or "<stdin>"
	CreatedAt   time.Time
	OK          bool // No diagnostics and no fatal error
	Diagnostics int
	Symbols     []symbols.SymbolInfo
}

type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open symbol store %s: %w", path, err)
	}
	// One connection: SQLite serializes writers anyway and :memory:
	// databases are per connection.
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create symbol store schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun stores rec and its symbols in one transaction.
func (s *Store) SaveRun(ctx context.Context, rec RunRecord) (err error) {
	if rec.RunID == "" {
		return fmt.Errorf("save run: empty run id")
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save run %s: %w", rec.RunID, err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (run_id, source, created_at, ok, diagnostics) VALUES (?, ?, ?, ?, ?)`,
		rec.RunID, rec.Source, rec.CreatedAt.UTC().Format(timeLayout), rec.OK, rec.Diagnostics)
	if err != nil {
		return fmt.Errorf("save run %s: %w", rec.RunID, err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO symbols (run_id, seq, name, kind, type, line, value) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("save symbols of %s: %w", rec.RunID, err)
	}
	defer stmt.Close()

	for i, info := range rec.Symbols {
		var value sql.NullString
		if info.Set {
			value = sql.NullString{String: info.Value, Valid: true}
		}
		if _, err = stmt.ExecContext(ctx, rec.RunID, i, info.Name, info.Kind, info.Type, info.Line, value); err != nil {
			return fmt.Errorf("save symbol %s of %s: %w", info.Name, rec.RunID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit run %s: %w", rec.RunID, err)
	}
	return nil
}

// Symbols returns the symbols stored for runID in definition order.
func (s *Store) Symbols(ctx context.Context, runID string) ([]symbols.SymbolInfo, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, kind, type, line, value FROM symbols WHERE run_id = ? ORDER BY seq`, runID)
	if err != nil {
		return nil, fmt.Errorf("query symbols of %s: %w", runID, err)
	}
	defer rows.Close()

	var result []symbols.SymbolInfo
	for rows.Next() {
		var (
			info  symbols.SymbolInfo
			value sql.NullString
		)
		if err := rows.Scan(&info.Name, &info.Kind, &info.Type, &info.Line, &value); err != nil {
			return nil, fmt.Errorf("scan symbol of %s: %w", runID, err)
		}
		info.Value, info.Set = value.String, value.Valid
		result = append(result, info)
	}
	return result, rows.Err()
}

// Runs lists stored runs, oldest first. Symbols are not loaded.
func (s *Store) Runs(ctx context.Context) ([]RunRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT run_id, source, created_at, ok, diagnostics FROM runs ORDER BY created_at, run_id`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var result []RunRecord
	for rows.Next() {
		var (
			rec     RunRecord
			created string
		)
		if err := rows.Scan(&rec.RunID, &rec.Source, &created, &rec.OK, &rec.Diagnostics); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if rec.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
			return nil, fmt.Errorf("run %s: bad timestamp %q: %w", rec.RunID, created, err)
		}
		result = append(result, rec)
	}
	return result, rows.Err()
}
