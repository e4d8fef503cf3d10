// Package sqlstore persists diagnostics entries through database/sql.
// SQLite, MySQL and PostgreSQL are supported.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rediwo/tweenlog/diag"
	"github.com/rediwo/tweenlog/logger"
	"github.com/rediwo/tweenlog/sink"
)

// DefaultTable is the table entries are written to
const DefaultTable = "tweenlog_entries"

// WriteTimeout bounds each Write call
const WriteTimeout = 5 * time.Second

// Store is a diag.Sink backed by a SQL table
type Store struct {
	db     *sql.DB
	driver string
	table  string
	logger logger.Logger
	now    func() time.Time
}

// Open connects to the database named by uri and creates the table if needed
func Open(ctx context.Context, uri string) (*Store, error) {
	driver, dsn, err := ParseURI(uri)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}
	if driver == DriverSQLite && dsn == ":memory:" {
		// each connection would get its own empty database
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", driver, err)
	}

	s := New(db, driver)
	if err := s.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// New wraps an open database. driver must be one of the Driver constants.
func New(db *sql.DB, driver string) *Store {
	return &Store{
		db:     db,
		driver: driver,
		table:  DefaultTable,
		logger: logger.NewDefaultLogger("sqlstore"),
		now:    time.Now,
	}
}

// SetLogger sets where write failures are reported
func (s *Store) SetLogger(l logger.Logger) {
	if l == nil {
		l = logger.NewNullLogger()
	}
	s.logger = l
}

// EnsureSchema creates the entries table
func (s *Store) EnsureSchema(ctx context.Context) error {
	var ddl string
	switch s.driver {
	case DriverMySQL:
		ddl = `CREATE TABLE IF NOT EXISTS %s (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			severity VARCHAR(16) NOT NULL,
			text TEXT NOT NULL,
			logged_at DATETIME(3) NOT NULL
		)`
	case DriverPostgres:
		ddl = `CREATE TABLE IF NOT EXISTS %s (
			id BIGSERIAL PRIMARY KEY,
			severity VARCHAR(16) NOT NULL,
			text TEXT NOT NULL,
			logged_at TIMESTAMPTZ NOT NULL
		)`
	default:
		ddl = `CREATE TABLE IF NOT EXISTS %s (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			severity TEXT NOT NULL,
			text TEXT NOT NULL,
			logged_at TIMESTAMP NOT NULL
		)`
	}
	if _, err := s.db.ExecContext(ctx, fmt.Sprintf(ddl, s.table)); err != nil {
		return fmt.Errorf("failed to create table %s: %w", s.table, err)
	}
	return nil
}

// Write implements diag.Sink. Failures are logged, not returned.
func (s *Store) Write(severity diag.Severity, text string) {
	ctx, cancel := context.WithTimeout(context.Background(), WriteTimeout)
	defer cancel()

	if err := s.Insert(ctx, sink.Entry{Severity: severity, Text: text}); err != nil {
		s.logger.Error("%v", err)
	}
}

// Insert stores one entry. A zero Time is replaced by the current time.
func (s *Store) Insert(ctx context.Context, e sink.Entry) error {
	if e.Time.IsZero() {
		e.Time = s.now()
	}
	query := fmt.Sprintf("INSERT INTO %s (severity, text, logged_at) VALUES (%s)",
		s.table, s.placeholders(3))
	if _, err := s.db.ExecContext(ctx, query, e.Severity.String(), e.Text, e.Time.UTC()); err != nil {
		return fmt.Errorf("failed to insert entry: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest last. A nil severity matches all.
func (s *Store) Recent(ctx context.Context, severity *diag.Severity, limit int) ([]sink.Entry, error) {
	if limit <= 0 {
		limit = sink.DefaultRecorderCapacity
	}

	var (
		where string
		args  []any
	)
	if severity != nil {
		where = " WHERE severity = " + s.placeholder(1)
		args = append(args, severity.String())
	}
	query := fmt.Sprintf("SELECT id, severity, text, logged_at FROM %s%s ORDER BY id DESC LIMIT %d",
		s.table, where, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	var entries []sink.Entry
	for rows.Next() {
		var (
			e   sink.Entry
			sev string
		)
		if err := rows.Scan(&e.ID, &sev, &e.Text, &e.Time); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		if e.Severity, err = diag.ParseSeverity(sev); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read entries: %w", err)
	}

	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) placeholder(index int) string {
	if s.driver == DriverPostgres {
		return fmt.Sprintf("$%d", index)
	}
	return "?"
}

func (s *Store) placeholders(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = s.placeholder(i + 1)
	}
	return strings.Join(parts, ", ")
}
