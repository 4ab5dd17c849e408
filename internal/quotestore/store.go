package quotestore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

const (
	DriverPostgres = "postgres"
	DriverPGX      = "pgx"
	DriverSQLite   = "sqlite3"
)

type QuoteStore interface {
	Create(ctx context.Context, q Quote) error
	List(ctx context.Context) ([]Quote, error)
	Update(ctx context.Context, req UpdateRequest) error
	Delete(ctx context.Context, id string) error
	Close() error
}

type Options struct {
	Driver          string
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func New(ctx context.Context, opts Options) (*Store, error) {
	if opts.URL == "" {
		return nil, fmt.Errorf("must set db_url")
	}

	schema, ok := schemas[opts.Driver]
	if !ok {
		return nil, fmt.Errorf("%w: %q. must be one of 'postgres', 'pgx' or 'sqlite3'", ErrUnsupportedDriver, opts.Driver)
	}

	db, err := sqlx.ConnectContext(ctx, opts.Driver, opts.URL)
	if err != nil {
		return nil, fmt.Errorf("sqlx.Connect: %w", err)
	}

	// sqlx default is 0 (unlimited), while postgresql by default accepts up to 100 connections
	if opts.MaxOpenConns > 0 {
		db.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		db.SetMaxIdleConns(opts.MaxIdleConns)
	}
	if opts.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}
	// sqlite allows a single writer, and every :memory: connection is its own database.
	if opts.Driver == DriverSQLite {
		db.SetMaxOpenConns(1)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("db.Exec schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Store is a QuoteStore backed by a pooled sql connection. It is safe for
// concurrent use.
type Store struct {
	db *sqlx.DB
}

func (s *Store) Create(ctx context.Context, q Quote) error {
	query := s.db.Rebind(`INSERT INTO quotes (id, book, quote, inserted_at, updated_at) VALUES (?, ?, ?, ?, ?)`)

	_, err := s.db.ExecContext(ctx, query, q.ID, q.Book, q.Quote, q.InsertedAt, q.UpdatedAt)
	if err != nil {
		return fmt.Errorf("db.Exec insert quote: %w", err)
	}

	return nil
}

func (s *Store) List(ctx context.Context) ([]Quote, error) {
	const query = `SELECT id, book, quote, inserted_at, updated_at FROM quotes`

	quotes := []Quote{}
	if err := s.db.SelectContext(ctx, &quotes, query); err != nil {
		return nil, fmt.Errorf("db.Select quotes: %w", err)
	}

	for i := range quotes {
		quotes[i].normalize()
	}

	return quotes, nil
}

// Update never moves updated_at behind inserted_at, even when the caller's
// clock stepped back.
func (s *Store) Update(ctx context.Context, req UpdateRequest) error {
	greatest := "GREATEST"
	if s.db.DriverName() == DriverSQLite {
		greatest = "MAX"
	}
	query := s.db.Rebind(`UPDATE quotes SET book=?, quote=?, updated_at=` + greatest + `(?, inserted_at) WHERE id=?`)

	res, err := s.db.ExecContext(ctx, query, req.Book, req.Quote, req.UpdatedAt, req.ID)
	if err != nil {
		return fmt.Errorf("db.Exec update quote: %w", err)
	}

	return checkAffected(res)
}

func (s *Store) Delete(ctx context.Context, id string) error {
	query := s.db.Rebind(`DELETE FROM quotes WHERE id=?`)

	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db.Exec delete quote: %w", err)
	}

	return checkAffected(res)
}

func (s *Store) Close() error {
	return s.db.Close()
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
