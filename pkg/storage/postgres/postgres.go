// Package postgres stores prompts and their parse jobs in PostgreSQL.
//
// Text columns and the jsonb result cannot hold NUL characters. Prompts and
// results containing one are refused with storage.ErrInvalidText before any
// query is built, while failure reasons are stored with NUL replaced.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"promptparser/pkg/domain"
	"promptparser/pkg/logger"
	"promptparser/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"go.uber.org/zap"
)

const nul = "\x00"

// Options configures the connection pool. Zero pool limits keep the pgxpool
// defaults.
type Options struct {
	Username string
	Password string
	Host     string
	// SslMode is passed through as sslmode, e.g. "disable" or "require".
	SslMode  string
	Port     int
	Database string

	ConnMaxLifetime    time.Duration
	ConnMaxIdleTime    time.Duration
	MaxOpenConnections int
	// MaxIdleConnections becomes the minimum pool size.
	MaxIdleConnections int
}

// DB is satisfied by both *sql.DB and *sql.Tx.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Builder is satisfied by both *goqu.Database and *goqu.TxDatabase.
type Builder interface {
	From(table ...any) *goqu.SelectDataset
	Insert(table any) *goqu.InsertDataset
	Update(table any) *goqu.UpdateDataset
}

// PgSQL implements storage.Storage for prompts on PostgreSQL using
// database/sql and goqu, and enqueues parse jobs with River.
type PgSQL struct {
	// DB is a *sql.DB, or a *sql.Tx on handles returned by Begin.
	DB DB
	// Builder builds queries bound to DB.
	Builder Builder
	// Pool is nil on handles returned by Begin.
	Pool *pgxpool.Pool

	jobs *river.Client[*sql.Tx]
}

// storableText returns storage.ErrInvalidText when s cannot be written to a
// text or jsonb column.
func storableText(field, s string) error {
	if strings.Contains(s, nul) {
		return fmt.Errorf("%w: %s contains NUL characters", storage.ErrInvalidText, field)
	}

	return nil
}

// storableResult checks the cleaned text only, phrases are substrings of it.
func storableResult(res *domain.ParseResult) error {
	return storableText("cleaned text", res.CleanedText)
}

// sanitizeText replaces NUL characters with U+FFFD.
func sanitizeText(s string) string {
	return strings.ReplaceAll(s, nul, "\uFFFD")
}

// Close releases the database/sql wrapper and the pool behind it. It does
// nothing on a transactional handle.
func (p *PgSQL) Close() error {
	if db, ok := p.DB.(*sql.DB); ok {
		if err := db.Close(); err != nil {
			return fmt.Errorf("could not close db: %w", err)
		}
	}
	if p.Pool != nil {
		p.Pool.Close()
	}

	return nil
}

func (p *PgSQL) tx() (*sql.Tx, error) {
	tx, ok := p.DB.(*sql.Tx)
	if !ok {
		return nil, storage.ErrNotInTx
	}

	return tx, nil
}

// Commit makes the prompts and jobs written through p visible.
func (p *PgSQL) Commit() error {
	tx, err := p.tx()
	if err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit tx: %w", err)
	}

	return nil
}

// Rollback discards the prompts and jobs written through p.
func (p *PgSQL) Rollback() error {
	tx, err := p.tx()
	if err != nil {
		return err
	}
	if err := tx.Rollback(); err != nil {
		return fmt.Errorf("could not rollback tx: %w", err)
	}

	return nil
}

// Begin returns a handle bound to a new transaction. It shares the River
// client of p so jobs enqueued on it commit with the prompts.
func (p *PgSQL) Begin(ctx context.Context) (storage.TxStorage, error) {
	db, ok := p.DB.(*sql.DB)
	if !ok {
		return nil, storage.ErrAlreadyInTx
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not begin tx: %w", err)
	}

	return &PgSQL{
		DB:      tx,
		Builder: goqu.NewTx("postgres", tx),
		jobs:    p.jobs,
	}, nil
}

// WithTx runs cb in a transaction. The callback error is returned as is after
// a rollback.
func (p *PgSQL) WithTx(ctx context.Context, cb func(storage storage.AllStorage) error) error {
	tx, err := p.Begin(ctx)
	if err != nil {
		return err
	}

	if err := cb(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Warn(ctx, "could not rollback tx", zap.Error(rbErr))
		}

		return err
	}

	return tx.Commit()
}

// New connects to PostgreSQL through pgxpool. Queries and the insert-only
// River client used by AddJob run on a database/sql wrapper of the pool.
func New(ctx context.Context, options Options) (*PgSQL, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s dbname=%s password=%s sslmode=%s",
		options.Host,
		options.Port,
		options.Username,
		options.Database,
		options.Password,
		options.SslMode)
	cfg, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return nil, fmt.Errorf("could not parse pgxpool config: %w", err)
	}
	if options.MaxOpenConnections > 0 {
		cfg.MaxConns = int32(options.MaxOpenConnections) //nolint: gosec
	}
	if options.MaxIdleConnections > 0 {
		cfg.MinConns = int32(options.MaxIdleConnections) //nolint: gosec
	}
	if options.ConnMaxLifetime > 0 {
		cfg.MaxConnLifetime = options.ConnMaxLifetime
	}
	if options.ConnMaxIdleTime > 0 {
		cfg.MaxConnIdleTime = options.ConnMaxIdleTime
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("could not create pgx Pool: %w", err)
	}

	sqlDB := stdlib.OpenDBFromPool(pool)

	jobs, err := river.NewClient(riverdatabasesql.New(sqlDB), &river.Config{})
	if err != nil {
		pool.Close()

		return nil, fmt.Errorf("could not create river insert client: %w", err)
	}

	return &PgSQL{
		DB:      sqlDB,
		Builder: goqu.Dialect("postgres").DB(sqlDB),
		Pool:    pool,
		jobs:    jobs,
	}, nil
}
