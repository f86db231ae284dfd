// Package sqldb implements storage.Storage on top of database/sql and goqu,
// backed by either SQLite or PostgreSQL.
package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"summit/pkg/logger"
	"summit/pkg/sealer"
	"summit/pkg/storage"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // goqu dialect
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"  // goqu dialect
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
	_ "modernc.org/sqlite" // database/sql driver "sqlite"
)

const (
	// DialectPostgres selects PostgreSQL for goqu and goose.
	DialectPostgres = "postgres"
	// DialectSQLite selects SQLite for goqu and goose.
	DialectSQLite = "sqlite3"

	// MigrationsDir is the directory holding the goose migrations inside the
	// filesystem passed to Migrate.
	MigrationsDir = "migrations"

	sqliteBusyTimeout = 5 * time.Second
)

// PostgresOptions defines the configuration parameters for PostgreSQL database connection.
type PostgresOptions struct {
	// Username is the PostgreSQL user to connect as
	Username string
	// Password is the password for the specified user
	Password string
	// Host is the PostgreSQL server hostname or IP address
	Host string
	// SslMode specifies the SSL mode for the connection (e.g., "disable", "require")
	SslMode string
	// Port is the PostgreSQL server port number
	Port int
	// Database is the name of the database to connect to
	Database string
	// ConnMaxLifetime is the maximum amount of time a connection may be reused
	ConnMaxLifetime time.Duration
	// ConnMaxIdleTime is the maximum amount of time a connection may be idle
	ConnMaxIdleTime time.Duration
	// MaxOpenConnections is the maximum number of open connections to the database
	MaxOpenConnections int
	// MaxIdleConnections is the maximum number of connections in the idle connection pool
	MaxIdleConnections int
}

// DB defines the subset of database/sql methods used by this package. Both
// *sql.DB and *sql.Tx satisfy this interface, allowing the same code paths to be
// used within and outside transactions.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Builder abstracts the minimal subset of goqu methods used by this package to
// construct queries. Both a goqu database handle and a transaction handle
// implement this interface.
type Builder interface {
	From(table ...interface{}) *goqu.SelectDataset
	Insert(table interface{}) *goqu.InsertDataset
	Delete(table interface{}) *goqu.DeleteDataset
}

// SQLDB implements storage.Storage and storage.TxStorage.
type SQLDB struct {
	// DB is the underlying executor. It is either a *sql.DB (when not in a
	// transaction) or a *sql.Tx (when inside a transaction).
	DB DB
	// Builder is the goqu handle used to construct SQL queries bound to DB.
	Builder Builder
	// Pool is the pgx pool behind DB when the dialect is PostgreSQL.
	Pool *pgxpool.Pool

	dialect string
	sealer  *sealer.Sealer
}

var (
	_ storage.Storage   = (*SQLDB)(nil)
	_ storage.TxStorage = (*SQLDB)(nil)
)

// NewPostgres creates a PostgreSQL storage backed by pgxpool, and a
// database/sql wrapper for compatibility with goqu and migrations.
func NewPostgres(ctx context.Context, options PostgresOptions, s *sealer.Sealer) (*SQLDB, error) {
	if s == nil {
		return nil, errors.New("sealer is required")
	}

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

	// wrap the pool with a *sql.DB to keep compatibility with goqu and goose
	sqlDB := stdlib.OpenDBFromPool(pool)

	return &SQLDB{
		DB:      sqlDB,
		Builder: goqu.Dialect(DialectPostgres).DB(sqlDB),
		Pool:    pool,
		dialect: DialectPostgres,
		sealer:  s,
	}, nil
}

// NewSQLite opens (creating if needed) the SQLite database at path.
func NewSQLite(path string, s *sealer.Sealer) (*SQLDB, error) {
	if s == nil {
		return nil, errors.New("sealer is required")
	}
	if path == "" {
		return nil, errors.New("sqlite path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("could not create database directory: %w", err)
	}

	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("could not open sqlite database: %w", err)
	}
	// a single connection serializes writers and keeps pragmas in effect
	sqlDB.SetMaxOpenConns(1)
	if _, err := sqlDB.Exec(fmt.Sprintf("PRAGMA busy_timeout = %d", sqliteBusyTimeout.Milliseconds())); err != nil {
		_ = sqlDB.Close()

		return nil, fmt.Errorf("could not set busy timeout: %w", err)
	}

	return &SQLDB{
		DB:      sqlDB,
		Builder: goqu.Dialect(DialectSQLite).DB(sqlDB),
		dialect: DialectSQLite,
		sealer:  s,
	}, nil
}

// Dialect returns the goqu and goose dialect name of the backend.
func (s *SQLDB) Dialect() string { return s.dialect }

// Migrate applies the goose migrations found under MigrationsDir in fsys.
func (s *SQLDB) Migrate(ctx context.Context, fsys fs.FS) error {
	db, ok := s.DB.(*sql.DB)
	if !ok {
		return storage.ErrAlreadyInTx
	}

	goose.SetBaseFS(fsys)
	goose.SetLogger(zap.NewStdLog(logger.Get(logger.Named(ctx, "goose"))))
	if err := goose.SetDialect(s.dialect); err != nil {
		return fmt.Errorf("could not set goose dialect to %s: %w", s.dialect, err)
	}
	if err := goose.UpContext(ctx, db, MigrationsDir); err != nil {
		return fmt.Errorf("could not migrate %s: %w", s.dialect, err)
	}

	return nil
}

// Close closes the underlying database handle and, for PostgreSQL, the pool.
func (s *SQLDB) Close() error {
	var err error
	if db, ok := s.DB.(*sql.DB); ok {
		err = db.Close()
	}
	if s.Pool != nil {
		s.Pool.Close()
	}
	if err != nil {
		return fmt.Errorf("could not close database: %w", err)
	}

	return nil
}

// Commit commits the current transaction. It returns storage.ErrNotInTx if
// called when SQLDB is not in a transactional context.
func (s *SQLDB) Commit() error {
	db, ok := s.DB.(*sql.Tx)
	if !ok {
		return storage.ErrNotInTx
	}

	if err := db.Commit(); err != nil {
		return fmt.Errorf("could not commit tx: %w", err)
	}

	return nil
}

// Rollback aborts the current transaction. It returns storage.ErrNotInTx if
// called when SQLDB is not in a transactional context.
func (s *SQLDB) Rollback() error {
	db, ok := s.DB.(*sql.Tx)
	if !ok {
		return storage.ErrNotInTx
	}

	if err := db.Rollback(); err != nil {
		return fmt.Errorf("could not rollback tx: %w", err)
	}

	return nil
}

// Begin starts a new database transaction and returns a transactional SQLDB
// that can be used to execute subsequent operations within that transaction.
// If called while already inside a transaction, ErrAlreadyInTx is returned.
func (s *SQLDB) Begin(ctx context.Context) (storage.TxStorage, error) {
	db, ok := s.DB.(*sql.DB)
	if !ok {
		return nil, storage.ErrAlreadyInTx
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not begin tx: %w", err)
	}

	return &SQLDB{
		DB:      tx,
		Builder: goqu.NewTx(s.dialect, tx),
		dialect: s.dialect,
		sealer:  s.sealer,
	}, nil
}

// WithTx is a helper that starts a transaction, executes the provided callback
// with a transactional storage handle, and commits if the callback returns nil.
// If the callback returns an error, the transaction is rolled back.
func (s *SQLDB) WithTx(ctx context.Context, cb func(storage storage.AllStorage) error) error {
	tx, err := s.Begin(ctx)
	if err != nil {
		return err
	}

	if err := cb(tx); err != nil {
		_ = tx.Rollback()

		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit tx: %w", err)
	}

	return nil
}
