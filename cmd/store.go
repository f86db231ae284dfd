package main

import (
	"context"
	"summit"
	"summit/internal/config"
	"summit/pkg/logger"
	"summit/pkg/sealer"
	"summit/pkg/storage/sqldb"

	"go.uber.org/zap"
)

// getStorage opens the configured credential store and returns it along with
// a cleanup function. The local SQLite store is migrated on open; PostgreSQL
// is migrated with the migrate command.
func getStorage(ctx context.Context, cfg *config.Config) (*sqldb.SQLDB, func()) {
	s, err := sealer.New(cfg.Store.Secret)
	if err != nil {
		logger.Fatal(ctx, "could not create sealer", zap.Error(err))
	}

	var db *sqldb.SQLDB
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		db, err = sqldb.NewPostgres(ctx, sqldb.PostgresOptions{
			Username:           cfg.Database.Username,
			Password:           cfg.Database.Password,
			Host:               cfg.Database.Host,
			Port:               cfg.Database.Port,
			Database:           cfg.Database.DatabaseName,
			ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
			ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
			MaxOpenConnections: cfg.Database.MaxOpenConnections,
			MaxIdleConnections: cfg.Database.MaxIdleConnections,
			SslMode:            cfg.Database.SslMode,
		}, s)
	default:
		db, err = sqldb.NewSQLite(cfg.Store.SQLitePath, s)
		if err == nil {
			err = db.Migrate(ctx, summit.Migrations)
		}
	}
	if err != nil {
		logger.Fatal(ctx, "could not open credential store",
			zap.String("driver", cfg.Store.Driver),
			zap.Error(err))
	}

	return db, func() {
		logger.Debug(ctx, "closing credential store...")
		if err := db.Close(); err != nil {
			logger.Warn(ctx, "could not close credential store", zap.Error(err))
		}
	}
}
