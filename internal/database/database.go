package database

import (
	"context"
	"fmt"
	"seichi-game-api/internal/config"
	"seichi-game-api/internal/constants"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
)

// New opens the single connection pool every fetch shares. It pings the
// database before returning so a bad address or credential stops startup.
func New(cfg *config.Config, logger zerolog.Logger) (*sqlx.DB, error) {
	src := cfg.SourceDatabase
	logger.Info().
		Str("addr", src.Addr()).
		Str("database", src.Name).
		Str("user", src.User).
		Msg("connecting to source database")

	driverLogger := logger.With().Str("component", "mysql").Logger()
	if err := mysql.SetLogger(&driverLogger); err != nil {
		logger.Warn().Err(err).Msg("failed to install mysql driver logger")
	}

	db, err := sqlx.Open("mysql", DSN(src))
	if err != nil {
		logger.Error().Err(err).Msg("failed to open source database")
		return nil, fmt.Errorf("failed to open source database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), constants.DatabasePingTimeout)
	defer cancel()

	if err := Configure(ctx, db); err != nil {
		_ = db.Close()
		logger.Error().Err(err).Str("addr", src.Addr()).Msg("failed to connect to source database")
		return nil, err
	}

	logger.Info().
		Int("max_open_conns", constants.DBMaxOpenConns).
		Msg("source database connection pool established")
	return db, nil
}

// Configure bounds the pool and verifies a connection can be made.
func Configure(ctx context.Context, db *sqlx.DB) error {
	db.SetMaxOpenConns(constants.DBMaxOpenConns)
	db.SetMaxIdleConns(constants.DBMaxIdleConns)
	db.SetConnMaxLifetime(constants.DBConnMaxLifetime)
	db.SetConnMaxIdleTime(constants.DBMaxIdleTime)

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	return nil
}

// DSN renders the driver connection string. DATETIME columns are parsed into
// time.Time in UTC.
func DSN(src config.SourceDatabase) string {
	c := mysql.NewConfig()
	c.User = src.User
	c.Passwd = src.Password
	c.Net = "tcp"
	c.Addr = src.Addr()
	c.DBName = src.Name
	c.ParseTime = true
	c.Loc = time.UTC
	return c.FormatDSN()
}
