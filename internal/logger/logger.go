package logger

import (
	"io"
	"os"
	"seichi-game-api/internal/config"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

func New(cfg *config.Config) zerolog.Logger {
	return newLogger(os.Stdout, cfg.LogLevel)
}

func newLogger(w io.Writer, level string) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	ctx := zerolog.New(w).
		With().
		Timestamp().
		Caller()

	// instance id for this process
	if id, err := gonanoid.New(); err == nil {
		ctx = ctx.Str("instance", id)
	}

	return ctx.Logger().Level(lvl)
}

var Module = fx.Provide(New)
