package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"seichi-game-api/gen/proto/gamedata/v1/gamedatav1connect"
	"seichi-game-api/internal/config"
	"seichi-game-api/internal/constants"
	fxmodules "seichi-game-api/internal/fx"
	"seichi-game-api/internal/middleware"
	"seichi-game-api/internal/server"

	"github.com/jmoiron/sqlx"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

const HealthPath = "/healthz"

func main() {
	fx.New(
		fxmodules.Module,
		fx.Invoke(runServer),
	).Run()
}

func runServer(
	lc fx.Lifecycle,
	readServer *server.ReadServer,
	cfg *config.Config,
	db *sqlx.DB,
	logger zerolog.Logger,
) {
	mux := http.NewServeMux()

	path, handler := gamedatav1connect.NewReadServiceHandler(readServer)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		// connect and grpc-web status travel in these
		ExposedHeaders: []string{
			middleware.RequestIDHeader,
			"Grpc-Status",
			"Grpc-Message",
			"Grpc-Status-Details-Bin",
		},
	})

	mux.Handle(path, c.Handler(middleware.RequestID(logger)(handler)))
	mux.Handle(HealthPath, server.HealthHandler(db, logger))

	srv := server.NewHTTPServer(cfg.HTTP.Addr(), mux)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			go func() {
				logger.Info().Str("addr", srv.Addr).Str("path", path).Msg("server starting")
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal().Err(err).Msg("server failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
			defer cancel()

			err := srv.Shutdown(shutdownCtx)
			if err != nil {
				logger.Error().Err(err).Msg("server shutdown failed")
			}

			// close the pool only after in-flight reads drained
			if cerr := db.Close(); cerr != nil {
				logger.Warn().Err(cerr).Msg("error closing database connection")
			}

			if err != nil {
				return err
			}
			logger.Info().Msg("server stopped gracefully")
			return nil
		},
	})
}
