package fx

import (
	"seichi-game-api/internal/config"
	"seichi-game-api/internal/database"
	"seichi-game-api/internal/logger"
	"seichi-game-api/internal/repository"
	"seichi-game-api/internal/server"

	"go.uber.org/fx"
)

var Module = fx.Options(
	logger.Module,
	config.Module,
	fx.Provide(database.New),
	// repos
	fx.Provide(repository.NewPlayerDataRepository),
	fx.Provide(repository.NewSources),
	// server
	fx.Provide(server.NewReadServer),
)
