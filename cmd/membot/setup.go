package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/olegsv/membot/internal/config"
	"github.com/olegsv/membot/internal/providers/llm"
	"github.com/olegsv/membot/internal/service/assistant"
	"github.com/olegsv/membot/internal/service/command"
	"github.com/olegsv/membot/internal/service/memory"
	"github.com/olegsv/membot/internal/storage/sqlite"
	"github.com/olegsv/membot/internal/transport/telegram"
	"github.com/olegsv/membot/pkg/log"
	"github.com/olegsv/membot/pkg/srv"
)

func NewServices(ctx context.Context) []srv.Service {
	logger := log.FromCtx(ctx)
	services := make([]srv.Service, 0)

	// init env
	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)
	providerCfg := config.NewOpenRouterConfig(ctx)

	// 2. Storage (knowledge sink for approved suggestions)
	db, err := sqlite.NewDB(ctx, appCfg.GetDatabasePath())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize storage")
	}
	services = append(services, srv.NewCleanup(db.Close))
	notesRepo := sqlite.NewNotesRepo(db)

	// 3. Completion provider
	provider := llm.NewOpenRouter(providerCfg.GetAPIKey(), providerCfg.GetModel())

	// 4. Conversation memory + assistant
	store := memory.NewStore()
	asst := assistant.NewAssistant(appCfg, providerCfg, provider, store)

	// 5. Command router
	router := command.New(command.NewCommands(asst, notesRepo))

	// 6. Transports
	if appCfg.IsTelegramSelected() {
		tgCfg := config.NewTelegramConfig(ctx)
		bot, err := telegram.NewBot(ctx, tgCfg, asst, router)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize telegram bot")
		}
		services = append(services, bot)
	}

	return services
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
