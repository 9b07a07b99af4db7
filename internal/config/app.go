package config

import (
	"context"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/olegsv/membot/pkg/log"
)

const defaultSystemPrompt = "Ты — личный ассистент. Отвечай кратко и по делу, помни контекст разговора."

type AppConfig struct {
	RuntimePath string `env:"MEMBOT_RUNTIME_PATH" envDefault:".membot"`

	// Transport Flags
	EnableTelegram bool `env:"ENABLE_TELEGRAM" envDefault:"true"`

	// Context Management
	SystemPrompt      string `env:"SYSTEM_PROMPT"`
	ContextWindowSize int    `env:"CONTEXT_WINDOW_SIZE" envDefault:"15"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	if c.SystemPrompt == "" {
		c.SystemPrompt = defaultSystemPrompt
	}
	return c
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(c.RuntimePath, "membot.db")
}

func (c AppConfig) GetSystemPrompt() string {
	return c.SystemPrompt
}

func (c AppConfig) GetWindowSize() int {
	return c.ContextWindowSize
}

func (c AppConfig) IsTelegramSelected() bool {
	return c.EnableTelegram
}
