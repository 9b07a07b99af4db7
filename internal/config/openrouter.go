package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/olegsv/membot/pkg/log"
)

type OpenRouterConfig struct {
	APIKey      string  `env:"OPENROUTER_API_KEY,required,notEmpty"`
	Model       string  `env:"OPENROUTER_MODEL" envDefault:"google/gemma-3-27b-it:free"`
	MaxTokens   int     `env:"OPENROUTER_MAX_TOKENS" envDefault:"1024"`
	Temperature float64 `env:"OPENROUTER_TEMPERATURE" envDefault:"0.7"`
}

func NewOpenRouterConfig(ctx context.Context) *OpenRouterConfig {
	c := &OpenRouterConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse OpenRouter config")
	}
	return c
}

func (c OpenRouterConfig) GetModel() string {
	return c.Model
}

func (c OpenRouterConfig) GetAPIKey() string {
	return c.APIKey
}

func (c OpenRouterConfig) GetMaxTokens() int {
	return c.MaxTokens
}

func (c OpenRouterConfig) GetTemperature() float64 {
	return c.Temperature
}
