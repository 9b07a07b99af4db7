package core

type AppConfig interface {
	GetRuntimePath() string
	GetDatabasePath() string
	GetSystemPrompt() string
	GetWindowSize() int
	IsTelegramSelected() bool
}

type ProviderConfig interface {
	GetModel() string
	GetAPIKey() string
	GetMaxTokens() int
	GetTemperature() float64
}

type TelegramConfig interface {
	GetTelegramToken() string
	GetTelegramOwnerID() int64
}
