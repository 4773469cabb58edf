package env

import (
	"os"

	"frogcasino_backend/internal/config"
)

const (
	appEnvName = "APP_ENV"
)

type appConfig struct {
	env string
}

func NewAppConfig() (config.AppConfig, error) {
	appEnv := os.Getenv(appEnvName)
	if len(appEnv) == 0 {
		appEnv = "local"
	}

	return &appConfig{
		env: appEnv,
	}, nil
}

func (cfg *appConfig) Env() string {
	return cfg.env
}
