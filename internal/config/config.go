package config

import (
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"frogcasino_backend/internal/model"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type PGConfig interface {
	DSN() string
}

type HTTPConfig interface {
	Address() string
}

type AppConfig interface {
	Env() string
}

// GamesConfig - реестр игр: лимиты ставок и активность
type GamesConfig interface {
	Game(id string) (model.Game, bool)
	Games() []model.Game
}

type SlotConfig interface {
	Symbols() []model.SlotSymbol
}

type FrogConfig interface {
	PaletteSize() int
	Paytable() map[int]decimal.Decimal
}
