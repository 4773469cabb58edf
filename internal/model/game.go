package model

import "github.com/shopspring/decimal"

type GameType string

const (
	GameTypeSlot     GameType = "slot"
	GameTypeRoulette GameType = "roulette"
	GameTypeFrog     GameType = "frog"
)

// Game - конфигурация игры (грузится из config.yaml, в БД не хранится)
type Game struct {
	ID       string
	Type     GameType
	MinBet   decimal.Decimal
	MaxBet   decimal.Decimal
	IsActive bool
}

// SlotSymbol - символ барабана с его весом выплаты.
// Тройка платит Weight*3, пара - Weight*0.5
type SlotSymbol struct {
	ID     string
	Weight decimal.Decimal
}
