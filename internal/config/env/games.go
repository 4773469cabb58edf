package env

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"frogcasino_backend/internal/config"
	"frogcasino_backend/internal/model"
)

// Описание config.yaml. Суммы и веса в YAML строками, чтобы не ловить
// float-артефакты при разборе
type gamesFile struct {
	Games []gameYAML `yaml:"games"`
	Slot  slotYAML   `yaml:"slot"`
	Frog  frogYAML   `yaml:"frog"`
}

type gameYAML struct {
	ID     string `yaml:"id"`
	Type   string `yaml:"type"`
	MinBet string `yaml:"min_bet"`
	MaxBet string `yaml:"max_bet"`
	Active bool   `yaml:"active"`
}

type slotYAML struct {
	Symbols []symbolYAML `yaml:"symbols"`
}

type symbolYAML struct {
	ID     string `yaml:"id"`
	Weight string `yaml:"weight"`
}

type frogYAML struct {
	PaletteSize int            `yaml:"palette_size"`
	Paytable    map[int]string `yaml:"paytable"`
}

func readGamesFile(path string) (*gamesFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file gamesFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, err
	}
	return &file, nil
}

type gamesConfig struct {
	byID  map[string]model.Game
	games []model.Game
}

func NewGamesConfigFromYAML(path string) (config.GamesConfig, error) {
	file, err := readGamesFile(path)
	if err != nil {
		return nil, err
	}
	if len(file.Games) == 0 {
		return nil, fmt.Errorf("no games defined in %s", path)
	}

	cfg := &gamesConfig{byID: make(map[string]model.Game, len(file.Games))}
	for _, g := range file.Games {
		minBet, err := decimal.NewFromString(g.MinBet)
		if err != nil {
			return nil, fmt.Errorf("game %s: bad min_bet: %w", g.ID, err)
		}
		maxBet, err := decimal.NewFromString(g.MaxBet)
		if err != nil {
			return nil, fmt.Errorf("game %s: bad max_bet: %w", g.ID, err)
		}
		if minBet.LessThanOrEqual(decimal.Zero) || maxBet.LessThan(minBet) {
			return nil, fmt.Errorf("game %s: bet limits [%s, %s] are invalid", g.ID, minBet, maxBet)
		}

		game := model.Game{
			ID:       g.ID,
			Type:     model.GameType(g.Type),
			MinBet:   minBet,
			MaxBet:   maxBet,
			IsActive: g.Active,
		}
		cfg.byID[game.ID] = game
		cfg.games = append(cfg.games, game)
	}

	return cfg, nil
}

func (cfg *gamesConfig) Game(id string) (model.Game, bool) {
	g, ok := cfg.byID[id]
	return g, ok
}

func (cfg *gamesConfig) Games() []model.Game {
	return cfg.games
}

type slotConfig struct {
	symbols []model.SlotSymbol
}

func NewSlotConfigFromYAML(path string) (config.SlotConfig, error) {
	file, err := readGamesFile(path)
	if err != nil {
		return nil, err
	}
	if len(file.Slot.Symbols) == 0 {
		return nil, fmt.Errorf("no slot symbols defined in %s", path)
	}

	cfg := &slotConfig{}
	for _, s := range file.Slot.Symbols {
		weight, err := decimal.NewFromString(s.Weight)
		if err != nil {
			return nil, fmt.Errorf("slot symbol %s: bad weight: %w", s.ID, err)
		}
		cfg.symbols = append(cfg.symbols, model.SlotSymbol{ID: s.ID, Weight: weight})
	}

	return cfg, nil
}

func (cfg *slotConfig) Symbols() []model.SlotSymbol {
	return cfg.symbols
}

type frogConfig struct {
	paletteSize int
	paytable    map[int]decimal.Decimal
}

func NewFrogConfigFromYAML(path string) (config.FrogConfig, error) {
	file, err := readGamesFile(path)
	if err != nil {
		return nil, err
	}
	if file.Frog.PaletteSize <= 0 {
		return nil, fmt.Errorf("frog palette size is not set in %s", path)
	}

	cfg := &frogConfig{
		paletteSize: file.Frog.PaletteSize,
		paytable:    make(map[int]decimal.Decimal, len(file.Frog.Paytable)),
	}
	for matches, raw := range file.Frog.Paytable {
		mult, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("frog paytable %d: bad multiplier: %w", matches, err)
		}
		cfg.paytable[matches] = mult
	}

	return cfg, nil
}

func (cfg *frogConfig) PaletteSize() int {
	return cfg.paletteSize
}

func (cfg *frogConfig) Paytable() map[int]decimal.Decimal {
	return cfg.paytable
}
