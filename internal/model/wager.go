package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Wager - запрос на ставку. Живет один раунд: собирается из запроса,
// уходит в движок расчета и не персистится
type Wager struct {
	GameID string
	Amount decimal.Decimal
	Params BetParams
}

// BetParams - параметры ставки конкретной игры. Закрытый union вместо
// map[string]any: некорректная форма параметров отсекается типами до
// того, как дойдет до расчета
type BetParams interface {
	isBetParams()
}

// SlotParams - у слота дополнительных параметров нет
type SlotParams struct{}

// RouletteParams - ставка рулетки: red/black/even/odd/low/high или
// точное число "0".."36"
type RouletteParams struct {
	Bet string
}

// FrogParams - 6 выбранных игроком цветов палитры, порядок важен,
// повторы разрешены
type FrogParams struct {
	Colors []int
}

func (SlotParams) isBetParams()     {}
func (RouletteParams) isBetParams() {}
func (FrogParams) isBetParams()     {}

// WagerResult - итог рассчитанного раунда
type WagerResult struct {
	Outcome    Outcome
	IsWin      bool
	Multiplier decimal.Decimal
	WinAmount  decimal.Decimal
	Balance    decimal.Decimal
	BetTxID    uuid.UUID
	WinTxID    *uuid.UUID
}
