package slot

import (
	"errors"

	"github.com/shopspring/decimal"

	"frogcasino_backend/internal/model"
	"frogcasino_backend/pkg/rng"
)

// Количество барабанов
const reels = 3

// Факторы выплат: тройка платит вес символа x3, пара - вес x0.5
var (
	ThreeOfAKindFactor = decimal.NewFromInt(3)
	PairFactor         = decimal.RequireFromString("0.5")
)

// Generate - 3 независимых равномерных символа из таблицы символов
func Generate(src rng.Source, symbols []model.SlotSymbol) (model.SlotOutcome, error) {
	if len(symbols) == 0 {
		return model.SlotOutcome{}, errors.New("slot: empty symbol table")
	}

	var out model.SlotOutcome
	for i := 0; i < reels; i++ {
		idx, err := src.Int(0, len(symbols)-1)
		if err != nil {
			return model.SlotOutcome{}, err
		}
		out.Reels[i] = symbols[idx].ID
	}
	return out, nil
}

// Evaluate - определение выигрыша по выпавшим барабанам.
// Тройка платит вес символа x3, пара - вес x0.5, иначе проигрыш.
// Порядок проверки пар зафиксирован: (0,1) -> (1,2) -> (0,2),
// вес берется по первой совпавшей паре
func Evaluate(out model.SlotOutcome, symbols []model.SlotSymbol) (bool, decimal.Decimal) {
	r := out.Reels

	if r[0] == r[1] && r[1] == r[2] {
		return true, weightOf(symbols, r[0]).Mul(ThreeOfAKindFactor)
	}

	pairs := [3][2]int{{0, 1}, {1, 2}, {0, 2}}
	for _, p := range pairs {
		if r[p[0]] == r[p[1]] {
			return true, weightOf(symbols, r[p[0]]).Mul(PairFactor)
		}
	}

	return false, decimal.Zero
}

func weightOf(symbols []model.SlotSymbol, id string) decimal.Decimal {
	for _, s := range symbols {
		if s.ID == id {
			return s.Weight
		}
	}
	// Символа нет в таблице - конфигурация битая, выплата нулевая
	return decimal.Zero
}
