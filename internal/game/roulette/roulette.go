package roulette

import (
	"strconv"

	"github.com/shopspring/decimal"

	"frogcasino_backend/internal/model"
	"frogcasino_backend/pkg/rng"
)

const (
	minNumber = 0
	maxNumber = 36
)

// Стандартное 18-элементное множество красных номеров
var redNumbers = map[int]struct{}{
	1: {}, 3: {}, 5: {}, 7: {}, 9: {}, 12: {}, 14: {}, 16: {}, 18: {},
	19: {}, 21: {}, 23: {}, 25: {}, 27: {}, 30: {}, 32: {}, 34: {}, 36: {},
}

// Множители выплат: внешние ставки (цвет, четность, диапазон) платят 2x,
// точное число - 36x. Таблица одна для расчета и для отдачи клиенту
var (
	OutsidePayout  = decimal.NewFromInt(2)
	StraightPayout = decimal.NewFromInt(36)
)

// Generate - одно число 0..36 и производные от него предикаты
func Generate(src rng.Source) (model.RouletteOutcome, error) {
	n, err := src.Int(minNumber, maxNumber)
	if err != nil {
		return model.RouletteOutcome{}, err
	}
	return Derive(n), nil
}

// Derive - выводит цвет, четность и диапазон из числа.
// Ноль зеленый и не участвует ни в четности, ни в диапазонах
func Derive(n int) model.RouletteOutcome {
	out := model.RouletteOutcome{Number: n}

	switch {
	case n == 0:
		out.Color = "green"
	default:
		if _, red := redNumbers[n]; red {
			out.Color = "red"
		} else {
			out.Color = "black"
		}
		out.IsEven = n%2 == 0
		out.IsOdd = !out.IsEven
		out.IsLow = n <= 18
		out.IsHigh = n >= 19
	}

	return out
}

// ValidBet - допустимая строка ставки: red/black/even/odd/low/high
// либо точное число "0".."36" в канонической записи
func ValidBet(bet string) bool {
	switch bet {
	case "red", "black", "even", "odd", "low", "high":
		return true
	}
	n, err := strconv.Atoi(bet)
	if err != nil || n < minNumber || n > maxNumber {
		return false
	}
	// Отсекаем неканонические записи вроде "07" и "+5"
	return bet == strconv.Itoa(n)
}

// Evaluate - сопоставление ставки с исходом. Цвет, четность и диапазон
// платят 2x, точное число - 36x
func Evaluate(out model.RouletteOutcome, bet string) (bool, decimal.Decimal) {
	var won bool
	payout := OutsidePayout

	switch bet {
	case "red":
		won = out.Color == "red"
	case "black":
		won = out.Color == "black"
	case "even":
		won = out.IsEven
	case "odd":
		won = out.IsOdd
	case "low":
		won = out.IsLow
	case "high":
		won = out.IsHigh
	default:
		n, err := strconv.Atoi(bet)
		if err != nil {
			return false, decimal.Zero
		}
		won = out.Number == n
		payout = StraightPayout
	}

	if !won {
		return false, decimal.Zero
	}
	return true, payout
}
