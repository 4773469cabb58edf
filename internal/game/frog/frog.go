package frog

import (
	"fmt"

	"github.com/shopspring/decimal"

	"frogcasino_backend/internal/model"
	"frogcasino_backend/pkg/rng"
)

// DrawCount - сколько цветов тянет система и выбирает игрок
const DrawCount = 6

// Generate - 6 различных цветов из палитры выборкой без возвращения:
// на каждом шаге равномерный индекс в сжимающийся пул
func Generate(src rng.Source, paletteSize int) (model.FrogOutcome, error) {
	if paletteSize < DrawCount {
		return model.FrogOutcome{}, fmt.Errorf("frog: palette size %d is smaller than draw count %d", paletteSize, DrawCount)
	}

	pool := make([]int, paletteSize)
	for i := range pool {
		pool[i] = i
	}

	colors := make([]int, 0, DrawCount)
	for i := 0; i < DrawCount; i++ {
		idx, err := src.Int(0, len(pool)-1)
		if err != nil {
			return model.FrogOutcome{}, err
		}
		colors = append(colors, pool[idx])
		pool = append(pool[:idx], pool[idx+1:]...)
	}

	return model.FrogOutcome{Colors: colors}, nil
}

// ValidSelection - ровно 6 цветов игрока, каждый в пределах палитры.
// Повторы на стороне игрока разрешены
func ValidSelection(colors []int, paletteSize int) bool {
	if len(colors) != DrawCount {
		return false
	}
	for _, c := range colors {
		if c < 0 || c >= paletteSize {
			return false
		}
	}
	return true
}

// MatchCount - число позиций, где выбор игрока совпал с выбором системы
func MatchCount(system, player []int) int {
	count := 0
	for i := 0; i < DrawCount && i < len(system) && i < len(player); i++ {
		if system[i] == player[i] {
			count++
		}
	}
	return count
}

// Evaluate - множитель по числу совпадений из фиксированной таблицы.
// Таблица одна и та же для расчета и для отдачи клиенту
func Evaluate(matchCount int, paytable map[int]decimal.Decimal) (bool, decimal.Decimal) {
	mult, ok := paytable[matchCount]
	if !ok || mult.IsZero() {
		return false, decimal.Zero
	}
	return true, mult
}
