package model

// Outcome - сгенерированный исход раунда (закрытый union по играм)
type Outcome interface {
	isOutcome()
}

// SlotOutcome - 3 выпавших символа (ID из таблицы символов)
type SlotOutcome struct {
	Reels [3]string
}

// RouletteOutcome - выпавшее число и производные от него предикаты.
// Предикаты выводятся из числа детерминированно и никогда не
// сэмплируются отдельно
type RouletteOutcome struct {
	Number int
	Color  string
	IsEven bool
	IsOdd  bool
	IsLow  bool
	IsHigh bool
}

// FrogOutcome - 6 различных цветов, выбранных системой из палитры
type FrogOutcome struct {
	Colors     []int
	MatchCount int
}

func (SlotOutcome) isOutcome()     {}
func (RouletteOutcome) isOutcome() {}
func (FrogOutcome) isOutcome()     {}
