package games

// PlaceBetRequest - тело ставки. Сумма десятичной строкой, чтобы деньги
// не проходили через float. Какие из опциональных полей нужны -
// определяется типом игры
type PlaceBetRequest struct {
	Amount         string `json:"amount"`                    // Сумма ставки, строка "10.50"
	Bet            string `json:"bet,omitempty"`             // Рулетка: red/black/even/odd/low/high или "0".."36"
	SelectedColors []int  `json:"selected_colors,omitempty"` // FrogJackpot: ровно 6 индексов палитры
}

type PlaceBetResponse struct {
	Outcome    Outcome `json:"outcome"`
	IsWin      bool    `json:"is_win"`
	Multiplier string  `json:"multiplier"` // Множитель выплаты, "0" при проигрыше
	WinAmount  string  `json:"win_amount"`
	Balance    string  `json:"balance"` // Баланс после раунда
	BetTxID    string  `json:"bet_tx_id"`
	WinTxID    *string `json:"win_tx_id,omitempty"`
}

// Outcome - исход раунда, заполняется поле своей игры
type Outcome struct {
	Reels []string `json:"reels,omitempty"` // Слот: 3 символа

	Number *int   `json:"number,omitempty"` // Рулетка: 0..36
	Color  string `json:"color,omitempty"`  // green/red/black
	IsEven *bool  `json:"is_even,omitempty"`
	IsOdd  *bool  `json:"is_odd,omitempty"`
	IsLow  *bool  `json:"is_low,omitempty"`
	IsHigh *bool  `json:"is_high,omitempty"`

	Colors     []int `json:"colors,omitempty"`      // FrogJackpot: 6 цветов системы
	MatchCount *int  `json:"match_count,omitempty"` // Совпавшие позиции
}

// GamesResponse - список доступных игр с лимитами ставок
type GamesResponse struct {
	Games []GameInfo `json:"games"`
}

type GameInfo struct {
	ID     string `json:"id"`
	Type   string `json:"type"`
	MinBet string `json:"min_bet"`
	MaxBet string `json:"max_bet"`
}

// PaytableResponse - та же таблица выплат, которой считает сервер
type PaytableResponse struct {
	GameID   string            `json:"game_id"`
	Type     string            `json:"type"`
	MinBet   string            `json:"min_bet"`
	MaxBet   string            `json:"max_bet"`
	Slot     []SlotSymbol      `json:"slot,omitempty"`
	Roulette map[string]string `json:"roulette,omitempty"` // Тип ставки -> множитель
	Frog     map[int]string    `json:"frog,omitempty"`     // Совпадения -> множитель
}

type SlotSymbol struct {
	ID         string `json:"id"`
	Weight     string `json:"weight"`
	TripleMult string `json:"triple_mult"` // Вес x3
	PairMult   string `json:"pair_mult"`   // Вес x0.5
}
