package wallet

type DepositRequest struct {
	Amount string `json:"amount"` // Сумма пополнения, строка "100.00"
}

type WithdrawRequest struct {
	Amount string `json:"amount"` // Сумма вывода
}

type BalanceResponse struct {
	Balance string `json:"balance"`
}

type TransactionsResponse struct {
	Transactions []Transaction `json:"transactions"`
}

type Transaction struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`   // deposit/withdrawal/bet/win
	Amount      string  `json:"amount"`
	Status      string  `json:"status"` // pending/completed/failed/cancelled
	Description string  `json:"description"`
	GameID      *string `json:"game_id,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}
