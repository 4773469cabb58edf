package model

// GameError - ошибка со стабильным кодом для клиента
type GameError struct {
	Code    string
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

var (
	ErrInvalidBetAmount    = &GameError{Code: "INVALID_BET_AMOUNT", Message: "bet amount is out of allowed range"}
	ErrInvalidAmount       = &GameError{Code: "INVALID_AMOUNT", Message: "amount must be positive with at most 2 decimal places"}
	ErrInsufficientBalance = &GameError{Code: "INSUFFICIENT_BALANCE", Message: "not enough balance"}
	ErrGameNotFound        = &GameError{Code: "GAME_NOT_FOUND", Message: "game not found or inactive"}
	ErrPlayerNotFound      = &GameError{Code: "PLAYER_NOT_FOUND", Message: "player not found"}
	ErrTxNotFound          = &GameError{Code: "TRANSACTION_NOT_FOUND", Message: "transaction not found"}
	ErrInvalidBetType      = &GameError{Code: "INVALID_BET_TYPE", Message: "unknown bet type or malformed bet params"}
	ErrInternal            = &GameError{Code: "INTERNAL_ERROR", Message: "settlement failed"}
)
