package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionDeposit    TransactionType = "deposit"
	TransactionWithdrawal TransactionType = "withdrawal"
	TransactionBet        TransactionType = "bet"
	TransactionWin        TransactionType = "win"
)

type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusCompleted TransactionStatus = "completed"
	StatusFailed    TransactionStatus = "failed"
	StatusCancelled TransactionStatus = "cancelled"
)

// Transaction - запись леджера. После перехода в completed запись
// неизменяема, мутируют только Status и UpdatedAt
type Transaction struct {
	ID          uuid.UUID
	UserID      int
	Type        TransactionType
	Amount      decimal.Decimal
	Status      TransactionStatus
	Description string
	GameID      *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
