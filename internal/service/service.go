package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"frogcasino_backend/internal/model"
)

// SettlementService - движок расчета ставок: единственная точка, через
// которую ставки двигают баланс и леджер
type SettlementService interface {
	PlaceWager(ctx context.Context, userID int, wager model.Wager) (*model.WagerResult, error)
}

// PaymentService - депозиты, выводы и чтение кошелька
type PaymentService interface {
	Deposit(ctx context.Context, userID int, amount decimal.Decimal) (decimal.Decimal, error)
	Withdraw(ctx context.Context, userID int, amount decimal.Decimal) (decimal.Decimal, error)
	Balance(ctx context.Context, userID int) (decimal.Decimal, error)
	Transactions(ctx context.Context, userID int) ([]model.Transaction, error)
	Transaction(ctx context.Context, userID int, id uuid.UUID) (*model.Transaction, error)
}
