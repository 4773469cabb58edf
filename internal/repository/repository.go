package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"frogcasino_backend/internal/model"
)

// Сентинели уровня хранилища, сервисы переводят их в коды для клиента
var (
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrUserNotFound        = errors.New("user not found")
	ErrTransactionNotFound = errors.New("transaction not found")
)

// UserRepository - баланс игрока. Списание условное: хранилище само
// отклоняет операцию, которая увела бы баланс в минус, это точка
// линеаризации конкурентных ставок одного игрока
type UserRepository interface {
	GetBalance(ctx context.Context, id int) (decimal.Decimal, error)
	// Debit - атомарное balance = balance - amount при balance >= amount.
	// Возвращает новый баланс либо ErrInsufficientFunds
	Debit(ctx context.Context, id int, amount decimal.Decimal) (decimal.Decimal, error)
	// Credit - атомарное balance = balance + amount, возвращает новый баланс
	Credit(ctx context.Context, id int, amount decimal.Decimal) (decimal.Decimal, error)
}

// TransactionRepository - append-only леджер. Запись создается в pending,
// после completed мутирует только статус (и updated_at)
type TransactionRepository interface {
	Create(ctx context.Context, tx *model.Transaction) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.TransactionStatus) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Transaction, error)
	ListByUser(ctx context.Context, userID int) ([]model.Transaction, error)
}
