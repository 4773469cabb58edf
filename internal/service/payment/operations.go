package payment

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"frogcasino_backend/internal/model"
	"frogcasino_backend/internal/repository"
)

// Deposit - пополнение: запись deposit и начисление в одной транзакции
func (s *serv) Deposit(ctx context.Context, userID int, amount decimal.Decimal) (decimal.Decimal, error) {
	if err := validateAmount(amount); err != nil {
		return decimal.Zero, err
	}

	var newBalance decimal.Decimal
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		tx := &model.Transaction{
			ID:          uuid.New(),
			UserID:      userID,
			Type:        model.TransactionDeposit,
			Amount:      amount,
			Status:      model.StatusPending,
			Description: "wallet deposit",
		}
		if err := s.txRepo.Create(txCtx, tx); err != nil {
			return err
		}

		balance, err := s.userRepo.Credit(txCtx, userID, amount)
		if err != nil {
			return err
		}
		newBalance = balance

		return s.txRepo.UpdateStatus(txCtx, tx.ID, model.StatusCompleted)
	})
	if err != nil {
		s.logger.Error("deposit failed",
			zap.Int("user_id", userID),
			zap.String("amount", amount.String()),
			zap.Error(err),
		)
		return decimal.Zero, model.ErrInternal
	}

	return newBalance, nil
}

// Withdraw - вывод: условное списание, в минус уйти нельзя
func (s *serv) Withdraw(ctx context.Context, userID int, amount decimal.Decimal) (decimal.Decimal, error) {
	if err := validateAmount(amount); err != nil {
		return decimal.Zero, err
	}

	var newBalance decimal.Decimal
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		tx := &model.Transaction{
			ID:          uuid.New(),
			UserID:      userID,
			Type:        model.TransactionWithdrawal,
			Amount:      amount,
			Status:      model.StatusPending,
			Description: "wallet withdrawal",
		}
		if err := s.txRepo.Create(txCtx, tx); err != nil {
			return err
		}

		balance, err := s.userRepo.Debit(txCtx, userID, amount)
		if err != nil {
			return err
		}
		newBalance = balance

		return s.txRepo.UpdateStatus(txCtx, tx.ID, model.StatusCompleted)
	})
	if err != nil {
		if errors.Is(err, repository.ErrInsufficientFunds) {
			return decimal.Zero, model.ErrInsufficientBalance
		}
		s.logger.Error("withdrawal failed",
			zap.Int("user_id", userID),
			zap.String("amount", amount.String()),
			zap.Error(err),
		)
		return decimal.Zero, model.ErrInternal
	}

	return newBalance, nil
}

// Balance - текущий баланс кошелька
func (s *serv) Balance(ctx context.Context, userID int) (decimal.Decimal, error) {
	balance, err := s.userRepo.GetBalance(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return decimal.Zero, model.ErrPlayerNotFound
		}
		s.logger.Error("failed to read balance", zap.Int("user_id", userID), zap.Error(err))
		return decimal.Zero, model.ErrInternal
	}
	return balance, nil
}

// Transactions - история операций пользователя
func (s *serv) Transactions(ctx context.Context, userID int) ([]model.Transaction, error) {
	list, err := s.txRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list transactions", zap.Int("user_id", userID), zap.Error(err))
		return nil, model.ErrInternal
	}
	return list, nil
}

// Transaction - одна запись леджера. Чужая запись неотличима от
// несуществующей
func (s *serv) Transaction(ctx context.Context, userID int, id uuid.UUID) (*model.Transaction, error) {
	tx, err := s.txRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			return nil, model.ErrTxNotFound
		}
		s.logger.Error("failed to read transaction", zap.String("tx_id", id.String()), zap.Error(err))
		return nil, model.ErrInternal
	}
	if tx.UserID != userID {
		return nil, model.ErrTxNotFound
	}
	return tx, nil
}

// validateAmount - сумма положительная и не точнее 2 знаков
func validateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) || !amount.Equal(amount.Round(2)) {
		return model.ErrInvalidAmount
	}
	return nil
}
