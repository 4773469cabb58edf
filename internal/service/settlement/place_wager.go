package settlement

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"frogcasino_backend/internal/game/frog"
	"frogcasino_backend/internal/game/roulette"
	"frogcasino_backend/internal/game/slot"
	"frogcasino_backend/internal/model"
	"frogcasino_backend/internal/repository"
)

// PlaceWager - полный цикл расчета ставки: валидация, списание,
// генерация исхода, начисление выигрыша, записи леджера.
// До списания любая ошибка - чистый отказ без мутаций. После списания
// шаги идут в одной транзакции хранилища: раунд либо доходит до конца,
// либо откатывается целиком - списанная ставка не может пропасть без
// следа в леджере
func (s *serv) PlaceWager(ctx context.Context, userID int, wager model.Wager) (*model.WagerResult, error) {
	game, ok := s.gamesCfg.Game(wager.GameID)
	if !ok || !game.IsActive {
		return nil, model.ErrGameNotFound
	}
	if err := validateAmount(wager.Amount, game); err != nil {
		return nil, err
	}
	if err := s.validateParams(game, wager.Params); err != nil {
		return nil, err
	}

	// Предпроверка баланса: недостаток средств отсекается до каких-либо
	// записей. Гонку с параллельной ставкой закрывает условное списание ниже
	balance, err := s.userRepo.GetBalance(ctx, userID)
	if err != nil {
		s.logger.Error("failed to read balance before wager",
			zap.Int("user_id", userID),
			zap.Error(err),
		)
		return nil, model.ErrInternal
	}
	if balance.LessThan(wager.Amount) {
		return nil, model.ErrInsufficientBalance
	}

	var res *model.WagerResult
	stage := "begin"
	debited := false

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		gameID := game.ID

		stage = "create bet transaction"
		betTx := &model.Transaction{
			ID:          uuid.New(),
			UserID:      userID,
			Type:        model.TransactionBet,
			Amount:      wager.Amount,
			Status:      model.StatusPending,
			Description: "bet on " + game.ID,
			GameID:      &gameID,
		}
		if err := s.txRepo.Create(txCtx, betTx); err != nil {
			return err
		}

		stage = "debit"
		newBalance, err := s.userRepo.Debit(txCtx, userID, wager.Amount)
		if err != nil {
			return err
		}
		debited = true

		stage = "generate outcome"
		outcome, isWin, mult, err := s.play(wager)
		if err != nil {
			return err
		}

		winAmount := decimal.Zero
		var winTxID *uuid.UUID
		if isWin {
			winAmount = wager.Amount.Mul(mult).Round(2)

			stage = "create win transaction"
			winTx := &model.Transaction{
				ID:          uuid.New(),
				UserID:      userID,
				Type:        model.TransactionWin,
				Amount:      winAmount,
				Status:      model.StatusPending,
				Description: "win on " + game.ID,
				GameID:      &gameID,
			}
			if err := s.txRepo.Create(txCtx, winTx); err != nil {
				return err
			}

			stage = "credit win"
			newBalance, err = s.userRepo.Credit(txCtx, userID, winAmount)
			if err != nil {
				return err
			}

			stage = "complete win transaction"
			if err := s.txRepo.UpdateStatus(txCtx, winTx.ID, model.StatusCompleted); err != nil {
				return err
			}
			winTxID = &winTx.ID
		}

		stage = "complete bet transaction"
		if err := s.txRepo.UpdateStatus(txCtx, betTx.ID, model.StatusCompleted); err != nil {
			return err
		}

		res = &model.WagerResult{
			Outcome:    outcome,
			IsWin:      isWin,
			Multiplier: mult,
			WinAmount:  winAmount,
			Balance:    newBalance,
			BetTxID:    betTx.ID,
			WinTxID:    winTxID,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrInsufficientFunds) {
			// Параллельная ставка успела снять деньги после предпроверки,
			// условный UPDATE отклонил списание - мутаций не было
			return nil, model.ErrInsufficientBalance
		}
		// Деньги могли уже двигаться. Транзакция хранилища откатилась,
		// наружу уходит стабильный код, контекст - в лог. Финансовые
		// мутации не ретраим: повтор списания или начисления опаснее отказа
		s.logger.Error("settlement failed",
			zap.Int("user_id", userID),
			zap.String("game_id", wager.GameID),
			zap.String("amount", wager.Amount.String()),
			zap.String("stage", stage),
			zap.Bool("debited", debited),
			zap.Error(err),
		)
		return nil, model.ErrInternal
	}

	return res, nil
}

// validateAmount - сумма положительная, не больше 2 знаков после запятой
// и в пределах лимитов игры
func validateAmount(amount decimal.Decimal, game model.Game) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return model.ErrInvalidBetAmount
	}
	if !amount.Equal(amount.Round(2)) {
		return model.ErrInvalidBetAmount
	}
	if amount.LessThan(game.MinBet) || amount.GreaterThan(game.MaxBet) {
		return model.ErrInvalidBetAmount
	}
	return nil
}

// validateParams - форма параметров должна соответствовать типу игры
func (s *serv) validateParams(game model.Game, params model.BetParams) error {
	switch p := params.(type) {
	case model.SlotParams:
		if game.Type != model.GameTypeSlot {
			return model.ErrInvalidBetType
		}
	case model.RouletteParams:
		if game.Type != model.GameTypeRoulette || !roulette.ValidBet(p.Bet) {
			return model.ErrInvalidBetType
		}
	case model.FrogParams:
		if game.Type != model.GameTypeFrog || !frog.ValidSelection(p.Colors, s.frogCfg.PaletteSize()) {
			return model.ErrInvalidBetType
		}
	default:
		return model.ErrInvalidBetType
	}
	return nil
}

// play - генерация исхода и определение множителя. Чистая математика,
// параметры к этому моменту уже проверены
func (s *serv) play(wager model.Wager) (model.Outcome, bool, decimal.Decimal, error) {
	switch p := wager.Params.(type) {
	case model.SlotParams:
		out, err := slot.Generate(s.src, s.slotCfg.Symbols())
		if err != nil {
			return nil, false, decimal.Zero, err
		}
		isWin, mult := slot.Evaluate(out, s.slotCfg.Symbols())
		return out, isWin, mult, nil

	case model.RouletteParams:
		out, err := roulette.Generate(s.src)
		if err != nil {
			return nil, false, decimal.Zero, err
		}
		isWin, mult := roulette.Evaluate(out, p.Bet)
		return out, isWin, mult, nil

	case model.FrogParams:
		out, err := frog.Generate(s.src, s.frogCfg.PaletteSize())
		if err != nil {
			return nil, false, decimal.Zero, err
		}
		out.MatchCount = frog.MatchCount(out.Colors, p.Colors)
		isWin, mult := frog.Evaluate(out.MatchCount, s.frogCfg.Paytable())
		return out, isWin, mult, nil

	default:
		return nil, false, decimal.Zero, model.ErrInvalidBetType
	}
}
