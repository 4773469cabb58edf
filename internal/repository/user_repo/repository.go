package user_repo

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"frogcasino_backend/internal/repository"
)

const (
	table      = "users"
	colID      = "id"
	colBalance = "balance"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewUserRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.UserRepository {
	return &repo{
		dbc:    dbc,
		getter: getter,
	}
}

// conn - исполнитель запроса: транзакция из контекста (если репозиторий
// вызван внутри trm.Manager.Do) либо пул
func (r *repo) conn(ctx context.Context) trmpgx.Tr {
	return r.getter.DefaultTrOrDB(ctx, r.dbc)
}

// GetBalance - текущий баланс пользователя
func (r *repo) GetBalance(ctx context.Context, id int) (decimal.Decimal, error) {
	query := sq.Select(colBalance).
		From(table).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return decimal.Zero, err
	}

	var balance decimal.Decimal
	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Zero, repository.ErrUserNotFound
		}
		return decimal.Zero, err
	}

	return balance, nil
}

// Debit - условное списание: balance = balance - amount только при
// balance >= amount, одним UPDATE. Параллельное списание того же игрока
// не может пройти по устаревшему чтению
func (r *repo) Debit(ctx context.Context, id int, amount decimal.Decimal) (decimal.Decimal, error) {
	query := sq.Update(table).
		Set(colBalance, sq.Expr(colBalance+" - ?", amount)).
		Where(sq.Eq{colID: id}).
		Where(sq.Expr(colBalance+" >= ?", amount)).
		Suffix("RETURNING " + colBalance).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return decimal.Zero, err
	}

	var balance decimal.Decimal
	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Строка не подошла под условие: либо не хватило средств,
			// либо пользователя нет. Существование проверяется чтением
			// баланса до списания
			return decimal.Zero, repository.ErrInsufficientFunds
		}
		return decimal.Zero, err
	}

	return balance, nil
}

// Credit - начисление balance = balance + amount, возвращает новый баланс
func (r *repo) Credit(ctx context.Context, id int, amount decimal.Decimal) (decimal.Decimal, error) {
	query := sq.Update(table).
		Set(colBalance, sq.Expr(colBalance+" + ?", amount)).
		Where(sq.Eq{colID: id}).
		Suffix("RETURNING " + colBalance).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return decimal.Zero, err
	}

	var balance decimal.Decimal
	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Zero, repository.ErrUserNotFound
		}
		return decimal.Zero, err
	}

	return balance, nil
}
