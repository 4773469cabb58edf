package transaction_repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"frogcasino_backend/internal/model"
	"frogcasino_backend/internal/repository"
)

const (
	table          = "transactions"
	colID          = "id"
	colUserID      = "user_id"
	colType        = "type"
	colAmount      = "amount"
	colStatus      = "status"
	colDescription = "description"
	colGameID      = "game_id"
	colCreatedAt   = "created_at"
	colUpdatedAt   = "updated_at"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewTransactionRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.TransactionRepository {
	return &repo{
		dbc:    dbc,
		getter: getter,
	}
}

func (r *repo) conn(ctx context.Context) trmpgx.Tr {
	return r.getter.DefaultTrOrDB(ctx, r.dbc)
}

// Create - вставка новой записи леджера. ID задает вызывающая сторона,
// уникальность id в БД - защита от двойного применения
func (r *repo) Create(ctx context.Context, tx *model.Transaction) error {
	now := time.Now().UTC()
	tx.CreatedAt = now
	tx.UpdatedAt = now

	query := sq.Insert(table).
		Columns(colID, colUserID, colType, colAmount, colStatus, colDescription, colGameID, colCreatedAt, colUpdatedAt).
		Values(tx.ID, tx.UserID, string(tx.Type), tx.Amount, string(tx.Status), tx.Description, tx.GameID, tx.CreatedAt, tx.UpdatedAt).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn(ctx).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

// UpdateStatus - смена статуса записи. Содержимое completed-записи
// больше не трогается, мутируют только статус и updated_at
func (r *repo) UpdateStatus(ctx context.Context, id uuid.UUID, status model.TransactionStatus) error {
	query := sq.Update(table).
		Set(colStatus, string(status)).
		Set(colUpdatedAt, time.Now().UTC()).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	res, err := r.conn(ctx).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrTransactionNotFound
	}

	return nil
}

func (r *repo) GetByID(ctx context.Context, id uuid.UUID) (*model.Transaction, error) {
	query := sq.Select(colID, colUserID, colType, colAmount, colStatus, colDescription, colGameID, colCreatedAt, colUpdatedAt).
		From(table).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var tx model.Transaction
	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(
		&tx.ID, &tx.UserID, &tx.Type, &tx.Amount, &tx.Status, &tx.Description, &tx.GameID, &tx.CreatedAt, &tx.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrTransactionNotFound
		}
		return nil, err
	}

	return &tx, nil
}

// ListByUser - история операций пользователя, новые сверху
func (r *repo) ListByUser(ctx context.Context, userID int) ([]model.Transaction, error) {
	query := sq.Select(colID, colUserID, colType, colAmount, colStatus, colDescription, colGameID, colCreatedAt, colUpdatedAt).
		From(table).
		Where(sq.Eq{colUserID: userID}).
		OrderBy(colCreatedAt + " DESC").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn(ctx).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.Transaction
	for rows.Next() {
		var tx model.Transaction
		err = rows.Scan(&tx.ID, &tx.UserID, &tx.Type, &tx.Amount, &tx.Status, &tx.Description, &tx.GameID, &tx.CreatedAt, &tx.UpdatedAt)
		if err != nil {
			return nil, err
		}
		list = append(list, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}
