package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/mkumar-dev/expense-tracker/internal/logger"
	"github.com/mkumar-dev/expense-tracker/internal/models"
)

// TransactionReadRepository handles transaction read operations
type TransactionReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTransactionReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TransactionReadRepository {
	return &TransactionReadRepository{db: db, txGetter: txGetter}
}

func (r *TransactionReadRepository) queryer(ctx context.Context) sqlx.QueryerContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

func (r *TransactionReadRepository) GetByID(ctx context.Context, transactionID uuid.UUID) (*models.TransactionDB, error) {
	const query = `
		SELECT id, type, amount, method, category, note, date, user_id, branch_id, created_at
		FROM transactions
		WHERE id = $1
	`

	var txn models.TransactionDB
	err := sqlx.GetContext(ctx, r.queryer(ctx), &txn, query, transactionID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{transactionID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &txn, nil
}

// List returns transactions matching every supplied predicate. Nil filter
// fields impose no constraint; date bounds are inclusive and compared as
// strings, which is chronological for the zero-padded YYYY-MM-DD format.
// Rows come back newest first (date desc, created_at desc).
func (r *TransactionReadRepository) List(ctx context.Context, filter models.TransactionFilter) ([]models.TransactionDB, error) {
	query := `
		SELECT id, type, amount, method, category, note, date, user_id, branch_id, created_at
		FROM transactions
	`

	var conds []string
	var args []any

	if filter.BranchID != nil {
		args = append(args, *filter.BranchID)
		conds = append(conds, fmt.Sprintf("branch_id = $%d", len(args)))
	}
	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		conds = append(conds, fmt.Sprintf("date >= $%d", len(args)))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		conds = append(conds, fmt.Sprintf("date <= $%d", len(args)))
	}
	if filter.Type != nil {
		args = append(args, *filter.Type)
		conds = append(conds, fmt.Sprintf("type = $%d", len(args)))
	}

	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY date DESC, created_at DESC"

	var txns []models.TransactionDB
	err := sqlx.SelectContext(ctx, r.queryer(ctx), &txns, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", len(txns),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return txns, nil
}

// TransactionWriteRepository handles transaction write operations
type TransactionWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTransactionWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TransactionWriteRepository {
	return &TransactionWriteRepository{db: db, txGetter: txGetter}
}

func (r *TransactionWriteRepository) execer(ctx context.Context) sqlx.ExecerContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

func (r *TransactionWriteRepository) Save(ctx context.Context, txn *models.TransactionDB) error {
	const query = `
		INSERT INTO transactions (id, type, amount, method, category, note, date, user_id, branch_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	args := []any{
		txn.TransactionID, txn.Type, txn.Amount, txn.Method, txn.Category,
		txn.Note, txn.Date, txn.UserID, txn.BranchID, txn.CreatedAt,
	}

	_, err := r.execer(ctx).ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// Update is a full field replacement, no partial diffing.
func (r *TransactionWriteRepository) Update(ctx context.Context, txn *models.TransactionDB) (int64, error) {
	const query = `
		UPDATE transactions
		SET type = $2, amount = $3, method = $4, category = $5, note = $6, date = $7
		WHERE id = $1
	`
	args := []any{txn.TransactionID, txn.Type, txn.Amount, txn.Method, txn.Category, txn.Note, txn.Date}

	res, err := r.execer(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}

func (r *TransactionWriteRepository) Delete(ctx context.Context, transactionID uuid.UUID) (int64, error) {
	const query = `DELETE FROM transactions WHERE id = $1`

	res, err := r.execer(ctx).ExecContext(ctx, query, transactionID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{transactionID},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}
