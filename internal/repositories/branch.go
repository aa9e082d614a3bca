package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/mkumar-dev/expense-tracker/internal/logger"
	"github.com/mkumar-dev/expense-tracker/internal/models"
)

// BranchReadRepository handles branch read operations
type BranchReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewBranchReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *BranchReadRepository {
	return &BranchReadRepository{db: db, txGetter: txGetter}
}

func (r *BranchReadRepository) queryer(ctx context.Context) sqlx.QueryerContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

func (r *BranchReadRepository) GetByID(ctx context.Context, branchID uuid.UUID) (*models.BranchDB, error) {
	const query = `
		SELECT id, name, city, location, created_at
		FROM branches
		WHERE id = $1
	`

	var branch models.BranchDB
	err := sqlx.GetContext(ctx, r.queryer(ctx), &branch, query, branchID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{branchID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &branch, nil
}

func (r *BranchReadRepository) List(ctx context.Context) ([]models.BranchDB, error) {
	const query = `
		SELECT id, name, city, location, created_at
		FROM branches
		ORDER BY created_at DESC
	`

	var branches []models.BranchDB
	err := sqlx.SelectContext(ctx, r.queryer(ctx), &branches, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(branches),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return branches, nil
}

// BranchWriteRepository handles branch write operations
type BranchWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewBranchWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *BranchWriteRepository {
	return &BranchWriteRepository{db: db, txGetter: txGetter}
}

func (r *BranchWriteRepository) execer(ctx context.Context) sqlx.ExecerContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

func (r *BranchWriteRepository) Save(ctx context.Context, branch *models.BranchDB) error {
	const query = `
		INSERT INTO branches (id, name, city, location, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	args := []any{branch.BranchID, branch.Name, branch.City, branch.Location, branch.CreatedAt}

	_, err := r.execer(ctx).ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

func (r *BranchWriteRepository) Update(ctx context.Context, branch *models.BranchDB) (int64, error) {
	const query = `
		UPDATE branches
		SET name = $2, city = $3, location = $4
		WHERE id = $1
	`
	args := []any{branch.BranchID, branch.Name, branch.City, branch.Location}

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

func (r *BranchWriteRepository) Delete(ctx context.Context, branchID uuid.UUID) (int64, error) {
	const query = `DELETE FROM branches WHERE id = $1`

	res, err := r.execer(ctx).ExecContext(ctx, query, branchID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{branchID},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}
