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

// UserReadRepository handles user read operations
type UserReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

func (r *UserReadRepository) queryer(ctx context.Context) sqlx.QueryerContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	const query = `
		SELECT id, name, email, password_hash, role, branch_id, created_at
		FROM users
		WHERE id = $1
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, r.queryer(ctx), &user, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetByEmail matches the email exactly; lookups are case-sensitive.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT id, name, email, password_hash, role, branch_id, created_at
		FROM users
		WHERE email = $1
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, r.queryer(ctx), &user, query, email)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *UserReadRepository) List(ctx context.Context) ([]models.UserDB, error) {
	const query = `
		SELECT id, name, email, password_hash, role, branch_id, created_at
		FROM users
		ORDER BY created_at DESC
	`

	var users []models.UserDB
	err := sqlx.SelectContext(ctx, r.queryer(ctx), &users, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(users),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return users, nil
}

// CountByBranchID returns how many users reference the given branch.
// Participates in the request transaction so the branch-delete dependency
// check and the delete itself are atomic.
func (r *UserReadRepository) CountByBranchID(ctx context.Context, branchID uuid.UUID) (int, error) {
	const query = `SELECT COUNT(*) FROM users WHERE branch_id = $1`

	var count int
	err := sqlx.GetContext(ctx, r.queryer(ctx), &count, query, branchID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{branchID},
		"result", count,
		"error", err,
	)

	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *UserReadRepository) Count(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM users`

	var count int
	err := sqlx.GetContext(ctx, r.queryer(ctx), &count, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", count,
		"error", err,
	)

	if err != nil {
		return 0, err
	}

	return count, nil
}

// UserWriteRepository handles user write operations
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

func (r *UserWriteRepository) execer(ctx context.Context) sqlx.ExecerContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

func (r *UserWriteRepository) Save(ctx context.Context, user *models.UserDB) error {
	const query = `
		INSERT INTO users (id, name, email, password_hash, role, branch_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	args := []any{user.UserID, user.Name, user.Email, user.PasswordHash, user.Role, user.BranchID, user.CreatedAt}

	_, err := r.execer(ctx).ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// Update replaces every mutable field of the user row.
// Returns the number of rows affected so callers can detect a missing user.
func (r *UserWriteRepository) Update(ctx context.Context, user *models.UserDB) (int64, error) {
	const query = `
		UPDATE users
		SET name = $2, email = $3, password_hash = $4, role = $5, branch_id = $6
		WHERE id = $1
	`
	args := []any{user.UserID, user.Name, user.Email, user.PasswordHash, user.Role, user.BranchID}

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

func (r *UserWriteRepository) Delete(ctx context.Context, userID uuid.UUID) (int64, error) {
	const query = `DELETE FROM users WHERE id = $1`

	res, err := r.execer(ctx).ExecContext(ctx, query, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}
