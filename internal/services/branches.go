package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mkumar-dev/expense-tracker/internal/logger"
	"github.com/mkumar-dev/expense-tracker/internal/models"
)

var (
	ErrBranchFieldsRequired = errors.New("name and city are required")
	ErrBranchNotFound       = errors.New("branch not found")
	ErrBranchHasUsers       = errors.New("cannot delete branch with assigned users")
)

// BranchReader defines read-only operations for branches.
type BranchReader interface {
	GetByID(ctx context.Context, branchID uuid.UUID) (*models.BranchDB, error)
	List(ctx context.Context) ([]models.BranchDB, error)
}

// BranchUserCounter counts users assigned to a branch.
type BranchUserCounter interface {
	CountByBranchID(ctx context.Context, branchID uuid.UUID) (int, error)
}

// BranchWriter defines write operations for branches.
type BranchWriter interface {
	Save(ctx context.Context, branch *models.BranchDB) error
	Update(ctx context.Context, branch *models.BranchDB) (int64, error)
	Delete(ctx context.Context, branchID uuid.UUID) (int64, error)
}

// BranchService handles branch CRUD.
type BranchService struct {
	reader      BranchReader
	userCounter BranchUserCounter
	writer      BranchWriter
}

// NewBranchService creates a new BranchService instance.
func NewBranchService(reader BranchReader, userCounter BranchUserCounter, writer BranchWriter) *BranchService {
	return &BranchService{
		reader:      reader,
		userCounter: userCounter,
		writer:      writer,
	}
}

// Create adds a new branch. Location is optional and defaults to empty.
func (svc *BranchService) Create(ctx context.Context, name, city, location string) (*models.BranchDB, error) {
	if name == "" || city == "" {
		return nil, ErrBranchFieldsRequired
	}

	branch := &models.BranchDB{
		BranchID:  uuid.New(),
		Name:      name,
		City:      city,
		Location:  location,
		CreatedAt: time.Now().UTC(),
	}

	if err := svc.writer.Save(ctx, branch); err != nil {
		logger.Log.Errorw("failed to save branch", "err", err)
		return nil, err
	}

	return branch, nil
}

// List returns all branches, newest first.
func (svc *BranchService) List(ctx context.Context) ([]models.BranchDB, error) {
	branches, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list branches", "err", err)
		return nil, err
	}
	return branches, nil
}

// Update replaces every field of the branch.
func (svc *BranchService) Update(ctx context.Context, branchID uuid.UUID, name, city, location string) error {
	if name == "" || city == "" {
		return ErrBranchFieldsRequired
	}

	branch := &models.BranchDB{
		BranchID: branchID,
		Name:     name,
		City:     city,
		Location: location,
	}

	rows, err := svc.writer.Update(ctx, branch)
	if err != nil {
		logger.Log.Errorw("failed to update branch", "branchID", branchID, "err", err)
		return err
	}
	if rows == 0 {
		return ErrBranchNotFound
	}

	return nil
}

// Delete removes a branch unless at least one user still references it.
// The dependency check and the delete run in the same request transaction,
// so a concurrent user creation cannot slip between them.
func (svc *BranchService) Delete(ctx context.Context, branchID uuid.UUID) error {
	count, err := svc.userCounter.CountByBranchID(ctx, branchID)
	if err != nil {
		logger.Log.Errorw("failed to count branch users", "branchID", branchID, "err", err)
		return err
	}
	if count > 0 {
		logger.Log.Errorw("branch has assigned users", "branchID", branchID, "users", count)
		return ErrBranchHasUsers
	}

	rows, err := svc.writer.Delete(ctx, branchID)
	if err != nil {
		logger.Log.Errorw("failed to delete branch", "branchID", branchID, "err", err)
		return err
	}
	if rows == 0 {
		return ErrBranchNotFound
	}

	return nil
}
