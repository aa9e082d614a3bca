package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mkumar-dev/expense-tracker/internal/logger"
	"github.com/mkumar-dev/expense-tracker/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserFieldsRequired    = errors.New("name, email, password and role are required")
	ErrInvalidRole           = errors.New("role must be admin or manager")
	ErrManagerBranchRequired = errors.New("branch is required for managers")
	ErrEmailAlreadyExists    = errors.New("email already exists")
	ErrUserNotFound          = errors.New("user not found")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	List(ctx context.Context) ([]models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.UserDB) error
	Update(ctx context.Context, user *models.UserDB) (int64, error)
	Delete(ctx context.Context, userID uuid.UUID) (int64, error)
}

// UserService handles user CRUD.
type UserService struct {
	reader UserReader
	writer UserWriter
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserReader, writer UserWriter) *UserService {
	return &UserService{
		reader: reader,
		writer: writer,
	}
}

// Create registers a new user. Managers must be bound to a branch; the email
// must be unused (compared case-sensitively).
func (svc *UserService) Create(ctx context.Context, name, email, password string, role models.Role, branchID *uuid.UUID) (*models.UserDB, error) {
	if name == "" || email == "" || password == "" || role == "" {
		return nil, ErrUserFieldsRequired
	}
	if !role.Valid() {
		return nil, ErrInvalidRole
	}
	if role != models.RoleAdmin && branchID == nil {
		return nil, ErrManagerBranchRequired
	}

	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check email exists", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Errorw("email already exists", "email", email)
		return nil, ErrEmailAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user := &models.UserDB{
		UserID:       uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         role,
		BranchID:     branchID,
		CreatedAt:    time.Now().UTC(),
	}

	if err := svc.writer.Save(ctx, user); err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	return user, nil
}

// List returns all users, newest first.
func (svc *UserService) List(ctx context.Context) ([]models.UserDB, error) {
	users, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}
	return users, nil
}

// GetByID returns a single user.
func (svc *UserService) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Update replaces every field of the user. The stored password hash is kept
// unless a new password is supplied.
func (svc *UserService) Update(ctx context.Context, userID uuid.UUID, name, email string, role models.Role, branchID *uuid.UUID, password *string) error {
	if name == "" || email == "" || role == "" {
		return ErrUserFieldsRequired
	}
	if !role.Valid() {
		return ErrInvalidRole
	}
	if role != models.RoleAdmin && branchID == nil {
		return ErrManagerBranchRequired
	}

	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "err", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	user.Name = name
	user.Email = email
	user.Role = role
	user.BranchID = branchID

	if password != nil && *password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
		if err != nil {
			logger.Log.Errorw("failed to hash password", "err", err)
			return err
		}
		user.PasswordHash = string(hashedPassword)
	}

	rows, err := svc.writer.Update(ctx, user)
	if err != nil {
		logger.Log.Errorw("failed to update user", "userID", userID, "err", err)
		return err
	}
	if rows == 0 {
		return ErrUserNotFound
	}

	return nil
}

// Delete removes a user. Transactions referencing the user are left in place.
func (svc *UserService) Delete(ctx context.Context, userID uuid.UUID) error {
	rows, err := svc.writer.Delete(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to delete user", "userID", userID, "err", err)
		return err
	}
	if rows == 0 {
		return ErrUserNotFound
	}
	return nil
}
