package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mkumar-dev/expense-tracker/internal/logger"
	"github.com/mkumar-dev/expense-tracker/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is returned when the email is unknown or the
	// password does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserEmailReader looks up a user by exact email match.
type UserEmailReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, role string, branchID *uuid.UUID) (string, error)
}

// AuthService handles login.
type AuthService struct {
	reader UserEmailReader
	jwt    JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserEmailReader, jwt JWTGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		jwt:    jwt,
	}
}

// Login authenticates a user by email and password and returns a JWT token
// together with the user record.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, *models.UserDB, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", nil, err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "email", email)
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "email", email)
		return "", nil, ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID, string(user.Role), user.BranchID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", nil, err
	}

	return token, user, nil
}
