package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mkumar-dev/expense-tracker/internal/logger"
	"github.com/mkumar-dev/expense-tracker/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Default credentials created on first run.
const (
	seedAdminEmail      = "admin@company.com"
	seedAdminPassword   = "admin123"
	seedManagerPassword = "manager123"
)

// SeedCredentials reports the accounts created by Initialize.
type SeedCredentials struct {
	AdminEmail      string `json:"adminEmail"`
	AdminPassword   string `json:"adminPassword"`
	ManagerEmail    string `json:"managerEmail"`
	ManagerPassword string `json:"managerPassword"`
}

// UserCounter counts all users.
type UserCounter interface {
	Count(ctx context.Context) (int, error)
}

// SeedService populates an empty store with a default admin, two branches and
// a manager per branch.
type SeedService struct {
	userCounter  UserCounter
	userWriter   UserWriter
	branchWriter BranchWriter
}

// NewSeedService creates a new SeedService instance.
func NewSeedService(userCounter UserCounter, userWriter UserWriter, branchWriter BranchWriter) *SeedService {
	return &SeedService{
		userCounter:  userCounter,
		userWriter:   userWriter,
		branchWriter: branchWriter,
	}
}

// Initialize seeds default data. It is idempotent: once any user exists the
// call does nothing and returns nil credentials.
func (svc *SeedService) Initialize(ctx context.Context) (*SeedCredentials, error) {
	count, err := svc.userCounter.Count(ctx)
	if err != nil {
		logger.Log.Errorw("failed to count users", "err", err)
		return nil, err
	}
	if count > 0 {
		return nil, nil
	}

	now := time.Now().UTC()

	adminHash, err := bcrypt.GenerateFromPassword([]byte(seedAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	admin := &models.UserDB{
		UserID:       uuid.New(),
		Name:         "Admin User",
		Email:        seedAdminEmail,
		PasswordHash: string(adminHash),
		Role:         models.RoleAdmin,
		CreatedAt:    now,
	}
	if err := svc.userWriter.Save(ctx, admin); err != nil {
		logger.Log.Errorw("failed to seed admin", "err", err)
		return nil, err
	}

	branches := []*models.BranchDB{
		{BranchID: uuid.New(), Name: "Main Branch", City: "Mumbai", Location: "Andheri West", CreatedAt: now},
		{BranchID: uuid.New(), Name: "North Branch", City: "Delhi", Location: "Connaught Place", CreatedAt: now},
	}
	for _, branch := range branches {
		if err := svc.branchWriter.Save(ctx, branch); err != nil {
			logger.Log.Errorw("failed to seed branch", "branch", branch.Name, "err", err)
			return nil, err
		}
	}

	managerHash, err := bcrypt.GenerateFromPassword([]byte(seedManagerPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	for i, branch := range branches {
		branchID := branch.BranchID
		manager := &models.UserDB{
			UserID:       uuid.New(),
			Name:         fmt.Sprintf("Manager %d", i+1),
			Email:        fmt.Sprintf("manager%d@company.com", i+1),
			PasswordHash: string(managerHash),
			Role:         models.RoleManager,
			BranchID:     &branchID,
			CreatedAt:    now,
		}
		if err := svc.userWriter.Save(ctx, manager); err != nil {
			logger.Log.Errorw("failed to seed manager", "email", manager.Email, "err", err)
			return nil, err
		}
	}

	return &SeedCredentials{
		AdminEmail:      seedAdminEmail,
		AdminPassword:   seedAdminPassword,
		ManagerEmail:    "manager1@company.com",
		ManagerPassword: seedManagerPassword,
	}, nil
}
