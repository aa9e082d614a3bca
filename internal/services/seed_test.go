package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/mkumar-dev/expense-tracker/internal/models"
	"github.com/mkumar-dev/expense-tracker/internal/services"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestSeedService_Initialize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("seeds admin, branches and managers on empty store", func(t *testing.T) {
		mockCounter := services.NewMockUserCounter(ctrl)
		mockUserWriter := services.NewMockUserWriter(ctrl)
		mockBranchWriter := services.NewMockBranchWriter(ctrl)
		svc := services.NewSeedService(mockCounter, mockUserWriter, mockBranchWriter)

		mockCounter.EXPECT().Count(gomock.Any()).Return(0, nil)

		var users []*models.UserDB
		mockUserWriter.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *models.UserDB) error {
				users = append(users, u)
				return nil
			}).
			Times(3)

		var branches []*models.BranchDB
		mockBranchWriter.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b *models.BranchDB) error {
				branches = append(branches, b)
				return nil
			}).
			Times(2)

		creds, err := svc.Initialize(ctx)
		assert.NoError(t, err)
		assert.Equal(t, "admin@company.com", creds.AdminEmail)
		assert.Equal(t, "admin123", creds.AdminPassword)
		assert.Equal(t, "manager1@company.com", creds.ManagerEmail)
		assert.Equal(t, "manager123", creds.ManagerPassword)

		assert.Len(t, branches, 2)
		assert.Equal(t, "Main Branch", branches[0].Name)
		assert.Equal(t, "Mumbai", branches[0].City)
		assert.Equal(t, "North Branch", branches[1].Name)
		assert.Equal(t, "Delhi", branches[1].City)

		assert.Len(t, users, 3)
		admin := users[0]
		assert.Equal(t, models.RoleAdmin, admin.Role)
		assert.Nil(t, admin.BranchID)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin123")))

		for i, manager := range users[1:] {
			assert.Equal(t, models.RoleManager, manager.Role)
			assert.Equal(t, branches[i].BranchID, *manager.BranchID)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(manager.PasswordHash), []byte("manager123")))
		}
	})

	t.Run("idempotent when users exist", func(t *testing.T) {
		mockCounter := services.NewMockUserCounter(ctrl)
		svc := services.NewSeedService(mockCounter, services.NewMockUserWriter(ctrl), services.NewMockBranchWriter(ctrl))

		mockCounter.EXPECT().Count(gomock.Any()).Return(5, nil)

		creds, err := svc.Initialize(ctx)
		assert.NoError(t, err)
		assert.Nil(t, creds)
	})

	t.Run("counter error", func(t *testing.T) {
		mockCounter := services.NewMockUserCounter(ctrl)
		svc := services.NewSeedService(mockCounter, services.NewMockUserWriter(ctrl), services.NewMockBranchWriter(ctrl))

		mockCounter.EXPECT().Count(gomock.Any()).Return(0, errors.New("db error"))

		creds, err := svc.Initialize(ctx)
		assert.EqualError(t, err, "db error")
		assert.Nil(t, creds)
	})
}
