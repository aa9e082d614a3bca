package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/mkumar-dev/expense-tracker/internal/models"
	"github.com/mkumar-dev/expense-tracker/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestBranchService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("successful creation", func(t *testing.T) {
		mockWriter := services.NewMockBranchWriter(ctrl)
		svc := services.NewBranchService(
			services.NewMockBranchReader(ctrl),
			services.NewMockBranchUserCounter(ctrl),
			mockWriter,
		)

		mockWriter.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		branch, err := svc.Create(ctx, "Main Branch", "Mumbai", "Andheri West")
		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, branch.BranchID)
		assert.Equal(t, "Main Branch", branch.Name)
		assert.Equal(t, "Mumbai", branch.City)
		assert.Equal(t, "Andheri West", branch.Location)
	})

	t.Run("location is optional", func(t *testing.T) {
		mockWriter := services.NewMockBranchWriter(ctrl)
		svc := services.NewBranchService(
			services.NewMockBranchReader(ctrl),
			services.NewMockBranchUserCounter(ctrl),
			mockWriter,
		)

		mockWriter.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		branch, err := svc.Create(ctx, "North Branch", "Delhi", "")
		assert.NoError(t, err)
		assert.Empty(t, branch.Location)
	})

	t.Run("missing fields", func(t *testing.T) {
		svc := services.NewBranchService(
			services.NewMockBranchReader(ctrl),
			services.NewMockBranchUserCounter(ctrl),
			services.NewMockBranchWriter(ctrl),
		)

		branch, err := svc.Create(ctx, "", "Mumbai", "")
		assert.ErrorIs(t, err, services.ErrBranchFieldsRequired)
		assert.Nil(t, branch)
	})
}

func TestBranchService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	branchID := uuid.New()

	tests := []struct {
		name      string
		rows      int64
		writerErr error
		wantErr   error
	}{
		{name: "updated", rows: 1},
		{name: "not found", rows: 0, wantErr: services.ErrBranchNotFound},
		{name: "writer error", writerErr: errors.New("db error"), wantErr: errors.New("db error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWriter := services.NewMockBranchWriter(ctrl)
			svc := services.NewBranchService(
				services.NewMockBranchReader(ctrl),
				services.NewMockBranchUserCounter(ctrl),
				mockWriter,
			)

			mockWriter.EXPECT().Update(gomock.Any(), gomock.Any()).Return(tt.rows, tt.writerErr)

			err := svc.Update(ctx, branchID, "Main Branch", "Mumbai", "Andheri East")
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestBranchService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	branchID := uuid.New()

	tests := []struct {
		name       string
		users      int
		counterErr error
		rows       int64
		writerErr  error
		wantErr    error
	}{
		{name: "deleted", users: 0, rows: 1},
		{name: "branch has users", users: 2, wantErr: services.ErrBranchHasUsers},
		{name: "not found", users: 0, rows: 0, wantErr: services.ErrBranchNotFound},
		{name: "counter error", counterErr: errors.New("db error"), wantErr: errors.New("db error")},
		{name: "writer error", users: 0, writerErr: errors.New("db error"), wantErr: errors.New("db error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCounter := services.NewMockBranchUserCounter(ctrl)
			mockWriter := services.NewMockBranchWriter(ctrl)
			svc := services.NewBranchService(services.NewMockBranchReader(ctrl), mockCounter, mockWriter)

			mockCounter.EXPECT().CountByBranchID(gomock.Any(), branchID).Return(tt.users, tt.counterErr)
			if tt.counterErr == nil && tt.users == 0 {
				mockWriter.EXPECT().Delete(gomock.Any(), branchID).Return(tt.rows, tt.writerErr)
			}

			err := svc.Delete(ctx, branchID)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestBranchService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	mockReader := services.NewMockBranchReader(ctrl)
	svc := services.NewBranchService(
		mockReader,
		services.NewMockBranchUserCounter(ctrl),
		services.NewMockBranchWriter(ctrl),
	)

	want := []models.BranchDB{
		{BranchID: uuid.New(), Name: "North Branch", City: "Delhi"},
		{BranchID: uuid.New(), Name: "Main Branch", City: "Mumbai"},
	}
	mockReader.EXPECT().List(gomock.Any()).Return(want, nil)

	got, err := svc.List(ctx)
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}
