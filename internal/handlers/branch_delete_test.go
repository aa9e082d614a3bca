package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/mkumar-dev/expense-tracker/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestDeleteBranchHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	branchID := uuid.New()

	tests := []struct {
		name         string
		pathID       string
		mockSetup    func(m *MockBranchDeleter)
		expectedCode int
		expectedErr  string
	}{
		{
			name:   "deleted",
			pathID: branchID.String(),
			mockSetup: func(m *MockBranchDeleter) {
				m.EXPECT().Delete(gomock.Any(), branchID).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "branch has users",
			pathID: branchID.String(),
			mockSetup: func(m *MockBranchDeleter) {
				m.EXPECT().Delete(gomock.Any(), branchID).Return(services.ErrBranchHasUsers)
			},
			expectedCode: http.StatusConflict,
			expectedErr:  services.ErrBranchHasUsers.Error(),
		},
		{
			name:   "not found",
			pathID: branchID.String(),
			mockSetup: func(m *MockBranchDeleter) {
				m.EXPECT().Delete(gomock.Any(), branchID).Return(services.ErrBranchNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedErr:  services.ErrBranchNotFound.Error(),
		},
		{
			name:         "malformed id",
			pathID:       "not-a-uuid",
			mockSetup:    func(m *MockBranchDeleter) {},
			expectedCode: http.StatusNotFound,
			expectedErr:  services.ErrBranchNotFound.Error(),
		},
		{
			name:   "internal server error",
			pathID: branchID.String(),
			mockSetup: func(m *MockBranchDeleter) {
				m.EXPECT().Delete(gomock.Any(), branchID).Return(errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedErr:  "database failure",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockBranchDeleter(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewDeleteBranchHandler(mockSvc)

			req := httptest.NewRequest(http.MethodDelete, "/api/v1/branches/"+tt.pathID, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.pathID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			if tt.expectedErr != "" {
				var resp BranchErrorResponse
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.expectedErr, resp.Error)
				return
			}

			var resp DeleteBranchResponse
			assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, "Branch deleted successfully", resp.Message)
		})
	}
}
