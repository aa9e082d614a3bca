package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/mkumar-dev/expense-tracker/internal/models"
	"github.com/mkumar-dev/expense-tracker/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockLoginer)
		expectedCode int
		expectedErr  string
	}{
		{
			name: "success",
			body: `{"email":"admin@company.com","password":"admin123"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "admin@company.com", "admin123").
					Return("token123", &models.UserDB{UserID: userID, Email: "admin@company.com", Role: models.RoleAdmin}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "invalid credentials",
			body: `{"email":"admin@company.com","password":"wrong"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "admin@company.com", "wrong").
					Return("", nil, services.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
			expectedErr:  services.ErrInvalidCredentials.Error(),
		},
		{
			name: "internal server error",
			body: `{"email":"admin@company.com","password":"admin123"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "admin@company.com", "admin123").
					Return("", nil, errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedErr:  "database failure",
		},
		{
			name:         "invalid json",
			body:         `{invalid`,
			mockSetup:    func(m *MockLoginer) {},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLoginer(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewLoginHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/login", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			if tt.expectedErr != "" {
				var resp LoginErrorResponse
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.expectedErr, resp.Error)
				return
			}

			var resp LoginResponse
			assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, "token123", resp.Token)
			assert.Equal(t, userID, resp.User.UserID)
			assert.Empty(t, resp.User.PasswordHash)
		})
	}
}
