package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/mkumar-dev/expense-tracker/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestInitializeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	creds := &services.SeedCredentials{
		AdminEmail:      "admin@company.com",
		AdminPassword:   "admin123",
		ManagerEmail:    "manager1@company.com",
		ManagerPassword: "manager123",
	}

	tests := []struct {
		name         string
		mockSetup    func(m *MockInitializer)
		expectedCode int
		expectedMsg  string
		expectCreds  bool
	}{
		{
			name: "first run returns credentials",
			mockSetup: func(m *MockInitializer) {
				m.EXPECT().Initialize(gomock.Any()).Return(creds, nil)
			},
			expectedCode: http.StatusOK,
			expectedMsg:  "Initialized successfully",
			expectCreds:  true,
		},
		{
			name: "second run reports already initialized",
			mockSetup: func(m *MockInitializer) {
				m.EXPECT().Initialize(gomock.Any()).Return(nil, nil)
			},
			expectedCode: http.StatusOK,
			expectedMsg:  "Already initialized",
		},
		{
			name: "internal server error",
			mockSetup: func(m *MockInitializer) {
				m.EXPECT().Initialize(gomock.Any()).Return(nil, errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockInitializer(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewInitializeHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/initialize", nil)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			if tt.expectedCode != http.StatusOK {
				return
			}

			var resp InitializeResponse
			assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, tt.expectedMsg, resp.Message)
			if tt.expectCreds {
				assert.Equal(t, creds, resp.Credentials)
			} else {
				assert.Nil(t, resp.Credentials)
			}
		})
	}
}
