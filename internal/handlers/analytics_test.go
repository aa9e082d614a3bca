package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/mkumar-dev/expense-tracker/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestGetAnalyticsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	branchID := uuid.New()

	t.Run("report returned", func(t *testing.T) {
		mockSvc := NewMockReportProvider(ctrl)

		want := models.TransactionFilter{BranchID: &branchID}
		report := models.Analytics{
			TotalIncome:  150,
			TotalExpense: 30,
			Balance:      120,
			IncomeByMethod: map[models.PaymentMethod]float64{
				models.MethodCash: 100,
				models.MethodGPay: 50,
			},
			ExpenseByCategory: map[models.ExpenseCategory]float64{
				models.CategoryRent: 30,
			},
			DailyData: []models.DailyData{
				{Date: "2024-01-01", Income: 100, Expense: 30, Balance: 70},
				{Date: "2024-01-02", Income: 50, Balance: 120},
			},
		}
		mockSvc.EXPECT().GetReport(gomock.Any(), want).Return(report, nil)

		handler := NewGetAnalyticsHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics?branchId="+branchID.String(), nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var got models.Analytics
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, report, got)
	})

	t.Run("malformed branch id", func(t *testing.T) {
		handler := NewGetAnalyticsHandler(NewMockReportProvider(ctrl))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics?branchId=nope", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	})

	t.Run("internal server error", func(t *testing.T) {
		mockSvc := NewMockReportProvider(ctrl)
		mockSvc.EXPECT().
			GetReport(gomock.Any(), models.TransactionFilter{}).
			Return(models.Analytics{}, errors.New("database failure"))

		handler := NewGetAnalyticsHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		var resp AnalyticsErrorResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "database failure", resp.Error)
	})
}
