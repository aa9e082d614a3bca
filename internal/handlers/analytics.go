package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mkumar-dev/expense-tracker/internal/logger"
	"github.com/mkumar-dev/expense-tracker/internal/models"
)

// ReportProvider defines the interface that the analytics service must implement.
type ReportProvider interface {
	GetReport(ctx context.Context, filter models.TransactionFilter) (models.Analytics, error)
}

// AnalyticsErrorResponse represents an error response for analytics
// swagger:model AnalyticsErrorResponse
type AnalyticsErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewGetAnalyticsHandler returns an HTTP handler computing the aggregation
// report for the filtered transaction set.
// @Summary Get analytics
// @Description Returns totals, method/category breakdowns and the per-day running balance for the filtered transaction set. The running balance starts at zero at the earliest date inside the filter window.
// @Tags analytics
// @Produce json
// @Param branchId query string false "Branch id"
// @Param startDate query string false "Inclusive start date, YYYY-MM-DD"
// @Param endDate query string false "Inclusive end date, YYYY-MM-DD"
// @Success 200 {object} models.Analytics "Aggregated report"
// @Failure 400 {object} handlers.AnalyticsErrorResponse "Invalid filter"
// @Failure 500 {object} handlers.AnalyticsErrorResponse "Internal server error"
// @Router /analytics [get]
// @Security BearerAuth
func NewGetAnalyticsHandler(svc ReportProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		filter, err := parseTransactionFilter(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AnalyticsErrorResponse{Error: err.Error()})
			return
		}

		report, err := svc.GetReport(r.Context(), filter)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AnalyticsErrorResponse{Error: err.Error()})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(report)
	}
}
