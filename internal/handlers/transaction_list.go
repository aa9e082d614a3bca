package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/mkumar-dev/expense-tracker/internal/logger"
	"github.com/mkumar-dev/expense-tracker/internal/models"
)

// TransactionLister defines the interface that the transaction service must implement.
type TransactionLister interface {
	List(ctx context.Context, filter models.TransactionFilter) ([]models.TransactionDB, error)
}

// ListTransactionsResponse represents a transaction listing
// swagger:model ListTransactionsResponse
type ListTransactionsResponse struct {
	// Transactions, newest first
	Transactions []models.TransactionDB `json:"transactions"`
}

// parseTransactionFilter builds a filter from the query string. Absent
// parameters impose no constraint.
func parseTransactionFilter(r *http.Request) (models.TransactionFilter, error) {
	var filter models.TransactionFilter
	q := r.URL.Query()

	if v := q.Get("branchId"); v != "" {
		branchID, err := uuid.Parse(v)
		if err != nil {
			return filter, errors.New("invalid branchId")
		}
		filter.BranchID = &branchID
	}
	if v := q.Get("startDate"); v != "" {
		filter.StartDate = &v
	}
	if v := q.Get("endDate"); v != "" {
		filter.EndDate = &v
	}
	if v := q.Get("type"); v != "" {
		t := models.TransactionType(v)
		if !t.Valid() {
			return filter, errors.New("invalid type")
		}
		filter.Type = &t
	}

	return filter, nil
}

// NewListTransactionsHandler returns an HTTP handler listing transactions.
// @Summary List transactions
// @Description Returns transactions matching the optional branchId, startDate, endDate and type filters, newest first.
// @Tags transactions
// @Produce json
// @Param branchId query string false "Branch id"
// @Param startDate query string false "Inclusive start date, YYYY-MM-DD"
// @Param endDate query string false "Inclusive end date, YYYY-MM-DD"
// @Param type query string false "income or expense"
// @Success 200 {object} handlers.ListTransactionsResponse "Transactions"
// @Failure 400 {object} handlers.TransactionErrorResponse "Invalid filter"
// @Router /transactions [get]
// @Security BearerAuth
func NewListTransactionsHandler(svc TransactionLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		filter, err := parseTransactionFilter(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TransactionErrorResponse{Error: err.Error()})
			return
		}

		txns, err := svc.List(r.Context(), filter)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(TransactionErrorResponse{Error: err.Error()})
			return
		}

		if txns == nil {
			txns = []models.TransactionDB{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ListTransactionsResponse{Transactions: txns})
	}
}
