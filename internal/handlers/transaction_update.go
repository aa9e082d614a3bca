package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mkumar-dev/expense-tracker/internal/logger"
	"github.com/mkumar-dev/expense-tracker/internal/models"
	"github.com/mkumar-dev/expense-tracker/internal/services"
)

// TransactionUpdater defines the interface that the transaction service must implement.
type TransactionUpdater interface {
	Update(ctx context.Context, transactionID uuid.UUID, in services.TransactionInput) error
}

// UpdateTransactionRequest represents the JSON body for transaction replacement
// swagger:model UpdateTransactionRequest
type UpdateTransactionRequest struct {
	// Transaction type, income or expense
	// required: true
	Type models.TransactionType `json:"type"`

	// Amount, non-negative
	// required: true
	Amount float64 `json:"amount"`

	// Payment method, required for income
	Method *models.PaymentMethod `json:"method"`

	// Expense category, required for expense
	Category *models.ExpenseCategory `json:"category"`

	// Free-text note, optional
	Note string `json:"note"`

	// Business date, YYYY-MM-DD
	// required: true
	Date string `json:"date"`
}

// UpdateTransactionResponse represents a successful transaction update
// swagger:model UpdateTransactionResponse
type UpdateTransactionResponse struct {
	// Success message
	// default: Transaction updated successfully
	Message string `json:"message"`
}

// NewUpdateTransactionHandler returns an HTTP handler replacing a transaction.
// @Summary Update a transaction
// @Description Full field replacement with the same validation as creation.
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction id"
// @Param updateTransactionRequest body handlers.UpdateTransactionRequest true "Transaction update request"
// @Success 200 {object} handlers.UpdateTransactionResponse "Transaction updated"
// @Failure 400 {object} handlers.TransactionErrorResponse "Missing or invalid fields"
// @Failure 404 {object} handlers.TransactionErrorResponse "Transaction not found"
// @Router /transactions/{id} [put]
// @Security BearerAuth
func NewUpdateTransactionHandler(svc TransactionUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		transactionID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(TransactionErrorResponse{Error: services.ErrTransactionNotFound.Error()})
			return
		}

		var req UpdateTransactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TransactionErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		in := services.TransactionInput{
			Type:     req.Type,
			Amount:   req.Amount,
			Method:   req.Method,
			Category: req.Category,
			Note:     req.Note,
			Date:     req.Date,
		}

		err = svc.Update(r.Context(), transactionID, in)
		if err != nil {
			switch {
			case isTransactionValidationErr(err):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(TransactionErrorResponse{Error: err.Error()})
			case errors.Is(err, services.ErrTransactionNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(TransactionErrorResponse{Error: err.Error()})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(TransactionErrorResponse{Error: err.Error()})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UpdateTransactionResponse{Message: "Transaction updated successfully"})
	}
}
