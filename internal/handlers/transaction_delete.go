package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mkumar-dev/expense-tracker/internal/logger"
	"github.com/mkumar-dev/expense-tracker/internal/services"
)

// TransactionDeleter defines the interface that the transaction service must implement.
type TransactionDeleter interface {
	Delete(ctx context.Context, transactionID uuid.UUID) error
}

// DeleteTransactionResponse represents a successful transaction deletion
// swagger:model DeleteTransactionResponse
type DeleteTransactionResponse struct {
	// Success message
	// default: Transaction deleted successfully
	Message string `json:"message"`
}

// NewDeleteTransactionHandler returns an HTTP handler deleting a transaction.
// @Summary Delete a transaction
// @Description Deletes a transaction by id.
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction id"
// @Success 200 {object} handlers.DeleteTransactionResponse "Transaction deleted"
// @Failure 404 {object} handlers.TransactionErrorResponse "Transaction not found"
// @Router /transactions/{id} [delete]
// @Security BearerAuth
func NewDeleteTransactionHandler(svc TransactionDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		transactionID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(TransactionErrorResponse{Error: services.ErrTransactionNotFound.Error()})
			return
		}

		if err := svc.Delete(r.Context(), transactionID); err != nil {
			switch {
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
		json.NewEncoder(w).Encode(DeleteTransactionResponse{Message: "Transaction deleted successfully"})
	}
}
