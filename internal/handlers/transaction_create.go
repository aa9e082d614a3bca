package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/mkumar-dev/expense-tracker/internal/logger"
	"github.com/mkumar-dev/expense-tracker/internal/models"
	"github.com/mkumar-dev/expense-tracker/internal/services"
)

// TransactionCreator defines the interface that the transaction service must implement.
type TransactionCreator interface {
	Create(ctx context.Context, in services.TransactionInput, userID, branchID uuid.UUID) (*models.TransactionDB, error)
}

// CreateTransactionRequest represents the JSON body for transaction creation
// swagger:model CreateTransactionRequest
type CreateTransactionRequest struct {
	// Transaction type, income or expense
	// required: true
	// default: income
	Type models.TransactionType `json:"type"`

	// Amount, non-negative
	// required: true
	// default: 100
	Amount float64 `json:"amount"`

	// Payment method, required for income
	Method *models.PaymentMethod `json:"method"`

	// Expense category, required for expense
	Category *models.ExpenseCategory `json:"category"`

	// Free-text note, optional
	Note string `json:"note"`

	// Business date, YYYY-MM-DD
	// required: true
	// default: 2024-01-01
	Date string `json:"date"`

	// Recording user id
	// required: true
	UserID uuid.UUID `json:"userId"`

	// Owning branch id
	// required: true
	BranchID uuid.UUID `json:"branchId"`
}

// CreateTransactionResponse represents a successful transaction creation
// swagger:model CreateTransactionResponse
type CreateTransactionResponse struct {
	// Created transaction
	Transaction *models.TransactionDB `json:"transaction"`
}

// TransactionErrorResponse represents an error response for transaction operations
// swagger:model TransactionErrorResponse
type TransactionErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// isTransactionValidationErr reports whether err is one of the input
// validation sentinels shared by create and update.
func isTransactionValidationErr(err error) bool {
	return errors.Is(err, services.ErrTransactionFieldsRequired) ||
		errors.Is(err, services.ErrInvalidTransactionType) ||
		errors.Is(err, services.ErrNegativeAmount) ||
		errors.Is(err, services.ErrInvalidDate) ||
		errors.Is(err, services.ErrMethodRequired) ||
		errors.Is(err, services.ErrInvalidMethod) ||
		errors.Is(err, services.ErrCategoryRequired) ||
		errors.Is(err, services.ErrInvalidCategory)
}

// NewCreateTransactionHandler returns an HTTP handler for transaction creation.
// @Summary Create a transaction
// @Description Creates a transaction. Income requires a payment method, expense a category.
// @Tags transactions
// @Accept json
// @Produce json
// @Param createTransactionRequest body handlers.CreateTransactionRequest true "Transaction creation request"
// @Success 201 {object} handlers.CreateTransactionResponse "Transaction created"
// @Failure 400 {object} handlers.TransactionErrorResponse "Missing or invalid fields"
// @Router /transactions [post]
// @Security BearerAuth
func NewCreateTransactionHandler(svc TransactionCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req CreateTransactionRequest

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

		txn, err := svc.Create(r.Context(), in, req.UserID, req.BranchID)
		if err != nil {
			switch {
			case isTransactionValidationErr(err):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(TransactionErrorResponse{Error: err.Error()})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(TransactionErrorResponse{Error: err.Error()})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateTransactionResponse{Transaction: txn})
	}
}
