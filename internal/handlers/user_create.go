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

// UserCreator defines the interface that the user service must implement.
type UserCreator interface {
	Create(ctx context.Context, name, email, password string, role models.Role, branchID *uuid.UUID) (*models.UserDB, error)
}

// CreateUserRequest represents the JSON body for user creation
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	// Display name
	// required: true
	Name string `json:"name"`

	// Email, must be unused
	// required: true
	Email string `json:"email"`

	// Password
	// required: true
	Password string `json:"password"`

	// Role, admin or manager
	// required: true
	Role models.Role `json:"role"`

	// Branch id, required for managers
	BranchID *uuid.UUID `json:"branchId"`
}

// CreateUserResponse represents a successful user creation
// swagger:model CreateUserResponse
type CreateUserResponse struct {
	// Created user, password never included
	User *models.UserDB `json:"user"`
}

// UserErrorResponse represents an error response for user operations
// swagger:model UserErrorResponse
type UserErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewCreateUserHandler returns an HTTP handler for user creation.
// @Summary Create a user
// @Description Creates a user. Managers must be bound to a branch; the email must be unused.
// @Tags users
// @Accept json
// @Produce json
// @Param createUserRequest body handlers.CreateUserRequest true "User creation request"
// @Success 201 {object} handlers.CreateUserResponse "User created"
// @Failure 400 {object} handlers.UserErrorResponse "Missing or invalid fields"
// @Failure 409 {object} handlers.UserErrorResponse "Email already exists"
// @Router /users [post]
// @Security BearerAuth
func NewCreateUserHandler(svc UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req CreateUserRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UserErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		user, err := svc.Create(r.Context(), req.Name, req.Email, req.Password, req.Role, req.BranchID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserFieldsRequired),
				errors.Is(err, services.ErrInvalidRole),
				errors.Is(err, services.ErrManagerBranchRequired):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(UserErrorResponse{Error: err.Error()})
			case errors.Is(err, services.ErrEmailAlreadyExists):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(UserErrorResponse{Error: err.Error()})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(UserErrorResponse{Error: err.Error()})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateUserResponse{User: user})
	}
}
