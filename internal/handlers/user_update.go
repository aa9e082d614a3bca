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

// UserUpdater defines the interface that the user service must implement.
type UserUpdater interface {
	Update(ctx context.Context, userID uuid.UUID, name, email string, role models.Role, branchID *uuid.UUID, password *string) error
}

// UpdateUserRequest represents the JSON body for user replacement
// swagger:model UpdateUserRequest
type UpdateUserRequest struct {
	// Display name
	// required: true
	Name string `json:"name"`

	// Email
	// required: true
	Email string `json:"email"`

	// Role, admin or manager
	// required: true
	Role models.Role `json:"role"`

	// Branch id, required for managers
	BranchID *uuid.UUID `json:"branchId"`

	// New password; the stored hash is kept when omitted
	Password *string `json:"password"`
}

// UpdateUserResponse represents a successful user update
// swagger:model UpdateUserResponse
type UpdateUserResponse struct {
	// Success message
	// default: User updated successfully
	Message string `json:"message"`
}

// NewUpdateUserHandler returns an HTTP handler replacing a user.
// @Summary Update a user
// @Description Full field replacement. Password is re-hashed only when supplied.
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User id"
// @Param updateUserRequest body handlers.UpdateUserRequest true "User update request"
// @Success 200 {object} handlers.UpdateUserResponse "User updated"
// @Failure 400 {object} handlers.UserErrorResponse "Missing or invalid fields"
// @Failure 404 {object} handlers.UserErrorResponse "User not found"
// @Router /users/{id} [put]
// @Security BearerAuth
func NewUpdateUserHandler(svc UserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		userID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(UserErrorResponse{Error: services.ErrUserNotFound.Error()})
			return
		}

		var req UpdateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UserErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		err = svc.Update(r.Context(), userID, req.Name, req.Email, req.Role, req.BranchID, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserFieldsRequired),
				errors.Is(err, services.ErrInvalidRole),
				errors.Is(err, services.ErrManagerBranchRequired):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(UserErrorResponse{Error: err.Error()})
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(UserErrorResponse{Error: err.Error()})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(UserErrorResponse{Error: err.Error()})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UpdateUserResponse{Message: "User updated successfully"})
	}
}
