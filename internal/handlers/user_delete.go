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

// UserDeleter defines the interface that the user service must implement.
type UserDeleter interface {
	Delete(ctx context.Context, userID uuid.UUID) error
}

// DeleteUserResponse represents a successful user deletion
// swagger:model DeleteUserResponse
type DeleteUserResponse struct {
	// Success message
	// default: User deleted successfully
	Message string `json:"message"`
}

// NewDeleteUserHandler returns an HTTP handler deleting a user.
// @Summary Delete a user
// @Description Deletes a user. Transactions created by the user are left in place.
// @Tags users
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} handlers.DeleteUserResponse "User deleted"
// @Failure 404 {object} handlers.UserErrorResponse "User not found"
// @Router /users/{id} [delete]
// @Security BearerAuth
func NewDeleteUserHandler(svc UserDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		userID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(UserErrorResponse{Error: services.ErrUserNotFound.Error()})
			return
		}

		if err := svc.Delete(r.Context(), userID); err != nil {
			switch {
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
		json.NewEncoder(w).Encode(DeleteUserResponse{Message: "User deleted successfully"})
	}
}
