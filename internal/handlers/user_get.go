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

// UserGetter defines the interface that the user service must implement.
type UserGetter interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// GetUserResponse represents a single-user response
// swagger:model GetUserResponse
type GetUserResponse struct {
	// User, password never included
	User *models.UserDB `json:"user"`
}

// NewGetUserHandler returns an HTTP handler fetching one user by id.
// @Summary Get a user
// @Description Returns a single user by id.
// @Tags users
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} handlers.GetUserResponse "User"
// @Failure 404 {object} handlers.UserErrorResponse "User not found"
// @Failure 500 {object} handlers.UserErrorResponse "Internal server error"
// @Router /users/{id} [get]
// @Security BearerAuth
func NewGetUserHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		userID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(UserErrorResponse{Error: services.ErrUserNotFound.Error()})
			return
		}

		user, err := svc.GetByID(r.Context(), userID)
		if err != nil {
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
		json.NewEncoder(w).Encode(GetUserResponse{User: user})
	}
}
