package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mkumar-dev/expense-tracker/internal/logger"
	"github.com/mkumar-dev/expense-tracker/internal/models"
)

// UserLister defines the interface that the user service must implement.
type UserLister interface {
	List(ctx context.Context) ([]models.UserDB, error)
}

// ListUsersResponse represents a user listing
// swagger:model ListUsersResponse
type ListUsersResponse struct {
	// Users, newest first, passwords never included
	Users []models.UserDB `json:"users"`
}

// NewListUsersHandler returns an HTTP handler listing all users.
// @Summary List users
// @Description Returns all users, newest first. Password hashes are never serialized.
// @Tags users
// @Produce json
// @Success 200 {object} handlers.ListUsersResponse "Users"
// @Failure 500 {object} handlers.UserErrorResponse "Internal server error"
// @Router /users [get]
// @Security BearerAuth
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		users, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(UserErrorResponse{Error: err.Error()})
			return
		}

		if users == nil {
			users = []models.UserDB{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ListUsersResponse{Users: users})
	}
}
