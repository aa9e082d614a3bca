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

// BranchDeleter defines the interface that the branch service must implement.
type BranchDeleter interface {
	Delete(ctx context.Context, branchID uuid.UUID) error
}

// DeleteBranchResponse represents a successful branch deletion
// swagger:model DeleteBranchResponse
type DeleteBranchResponse struct {
	// Success message
	// default: Branch deleted successfully
	Message string `json:"message"`
}

// NewDeleteBranchHandler returns an HTTP handler deleting a branch.
// @Summary Delete a branch
// @Description Deletes a branch unless users are still assigned to it.
// @Tags branches
// @Produce json
// @Param id path string true "Branch id"
// @Success 200 {object} handlers.DeleteBranchResponse "Branch deleted"
// @Failure 404 {object} handlers.BranchErrorResponse "Branch not found"
// @Failure 409 {object} handlers.BranchErrorResponse "Branch has assigned users"
// @Router /branches/{id} [delete]
// @Security BearerAuth
func NewDeleteBranchHandler(svc BranchDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		branchID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(BranchErrorResponse{Error: services.ErrBranchNotFound.Error()})
			return
		}

		if err := svc.Delete(r.Context(), branchID); err != nil {
			switch {
			case errors.Is(err, services.ErrBranchHasUsers):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(BranchErrorResponse{Error: err.Error()})
			case errors.Is(err, services.ErrBranchNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(BranchErrorResponse{Error: err.Error()})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(BranchErrorResponse{Error: err.Error()})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DeleteBranchResponse{Message: "Branch deleted successfully"})
	}
}
