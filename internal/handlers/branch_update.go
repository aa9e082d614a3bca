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

// BranchUpdater defines the interface that the branch service must implement.
type BranchUpdater interface {
	Update(ctx context.Context, branchID uuid.UUID, name, city, location string) error
}

// UpdateBranchRequest represents the JSON body for branch replacement
// swagger:model UpdateBranchRequest
type UpdateBranchRequest struct {
	// Branch name
	// required: true
	Name string `json:"name"`

	// City
	// required: true
	City string `json:"city"`

	// Street or area, optional
	Location string `json:"location"`
}

// UpdateBranchResponse represents a successful branch update
// swagger:model UpdateBranchResponse
type UpdateBranchResponse struct {
	// Success message
	// default: Branch updated successfully
	Message string `json:"message"`
}

// NewUpdateBranchHandler returns an HTTP handler replacing a branch.
// @Summary Update a branch
// @Description Full field replacement of a branch.
// @Tags branches
// @Accept json
// @Produce json
// @Param id path string true "Branch id"
// @Param updateBranchRequest body handlers.UpdateBranchRequest true "Branch update request"
// @Success 200 {object} handlers.UpdateBranchResponse "Branch updated"
// @Failure 400 {object} handlers.BranchErrorResponse "Name or city missing"
// @Failure 404 {object} handlers.BranchErrorResponse "Branch not found"
// @Router /branches/{id} [put]
// @Security BearerAuth
func NewUpdateBranchHandler(svc BranchUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		branchID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(BranchErrorResponse{Error: services.ErrBranchNotFound.Error()})
			return
		}

		var req UpdateBranchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(BranchErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		err = svc.Update(r.Context(), branchID, req.Name, req.City, req.Location)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrBranchFieldsRequired):
				w.WriteHeader(http.StatusBadRequest)
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
		json.NewEncoder(w).Encode(UpdateBranchResponse{Message: "Branch updated successfully"})
	}
}
