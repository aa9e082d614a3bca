package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mkumar-dev/expense-tracker/internal/logger"
	"github.com/mkumar-dev/expense-tracker/internal/models"
)

// BranchLister defines the interface that the branch service must implement.
type BranchLister interface {
	List(ctx context.Context) ([]models.BranchDB, error)
}

// ListBranchesResponse represents a branch listing
// swagger:model ListBranchesResponse
type ListBranchesResponse struct {
	// Branches, newest first
	Branches []models.BranchDB `json:"branches"`
}

// NewListBranchesHandler returns an HTTP handler listing all branches.
// @Summary List branches
// @Description Returns all branches, newest first.
// @Tags branches
// @Produce json
// @Success 200 {object} handlers.ListBranchesResponse "Branches"
// @Failure 500 {object} handlers.BranchErrorResponse "Internal server error"
// @Router /branches [get]
// @Security BearerAuth
func NewListBranchesHandler(svc BranchLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		branches, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(BranchErrorResponse{Error: err.Error()})
			return
		}

		if branches == nil {
			branches = []models.BranchDB{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ListBranchesResponse{Branches: branches})
	}
}
