package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mkumar-dev/expense-tracker/internal/logger"
	"github.com/mkumar-dev/expense-tracker/internal/models"
	"github.com/mkumar-dev/expense-tracker/internal/services"
)

// BranchCreator defines the interface that the branch service must implement.
type BranchCreator interface {
	Create(ctx context.Context, name, city, location string) (*models.BranchDB, error)
}

// CreateBranchRequest represents the JSON body for branch creation
// swagger:model CreateBranchRequest
type CreateBranchRequest struct {
	// Branch name
	// required: true
	// default: Main Branch
	Name string `json:"name"`

	// City
	// required: true
	// default: Mumbai
	City string `json:"city"`

	// Street or area, optional
	// default: Andheri West
	Location string `json:"location"`
}

// CreateBranchResponse represents a successful branch creation
// swagger:model CreateBranchResponse
type CreateBranchResponse struct {
	// Created branch
	Branch *models.BranchDB `json:"branch"`
}

// BranchErrorResponse represents an error response for branch operations
// swagger:model BranchErrorResponse
type BranchErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewCreateBranchHandler returns an HTTP handler for branch creation.
// @Summary Create a branch
// @Description Creates a branch. Name and city are required, location is optional.
// @Tags branches
// @Accept json
// @Produce json
// @Param createBranchRequest body handlers.CreateBranchRequest true "Branch creation request"
// @Success 201 {object} handlers.CreateBranchResponse "Branch created"
// @Failure 400 {object} handlers.BranchErrorResponse "Name or city missing"
// @Router /branches [post]
// @Security BearerAuth
func NewCreateBranchHandler(svc BranchCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req CreateBranchRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(BranchErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		branch, err := svc.Create(r.Context(), req.Name, req.City, req.Location)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrBranchFieldsRequired):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(BranchErrorResponse{Error: err.Error()})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(BranchErrorResponse{Error: err.Error()})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateBranchResponse{Branch: branch})
	}
}
