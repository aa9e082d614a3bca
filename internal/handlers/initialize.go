package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mkumar-dev/expense-tracker/internal/logger"
	"github.com/mkumar-dev/expense-tracker/internal/services"
)

// Initializer defines the interface that the seed service must implement.
type Initializer interface {
	Initialize(ctx context.Context) (*services.SeedCredentials, error)
}

// InitializeResponse represents the seeding result
// swagger:model InitializeResponse
type InitializeResponse struct {
	// Result message
	// default: Initialized successfully
	Message string `json:"message"`

	// Default credentials, only present on first run
	Credentials *services.SeedCredentials `json:"credentials,omitempty"`
}

// InitializeErrorResponse represents an error response for initialization
// swagger:model InitializeErrorResponse
type InitializeErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewInitializeHandler returns an HTTP handler that seeds default data.
// @Summary Initialize default data
// @Description Creates a default admin, two branches and their managers. Idempotent.
// @Tags admin
// @Produce json
// @Success 200 {object} handlers.InitializeResponse "Seeding result"
// @Failure 500 {object} handlers.InitializeErrorResponse "Internal server error"
// @Router /initialize [post]
func NewInitializeHandler(svc Initializer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		creds, err := svc.Initialize(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(InitializeErrorResponse{
				Error: err.Error(),
			})
			return
		}

		resp := InitializeResponse{Message: "Initialized successfully", Credentials: creds}
		if creds == nil {
			resp.Message = "Already initialized"
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
