package health

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type Handler struct {
	client *mongo.Client
}

func NewHandler(client *mongo.Client) *Handler {
	return &Handler{client: client}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string           `json:"status"`
	Checks    map[string]Check `json:"checks"`
	Timestamp time.Time        `json:"timestamp"`
}

// Check represents a single health check
type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Health performs a connectivity check against the document store
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]Check)

	storeCheck := h.checkStore(ctx)
	checks["store"] = storeCheck

	status := "healthy"
	statusCode := http.StatusOK
	if storeCheck.Status != "healthy" {
		status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	}

	response := HealthResponse{
		Status:    status,
		Checks:    checks,
		Timestamp: time.Now(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(response)
}

func (h *Handler) checkStore(ctx context.Context) Check {
	if h.client == nil {
		return Check{
			Status:  "unhealthy",
			Message: "store connection is nil",
		}
	}

	if err := h.client.Ping(ctx, readpref.Primary()); err != nil {
		return Check{
			Status:  "unhealthy",
			Message: "store connection failed: " + err.Error(),
		}
	}

	return Check{
		Status:  "healthy",
		Message: "store is accessible",
	}
}
