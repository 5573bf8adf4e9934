package customers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/esatto/customer-records-api/internal/handlers"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
)

type Handler struct {
	svc *Service
}

func NewHandler(db *mongo.Database, policy IdentityPolicy) *Handler {
	repo := NewRepository(db)
	return &Handler{svc: NewService(repo, policy)}
}

func (h *Handler) RegisterCustomerRoutes(r chi.Router) {
	r.Get("/", h.listCustomers)
	r.Post("/", h.createCustomer)
	r.Put("/{id}", h.updateCustomer)
	r.Delete("/{id}", h.deleteCustomer)
}

func (h *Handler) listCustomers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	customers, err := h.svc.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list customers")
		handlers.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if customers == nil {
		customers = []Customer{}
	}

	handlers.RespondWithJSON(w, http.StatusOK, customers)
}

func (h *Handler) createCustomer(w http.ResponseWriter, r *http.Request) {
	var req CreateCustomerRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondWithError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	ctx := r.Context()

	customer, err := h.svc.Create(ctx, req)
	if errors.Is(err, ErrDuplicateCustomer) {
		handlers.RespondWithError(w, http.StatusBadRequest, "Customer already exists")
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("Failed to create customer")
		handlers.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	handlers.RespondWithJSON(w, http.StatusOK, customer)
}

func (h *Handler) updateCustomer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondWithError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	ctx := r.Context()

	customer, err := h.svc.Update(ctx, id, req)
	if errors.Is(err, ErrCustomerNotFound) {
		handlers.RespondWithError(w, http.StatusNotFound, "Customer not found")
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("Failed to update customer")
		handlers.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	handlers.RespondWithJSON(w, http.StatusOK, customer)
}

func (h *Handler) deleteCustomer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx := r.Context()

	err := h.svc.Delete(ctx, id)
	if errors.Is(err, ErrCustomerNotFound) {
		handlers.RespondWithError(w, http.StatusNotFound, "Customer not found")
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("Failed to delete customer")
		handlers.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.WriteHeader(http.StatusOK)
}
