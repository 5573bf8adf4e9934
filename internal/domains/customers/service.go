package customers

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// IdentityPolicy decides how a new customer's document key is chosen.
type IdentityPolicy string

const (
	// IdentityVatKey uses the caller-supplied VAT identifier as the key,
	// making a duplicate VAT id a create-time error.
	IdentityVatKey IdentityPolicy = "vat-key"
	// IdentityGenerated assigns a fresh uuid as the key; duplicate VAT ids
	// are not rejected under this policy.
	IdentityGenerated IdentityPolicy = "generated"
)

type Service struct {
	repo   Repository
	policy IdentityPolicy
}

func NewService(repo Repository, policy IdentityPolicy) *Service {
	return &Service{repo: repo, policy: policy}
}

type CreateCustomerRequest struct {
	Name    string `json:"name"`
	VatID   string `json:"vatId"`
	Address string `json:"address"`
}

type UpdateCustomerRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
}

func (s *Service) List(ctx context.Context) ([]Customer, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, req CreateCustomerRequest) (Customer, error) {
	now := time.Now()
	customer := Customer{
		Name:         req.Name,
		VatID:        req.VatID,
		Address:      req.Address,
		CreationDate: &now,
	}

	switch s.policy {
	case IdentityGenerated:
		customer.CustomerID = uuid.NewString()
	default:
		customer.CustomerID = req.VatID
	}

	if err := s.repo.Insert(ctx, customer); err != nil {
		return Customer{}, err
	}
	return customer, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateCustomerRequest) (Customer, error) {
	return s.repo.Update(ctx, id, UpdateFields{
		Name:    req.Name,
		Address: req.Address,
	})
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
