package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/quyennt2020/device-repair-management-system-sub005/internal/core"
	"github.com/quyennt2020/device-repair-management-system-sub005/internal/domain/model"
)

// CustomerServiceOptions groups dependencies for CustomerService.
type CustomerServiceOptions struct {
	Repo   core.CustomerRepository // Required: customer repository
	Logger *slog.Logger            // Optional: structured logger
}

// CustomerService encapsulates business logic for customers.
type CustomerService struct {
	repo   core.CustomerRepository
	logger *slog.Logger
}

// NewCustomerService constructs a new CustomerService.
func NewCustomerService(opts CustomerServiceOptions) (*CustomerService, error) {
	if opts.Repo == nil {
		return nil, errors.New("CustomerRepository is required")
	}

	var logger *slog.Logger
	if opts.Logger != nil {
		logger = opts.Logger.With("component", "customer_service")
	}

	return &CustomerService{repo: opts.Repo, logger: logger}, nil
}

// Create registers a new customer.
func (s *CustomerService) Create(ctx context.Context, req *model.CreateCustomerRequest) (*model.Customer, error) {
	customer, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.InfoContext(ctx, "customer created", "customer_id", customer.ID)
	}
	return customer, nil
}

// Get retrieves a customer by ID.
func (s *CustomerService) Get(ctx context.Context, id string) (*model.Customer, error) {
	return s.repo.GetByID(ctx, id)
}

// List retrieves customers with pagination.
func (s *CustomerService) List(ctx context.Context, limit, offset int) ([]*model.Customer, error) {
	return s.repo.List(ctx, limit, offset)
}
