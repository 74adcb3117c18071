package services

import (
	"context"
	"errors"

	"fleet-system/internal/dto"
	"fleet-system/internal/entities"
	"fleet-system/internal/repositories"
	apperrors "fleet-system/pkg/errors"
	"fleet-system/pkg/types"

	"go.uber.org/zap"
)

type CustomerServiceInterface interface {
	GetCustomers(ctx context.Context, filter types.Filter) ([]dto.CustomerDTO, uint64, error)
	FindCustomer(ctx context.Context, id uint64) (*dto.CustomerDTO, error)
	CreateCustomer(ctx context.Context, payload dto.CreateCustomerDTO) (*dto.CustomerDTO, error)
	UpdateCustomer(ctx context.Context, id uint64, payload dto.UpdateCustomerDTO) (*dto.CustomerDTO, error)
	DeleteCustomer(ctx context.Context, id uint64) error
}

type CustomerService struct {
	customerRepo repositories.CustomerRepositoryInterface
	logger       *zap.Logger
}

func NewCustomerService(customerRepo repositories.CustomerRepositoryInterface, logger *zap.Logger) CustomerServiceInterface {
	return &CustomerService{customerRepo: customerRepo, logger: logger}
}

func (s *CustomerService) GetCustomers(ctx context.Context, filter types.Filter) ([]dto.CustomerDTO, uint64, error) {
	customers, total, err := s.customerRepo.GetCustomers(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	out := make([]dto.CustomerDTO, 0, len(customers))
	for i := range customers {
		out = append(out, customerToDTO(&customers[i]))
	}
	return out, total, nil
}

func (s *CustomerService) FindCustomer(ctx context.Context, id uint64) (*dto.CustomerDTO, error) {
	customer, err := s.customerRepo.FindCustomer(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("customer not found")
		}
		return nil, err
	}
	out := customerToDTO(customer)
	return &out, nil
}

func (s *CustomerService) CreateCustomer(ctx context.Context, payload dto.CreateCustomerDTO) (*dto.CustomerDTO, error) {
	customer := entities.Customer{
		Name:  payload.Name,
		City:  payload.City,
		Notes: payload.Notes,
	}

	id, err := s.customerRepo.CreateCustomer(ctx, &customer)
	if err != nil {
		return nil, err
	}

	s.logger.Info("customer created", zap.Uint64("id", id), zap.String("name", customer.Name))
	return s.FindCustomer(ctx, id)
}

func (s *CustomerService) UpdateCustomer(ctx context.Context, id uint64, payload dto.UpdateCustomerDTO) (*dto.CustomerDTO, error) {
	customer := entities.Customer{
		Name:  payload.Name,
		City:  payload.City,
		Notes: payload.Notes,
	}

	if err := s.customerRepo.UpdateCustomer(ctx, id, &customer); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("customer not found")
		}
		return nil, err
	}

	return s.FindCustomer(ctx, id)
}

func (s *CustomerService) DeleteCustomer(ctx context.Context, id uint64) error {
	if err := s.customerRepo.DeleteCustomer(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("customer not found")
		}
		return err
	}
	s.logger.Info("customer deleted", zap.Uint64("id", id))
	return nil
}
