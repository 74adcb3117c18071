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

type PersonServiceInterface interface {
	GetPersons(ctx context.Context, filter types.Filter) ([]dto.PersonDTO, uint64, error)
	FindPerson(ctx context.Context, id uint64) (*dto.PersonDTO, error)
	CreatePerson(ctx context.Context, payload dto.CreatePersonDTO) (*dto.PersonDTO, error)
	UpdatePerson(ctx context.Context, id uint64, payload dto.UpdatePersonDTO) (*dto.PersonDTO, error)
	DeletePerson(ctx context.Context, id uint64) error
}

type PersonService struct {
	personRepo repositories.PersonRepositoryInterface
	logger     *zap.Logger
}

func NewPersonService(personRepo repositories.PersonRepositoryInterface, logger *zap.Logger) PersonServiceInterface {
	return &PersonService{personRepo: personRepo, logger: logger}
}

func (s *PersonService) GetPersons(ctx context.Context, filter types.Filter) ([]dto.PersonDTO, uint64, error) {
	persons, total, err := s.personRepo.GetPersons(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	out := make([]dto.PersonDTO, 0, len(persons))
	for i := range persons {
		out = append(out, personToDTO(&persons[i]))
	}
	return out, total, nil
}

func (s *PersonService) FindPerson(ctx context.Context, id uint64) (*dto.PersonDTO, error) {
	person, err := s.personRepo.FindPerson(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("person not found")
		}
		return nil, err
	}
	out := personToDTO(person)
	return &out, nil
}

func (s *PersonService) CreatePerson(ctx context.Context, payload dto.CreatePersonDTO) (*dto.PersonDTO, error) {
	status := "ACTIVE"
	if payload.Status != nil {
		status = *payload.Status
	}

	person := entities.Person{
		Name:   payload.Name,
		Phone:  payload.Phone,
		Email:  payload.Email,
		Role:   payload.Role,
		Status: status,
		Notes:  payload.Notes,
	}

	id, err := s.personRepo.CreatePerson(ctx, &person)
	if err != nil {
		return nil, err
	}

	s.logger.Info("person created", zap.Uint64("id", id), zap.String("name", person.Name))
	return s.FindPerson(ctx, id)
}

func (s *PersonService) UpdatePerson(ctx context.Context, id uint64, payload dto.UpdatePersonDTO) (*dto.PersonDTO, error) {
	person := entities.Person{
		Name:   payload.Name,
		Phone:  payload.Phone,
		Email:  payload.Email,
		Role:   payload.Role,
		Status: payload.Status,
		Notes:  payload.Notes,
	}

	if err := s.personRepo.UpdatePerson(ctx, id, &person); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("person not found")
		}
		return nil, err
	}

	return s.FindPerson(ctx, id)
}

func (s *PersonService) DeletePerson(ctx context.Context, id uint64) error {
	if err := s.personRepo.DeletePerson(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("person not found")
		}
		return err
	}
	s.logger.Info("person deleted", zap.Uint64("id", id))
	return nil
}
