package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"barbershop/internal/domain"
	"barbershop/internal/repository"
	"barbershop/pkg/validator"
)

type StaffServiceImpl struct {
	repo   repository.StaffRepository
	logger *zap.Logger
}

func NewStaffService(repo repository.StaffRepository, logger *zap.Logger) *StaffServiceImpl {
	return &StaffServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

func (s *StaffServiceImpl) Create(ctx context.Context, dto domain.CreateStaffMemberDTO) (*domain.StaffMember, error) {
	dto.Name = validator.FormatName(dto.Name)

	m, err := s.repo.Create(ctx, dto)
	if err != nil {
		s.logger.Error("error al crear el miembro del equipo", zap.Error(err))
		return nil, fmt.Errorf("error al crear el miembro del equipo: %w", err)
	}
	return m, nil
}

func (s *StaffServiceImpl) GetByID(ctx context.Context, id string) (*domain.StaffMember, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *StaffServiceImpl) Update(ctx context.Context, id string, dto domain.UpdateStaffMemberDTO) (*domain.StaffMember, error) {
	if dto.Name != nil {
		dto.Name = PointerTo(validator.FormatName(*dto.Name))
	}

	m, err := s.repo.Update(ctx, id, dto)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		s.logger.Error("error al actualizar el miembro del equipo", zap.String("id", id), zap.Error(err))
	}
	return m, err
}

func (s *StaffServiceImpl) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		s.logger.Error("error al eliminar el miembro del equipo", zap.String("id", id), zap.Error(err))
	}
	return err
}

func (s *StaffServiceImpl) List(ctx context.Context, onlyActive bool) ([]domain.StaffMember, error) {
	members, err := s.repo.List(ctx, onlyActive)
	if err != nil {
		s.logger.Error("error al listar el equipo", zap.Error(err))
		return nil, fmt.Errorf("error al listar el equipo: %w", err)
	}
	return members, nil
}
