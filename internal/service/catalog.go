package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"barbershop/internal/domain"
	"barbershop/internal/repository"
)

// CatalogServiceImpl manages the barbershop services offered for booking.
type CatalogServiceImpl struct {
	repo   repository.ServiceRepository
	logger *zap.Logger
}

func NewCatalogService(repo repository.ServiceRepository, logger *zap.Logger) *CatalogServiceImpl {
	return &CatalogServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

func (s *CatalogServiceImpl) Create(ctx context.Context, dto domain.CreateServiceDTO) (*domain.Service, error) {
	svc, err := s.repo.Create(ctx, dto)
	if err != nil {
		s.logger.Error("error al crear el servicio", zap.Error(err))
		return nil, fmt.Errorf("error al crear el servicio: %w", err)
	}
	return svc, nil
}

func (s *CatalogServiceImpl) GetByID(ctx context.Context, id string) (*domain.Service, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CatalogServiceImpl) Update(ctx context.Context, id string, dto domain.UpdateServiceDTO) (*domain.Service, error) {
	svc, err := s.repo.Update(ctx, id, dto)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		s.logger.Error("error al actualizar el servicio", zap.String("id", id), zap.Error(err))
	}
	return svc, err
}

func (s *CatalogServiceImpl) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		s.logger.Error("error al eliminar el servicio", zap.String("id", id), zap.Error(err))
	}
	return err
}

func (s *CatalogServiceImpl) List(ctx context.Context, filter domain.ServiceFilter) ([]domain.Service, error) {
	services, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("error al listar los servicios", zap.Error(err))
		return nil, fmt.Errorf("error al listar los servicios: %w", err)
	}
	return services, nil
}
