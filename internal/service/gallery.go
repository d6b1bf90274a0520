package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"barbershop/internal/domain"
	"barbershop/internal/repository"
)

type GalleryServiceImpl struct {
	repo   repository.GalleryRepository
	logger *zap.Logger
}

func NewGalleryService(repo repository.GalleryRepository, logger *zap.Logger) *GalleryServiceImpl {
	return &GalleryServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

func (s *GalleryServiceImpl) Create(ctx context.Context, dto domain.CreateGalleryImageDTO) (*domain.GalleryImage, error) {
	dto.Category = strings.TrimSpace(dto.Category)
	if dto.Category == "" {
		dto.Category = domain.DefaultGalleryCategory
	}

	img, err := s.repo.Create(ctx, dto)
	if err != nil {
		s.logger.Error("error al crear la imagen", zap.Error(err))
		return nil, fmt.Errorf("error al crear la imagen: %w", err)
	}
	return img, nil
}

func (s *GalleryServiceImpl) GetByID(ctx context.Context, id string) (*domain.GalleryImage, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *GalleryServiceImpl) Update(ctx context.Context, id string, dto domain.UpdateGalleryImageDTO) (*domain.GalleryImage, error) {
	img, err := s.repo.Update(ctx, id, dto)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		s.logger.Error("error al actualizar la imagen", zap.String("id", id), zap.Error(err))
	}
	return img, err
}

func (s *GalleryServiceImpl) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		s.logger.Error("error al eliminar la imagen", zap.String("id", id), zap.Error(err))
	}
	return err
}

func (s *GalleryServiceImpl) List(ctx context.Context, onlyActive bool) ([]domain.GalleryImage, error) {
	images, err := s.repo.List(ctx, onlyActive)
	if err != nil {
		s.logger.Error("error al listar la galería", zap.Error(err))
		return nil, fmt.Errorf("error al listar la galería: %w", err)
	}
	return images, nil
}
