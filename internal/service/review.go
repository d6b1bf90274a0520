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

type ReviewServiceImpl struct {
	repo   repository.ReviewRepository
	logger *zap.Logger
}

func NewReviewService(repo repository.ReviewRepository, logger *zap.Logger) *ReviewServiceImpl {
	return &ReviewServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

// Submit stores a review sent from the public site. It stays hidden until
// an admin approves it.
func (s *ReviewServiceImpl) Submit(ctx context.Context, dto domain.CreateReviewDTO) (*domain.Review, error) {
	return s.Create(ctx, dto, false)
}

func (s *ReviewServiceImpl) Create(ctx context.Context, dto domain.CreateReviewDTO, approved bool) (*domain.Review, error) {
	if dto.Rating < 1 || dto.Rating > 5 {
		return nil, domain.NewValidationError("rating", "la calificación debe estar entre 1 y 5")
	}

	dto.CustomerName = validator.SanitizeString(dto.CustomerName)
	dto.Comment = validator.SanitizeString(dto.Comment)

	review, err := s.repo.Create(ctx, dto, approved)
	if err != nil {
		if errors.Is(err, domain.ErrServiceNotFound) {
			return nil, err
		}
		s.logger.Error("error al crear la reseña", zap.Error(err))
		return nil, fmt.Errorf("error al crear la reseña: %w", err)
	}
	return review, nil
}

func (s *ReviewServiceImpl) GetByID(ctx context.Context, id string) (*domain.Review, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ReviewServiceImpl) Update(ctx context.Context, id string, dto domain.UpdateReviewDTO) (*domain.Review, error) {
	review, err := s.repo.Update(ctx, id, dto)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		s.logger.Error("error al actualizar la reseña", zap.String("id", id), zap.Error(err))
	}
	return review, err
}

func (s *ReviewServiceImpl) Approve(ctx context.Context, id string) (*domain.Review, error) {
	return s.Update(ctx, id, domain.UpdateReviewDTO{Approved: PointerTo(true)})
}

func (s *ReviewServiceImpl) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		s.logger.Error("error al eliminar la reseña", zap.String("id", id), zap.Error(err))
	}
	return err
}

func (s *ReviewServiceImpl) List(ctx context.Context, filter domain.ReviewFilter) ([]domain.Review, error) {
	reviews, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("error al listar las reseñas", zap.Error(err))
		return nil, fmt.Errorf("error al listar las reseñas: %w", err)
	}
	return reviews, nil
}
