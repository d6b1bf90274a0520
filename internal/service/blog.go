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

type BlogServiceImpl struct {
	repo        repository.BlogRepository
	defaultLang string
	logger      *zap.Logger
}

func NewBlogService(repo repository.BlogRepository, defaultLang string, logger *zap.Logger) *BlogServiceImpl {
	return &BlogServiceImpl{
		repo:        repo,
		defaultLang: defaultLang,
		logger:      logger,
	}
}

// Create derives the slug from the title when none is given.
func (s *BlogServiceImpl) Create(ctx context.Context, dto domain.CreateBlogPostDTO) (*domain.BlogPost, error) {
	if !dto.Category.Valid() {
		return nil, domain.NewValidationError("category", "categoría inválida")
	}

	if dto.Slug == "" {
		dto.Slug = validator.Slugify(dto.Title.Get(s.defaultLang, "es"))
	}
	if !validator.ValidateSlug(dto.Slug) {
		return nil, domain.NewValidationError("slug", "no se pudo generar un slug válido")
	}

	post, err := s.repo.Create(ctx, dto)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, err
		}
		s.logger.Error("error al crear la publicación", zap.Error(err))
		return nil, fmt.Errorf("error al crear la publicación: %w", err)
	}
	return post, nil
}

func (s *BlogServiceImpl) GetByID(ctx context.Context, id string) (*domain.BlogPost, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *BlogServiceImpl) GetBySlug(ctx context.Context, slug string, onlyPublished bool) (*domain.BlogPost, error) {
	return s.repo.GetBySlug(ctx, slug, onlyPublished)
}

func (s *BlogServiceImpl) Update(ctx context.Context, id string, dto domain.UpdateBlogPostDTO) (*domain.BlogPost, error) {
	if dto.Category != nil && !dto.Category.Valid() {
		return nil, domain.NewValidationError("category", "categoría inválida")
	}

	post, err := s.repo.Update(ctx, id, dto)
	if err != nil && !errors.Is(err, domain.ErrNotFound) && !errors.Is(err, domain.ErrAlreadyExists) {
		s.logger.Error("error al actualizar la publicación", zap.String("id", id), zap.Error(err))
	}
	return post, err
}

func (s *BlogServiceImpl) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		s.logger.Error("error al eliminar la publicación", zap.String("id", id), zap.Error(err))
	}
	return err
}

func (s *BlogServiceImpl) List(ctx context.Context, filter domain.BlogFilter) ([]domain.BlogPost, error) {
	if filter.Category != nil && !filter.Category.Valid() {
		return nil, domain.NewValidationError("category", "categoría inválida")
	}

	posts, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("error al listar el blog", zap.Error(err))
		return nil, fmt.Errorf("error al listar el blog: %w", err)
	}
	return posts, nil
}
