package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"barbershop/internal/domain"
	"barbershop/internal/repository"
)

type CompanyServiceImpl struct {
	repo   repository.CompanyRepository
	logger *zap.Logger
}

func NewCompanyService(repo repository.CompanyRepository, logger *zap.Logger) *CompanyServiceImpl {
	return &CompanyServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

func (s *CompanyServiceImpl) List(ctx context.Context) ([]domain.CompanyInfo, error) {
	sections, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("error al listar la información de la empresa", zap.Error(err))
		return nil, fmt.Errorf("error al listar la información de la empresa: %w", err)
	}
	return sections, nil
}

func (s *CompanyServiceImpl) GetBySection(ctx context.Context, section string) (*domain.CompanyInfo, error) {
	return s.repo.GetBySection(ctx, section)
}

func (s *CompanyServiceImpl) Upsert(ctx context.Context, dto domain.UpsertCompanyInfoDTO) (*domain.CompanyInfo, error) {
	info, err := s.repo.Upsert(ctx, dto)
	if err != nil {
		s.logger.Error("error al guardar la sección", zap.String("section", dto.Section), zap.Error(err))
		return nil, fmt.Errorf("error al guardar la sección %s: %w", dto.Section, err)
	}
	return info, nil
}

// UpsertMany saves every section in order and stops at the first failure.
func (s *CompanyServiceImpl) UpsertMany(ctx context.Context, dtos []domain.UpsertCompanyInfoDTO) ([]domain.CompanyInfo, error) {
	saved := make([]domain.CompanyInfo, 0, len(dtos))
	for _, dto := range dtos {
		info, err := s.Upsert(ctx, dto)
		if err != nil {
			return saved, err
		}
		saved = append(saved, *info)
	}
	return saved, nil
}

func (s *CompanyServiceImpl) Delete(ctx context.Context, section string) error {
	err := s.repo.DeleteBySection(ctx, section)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		s.logger.Error("error al eliminar la sección", zap.String("section", section), zap.Error(err))
	}
	return err
}
