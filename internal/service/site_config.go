package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"barbershop/internal/domain"
	"barbershop/internal/repository"
)

type SiteConfigServiceImpl struct {
	repo   repository.SiteConfigRepository
	logger *zap.Logger
}

func NewSiteConfigService(repo repository.SiteConfigRepository, logger *zap.Logger) *SiteConfigServiceImpl {
	return &SiteConfigServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

func (s *SiteConfigServiceImpl) List(ctx context.Context) ([]domain.SiteConfig, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("error al listar la configuración", zap.Error(err))
		return nil, fmt.Errorf("error al listar la configuración: %w", err)
	}
	return entries, nil
}

// Values returns the configuration as a key to value map for the public site.
func (s *SiteConfigServiceImpl) Values(ctx context.Context) (map[string]string, error) {
	entries, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	values := make(map[string]string, len(entries))
	for _, e := range entries {
		values[e.Key] = e.Value
	}
	return values, nil
}

// Set upserts every pair of values. Keys are processed in sorted order.
func (s *SiteConfigServiceImpl) Set(ctx context.Context, values map[string]string) ([]domain.SiteConfig, error) {
	keys := make([]string, 0, len(values))
	for k := range values {
		if strings.TrimSpace(k) == "" {
			return nil, domain.NewValidationError("key", "la clave no puede estar vacía")
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	saved := make([]domain.SiteConfig, 0, len(keys))
	for _, k := range keys {
		entry, err := s.Upsert(ctx, domain.UpsertSiteConfigDTO{Key: strings.TrimSpace(k), Value: values[k]})
		if err != nil {
			return saved, err
		}
		saved = append(saved, *entry)
	}
	return saved, nil
}

func (s *SiteConfigServiceImpl) Upsert(ctx context.Context, dto domain.UpsertSiteConfigDTO) (*domain.SiteConfig, error) {
	entry, err := s.repo.Upsert(ctx, dto)
	if err != nil {
		s.logger.Error("error al guardar la configuración", zap.String("key", dto.Key), zap.Error(err))
		return nil, fmt.Errorf("error al guardar la configuración %s: %w", dto.Key, err)
	}
	return entry, nil
}

func (s *SiteConfigServiceImpl) Delete(ctx context.Context, key string) error {
	err := s.repo.Delete(ctx, key)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		s.logger.Error("error al eliminar la configuración", zap.String("key", key), zap.Error(err))
	}
	return err
}
