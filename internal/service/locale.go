package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"barbershop/config"
	"barbershop/internal/domain"
	"barbershop/internal/repository"
)

type LocaleServiceImpl struct {
	repo   repository.LocaleRepository
	cfg    config.LocaleConfig
	logger *zap.Logger
}

func NewLocaleService(repo repository.LocaleRepository, cfg config.LocaleConfig, logger *zap.Logger) *LocaleServiceImpl {
	return &LocaleServiceImpl{
		repo:   repo,
		cfg:    cfg,
		logger: logger,
	}
}

func (s *LocaleServiceImpl) Currencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.repo.ListCurrencies(ctx, true)
	if err != nil {
		s.logger.Error("error al listar las monedas", zap.Error(err))
		return nil, fmt.Errorf("error al listar las monedas: %w", err)
	}
	return currencies, nil
}

func (s *LocaleServiceImpl) Languages(ctx context.Context) ([]domain.Language, error) {
	languages, err := s.repo.ListLanguages(ctx, true)
	if err != nil {
		s.logger.Error("error al listar los idiomas", zap.Error(err))
		return nil, fmt.Errorf("error al listar los idiomas: %w", err)
	}
	return languages, nil
}

// DefaultLanguage falls back to the configured language when the table has
// no active default.
func (s *LocaleServiceImpl) DefaultLanguage(ctx context.Context) (*domain.Language, error) {
	lang, err := s.repo.DefaultLanguage(ctx)
	if err == nil {
		return lang, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		s.logger.Error("error al obtener el idioma por defecto", zap.Error(err))
		return nil, fmt.Errorf("error al obtener el idioma por defecto: %w", err)
	}

	return &domain.Language{
		Code:      s.cfg.DefaultLanguage,
		Name:      s.cfg.DefaultLanguage,
		IsDefault: true,
		Active:    true,
	}, nil
}
