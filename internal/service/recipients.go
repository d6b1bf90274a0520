package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"barbershop/internal/domain"
	"barbershop/internal/repository"
)

// recipientResolver picks the owner e-mail: the site_email setting when
// present, otherwise the configured fallback.
type recipientResolver struct {
	repo     repository.SiteConfigRepository
	fallback string
	logger   *zap.Logger
}

func newRecipientResolver(repo repository.SiteConfigRepository, fallback string, logger *zap.Logger) *recipientResolver {
	return &recipientResolver{
		repo:     repo,
		fallback: strings.TrimSpace(fallback),
		logger:   logger,
	}
}

func (r *recipientResolver) Email(ctx context.Context) string {
	if r == nil {
		return ""
	}
	if r.repo != nil {
		entry, err := r.repo.Get(ctx, domain.ConfigSiteEmail)
		switch {
		case err == nil && strings.TrimSpace(entry.Value) != "":
			return strings.TrimSpace(entry.Value)
		case err != nil && !errors.Is(err, domain.ErrNotFound):
			r.logger.Warn("no se pudo leer el email del sitio", zap.Error(err))
		}
	}
	return r.fallback
}
