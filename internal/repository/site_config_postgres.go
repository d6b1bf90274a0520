package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"barbershop/internal/domain"
)

type SiteConfigRepo struct {
	db *pgxpool.Pool
}

func NewSiteConfigRepository(db *pgxpool.Pool) *SiteConfigRepo {
	return &SiteConfigRepo{db: db}
}

const siteConfigColumns = `id, key, value, description, created_at, updated_at`

func scanSiteConfig(row rowScanner) (*domain.SiteConfig, error) {
	var c domain.SiteConfig
	if err := row.Scan(&c.ID, &c.Key, &c.Value, &c.Description, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *SiteConfigRepo) List(ctx context.Context) ([]domain.SiteConfig, error) {
	rows, err := r.db.Query(ctx, `SELECT `+siteConfigColumns+` FROM site_config ORDER BY key`)
	if err != nil {
		return nil, wrapError("error al listar la configuración", err)
	}
	defer rows.Close()

	entries := make([]domain.SiteConfig, 0)
	for rows.Next() {
		c, err := scanSiteConfig(rows)
		if err != nil {
			return nil, wrapError("error al leer la configuración", err)
		}
		entries = append(entries, *c)
	}

	return entries, wrapError("error al listar la configuración", rows.Err())
}

func (r *SiteConfigRepo) Get(ctx context.Context, key string) (*domain.SiteConfig, error) {
	c, err := scanSiteConfig(r.db.QueryRow(ctx, `SELECT `+siteConfigColumns+` FROM site_config WHERE key = $1`, key))
	if err != nil {
		return nil, wrapError("error al obtener la configuración", err)
	}
	return c, nil
}

func (r *SiteConfigRepo) Upsert(ctx context.Context, dto domain.UpsertSiteConfigDTO) (*domain.SiteConfig, error) {
	query := `
		INSERT INTO site_config (key, value, description)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			description = COALESCE(EXCLUDED.description, site_config.description),
			updated_at = NOW()
		RETURNING ` + siteConfigColumns

	c, err := scanSiteConfig(r.db.QueryRow(ctx, query, dto.Key, dto.Value, dto.Description))
	if err != nil {
		return nil, wrapError("error al guardar la configuración", err)
	}
	return c, nil
}

func (r *SiteConfigRepo) Delete(ctx context.Context, key string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM site_config WHERE key = $1`, key)
	if err != nil {
		return wrapError("error al eliminar la configuración", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
