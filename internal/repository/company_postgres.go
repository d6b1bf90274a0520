package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"barbershop/internal/domain"
)

type CompanyRepo struct {
	db *pgxpool.Pool
}

func NewCompanyRepository(db *pgxpool.Pool) *CompanyRepo {
	return &CompanyRepo{db: db}
}

const companyColumns = `id, section, title, content, content2, barber_title, image_url, barber_name,
	years_experience, total_clients, satisfaction, metadata, created_at, updated_at`

func scanCompanyInfo(row rowScanner) (*domain.CompanyInfo, error) {
	var c domain.CompanyInfo
	err := row.Scan(
		&c.ID,
		&c.Section,
		&c.Title,
		&c.Content,
		&c.Content2,
		&c.BarberTitle,
		&c.ImageURL,
		&c.BarberName,
		&c.YearsExperience,
		&c.TotalClients,
		&c.Satisfaction,
		&c.Metadata,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CompanyRepo) List(ctx context.Context) ([]domain.CompanyInfo, error) {
	rows, err := r.db.Query(ctx, `SELECT `+companyColumns+` FROM company_info ORDER BY section`)
	if err != nil {
		return nil, wrapError("error al listar la información de la empresa", err)
	}
	defer rows.Close()

	sections := make([]domain.CompanyInfo, 0)
	for rows.Next() {
		c, err := scanCompanyInfo(rows)
		if err != nil {
			return nil, wrapError("error al leer la sección", err)
		}
		sections = append(sections, *c)
	}

	return sections, wrapError("error al listar la información de la empresa", rows.Err())
}

func (r *CompanyRepo) GetBySection(ctx context.Context, section string) (*domain.CompanyInfo, error) {
	c, err := scanCompanyInfo(r.db.QueryRow(ctx, `SELECT `+companyColumns+` FROM company_info WHERE section = $1`, section))
	if err != nil {
		return nil, wrapError("error al obtener la sección", err)
	}
	return c, nil
}

func (r *CompanyRepo) Upsert(ctx context.Context, dto domain.UpsertCompanyInfoDTO) (*domain.CompanyInfo, error) {
	var metadata any
	if dto.Metadata != nil {
		metadata = dto.Metadata
	}

	query := `
		INSERT INTO company_info (section, title, content, content2, barber_title, image_url, barber_name,
		                          years_experience, total_clients, satisfaction, metadata)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (section) DO UPDATE SET
			title = EXCLUDED.title,
			content = EXCLUDED.content,
			content2 = EXCLUDED.content2,
			barber_title = EXCLUDED.barber_title,
			image_url = EXCLUDED.image_url,
			barber_name = EXCLUDED.barber_name,
			years_experience = EXCLUDED.years_experience,
			total_clients = EXCLUDED.total_clients,
			satisfaction = EXCLUDED.satisfaction,
			metadata = EXCLUDED.metadata,
			updated_at = NOW()
		RETURNING ` + companyColumns

	c, err := scanCompanyInfo(r.db.QueryRow(ctx, query,
		dto.Section,
		text(dto.Title),
		text(dto.Content),
		text(dto.Content2),
		text(dto.BarberTitle),
		dto.ImageURL,
		dto.BarberName,
		dto.YearsExperience,
		dto.TotalClients,
		dto.Satisfaction,
		metadata,
	))
	if err != nil {
		return nil, wrapError("error al guardar la sección", err)
	}
	return c, nil
}

func (r *CompanyRepo) DeleteBySection(ctx context.Context, section string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM company_info WHERE section = $1`, section)
	if err != nil {
		return wrapError("error al eliminar la sección", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
