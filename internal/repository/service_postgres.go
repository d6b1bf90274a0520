package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"barbershop/internal/domain"
)

type ServiceRepo struct {
	db *pgxpool.Pool
}

func NewServiceRepository(db *pgxpool.Pool) *ServiceRepo {
	return &ServiceRepo{db: db}
}

const serviceColumns = `id, name, description, prices, duration_minutes, image_url, is_popular,
	active, sort_order, created_at, updated_at`

func scanService(row rowScanner) (*domain.Service, error) {
	var s domain.Service
	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.Description,
		&s.Prices,
		&s.DurationMinutes,
		&s.ImageURL,
		&s.IsPopular,
		&s.Active,
		&s.SortOrder,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ServiceRepo) Create(ctx context.Context, dto domain.CreateServiceDTO) (*domain.Service, error) {
	query := `
		INSERT INTO services (name, description, prices, duration_minutes, image_url, is_popular, active, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + serviceColumns

	s, err := scanService(r.db.QueryRow(ctx, query,
		text(dto.Name),
		text(dto.Description),
		dto.Prices,
		dto.DurationMinutes,
		dto.ImageURL,
		dto.IsPopular,
		boolOr(dto.Active, true),
		dto.SortOrder,
	))
	if err != nil {
		return nil, wrapError("error al crear el servicio", err)
	}
	return s, nil
}

func (r *ServiceRepo) GetByID(ctx context.Context, id string) (*domain.Service, error) {
	s, err := scanService(r.db.QueryRow(ctx, `SELECT `+serviceColumns+` FROM services WHERE id = $1`, id))
	if err != nil {
		return nil, wrapError("error al obtener el servicio", err)
	}
	return s, nil
}

func (r *ServiceRepo) Update(ctx context.Context, id string, dto domain.UpdateServiceDTO) (*domain.Service, error) {
	var b setBuilder

	if dto.Name != nil {
		b.add("name", dto.Name)
	}
	if dto.Description != nil {
		b.add("description", dto.Description)
	}
	if dto.Prices != nil {
		b.add("prices", dto.Prices)
	}
	if dto.DurationMinutes != nil {
		b.add("duration_minutes", *dto.DurationMinutes)
	}
	if dto.ImageURL != nil {
		b.add("image_url", *dto.ImageURL)
	}
	if dto.IsPopular != nil {
		b.add("is_popular", *dto.IsPopular)
	}
	if dto.Active != nil {
		b.add("active", *dto.Active)
	}
	if dto.SortOrder != nil {
		b.add("sort_order", *dto.SortOrder)
	}

	if b.empty() {
		return r.GetByID(ctx, id)
	}

	query, args := b.query("services", "id", id, serviceColumns)

	s, err := scanService(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, wrapError("error al actualizar el servicio", err)
	}
	return s, nil
}

func (r *ServiceRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return wrapError("error al eliminar el servicio", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ServiceRepo) List(ctx context.Context, filter domain.ServiceFilter) ([]domain.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services`
	if filter.OnlyActive {
		query += ` WHERE active = TRUE`
	}
	query += ` ORDER BY sort_order, created_at`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, wrapError("error al listar los servicios", err)
	}
	defer rows.Close()

	services := make([]domain.Service, 0)
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, wrapError("error al leer el servicio", err)
		}
		services = append(services, *s)
	}

	return services, wrapError("error al listar los servicios", rows.Err())
}
