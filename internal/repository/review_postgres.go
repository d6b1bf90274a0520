package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"barbershop/internal/domain"
)

type ReviewRepo struct {
	db *pgxpool.Pool
}

func NewReviewRepository(db *pgxpool.Pool) *ReviewRepo {
	return &ReviewRepo{
		db: db,
	}
}

const reviewColumns = `id, customer_name, rating, comment, service_id, approved, created_at, updated_at`

func scanReview(row rowScanner) (*domain.Review, error) {
	var rv domain.Review
	err := row.Scan(
		&rv.ID,
		&rv.CustomerName,
		&rv.Rating,
		&rv.Comment,
		&rv.ServiceID,
		&rv.Approved,
		&rv.CreatedAt,
		&rv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *ReviewRepo) Create(ctx context.Context, dto domain.CreateReviewDTO, approved bool) (*domain.Review, error) {
	query := `
		INSERT INTO reviews (customer_name, rating, comment, service_id, approved)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + reviewColumns

	rv, err := scanReview(r.db.QueryRow(ctx, query,
		dto.CustomerName,
		dto.Rating,
		dto.Comment,
		dto.ServiceID,
		approved,
	))
	if err != nil {
		return nil, wrapError("error al crear la reseña", err)
	}
	return rv, nil
}

func (r *ReviewRepo) GetByID(ctx context.Context, id string) (*domain.Review, error) {
	rv, err := scanReview(r.db.QueryRow(ctx, `SELECT `+reviewColumns+` FROM reviews WHERE id = $1`, id))
	if err != nil {
		return nil, wrapError("error al obtener la reseña", err)
	}
	return rv, nil
}

func (r *ReviewRepo) Update(ctx context.Context, id string, dto domain.UpdateReviewDTO) (*domain.Review, error) {
	var b setBuilder

	if dto.CustomerName != nil {
		b.add("customer_name", *dto.CustomerName)
	}
	if dto.Rating != nil {
		b.add("rating", *dto.Rating)
	}
	if dto.Comment != nil {
		b.add("comment", *dto.Comment)
	}
	if dto.ServiceID != nil {
		b.add("service_id", *dto.ServiceID)
	}
	if dto.Approved != nil {
		b.add("approved", *dto.Approved)
	}

	if b.empty() {
		return r.GetByID(ctx, id)
	}

	query, args := b.query("reviews", "id", id, reviewColumns)

	rv, err := scanReview(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, wrapError("error al actualizar la reseña", err)
	}
	return rv, nil
}

func (r *ReviewRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return wrapError("error al eliminar la reseña", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ReviewRepo) List(ctx context.Context, filter domain.ReviewFilter) ([]domain.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews`
	var args []any
	if filter.Approved != nil {
		query += ` WHERE approved = $1`
		args = append(args, *filter.Approved)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapError("error al listar las reseñas", err)
	}
	defer rows.Close()

	reviews := make([]domain.Review, 0)
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, wrapError("error al leer la reseña", err)
		}
		reviews = append(reviews, *rv)
	}

	return reviews, wrapError("error al listar las reseñas", rows.Err())
}
