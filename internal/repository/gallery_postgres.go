package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"barbershop/internal/domain"
)

type GalleryRepo struct {
	db *pgxpool.Pool
}

func NewGalleryRepository(db *pgxpool.Pool) *GalleryRepo {
	return &GalleryRepo{db: db}
}

const galleryColumns = `id, title, description, image_url, category, active, sort_order, created_at, updated_at`

func scanGalleryImage(row rowScanner) (*domain.GalleryImage, error) {
	var g domain.GalleryImage
	err := row.Scan(
		&g.ID,
		&g.Title,
		&g.Description,
		&g.ImageURL,
		&g.Category,
		&g.Active,
		&g.SortOrder,
		&g.CreatedAt,
		&g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *GalleryRepo) Create(ctx context.Context, dto domain.CreateGalleryImageDTO) (*domain.GalleryImage, error) {
	category := dto.Category
	if category == "" {
		category = domain.DefaultGalleryCategory
	}

	query := `
		INSERT INTO gallery_images (title, description, image_url, category, active, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + galleryColumns

	g, err := scanGalleryImage(r.db.QueryRow(ctx, query,
		text(dto.Title),
		text(dto.Description),
		dto.ImageURL,
		category,
		boolOr(dto.Active, true),
		dto.SortOrder,
	))
	if err != nil {
		return nil, wrapError("error al crear la imagen", err)
	}
	return g, nil
}

func (r *GalleryRepo) GetByID(ctx context.Context, id string) (*domain.GalleryImage, error) {
	g, err := scanGalleryImage(r.db.QueryRow(ctx, `SELECT `+galleryColumns+` FROM gallery_images WHERE id = $1`, id))
	if err != nil {
		return nil, wrapError("error al obtener la imagen", err)
	}
	return g, nil
}

func (r *GalleryRepo) Update(ctx context.Context, id string, dto domain.UpdateGalleryImageDTO) (*domain.GalleryImage, error) {
	var b setBuilder

	if dto.Title != nil {
		b.add("title", dto.Title)
	}
	if dto.Description != nil {
		b.add("description", dto.Description)
	}
	if dto.ImageURL != nil {
		b.add("image_url", *dto.ImageURL)
	}
	if dto.Category != nil {
		b.add("category", *dto.Category)
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

	query, args := b.query("gallery_images", "id", id, galleryColumns)

	g, err := scanGalleryImage(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, wrapError("error al actualizar la imagen", err)
	}
	return g, nil
}

func (r *GalleryRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM gallery_images WHERE id = $1`, id)
	if err != nil {
		return wrapError("error al eliminar la imagen", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *GalleryRepo) List(ctx context.Context, onlyActive bool) ([]domain.GalleryImage, error) {
	query := `SELECT ` + galleryColumns + ` FROM gallery_images`
	if onlyActive {
		query += ` WHERE active = TRUE`
	}
	query += ` ORDER BY sort_order, created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, wrapError("error al listar la galería", err)
	}
	defer rows.Close()

	images := make([]domain.GalleryImage, 0)
	for rows.Next() {
		g, err := scanGalleryImage(rows)
		if err != nil {
			return nil, wrapError("error al leer la imagen", err)
		}
		images = append(images, *g)
	}

	return images, wrapError("error al listar la galería", rows.Err())
}
