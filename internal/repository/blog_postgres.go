package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"barbershop/internal/domain"
)

type BlogRepo struct {
	db *pgxpool.Pool
}

func NewBlogRepository(db *pgxpool.Pool) *BlogRepo {
	return &BlogRepo{db: db}
}

const blogColumns = `id, title, content, excerpt, slug, category, image_url, published, created_at, updated_at`

func scanBlogPost(row rowScanner) (*domain.BlogPost, error) {
	var p domain.BlogPost
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Content,
		&p.Excerpt,
		&p.Slug,
		&p.Category,
		&p.ImageURL,
		&p.Published,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *BlogRepo) Create(ctx context.Context, dto domain.CreateBlogPostDTO) (*domain.BlogPost, error) {
	query := `
		INSERT INTO blog_posts (title, content, excerpt, slug, category, image_url, published)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + blogColumns

	p, err := scanBlogPost(r.db.QueryRow(ctx, query,
		text(dto.Title),
		text(dto.Content),
		text(dto.Excerpt),
		dto.Slug,
		dto.Category,
		dto.ImageURL,
		dto.Published,
	))
	if err != nil {
		return nil, wrapError("error al crear la publicación", err)
	}
	return p, nil
}

func (r *BlogRepo) GetByID(ctx context.Context, id string) (*domain.BlogPost, error) {
	p, err := scanBlogPost(r.db.QueryRow(ctx, `SELECT `+blogColumns+` FROM blog_posts WHERE id = $1`, id))
	if err != nil {
		return nil, wrapError("error al obtener la publicación", err)
	}
	return p, nil
}

func (r *BlogRepo) GetBySlug(ctx context.Context, slug string, onlyPublished bool) (*domain.BlogPost, error) {
	query := `SELECT ` + blogColumns + ` FROM blog_posts WHERE slug = $1`
	if onlyPublished {
		query += ` AND published = TRUE`
	}

	p, err := scanBlogPost(r.db.QueryRow(ctx, query, slug))
	if err != nil {
		return nil, wrapError("error al obtener la publicación", err)
	}
	return p, nil
}

func (r *BlogRepo) Update(ctx context.Context, id string, dto domain.UpdateBlogPostDTO) (*domain.BlogPost, error) {
	var b setBuilder

	if dto.Title != nil {
		b.add("title", dto.Title)
	}
	if dto.Content != nil {
		b.add("content", dto.Content)
	}
	if dto.Excerpt != nil {
		b.add("excerpt", dto.Excerpt)
	}
	if dto.Slug != nil {
		b.add("slug", *dto.Slug)
	}
	if dto.Category != nil {
		b.add("category", *dto.Category)
	}
	if dto.ImageURL != nil {
		b.add("image_url", *dto.ImageURL)
	}
	if dto.Published != nil {
		b.add("published", *dto.Published)
	}

	if b.empty() {
		return r.GetByID(ctx, id)
	}

	query, args := b.query("blog_posts", "id", id, blogColumns)

	p, err := scanBlogPost(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, wrapError("error al actualizar la publicación", err)
	}
	return p, nil
}

func (r *BlogRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return wrapError("error al eliminar la publicación", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *BlogRepo) List(ctx context.Context, filter domain.BlogFilter) ([]domain.BlogPost, error) {
	var conditions []string
	var args []any

	if filter.OnlyPublished {
		conditions = append(conditions, "published = TRUE")
	}
	if filter.Category != nil {
		args = append(args, *filter.Category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}

	query := `SELECT ` + blogColumns + ` FROM blog_posts`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapError("error al listar el blog", err)
	}
	defer rows.Close()

	posts := make([]domain.BlogPost, 0)
	for rows.Next() {
		p, err := scanBlogPost(rows)
		if err != nil {
			return nil, wrapError("error al leer la publicación", err)
		}
		posts = append(posts, *p)
	}

	return posts, wrapError("error al listar el blog", rows.Err())
}
