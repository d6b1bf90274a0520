package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"barbershop/internal/domain"
)

type StaffRepo struct {
	db *pgxpool.Pool
}

func NewStaffRepository(db *pgxpool.Pool) *StaffRepo {
	return &StaffRepo{db: db}
}

const staffColumns = `id, name, position, description, specialties, image_url, years_experience,
	social_instagram, social_facebook, active, sort_order, created_at, updated_at`

func scanStaffMember(row rowScanner) (*domain.StaffMember, error) {
	var m domain.StaffMember
	err := row.Scan(
		&m.ID,
		&m.Name,
		&m.Position,
		&m.Description,
		&m.Specialties,
		&m.ImageURL,
		&m.YearsExperience,
		&m.SocialInstagram,
		&m.SocialFacebook,
		&m.Active,
		&m.SortOrder,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *StaffRepo) Create(ctx context.Context, dto domain.CreateStaffMemberDTO) (*domain.StaffMember, error) {
	query := `
		INSERT INTO staff_members (name, position, description, specialties, image_url, years_experience,
		                           social_instagram, social_facebook, active, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + staffColumns

	m, err := scanStaffMember(r.db.QueryRow(ctx, query,
		dto.Name,
		text(dto.Position),
		text(dto.Description),
		text(dto.Specialties),
		dto.ImageURL,
		dto.YearsExperience,
		dto.SocialInstagram,
		dto.SocialFacebook,
		boolOr(dto.Active, true),
		dto.SortOrder,
	))
	if err != nil {
		return nil, wrapError("error al crear el miembro del equipo", err)
	}
	return m, nil
}

func (r *StaffRepo) GetByID(ctx context.Context, id string) (*domain.StaffMember, error) {
	m, err := scanStaffMember(r.db.QueryRow(ctx, `SELECT `+staffColumns+` FROM staff_members WHERE id = $1`, id))
	if err != nil {
		return nil, wrapError("error al obtener el miembro del equipo", err)
	}
	return m, nil
}

func (r *StaffRepo) Update(ctx context.Context, id string, dto domain.UpdateStaffMemberDTO) (*domain.StaffMember, error) {
	var b setBuilder

	if dto.Name != nil {
		b.add("name", *dto.Name)
	}
	if dto.Position != nil {
		b.add("position", dto.Position)
	}
	if dto.Description != nil {
		b.add("description", dto.Description)
	}
	if dto.Specialties != nil {
		b.add("specialties", dto.Specialties)
	}
	if dto.ImageURL != nil {
		b.add("image_url", *dto.ImageURL)
	}
	if dto.YearsExperience != nil {
		b.add("years_experience", *dto.YearsExperience)
	}
	if dto.SocialInstagram != nil {
		b.add("social_instagram", *dto.SocialInstagram)
	}
	if dto.SocialFacebook != nil {
		b.add("social_facebook", *dto.SocialFacebook)
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

	query, args := b.query("staff_members", "id", id, staffColumns)

	m, err := scanStaffMember(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, wrapError("error al actualizar el miembro del equipo", err)
	}
	return m, nil
}

func (r *StaffRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM staff_members WHERE id = $1`, id)
	if err != nil {
		return wrapError("error al eliminar el miembro del equipo", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *StaffRepo) List(ctx context.Context, onlyActive bool) ([]domain.StaffMember, error) {
	query := `SELECT ` + staffColumns + ` FROM staff_members`
	if onlyActive {
		query += ` WHERE active = TRUE`
	}
	query += ` ORDER BY sort_order, name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, wrapError("error al listar el equipo", err)
	}
	defer rows.Close()

	members := make([]domain.StaffMember, 0)
	for rows.Next() {
		m, err := scanStaffMember(rows)
		if err != nil {
			return nil, wrapError("error al leer el miembro del equipo", err)
		}
		members = append(members, *m)
	}

	return members, wrapError("error al listar el equipo", rows.Err())
}
