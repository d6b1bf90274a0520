package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"barbershop/internal/domain"
)

type AdminUserRepo struct {
	db *pgxpool.Pool
}

func NewAdminUserRepository(db *pgxpool.Pool) *AdminUserRepo {
	return &AdminUserRepo{
		db: db,
	}
}

const adminUserColumns = `id, username, email, password_hash, role, active, created_at, updated_at`

func scanAdminUser(row rowScanner) (*domain.AdminUser, error) {
	var u domain.AdminUser
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.Active,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *AdminUserRepo) Create(ctx context.Context, user domain.AdminUser) (string, error) {
	query := `
		INSERT INTO admin_users (username, email, password_hash, role, active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	role := user.Role
	if role == "" {
		role = domain.UserRoleAdmin
	}

	var id string
	err := r.db.QueryRow(ctx, query,
		user.Username,
		user.Email,
		user.PasswordHash,
		role,
		user.Active,
	).Scan(&id)
	if err != nil {
		return "", wrapError("error al crear el administrador", err)
	}

	return id, nil
}

func (r *AdminUserRepo) GetByID(ctx context.Context, id string) (*domain.AdminUser, error) {
	u, err := scanAdminUser(r.db.QueryRow(ctx, `SELECT `+adminUserColumns+` FROM admin_users WHERE id = $1`, id))
	if err != nil {
		return nil, wrapError("error al obtener el administrador", err)
	}
	return u, nil
}

func (r *AdminUserRepo) GetByUsername(ctx context.Context, username string) (*domain.AdminUser, error) {
	query := `SELECT ` + adminUserColumns + ` FROM admin_users WHERE LOWER(username) = LOWER($1)`

	u, err := scanAdminUser(r.db.QueryRow(ctx, query, username))
	if err != nil {
		return nil, wrapError("error al obtener el administrador", err)
	}
	return u, nil
}

func (r *AdminUserRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE admin_users SET password_hash = $1, updated_at = NOW() WHERE id = $2`,
		passwordHash, id,
	)
	if err != nil {
		return wrapError("error al actualizar la contraseña", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
