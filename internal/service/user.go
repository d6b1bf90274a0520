package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"barbershop/internal/domain"
	"barbershop/internal/repository"
	"barbershop/pkg/auth"
)

type UserServiceImpl struct {
	repo   repository.AdminUserRepository
	logger *zap.Logger
}

func NewUserService(repo repository.AdminUserRepository, logger *zap.Logger) *UserServiceImpl {
	return &UserServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

func (s *UserServiceImpl) Create(ctx context.Context, dto domain.CreateAdminUserDTO) (string, error) {
	username := strings.TrimSpace(dto.Username)

	existing, err := s.repo.GetByUsername(ctx, username)
	if err == nil && existing != nil {
		return "", fmt.Errorf("el usuario %q: %w", username, domain.ErrAlreadyExists)
	}
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return "", err
	}

	hash, err := auth.HashPassword(dto.Password)
	if err != nil {
		s.logger.Error("error al calcular el hash de la contraseña", zap.Error(err))
		return "", fmt.Errorf("error al crear el usuario: %w", err)
	}

	role := dto.Role
	if role == "" {
		role = domain.UserRoleAdmin
	}

	id, err := s.repo.Create(ctx, domain.AdminUser{
		Username:     username,
		Email:        strings.ToLower(strings.TrimSpace(dto.Email)),
		PasswordHash: hash,
		Role:         role,
		Active:       true,
	})
	if err != nil {
		s.logger.Error("error al crear el usuario", zap.Error(err))
		return "", err
	}

	s.logger.Info("administrador creado", zap.String("id", id), zap.String("username", username))
	return id, nil
}

func (s *UserServiceImpl) GetByID(ctx context.Context, id string) (*domain.AdminUser, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserServiceImpl) ChangePassword(ctx context.Context, id, password string) error {
	if len(password) < 8 {
		return domain.NewValidationError("password", "la contraseña debe tener al menos 8 caracteres")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("error al cambiar la contraseña: %w", err)
	}

	return s.repo.UpdatePassword(ctx, id, hash)
}
