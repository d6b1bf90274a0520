package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"barbershop/config"
	"barbershop/internal/domain"
	"barbershop/internal/repository"
	"barbershop/pkg/auth"
)

type AuthServiceImpl struct {
	sessions repository.SessionStore
	userRepo repository.AdminUserRepository
	cfg      config.SessionConfig
	logger   *zap.Logger
	now      func() time.Time
}

func NewAuthService(sessions repository.SessionStore, userRepo repository.AdminUserRepository, cfg config.SessionConfig, logger *zap.Logger) *AuthServiceImpl {
	if cfg.TTL <= 0 {
		cfg.TTL = 24 * time.Hour
	}
	if cfg.TokenLength <= 0 {
		cfg.TokenLength = 32
	}
	return &AuthServiceImpl{
		sessions: sessions,
		userRepo: userRepo,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
	}
}

// Login checks the credentials and opens a session. Nothing is stored
// unless the credentials are valid.
func (s *AuthServiceImpl) Login(ctx context.Context, dto domain.LoginRequest, userAgent, ip string) (*domain.LoginResponse, error) {
	username := strings.TrimSpace(dto.Username)

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.Info("intento de acceso con usuario desconocido", zap.String("username", username), zap.String("ip", ip))
			return nil, domain.ErrInvalidCredentials
		}
		s.logger.Error("error al obtener el usuario", zap.Error(err))
		return nil, fmt.Errorf("error al iniciar sesión: %w", err)
	}

	ok, err := auth.VerifyPassword(dto.Password, user.PasswordHash)
	if err != nil {
		s.logger.Error("hash de contraseña ilegible", zap.String("user_id", user.ID), zap.Error(err))
		return nil, domain.ErrInvalidCredentials
	}
	if !ok {
		s.logger.Info("contraseña incorrecta", zap.String("username", username), zap.String("ip", ip))
		return nil, domain.ErrInvalidCredentials
	}

	if !user.Active {
		return nil, domain.ErrUserInactive
	}

	if auth.NeedsRehash(user.PasswordHash) {
		s.rehash(ctx, user.ID, dto.Password)
	}

	token, err := auth.GenerateRandomToken(s.cfg.TokenLength)
	if err != nil {
		s.logger.Error("error al generar el token", zap.Error(err))
		return nil, fmt.Errorf("error al iniciar sesión: %w", err)
	}

	now := s.now()
	session := domain.Session{
		UserID:    user.ID,
		TokenHash: auth.HashToken(token),
		UserAgent: userAgent,
		IP:        ip,
		ExpiresAt: now.Add(s.cfg.TTL),
		CreatedAt: now,
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		s.logger.Error("error al guardar la sesión", zap.Error(err))
		return nil, fmt.Errorf("error al iniciar sesión: %w", err)
	}

	s.logger.Info("sesión iniciada", zap.String("user_id", user.ID), zap.String("ip", ip))

	return &domain.LoginResponse{
		Token:     token,
		ExpiresAt: session.ExpiresAt,
		User:      user.Summary(),
	}, nil
}

// rehash upgrades a legacy bcrypt hash to argon2id. Failure keeps the old hash.
func (s *AuthServiceImpl) rehash(ctx context.Context, userID, password string) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		s.logger.Warn("no se pudo recalcular el hash de la contraseña", zap.Error(err))
		return
	}
	if err := s.userRepo.UpdatePassword(ctx, userID, hash); err != nil {
		s.logger.Warn("no se pudo actualizar el hash de la contraseña", zap.String("user_id", userID), zap.Error(err))
	}
}

func (s *AuthServiceImpl) Authenticate(ctx context.Context, token string) (*domain.AdminSession, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, domain.ErrUnauthorized
	}

	tokenHash := auth.HashToken(token)

	session, err := s.sessions.GetByTokenHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		s.logger.Error("error al obtener la sesión", zap.Error(err))
		return nil, fmt.Errorf("error al validar la sesión: %w", err)
	}

	if session.Expired(s.now()) {
		if err := s.sessions.Delete(ctx, tokenHash); err != nil {
			s.logger.Warn("no se pudo eliminar la sesión vencida", zap.Error(err))
		}
		return nil, domain.ErrSessionExpired
	}

	user, err := s.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		s.logger.Error("error al obtener el usuario de la sesión", zap.Error(err))
		return nil, fmt.Errorf("error al validar la sesión: %w", err)
	}

	if !user.Active {
		return nil, domain.ErrUserInactive
	}

	return &domain.AdminSession{
		Session: session,
		User:    user,
		Token:   token,
	}, nil
}

func (s *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Delete(ctx, auth.HashToken(token)); err != nil {
		s.logger.Error("error al cerrar la sesión", zap.Error(err))
		return fmt.Errorf("error al cerrar la sesión: %w", err)
	}
	return nil
}

func (s *AuthServiceImpl) CleanupExpired(ctx context.Context) (int64, error) {
	n, err := s.sessions.DeleteExpired(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.logger.Info("sesiones vencidas eliminadas", zap.Int64("count", n))
	}
	return n, nil
}
