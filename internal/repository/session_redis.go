package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"barbershop/internal/domain"
)

const sessionKeyPrefix = "barbershop:session:"

// RedisSessionStore keeps sessions as JSON values that expire with the
// session itself. A per-user set indexes token hashes for DeleteByUserID.
type RedisSessionStore struct {
	client redis.UniversalClient
	now    func() time.Time
}

func NewRedisSessionStore(client redis.UniversalClient) *RedisSessionStore {
	return &RedisSessionStore{
		client: client,
		now:    time.Now,
	}
}

type redisSession struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	TokenHash string    `json:"token_hash"`
	UserAgent string    `json:"user_agent"`
	IP        string    `json:"ip"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

func sessionKey(tokenHash string) string {
	return sessionKeyPrefix + tokenHash
}

func userSessionsKey(userID string) string {
	return sessionKeyPrefix + "user:" + userID
}

func (s *RedisSessionStore) Create(ctx context.Context, session domain.Session) error {
	ttl := session.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return fmt.Errorf("error al crear la sesión: %w", domain.ErrSessionExpired)
	}
	if session.ID == "" {
		session.ID = uuid.NewString()
	}

	payload, err := json.Marshal(redisSession(session))
	if err != nil {
		return fmt.Errorf("error al serializar la sesión: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, sessionKey(session.TokenHash), payload, ttl)
	pipe.SAdd(ctx, userSessionsKey(session.UserID), session.TokenHash)
	pipe.Expire(ctx, userSessionsKey(session.UserID), ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("error al crear la sesión: %w", err)
	}

	return nil
}

func (s *RedisSessionStore) GetByTokenHash(ctx context.Context, tokenHash string) (*domain.Session, error) {
	payload, err := s.client.Get(ctx, sessionKey(tokenHash)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("error al obtener la sesión: %w", err)
	}

	var rs redisSession
	if err := json.Unmarshal(payload, &rs); err != nil {
		return nil, fmt.Errorf("error al leer la sesión: %w", err)
	}

	session := domain.Session(rs)
	return &session, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, tokenHash string) error {
	session, err := s.GetByTokenHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return err
	}

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, sessionKey(tokenHash))
	pipe.SRem(ctx, userSessionsKey(session.UserID), tokenHash)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("error al eliminar la sesión: %w", err)
	}

	return nil
}

func (s *RedisSessionStore) DeleteByUserID(ctx context.Context, userID string) error {
	hashes, err := s.client.SMembers(ctx, userSessionsKey(userID)).Result()
	if err != nil {
		return fmt.Errorf("error al obtener las sesiones del usuario: %w", err)
	}

	keys := make([]string, 0, len(hashes)+1)
	for _, h := range hashes {
		keys = append(keys, sessionKey(h))
	}
	keys = append(keys, userSessionsKey(userID))

	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("error al eliminar las sesiones del usuario: %w", err)
	}

	return nil
}

// DeleteExpired is a no-op: Redis evicts sessions through key TTLs.
func (s *RedisSessionStore) DeleteExpired(ctx context.Context) (int64, error) {
	return 0, nil
}
