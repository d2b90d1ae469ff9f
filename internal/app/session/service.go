package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/matrixersp/kanbanup-api/internal/app/user"
	"github.com/matrixersp/kanbanup-api/internal/providers/redis"
)

type Service interface {
	CreateForUser(userID string) (string, error)
	GetUserBySessionKey(ctx context.Context, sessionKey string) (*user.User, error)
}

type service struct {
	repo     Repository
	users    user.Repository
	redisP   *redis.RedisProvider
	cacheTTL time.Duration
}

func NewService(repo Repository, users user.Repository, redisP *redis.RedisProvider, cacheTTL time.Duration) Service {
	return &service{
		repo:     repo,
		users:    users,
		redisP:   redisP,
		cacheTTL: cacheTTL,
	}
}

func (s *service) CreateForUser(userID string) (string, error) {
	sessionKey, err := generateSessionKey()
	if err != nil {
		return "", fmt.Errorf("failed to generate session key: %w", err)
	}

	session := &Session{
		SessionKey: sessionKey,
		UserID:     userID,
	}
	if err := s.repo.CreateSession(session); err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return sessionKey, nil
}

func (s *service) GetUserBySessionKey(ctx context.Context, sessionKey string) (*user.User, error) {
	cacheKey := fmt.Sprintf("user:session:%s", sessionKey)

	if cached, err := s.redisP.Get(ctx, cacheKey).Result(); err == nil && cached != "" {
		var u user.User
		if json.Unmarshal([]byte(cached), &u) == nil {
			return &u, nil
		}
	}

	session, err := s.repo.GetSessionByKey(sessionKey)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	u, err := s.users.GetByID(session.UserID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}

	if data, err := json.Marshal(u); err == nil {
		s.redisP.SetEX(ctx, cacheKey, data, s.cacheTTL)
	}

	return u, nil
}

func generateSessionKey() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
