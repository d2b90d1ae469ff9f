package user

import (
	"errors"
	"fmt"

	"github.com/matrixersp/kanbanup-api/internal/utils"

	"gorm.io/gorm"
)

// SessionOpener opens a session for a freshly registered user. Implemented
// by the session service; declared here to keep the dependency one-way.
type SessionOpener interface {
	CreateForUser(userID string) (string, error)
}

type Service interface {
	RegisterUser(name string) (*User, string, error)
	UserExists(id string) (bool, error)
}

type service struct {
	repo     Repository
	sessions SessionOpener
}

func NewService(repo Repository, sessions SessionOpener) Service {
	return &service{repo: repo, sessions: sessions}
}

func (s *service) RegisterUser(name string) (*User, string, error) {
	user := &User{
		ID:   utils.NewObjectID(),
		Name: name,
	}
	if err := s.repo.Create(user); err != nil {
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	sessionKey, err := s.sessions.CreateForUser(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open session: %w", err)
	}

	return user, sessionKey, nil
}

func (s *service) UserExists(id string) (bool, error) {
	_, err := s.repo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
