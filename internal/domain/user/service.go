package user

import (
	"context"
	"fmt"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// EnsureUser creates the user on first sight and refreshes email/name afterwards.
func (s *Service) EnsureUser(ctx context.Context, username, email, name string) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}

	user := User{
		Username: username,
		Email:    strings.TrimSpace(email),
		Name:     strings.TrimSpace(name),
	}
	if err := s.repo.UpsertUser(ctx, &user); err != nil {
		return nil, fmt.Errorf("upsert user: %w", err)
	}

	return s.repo.GetByUsername(ctx, username)
}

func (s *Service) GetByID(ctx context.Context, id uint) (*User, error) {
	return s.repo.GetByID(ctx, id)
}
