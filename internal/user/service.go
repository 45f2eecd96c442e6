package user

import (
	"context"
	"fmt"
	"fxledger/internal/adapters"
	"fxledger/internal/domain"
)

// Service is the user directory. The ledger only relies on Exists.
type Service struct {
	repo adapters.UserRepository
}

func (s *Service) Exists(ctx context.Context, username string) (bool, error) {
	return s.repo.Exists(ctx, domain.NormalizeUsername(username))
}

// Register stores a new username. Surrounding whitespace is ignored.
func (s *Service) Register(ctx context.Context, username string) (string, error) {
	username = domain.NormalizeUsername(username)
	if username == "" {
		return "", domain.ErrInvalidUsername
	}
	if err := s.repo.Create(ctx, username); err != nil {
		return "", fmt.Errorf("failed to register user %q: %w", username, err)
	}
	return username, nil
}

func (s *Service) List(ctx context.Context) ([]string, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if users == nil {
		users = []string{}
	}
	return users, nil
}

func NewService(repo adapters.UserRepository) *Service {
	return &Service{repo: repo}
}
