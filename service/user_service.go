package service

import (
	"context"
	"time"

	"github.com/gestorhq/gestor-be/repository"
	"github.com/gestorhq/gestor-be/types"
)

type UserService interface {
	CreateUser(ctx context.Context, user *types.User) error
	GetUser(ctx context.Context, id string) (*types.User, error)
	GetUserByUsername(ctx context.Context, username string) (*types.User, error)
	ListUsersByTeam(ctx context.Context, teamID string) ([]*types.User, error)
}

type userService struct {
	repo repository.UserRepo
}

func NewUserService(repo repository.UserRepo) UserService {
	return &userService{
		repo: repo,
	}
}

func (s *userService) CreateUser(ctx context.Context, user *types.User) error {
	user.CreatedAt = time.Now().Unix()
	user.UpdatedAt = time.Now().Unix()
	return s.repo.CreateUser(ctx, user)
}

func (s *userService) GetUser(ctx context.Context, id string) (*types.User, error) {
	return s.repo.GetUser(ctx, id)
}

func (s *userService) GetUserByUsername(ctx context.Context, username string) (*types.User, error) {
	return s.repo.GetUserByUsername(ctx, username)
}

func (s *userService) ListUsersByTeam(ctx context.Context, teamID string) ([]*types.User, error) {
	return s.repo.ListUsersByTeam(ctx, teamID)
}
