package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/maheshrc27/content-planner/internal/cache"
	"github.com/maheshrc27/content-planner/internal/models"
	"github.com/maheshrc27/content-planner/internal/repository"
)

type UserService interface {
	GetUserInfo(ctx context.Context, id int64) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	UpdateRole(ctx context.Context, actor *models.User, userID int64, role string) error
	RemoveUser(ctx context.Context, actor *models.User, userID int64) error
}

type userService struct {
	u     repository.UserRepository
	cache cache.CalendarStore
}

func NewUserService(u repository.UserRepository, calendar cache.CalendarStore) UserService {
	return &userService{
		u:     u,
		cache: calendar,
	}
}

func (s *userService) GetUserInfo(ctx context.Context, id int64) (*models.User, error) {
	user, isExist, err := s.u.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("Error getting user info")
	}

	if !isExist {
		slog.Info(ErrUserNotFound.Error(), "user_id", id)
		return nil, ErrUserNotFound
	}

	return user, nil
}

func (s *userService) List(ctx context.Context) ([]*models.User, error) {
	users, err := s.u.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("Error listing users")
	}
	if users == nil {
		users = []*models.User{}
	}
	return users, nil
}

func (s *userService) UpdateRole(ctx context.Context, actor *models.User, userID int64, role string) error {
	if !models.ValidRole(role) {
		return validationError("Invalid role %q", role)
	}
	if actor != nil && actor.ID == userID {
		return validationError("You cannot change your own role")
	}

	if _, err := s.GetUserInfo(ctx, userID); err != nil {
		return err
	}

	if err := s.u.UpdateRole(ctx, userID, role); err != nil {
		return err
	}

	s.cache.Invalidate(ctx, userID)
	slog.Info("user role changed", "user_id", userID, "role", role)
	return nil
}

func (s *userService) RemoveUser(ctx context.Context, actor *models.User, userID int64) error {
	if actor != nil && actor.ID == userID {
		return validationError("You cannot remove yourself")
	}

	if _, err := s.GetUserInfo(ctx, userID); err != nil {
		return err
	}

	if err := s.u.Remove(ctx, userID); err != nil {
		return err
	}

	s.cache.Invalidate(ctx, userID, cache.AllThemesKey)
	slog.Info("user removed", "user_id", userID)
	return nil
}
