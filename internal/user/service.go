package user

import (
	"context"
	"errors"

	"shareit/internal/apperr"
)

type Service interface {
	Create(ctx context.Context, req CreateUserRequest) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	GetAll(ctx context.Context) ([]User, error)
	Update(ctx context.Context, id int64, req UpdateUserRequest) (*User, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateUserRequest) (*User, error) {
	taken, err := s.repo.EmailTaken(ctx, req.Email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.Conflict("email %s is already registered", req.Email)
	}

	return s.repo.Create(ctx, req.Name, req.Email)
}

func (s *service) GetByID(ctx context.Context, id int64) (*User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, ErrUserNotFound) {
		return nil, apperr.NotFound("user with id %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) GetAll(ctx context.Context) ([]User, error) {
	return s.repo.FindAll(ctx)
}

func (s *service) Update(ctx context.Context, id int64, req UpdateUserRequest) (*User, error) {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	changed := false
	if req.Name != nil && *req.Name != "" {
		u.Name = *req.Name
		changed = true
	}
	if req.Email != nil && *req.Email != "" {
		taken, err := s.repo.EmailTaken(ctx, *req.Email, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperr.Conflict("email %s is already registered", *req.Email)
		}
		u.Email = *req.Email
		changed = true
	}

	if !changed {
		return u, nil
	}

	if err := s.repo.Update(ctx, u); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, apperr.NotFound("user with id %d not found", id)
		}
		return nil, err
	}

	return u, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, ErrUserNotFound) {
		return apperr.NotFound("user with id %d not found", id)
	}
	return err
}
