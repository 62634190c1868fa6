package request

import (
	"context"
	"errors"
	"time"

	"shareit/internal/apperr"
	"shareit/internal/item"
	"shareit/internal/localtime"
	"shareit/internal/pagination"
	"shareit/internal/user"
)

type Service interface {
	Add(ctx context.Context, requestorID int64, req CreateRequest) (*View, error)
	ListOwn(ctx context.Context, requestorID int64) ([]View, error)
	ListOthers(ctx context.Context, userID int64, from, size int) ([]View, error)
	GetByID(ctx context.Context, requestID, userID int64) (*View, error)
}

type service struct {
	repo  Repository
	users user.Repository
	items item.Repository
}

func NewService(repo Repository, users user.Repository, items item.Repository) Service {
	return &service{repo: repo, users: users, items: items}
}

func (s *service) Add(ctx context.Context, requestorID int64, req CreateRequest) (*View, error) {
	if err := s.requireUser(ctx, requestorID); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &ItemRequest{
		Description: req.Description,
		RequestorID: requestorID,
		Created:     time.Now(),
	})
	if err != nil {
		return nil, err
	}

	return &View{
		ID:          created.ID,
		Description: created.Description,
		Created:     localtime.Of(created.Created),
		Items:       []item.Item{},
	}, nil
}

func (s *service) ListOwn(ctx context.Context, requestorID int64) ([]View, error) {
	if err := s.requireUser(ctx, requestorID); err != nil {
		return nil, err
	}

	requests, err := s.repo.FindByRequestor(ctx, requestorID)
	if err != nil {
		return nil, err
	}

	return s.buildViews(ctx, requests)
}

func (s *service) ListOthers(ctx context.Context, userID int64, from, size int) ([]View, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	page, err := pagination.Parse(from, size)
	if err != nil {
		return nil, err
	}

	requests, err := s.repo.FindOthers(ctx, userID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}

	return s.buildViews(ctx, requests)
}

func (s *service) GetByID(ctx context.Context, requestID, userID int64) (*View, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	req, err := s.repo.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, ErrRequestNotFound) {
			return nil, apperr.NotFound("request with id %d not found", requestID)
		}
		return nil, err
	}

	views, err := s.buildViews(ctx, []ItemRequest{*req})
	if err != nil {
		return nil, err
	}

	return &views[0], nil
}

func (s *service) requireUser(ctx context.Context, userID int64) error {
	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("user with id %d not found", userID)
	}
	return nil
}

func (s *service) buildViews(ctx context.Context, requests []ItemRequest) ([]View, error) {
	if len(requests) == 0 {
		return []View{}, nil
	}

	ids := make([]int64, 0, len(requests))
	for _, r := range requests {
		ids = append(ids, r.ID)
	}

	answers, err := s.items.FindByRequestIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byRequest := make(map[int64][]item.Item)
	for _, it := range answers {
		if it.RequestID != nil {
			byRequest[*it.RequestID] = append(byRequest[*it.RequestID], it)
		}
	}

	views := make([]View, 0, len(requests))
	for _, r := range requests {
		items := byRequest[r.ID]
		if items == nil {
			items = []item.Item{}
		}
		views = append(views, View{
			ID:          r.ID,
			Description: r.Description,
			Created:     localtime.Of(r.Created),
			Items:       items,
		})
	}

	return views, nil
}
