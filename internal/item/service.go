package item

import (
	"context"
	"errors"
	"strings"
	"time"

	"shareit/internal/apperr"
	"shareit/internal/localtime"
	"shareit/internal/metrics"
	"shareit/internal/pagination"
	"shareit/internal/user"
)

type Service interface {
	Add(ctx context.Context, ownerID int64, req CreateItemRequest) (*Item, error)
	Update(ctx context.Context, userID, itemID int64, req UpdateItemRequest) (*Item, error)
	GetByID(ctx context.Context, itemID, viewerID int64) (*View, error)
	ListByOwner(ctx context.Context, ownerID int64, from, size int) ([]View, error)
	Search(ctx context.Context, text string, from, size int) ([]Item, error)
	Delete(ctx context.Context, userID, itemID int64) error
	AddComment(ctx context.Context, userID, itemID int64, req CreateCommentRequest) (*CommentView, error)
}

type service struct {
	repo      Repository
	users     user.Repository
	requests  RequestChecker
	projector BookingProjector
}

func NewService(repo Repository, users user.Repository, requests RequestChecker, projector BookingProjector) Service {
	return &service{repo: repo, users: users, requests: requests, projector: projector}
}

func (s *service) Add(ctx context.Context, ownerID int64, req CreateItemRequest) (*Item, error) {
	exists, err := s.users.Exists(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("user with id %d not found", ownerID)
	}

	if req.RequestID != nil {
		found, err := s.requests.Exists(ctx, *req.RequestID)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, apperr.NotFound("request with id %d not found", *req.RequestID)
		}
	}

	it := &Item{
		Name:        req.Name,
		Description: req.Description,
		Available:   *req.Available,
		OwnerID:     ownerID,
		RequestID:   req.RequestID,
	}

	created, err := s.repo.Create(ctx, it)
	if err != nil {
		return nil, err
	}

	metrics.RecordItemCreated()
	return created, nil
}

func (s *service) Update(ctx context.Context, userID, itemID int64, req UpdateItemRequest) (*Item, error) {
	it, err := s.findItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if it.OwnerID != userID {
		return nil, apperr.Forbidden("user %d is not the owner of item %d", userID, itemID)
	}

	changed := false
	if req.Name != nil && *req.Name != "" && *req.Name != it.Name {
		it.Name = *req.Name
		changed = true
	}
	if req.Description != nil && *req.Description != "" && *req.Description != it.Description {
		it.Description = *req.Description
		changed = true
	}
	if req.Available != nil && *req.Available != it.Available {
		it.Available = *req.Available
		changed = true
	}

	if !changed {
		return it, nil
	}

	if err := s.repo.Update(ctx, it); err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return nil, apperr.NotFound("item with id %d not found", itemID)
		}
		return nil, err
	}

	return it, nil
}

func (s *service) GetByID(ctx context.Context, itemID, viewerID int64) (*View, error) {
	it, err := s.findItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	comments, err := s.repo.FindCommentsByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	view := newView(it, comments)

	// Last/next booking summaries are owner-only.
	if it.OwnerID == viewerID {
		summaries, err := s.projector.SummariesForItems(ctx, []int64{itemID}, time.Now())
		if err != nil {
			return nil, err
		}
		if sum, ok := summaries[itemID]; ok {
			view.LastBooking = sum.Last
			view.NextBooking = sum.Next
		}
	}

	return view, nil
}

func (s *service) ListByOwner(ctx context.Context, ownerID int64, from, size int) ([]View, error) {
	exists, err := s.users.Exists(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("user with id %d not found", ownerID)
	}

	page, err := pagination.Parse(from, size)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.FindByOwner(ctx, ownerID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return []View{}, nil
	}

	ids := make([]int64, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}

	comments, err := s.repo.FindCommentsByItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	byItem := make(map[int64][]CommentView)
	for _, c := range comments {
		byItem[c.ItemID] = append(byItem[c.ItemID], c)
	}

	summaries, err := s.projector.SummariesForItems(ctx, ids, time.Now())
	if err != nil {
		return nil, err
	}

	views := make([]View, 0, len(items))
	for i := range items {
		view := newView(&items[i], byItem[items[i].ID])
		if sum, ok := summaries[items[i].ID]; ok {
			view.LastBooking = sum.Last
			view.NextBooking = sum.Next
		}
		views = append(views, *view)
	}

	return views, nil
}

func (s *service) Search(ctx context.Context, text string, from, size int) ([]Item, error) {
	page, err := pagination.Parse(from, size)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(text) == "" {
		return []Item{}, nil
	}

	return s.repo.Search(ctx, text, page.Limit, page.Offset)
}

func (s *service) Delete(ctx context.Context, userID, itemID int64) error {
	it, err := s.findItem(ctx, itemID)
	if err != nil {
		return err
	}

	if it.OwnerID != userID {
		return apperr.Forbidden("user %d is not the owner of item %d", userID, itemID)
	}

	if err := s.repo.Delete(ctx, itemID); err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return apperr.NotFound("item with id %d not found", itemID)
		}
		return err
	}

	return nil
}

func (s *service) AddComment(ctx context.Context, userID, itemID int64, req CreateCommentRequest) (*CommentView, error) {
	author, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, apperr.NotFound("user with id %d not found", userID)
		}
		return nil, err
	}

	if _, err := s.findItem(ctx, itemID); err != nil {
		return nil, err
	}

	now := time.Now()
	finished, err := s.projector.HasFinishedBooking(ctx, itemID, userID, now)
	if err != nil {
		return nil, err
	}
	if !finished {
		return nil, apperr.Validation("user %d has no finished booking of item %d", userID, itemID)
	}

	comment := &Comment{
		Text:     req.Text,
		ItemID:   itemID,
		AuthorID: userID,
		Created:  now,
	}

	created, err := s.repo.CreateComment(ctx, comment)
	if err != nil {
		return nil, err
	}

	metrics.RecordCommentCreated()

	return &CommentView{
		ID:         created.ID,
		Text:       created.Text,
		ItemID:     created.ItemID,
		AuthorName: author.Name,
		Created:    localtime.Of(created.Created),
	}, nil
}

func (s *service) findItem(ctx context.Context, itemID int64) (*Item, error) {
	it, err := s.repo.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return nil, apperr.NotFound("item with id %d not found", itemID)
		}
		return nil, err
	}
	return it, nil
}

func newView(it *Item, comments []CommentView) *View {
	if comments == nil {
		comments = []CommentView{}
	}
	return &View{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Available:   it.Available,
		RequestID:   it.RequestID,
		Comments:    comments,
	}
}
