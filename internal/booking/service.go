package booking

import (
	"context"
	"errors"
	"time"

	"shareit/internal/apperr"
	"shareit/internal/item"
	"shareit/internal/metrics"
	"shareit/internal/pagination"
	"shareit/internal/user"
)

type Service interface {
	Create(ctx context.Context, bookerID int64, req CreateBookingRequest) (*View, error)
	Decide(ctx context.Context, bookingID, actingUserID int64, approved bool) (*View, error)
	GetByID(ctx context.Context, bookingID, requesterID int64) (*View, error)
	ListForBooker(ctx context.Context, bookerID int64, state string, from, size int) ([]View, error)
	ListForOwner(ctx context.Context, ownerID int64, state string, from, size int) ([]View, error)
}

// Notifier is told about lifecycle events after they are committed.
// Implementations must not fail the calling operation.
type Notifier interface {
	BookingRequested(ctx context.Context, d *Details)
	BookingDecided(ctx context.Context, d *Details)
}

type noopNotifier struct{}

func (noopNotifier) BookingRequested(context.Context, *Details) {}
func (noopNotifier) BookingDecided(context.Context, *Details)   {}

type service struct {
	repo     Repository
	users    user.Repository
	items    item.Repository
	notifier Notifier
}

func NewService(repo Repository, users user.Repository, items item.Repository, notifier Notifier) Service {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	return &service{repo: repo, users: users, items: items, notifier: notifier}
}

func (s *service) Create(ctx context.Context, bookerID int64, req CreateBookingRequest) (*View, error) {
	booker, err := s.users.FindByID(ctx, bookerID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, apperr.NotFound("user with id %d not found", bookerID)
		}
		return nil, err
	}

	it, err := s.items.FindByID(ctx, req.ItemID)
	if err != nil {
		if errors.Is(err, item.ErrItemNotFound) {
			return nil, apperr.NotFound("item with id %d not found", req.ItemID)
		}
		return nil, err
	}

	if it.OwnerID <= 0 {
		return nil, apperr.Internal("item %d has no owner", it.ID)
	}
	if it.OwnerID == bookerID {
		return nil, apperr.Forbidden("owner cannot book their own item")
	}
	if req.Start.IsZero() || req.End.IsZero() {
		return nil, apperr.Validation("start and end are required")
	}
	if !req.End.Time.After(req.Start.Time) {
		return nil, apperr.Validation("booking end must be after start")
	}
	if !it.Available {
		return nil, apperr.Validation("item %d is not available for booking", it.ID)
	}

	created, err := s.repo.Create(ctx, &Booking{
		Start:    req.Start.Time,
		End:      req.End.Time,
		ItemID:   it.ID,
		BookerID: bookerID,
		Status:   StatusWaiting,
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordBookingCreated()

	d := &Details{
		Booking:     *created,
		ItemName:    it.Name,
		ItemOwnerID: it.OwnerID,
		BookerName:  booker.Name,
	}
	s.notifier.BookingRequested(ctx, d)

	return newView(d), nil
}

func (s *service) Decide(ctx context.Context, bookingID, actingUserID int64, approved bool) (*View, error) {
	d, err := s.findDetails(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if d.Status.Terminal() {
		return nil, apperr.Conflict("booking %d is already %s", bookingID, d.Status)
	}
	if d.ItemOwnerID != actingUserID {
		return nil, apperr.Forbidden("user %d is not the owner of item %d", actingUserID, d.ItemID)
	}

	status := StatusRejected
	if approved {
		status = StatusApproved
	}

	applied, err := s.repo.UpdateStatusIfWaiting(ctx, bookingID, status)
	if err != nil {
		return nil, err
	}
	if !applied {
		// Another decision won the race.
		return nil, apperr.Conflict("booking %d was already decided", bookingID)
	}

	d.Status = status
	metrics.RecordBookingDecision(string(status))
	s.notifier.BookingDecided(ctx, d)

	return newView(d), nil
}

func (s *service) GetByID(ctx context.Context, bookingID, requesterID int64) (*View, error) {
	d, err := s.findDetails(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if requesterID != d.BookerID && requesterID != d.ItemOwnerID {
		return nil, apperr.Forbidden("user %d may not view booking %d", requesterID, bookingID)
	}

	return newView(d), nil
}

func (s *service) ListForBooker(ctx context.Context, bookerID int64, state string, from, size int) ([]View, error) {
	filter, page, err := s.parseListArgs(ctx, bookerID, state, from, size)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var details []Details

	switch filter {
	case FilterAll:
		details, err = s.repo.FindByBooker(ctx, bookerID, page.Limit, page.Offset)
	case FilterCurrent:
		details, err = s.repo.FindCurrentByBooker(ctx, bookerID, now, page.Limit, page.Offset)
	case FilterPast:
		details, err = s.repo.FindPastByBooker(ctx, bookerID, now, page.Limit, page.Offset)
	case FilterFuture:
		details, err = s.repo.FindFutureByBooker(ctx, bookerID, now, page.Limit, page.Offset)
	case FilterWaiting:
		details, err = s.repo.FindByBookerAndStatus(ctx, bookerID, StatusWaiting, page.Limit, page.Offset)
	case FilterRejected:
		details, err = s.repo.FindByBookerAndStatus(ctx, bookerID, StatusRejected, page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}

	return newViews(details), nil
}

func (s *service) ListForOwner(ctx context.Context, ownerID int64, state string, from, size int) ([]View, error) {
	filter, page, err := s.parseListArgs(ctx, ownerID, state, from, size)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var details []Details

	switch filter {
	case FilterAll:
		details, err = s.repo.FindByOwner(ctx, ownerID, page.Limit, page.Offset)
	case FilterCurrent:
		details, err = s.repo.FindCurrentByOwner(ctx, ownerID, now, page.Limit, page.Offset)
	case FilterPast:
		details, err = s.repo.FindPastByOwner(ctx, ownerID, now, page.Limit, page.Offset)
	case FilterFuture:
		details, err = s.repo.FindFutureByOwner(ctx, ownerID, now, page.Limit, page.Offset)
	case FilterWaiting:
		details, err = s.repo.FindByOwnerAndStatus(ctx, ownerID, StatusWaiting, page.Limit, page.Offset)
	case FilterRejected:
		details, err = s.repo.FindByOwnerAndStatus(ctx, ownerID, StatusRejected, page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}

	return newViews(details), nil
}

func (s *service) parseListArgs(ctx context.Context, userID int64, state string, from, size int) (StateFilter, pagination.Page, error) {
	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return "", pagination.Page{}, err
	}
	if !exists {
		return "", pagination.Page{}, apperr.NotFound("user with id %d not found", userID)
	}

	filter, err := ParseStateFilter(state)
	if err != nil {
		return "", pagination.Page{}, err
	}

	page, err := pagination.Parse(from, size)
	if err != nil {
		return "", pagination.Page{}, err
	}

	return filter, page, nil
}

func (s *service) findDetails(ctx context.Context, bookingID int64) (*Details, error) {
	d, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			return nil, apperr.NotFound("booking with id %d not found", bookingID)
		}
		return nil, err
	}
	return d, nil
}
