package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"shareit/internal/db"
)

var ErrBookingNotFound = errors.New("booking not found")

const detailsQuery = `SELECT b.id, b.start_booking, b.end_booking, b.item_id, b.booker_id, b.status,
		i.name AS item_name, i.owner_id AS item_owner_id, u.name AS booker_name
	FROM bookings b
	JOIN items i ON i.id = b.item_id
	JOIN users u ON u.id = b.booker_id`

const orderAndPage = ` ORDER BY b.start_booking DESC LIMIT $%d OFFSET $%d`

type bookingRepository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, b *Booking) (*Booking, error) {
	query := `INSERT INTO bookings (start_booking, end_booking, item_id, booker_id, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err := r.db.QueryRowxContext(ctx, query, b.Start, b.End, b.ItemID, b.BookerID, b.Status).Scan(&b.ID)
	if err != nil {
		return nil, fmt.Errorf("insert booking: %w", err)
	}

	return b, nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id int64) (*Details, error) {
	var d Details
	query := detailsQuery + ` WHERE b.id = $1`

	err := r.db.GetContext(ctx, &d, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select booking %d: %w", id, err)
	}

	return &d, nil
}

func (r *bookingRepository) UpdateStatusIfWaiting(ctx context.Context, id int64, status Status) (bool, error) {
	query := `UPDATE bookings SET status = $1 WHERE id = $2 AND status = $3`

	result, err := r.db.ExecContext(ctx, query, status, id, StatusWaiting)
	if err != nil {
		return false, fmt.Errorf("update booking %d status: %w", id, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update booking %d status: rows affected: %w", id, err)
	}

	return rows > 0, nil
}

func (r *bookingRepository) listDetails(ctx context.Context, where string, args ...interface{}) ([]Details, error) {
	details := []Details{}
	query := detailsQuery + where

	if err := r.db.SelectContext(ctx, &details, query, args...); err != nil {
		return nil, fmt.Errorf("select bookings: %w", err)
	}

	return details, nil
}

func (r *bookingRepository) FindByBooker(ctx context.Context, bookerID int64, limit, offset int) ([]Details, error) {
	where := ` WHERE b.booker_id = $1` + fmt.Sprintf(orderAndPage, 2, 3)
	return r.listDetails(ctx, where, bookerID, limit, offset)
}

func (r *bookingRepository) FindByBookerAndStatus(ctx context.Context, bookerID int64, status Status, limit, offset int) ([]Details, error) {
	where := ` WHERE b.booker_id = $1 AND b.status = $2` + fmt.Sprintf(orderAndPage, 3, 4)
	return r.listDetails(ctx, where, bookerID, status, limit, offset)
}

func (r *bookingRepository) FindPastByBooker(ctx context.Context, bookerID int64, now time.Time, limit, offset int) ([]Details, error) {
	where := ` WHERE b.booker_id = $1 AND b.end_booking < $2` + fmt.Sprintf(orderAndPage, 3, 4)
	return r.listDetails(ctx, where, bookerID, now, limit, offset)
}

func (r *bookingRepository) FindFutureByBooker(ctx context.Context, bookerID int64, now time.Time, limit, offset int) ([]Details, error) {
	where := ` WHERE b.booker_id = $1 AND b.start_booking > $2` + fmt.Sprintf(orderAndPage, 3, 4)
	return r.listDetails(ctx, where, bookerID, now, limit, offset)
}

func (r *bookingRepository) FindCurrentByBooker(ctx context.Context, bookerID int64, now time.Time, limit, offset int) ([]Details, error) {
	where := ` WHERE b.booker_id = $1 AND b.start_booking < $2 AND b.end_booking > $2` + fmt.Sprintf(orderAndPage, 3, 4)
	return r.listDetails(ctx, where, bookerID, now, limit, offset)
}

func (r *bookingRepository) FindByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]Details, error) {
	where := ` WHERE i.owner_id = $1` + fmt.Sprintf(orderAndPage, 2, 3)
	return r.listDetails(ctx, where, ownerID, limit, offset)
}

func (r *bookingRepository) FindByOwnerAndStatus(ctx context.Context, ownerID int64, status Status, limit, offset int) ([]Details, error) {
	where := ` WHERE i.owner_id = $1 AND b.status = $2` + fmt.Sprintf(orderAndPage, 3, 4)
	return r.listDetails(ctx, where, ownerID, status, limit, offset)
}

func (r *bookingRepository) FindPastByOwner(ctx context.Context, ownerID int64, now time.Time, limit, offset int) ([]Details, error) {
	where := ` WHERE i.owner_id = $1 AND b.end_booking < $2` + fmt.Sprintf(orderAndPage, 3, 4)
	return r.listDetails(ctx, where, ownerID, now, limit, offset)
}

func (r *bookingRepository) FindFutureByOwner(ctx context.Context, ownerID int64, now time.Time, limit, offset int) ([]Details, error) {
	where := ` WHERE i.owner_id = $1 AND b.start_booking > $2` + fmt.Sprintf(orderAndPage, 3, 4)
	return r.listDetails(ctx, where, ownerID, now, limit, offset)
}

func (r *bookingRepository) FindCurrentByOwner(ctx context.Context, ownerID int64, now time.Time, limit, offset int) ([]Details, error) {
	where := ` WHERE i.owner_id = $1 AND b.start_booking < $2 AND b.end_booking > $2` + fmt.Sprintf(orderAndPage, 3, 4)
	return r.listDetails(ctx, where, ownerID, now, limit, offset)
}

func (r *bookingRepository) FindApprovedByItems(ctx context.Context, itemIDs []int64) ([]Booking, error) {
	if len(itemIDs) == 0 {
		return []Booking{}, nil
	}

	query, args, err := sqlx.In(`SELECT id, start_booking, end_booking, item_id, booker_id, status
		FROM bookings WHERE item_id IN (?) AND status = ?
		ORDER BY start_booking ASC`, itemIDs, StatusApproved)
	if err != nil {
		return nil, fmt.Errorf("build approved bookings query: %w", err)
	}

	bookings := []Booking{}
	if err := r.db.SelectContext(ctx, &bookings, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("select approved bookings: %w", err)
	}

	return bookings, nil
}

func (r *bookingRepository) HasFinishedApproved(ctx context.Context, itemID, bookerID int64, now time.Time) (bool, error) {
	query := `SELECT EXISTS(
		SELECT 1 FROM bookings
		WHERE item_id = $1 AND booker_id = $2 AND status = $3 AND end_booking < $4)`

	exists, err := db.Exists(ctx, r.db, query, itemID, bookerID, StatusApproved, now)
	if err != nil {
		return false, fmt.Errorf("check finished booking: %w", err)
	}

	return exists, nil
}
