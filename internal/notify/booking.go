package notify

import (
	"context"
	"fmt"

	"shareit/internal/booking"
	"shareit/internal/localtime"
	"shareit/internal/logger"
	"shareit/internal/user"
)

// BookingNotifier queues emails for booking lifecycle events. It is
// best-effort: failures are logged and never surfaced to the caller.
type BookingNotifier struct {
	svc   *Service
	users user.Repository
}

func NewBookingNotifier(svc *Service, users user.Repository) *BookingNotifier {
	return &BookingNotifier{svc: svc, users: users}
}

func (n *BookingNotifier) BookingRequested(ctx context.Context, d *booking.Details) {
	owner, err := n.users.FindByID(ctx, d.ItemOwnerID)
	if err != nil {
		logger.WithError(err).Error("load owner for booking notification", "booking_id", d.ID)
		return
	}

	job := Job{
		Type:    "booking_requested",
		To:      owner.Email,
		Name:    owner.Name,
		Subject: fmt.Sprintf("New booking request for %s", d.ItemName),
		Body: fmt.Sprintf("%s wants to book your item %q from %s to %s.",
			d.BookerName, d.ItemName,
			d.Start.Format(localtime.Layout), d.End.Format(localtime.Layout)),
	}

	if err := n.svc.Enqueue(ctx, job); err != nil {
		logger.WithError(err).Error("queue booking notification", "booking_id", d.ID)
	}
}

func (n *BookingNotifier) BookingDecided(ctx context.Context, d *booking.Details) {
	booker, err := n.users.FindByID(ctx, d.BookerID)
	if err != nil {
		logger.WithError(err).Error("load booker for decision notification", "booking_id", d.ID)
		return
	}

	verdict := "rejected"
	if d.Status == booking.StatusApproved {
		verdict = "approved"
	}

	job := Job{
		Type:    "booking_decided",
		To:      booker.Email,
		Name:    booker.Name,
		Subject: fmt.Sprintf("Your booking of %s was %s", d.ItemName, verdict),
		Body: fmt.Sprintf("Your booking of %q from %s to %s was %s by the owner.",
			d.ItemName, d.Start.Format(localtime.Layout), d.End.Format(localtime.Layout), verdict),
	}

	if err := n.svc.Enqueue(ctx, job); err != nil {
		logger.WithError(err).Error("queue decision notification", "booking_id", d.ID)
	}
}
