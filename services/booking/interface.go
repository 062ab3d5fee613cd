package booking

import (
	"context"

	"therewecome/models"
)

// BookingAPI is the part of the remote API the wizard calls. Every call
// carries the session token.
type BookingAPI interface {
	ListStylists(ctx context.Context, token, location, service string) ([]models.StylistCandidate, error)
	CreateBooking(ctx context.Context, token string, req models.BookingRequest) (*models.Booking, error)
	ListClientBookings(ctx context.Context, token, email string) ([]models.Booking, error)
}

// StateStore keeps wizard state between requests of one browser session.
type StateStore interface {
	Load(ctx context.Context, sessionID string) (State, error)
	Save(ctx context.Context, sessionID string, state State) error
	Delete(ctx context.Context, sessionID string) error
}
