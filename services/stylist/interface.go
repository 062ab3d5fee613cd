package stylist

import (
	"context"

	"therewecome/models"
)

// StylistAPI is the part of the remote API the stylist dashboard calls.
type StylistAPI interface {
	ListStylistBookings(ctx context.Context, token string) ([]models.Booking, error)
	ApproveBooking(ctx context.Context, token, bookingID string) (*models.Booking, error)
	RejectBooking(ctx context.Context, token, bookingID string) (*models.Booking, error)
	GetProfile(ctx context.Context, token string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, token string, update models.ProfileUpdate) error
}
