// Package stylist backs the stylist dashboard: the stylist's bookings and
// profile.
package stylist

import (
	"context"

	"therewecome/models"

	"go.uber.org/zap"
)

const (
	MsgApproved        = "Booking approved successfully"
	MsgRejected        = "Booking rejected successfully"
	msgApproveFailed   = "Failed to approve booking"
	msgRejectFailed    = "Failed to reject booking"
	msgFetchFailed     = "Failed to fetch bookings"
	msgProfileFailed   = "Failed to fetch profile data"
	msgProfileNotSaved = "Failed to update profile"
)

type Dashboard struct {
	api      StylistAPI
	token    string
	logger   *zap.Logger
	bookings []models.Booking
}

func NewDashboard(api StylistAPI, sess models.Session, logger *zap.Logger) *Dashboard {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dashboard{api: api, token: sess.Token, logger: logger}
}

// Load fetches the bookings made with the signed-in stylist.
func (d *Dashboard) Load(ctx context.Context) error {
	bookings, err := d.api.ListStylistBookings(ctx, d.token)
	if err != nil {
		d.logger.Error("Error fetching bookings", zap.Error(err))
		return dashboardError(msgFetchFailed, err)
	}
	d.bookings = bookings
	return nil
}

func (d *Dashboard) Bookings() []models.Booking {
	return append([]models.Booking(nil), d.bookings...)
}

func (d *Dashboard) Approve(ctx context.Context, bookingID string) (*models.Booking, error) {
	return d.decide(ctx, bookingID, d.api.ApproveBooking, msgApproveFailed)
}

func (d *Dashboard) Reject(ctx context.Context, bookingID string) (*models.Booking, error) {
	return d.decide(ctx, bookingID, d.api.RejectBooking, msgRejectFailed)
}

type decision func(ctx context.Context, token, bookingID string) (*models.Booking, error)

// decide applies a decision to a loaded pending booking and swaps in the
// record the API returns.
func (d *Dashboard) decide(ctx context.Context, bookingID string, call decision, failMsg string) (*models.Booking, error) {
	idx := -1
	for i, b := range d.bookings {
		if b.ID == bookingID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrUnknownBooking
	}
	if !d.bookings[idx].IsPending() {
		return nil, ErrNotPending
	}

	updated, err := call(ctx, d.token, bookingID)
	if err != nil {
		d.logger.Error("Error deciding booking", zap.String("bookingID", bookingID), zap.Error(err))
		return nil, dashboardError(failMsg, err)
	}
	d.bookings[idx] = *updated
	d.logger.Info("Booking decided", zap.String("bookingID", bookingID), zap.String("status", string(updated.Status)))
	return updated, nil
}
