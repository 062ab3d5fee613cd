package api

import (
	"context"
	"net/http"
	"net/url"

	"therewecome/models"
)

// ListStylists returns the stylists offering service at location.
func (c *Client) ListStylists(ctx context.Context, token, location, service string) ([]models.StylistCandidate, error) {
	q := url.Values{}
	q.Set("location", location)
	q.Set("service", service)

	var stylists []models.StylistCandidate
	if err := c.call(ctx, "list stylists", http.MethodGet, "/api/profile/stylists", q, token, nil, &stylists); err != nil {
		return nil, err
	}
	return stylists, nil
}

// CreateBooking submits a booking request.
func (c *Client) CreateBooking(ctx context.Context, token string, req models.BookingRequest) (*models.Booking, error) {
	var created models.Booking
	if err := c.call(ctx, "create booking", http.MethodPost, "/api/booking", nil, token, req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// ListClientBookings returns the bookings made with email.
func (c *Client) ListClientBookings(ctx context.Context, token, email string) ([]models.Booking, error) {
	q := url.Values{}
	q.Set("email", email)

	var bookings []models.Booking
	if err := c.call(ctx, "list client bookings", http.MethodGet, "/api/booking/client", q, token, nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// ListStylistBookings returns the bookings of the signed-in stylist.
func (c *Client) ListStylistBookings(ctx context.Context, token string) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := c.call(ctx, "list stylist bookings", http.MethodGet, "/api/booking/stylist", nil, token, nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *Client) ApproveBooking(ctx context.Context, token, bookingID string) (*models.Booking, error) {
	return c.decideBooking(ctx, "approve booking", token, bookingID, "approve")
}

func (c *Client) RejectBooking(ctx context.Context, token, bookingID string) (*models.Booking, error) {
	return c.decideBooking(ctx, "reject booking", token, bookingID, "reject")
}

func (c *Client) decideBooking(ctx context.Context, op, token, bookingID, action string) (*models.Booking, error) {
	var updated models.Booking
	path := "/api/booking/" + url.PathEscape(bookingID) + "/" + action
	if err := c.call(ctx, op, http.MethodPut, path, nil, token, struct{}{}, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
