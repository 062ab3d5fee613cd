package models

import "strings"

type BookingStatus string

const (
	BookingStatusPending  BookingStatus = "PENDING"
	BookingStatusApproved BookingStatus = "APPROVED"
	BookingStatusRejected BookingStatus = "REJECTED"
)

// BookingDraft is the in-progress booking assembled across wizard steps.
type BookingDraft struct {
	Location          string      `json:"location"`
	Service           string      `json:"service"`
	Stylist           *StylistRef `json:"stylist,omitempty"`
	ClientName        string      `json:"clientName"`
	ClientEmail       string      `json:"clientEmail"`
	ClientPhoneNumber string      `json:"clientPhoneNumber"`
	BookingTime       BookingTime `json:"bookingTime"`
}

// HasLocationAndService reports whether the first step's fields are filled.
func (d BookingDraft) HasLocationAndService() bool {
	return notBlank(d.Location) && notBlank(d.Service)
}

// HasClientDetails reports whether all client fields and the time are set.
func (d BookingDraft) HasClientDetails() bool {
	return notBlank(d.ClientName) &&
		notBlank(d.ClientEmail) &&
		notBlank(d.ClientPhoneNumber) &&
		!d.BookingTime.IsZero()
}

// Submittable reports whether the draft can be turned into a booking request.
func (d BookingDraft) Submittable() bool {
	return d.HasLocationAndService() &&
		d.Stylist != nil && notBlank(d.Stylist.ID) &&
		d.HasClientDetails()
}

// Request builds the create-booking payload. Status is always PENDING.
func (d BookingDraft) Request() BookingRequest {
	req := BookingRequest{
		ClientName:        d.ClientName,
		ClientEmail:       d.ClientEmail,
		ClientPhoneNumber: d.ClientPhoneNumber,
		BookingTime:       d.BookingTime,
		Service:           d.Service,
		Location:          d.Location,
		Status:            BookingStatusPending,
	}
	if d.Stylist != nil {
		req.Stylist = StylistID{ID: d.Stylist.ID}
	}
	return req
}

type StylistID struct {
	ID string `json:"id"`
}

// BookingRequest is the body of POST /api/booking.
type BookingRequest struct {
	ClientName        string        `json:"clientName"`
	ClientEmail       string        `json:"clientEmail"`
	ClientPhoneNumber string        `json:"clientPhoneNumber"`
	Stylist           StylistID     `json:"stylist"`
	BookingTime       BookingTime   `json:"bookingTime"`
	Service           string        `json:"service"`
	Location          string        `json:"location"`
	Status            BookingStatus `json:"status"`
}

// Booking is a persisted booking as returned by the API.
type Booking struct {
	ID                string            `json:"id" validate:"required"`
	ClientName        string            `json:"clientName"`
	ClientEmail       string            `json:"clientEmail"`
	ClientPhoneNumber string            `json:"clientPhoneNumber"`
	Stylist           *StylistCandidate `json:"stylist,omitempty" validate:"-"`
	BookingTime       BookingTime       `json:"bookingTime"`
	Service           string            `json:"service"`
	Location          string            `json:"location"`
	Status            BookingStatus     `json:"status" validate:"required"`
}

func (b Booking) IsPending() bool {
	return b.Status == BookingStatusPending
}

func notBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}
