package models

import "strings"

// UserAccount is the account embedded in stylist and profile records.
type UserAccount struct {
	ID     string `json:"id"`
	Email  string `json:"email,omitempty"`
	Role   Role   `json:"role,omitempty"`
	Active bool   `json:"active,omitempty"`
}

// StylistCandidate is a stylist record matching a location and service search.
type StylistCandidate struct {
	ID          string      `json:"id"`
	User        UserAccount `json:"user"`
	FirstName   string      `json:"firstName"`
	LastName    string      `json:"lastName"`
	PhoneNumber string      `json:"phoneNumber"`
	Locations   []string    `json:"locations,omitempty"`
	Services    []string    `json:"services,omitempty"`
}

// BookingID is the identifier sent when booking this stylist: the account id
// when known, the profile id otherwise.
func (s StylistCandidate) BookingID() string {
	if s.User.ID != "" {
		return s.User.ID
	}
	return s.ID
}

func (s StylistCandidate) DisplayName() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}

// StylistRef is the copy of a selected candidate a draft holds.
type StylistRef struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// Ref copies the identifying fields of the candidate.
func (s StylistCandidate) Ref() StylistRef {
	return StylistRef{
		ID:          s.BookingID(),
		DisplayName: s.DisplayName(),
		PhoneNumber: s.PhoneNumber,
	}
}
