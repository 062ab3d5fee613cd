package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Layouts accepted for booking times. The first is what a datetime-local input
// produces.
var bookingTimeLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
	time.RFC3339Nano,
}

// BookingTimeWireLayout is the layout sent to the booking API.
const BookingTimeWireLayout = "2006-01-02T15:04:05"

// BookingTime is a booking date-time that tolerates the formats the API and
// the booking form use.
type BookingTime struct {
	time.Time
}

// ParseBookingTime parses s using the accepted layouts, in the local zone when
// the layout carries no offset.
func ParseBookingTime(s string) (BookingTime, error) {
	s = strings.TrimSpace(s)
	for _, layout := range bookingTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return BookingTime{Time: t}, nil
		}
	}
	return BookingTime{}, fmt.Errorf("invalid booking time %q", s)
}

func (b BookingTime) MarshalJSON() ([]byte, error) {
	if b.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(b.Format(BookingTimeWireLayout))
}

func (b *BookingTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*b = BookingTime{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*b = BookingTime{}
		return nil
	}
	parsed, err := ParseBookingTime(s)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
