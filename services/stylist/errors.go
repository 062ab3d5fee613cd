package stylist

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownBooking = errors.New("booking not found")
	ErrNotPending     = errors.New("only pending bookings can be approved or rejected")
)

// DashboardError pairs a failure with the message shown on the dashboard.
type DashboardError struct {
	Message string
	Err     error
}

func (e *DashboardError) Error() string {
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *DashboardError) Unwrap() error {
	return e.Err
}

func dashboardError(msg string, err error) error {
	return &DashboardError{Message: msg, Err: err}
}

// Message returns the text to show for err.
func Message(err error) string {
	var dErr *DashboardError
	if errors.As(err, &dErr) {
		return dErr.Message
	}
	return err.Error()
}
