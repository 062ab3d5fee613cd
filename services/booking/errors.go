package booking

import "errors"

var (
	// ErrActionDisabled is returned when an action is attempted while its
	// control would be disabled: required fields empty or a call in flight.
	ErrActionDisabled = errors.New("action is not available")

	// ErrInvalidTransition is returned for a step move the stepper does not offer.
	ErrInvalidTransition = errors.New("invalid step transition")

	ErrUnknownStylist = errors.New("stylist is not among the search results")
)
