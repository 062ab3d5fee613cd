// Package booking implements the four-step booking wizard: pick a location
// and service, choose a stylist, enter client details, confirm.
package booking

import (
	"context"
	"fmt"
	"sync"
	"time"

	"therewecome/models"
	"therewecome/services/notification"

	"go.uber.org/zap"
)

type Step int

const (
	StepLocationService Step = iota
	StepStylistSelection
	StepClientDetails
	StepConfirmation
)

var stepLabels = [...]string{
	"Select Location and Service",
	"Choose a Stylist",
	"Book Appointment",
	"Confirmation",
}

// Labels returns the stepper labels in step order.
func Labels() []string {
	return append([]string(nil), stepLabels[:]...)
}

func (s Step) Label() string {
	if s < StepLocationService || s > StepConfirmation {
		return ""
	}
	return stepLabels[s]
}

const (
	msgSearchFailed    = "Failed to fetch stylists. Please try again."
	msgBooked          = "Booking successful!"
	msgBookFailed      = "Booking failed. Please try again."
	msgRetrievalFailed = "Failed to retrieve bookings. Please try again."
)

// State is everything the wizard remembers between requests.
type State struct {
	Step         Step                      `json:"step"`
	Draft        models.BookingDraft       `json:"draft"`
	Stylists     []models.StylistCandidate `json:"stylists"`
	Created      *models.Booking           `json:"created,omitempty"`
	Bookings     []models.Booking          `json:"bookings"`
	BookingsOpen bool                      `json:"bookingsOpen"`

	// Notification is the snackbar message still open, kept by the caller.
	Notification *models.Notification `json:"notification,omitempty"`
}

// Wizard drives one State for one browser session. Busy flags live only as
// long as the Wizard value.
type Wizard struct {
	mu       sync.Mutex
	state    State
	api      BookingAPI
	token    string
	notifier notification.Notifier
	logger   *zap.Logger

	searching  bool
	submitting bool
	retrieving bool
}

func NewWizard(state State, api BookingAPI, sess models.Session, notifier notification.Notifier, logger *zap.Logger) *Wizard {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Wizard{
		state:    state,
		api:      api,
		token:    sess.Token,
		notifier: notifier,
		logger:   logger,
	}
}

// State returns a copy of the current state.
func (w *Wizard) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	st := w.state
	st.Stylists = append([]models.StylistCandidate(nil), w.state.Stylists...)
	st.Bookings = append([]models.Booking(nil), w.state.Bookings...)
	if w.state.Draft.Stylist != nil {
		ref := *w.state.Draft.Stylist
		st.Draft.Stylist = &ref
	}
	return st
}

func (w *Wizard) Step() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state.Step
}

// Busy reports whether any remote call is in flight.
func (w *Wizard) Busy() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.searching || w.submitting || w.retrieving
}

func (w *Wizard) update(fn func(d *models.BookingDraft)) {
	w.mu.Lock()
	fn(&w.state.Draft)
	w.mu.Unlock()
}

func (w *Wizard) SetLocation(v string) { w.update(func(d *models.BookingDraft) { d.Location = v }) }

func (w *Wizard) SetService(v string) { w.update(func(d *models.BookingDraft) { d.Service = v }) }

func (w *Wizard) SetClientName(v string) { w.update(func(d *models.BookingDraft) { d.ClientName = v }) }

func (w *Wizard) SetClientEmail(v string) { w.update(func(d *models.BookingDraft) { d.ClientEmail = v }) }

func (w *Wizard) SetClientPhoneNumber(v string) {
	w.update(func(d *models.BookingDraft) { d.ClientPhoneNumber = v })
}

func (w *Wizard) SetBookingTime(t time.Time) {
	w.update(func(d *models.BookingDraft) { d.BookingTime = models.BookingTime{Time: t} })
}

// ParseBookingTime sets the booking time from a datetime-local value. An
// empty value clears it.
func (w *Wizard) ParseBookingTime(s string) error {
	if s == "" {
		w.SetBookingTime(time.Time{})
		return nil
	}
	bt, err := models.ParseBookingTime(s)
	if err != nil {
		return fmt.Errorf("invalid booking time: %w", err)
	}
	w.update(func(d *models.BookingDraft) { d.BookingTime = bt })
	return nil
}

func (w *Wizard) canSearch() bool {
	return w.state.Step == StepLocationService &&
		w.state.Draft.HasLocationAndService() &&
		!w.searching
}

func (w *Wizard) CanSearch() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.canSearch()
}

// SearchStylists looks up stylists for the draft's location and service and
// moves to stylist selection. On failure the step and the candidate list are
// left as they were.
func (w *Wizard) SearchStylists(ctx context.Context) error {
	w.mu.Lock()
	if !w.canSearch() {
		w.mu.Unlock()
		return ErrActionDisabled
	}
	w.searching = true
	location, service := w.state.Draft.Location, w.state.Draft.Service
	w.mu.Unlock()

	stylists, err := w.api.ListStylists(ctx, w.token, location, service)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.searching = false
	if err != nil {
		w.logger.Warn("Stylist lookup failed",
			zap.String("location", location), zap.String("service", service), zap.Error(err))
		w.notifier.Notify(models.SeverityError, msgSearchFailed)
		return fmt.Errorf("failed to fetch stylists: %w", err)
	}
	w.state.Stylists = stylists
	w.state.Step = StepStylistSelection
	return nil
}

// SelectStylist copies the chosen candidate into the draft and moves to the
// client details step.
func (w *Wizard) SelectStylist(id string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state.Step != StepStylistSelection {
		return ErrActionDisabled
	}
	for _, s := range w.state.Stylists {
		if s.BookingID() == id || s.ID == id {
			ref := s.Ref()
			w.state.Draft.Stylist = &ref
			w.state.Step = StepClientDetails
			return nil
		}
	}
	return ErrUnknownStylist
}

// canSubmit is false once the draft has been booked, so retreating from
// confirmation never books twice. Reset starts a new draft.
func (w *Wizard) canSubmit() bool {
	return w.state.Step == StepClientDetails &&
		w.state.Created == nil &&
		w.state.Draft.Submittable() &&
		!w.submitting
}

func (w *Wizard) CanSubmit() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.canSubmit()
}

// Submit creates the booking with status PENDING and moves to confirmation.
func (w *Wizard) Submit(ctx context.Context) error {
	w.mu.Lock()
	if !w.canSubmit() {
		w.mu.Unlock()
		return ErrActionDisabled
	}
	w.submitting = true
	req := w.state.Draft.Request()
	w.mu.Unlock()

	created, err := w.api.CreateBooking(ctx, w.token, req)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.submitting = false
	if err != nil {
		w.logger.Warn("Booking submission failed", zap.String("stylist", req.Stylist.ID), zap.Error(err))
		w.notifier.Notify(models.SeverityError, msgBookFailed)
		return fmt.Errorf("failed to create booking: %w", err)
	}
	w.state.Created = created
	w.state.Step = StepConfirmation
	w.notifier.Notify(models.SeveritySuccess, msgBooked)
	w.logger.Info("Booking created", zap.String("bookingID", created.ID), zap.String("stylist", req.Stylist.ID))
	return nil
}

// Advance moves one step forward without a remote call. The next step's entry
// precondition must already hold.
func (w *Wizard) Advance() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state.Step >= StepConfirmation {
		return ErrInvalidTransition
	}
	next := w.state.Step + 1
	if !w.canEnter(next) {
		return ErrActionDisabled
	}
	w.state.Step = next
	return nil
}

func (w *Wizard) canEnter(s Step) bool {
	switch s {
	case StepStylistSelection:
		return w.state.Draft.HasLocationAndService()
	case StepClientDetails:
		return w.state.Draft.Stylist != nil
	case StepConfirmation:
		return w.state.Created != nil
	}
	return true
}

func (w *Wizard) Retreat() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state.Step <= StepLocationService {
		return ErrInvalidTransition
	}
	w.state.Step--
	return nil
}

// Reset starts a new booking from the confirmation step. Retrieved bookings
// are kept.
func (w *Wizard) Reset() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state.Step != StepConfirmation {
		return ErrInvalidTransition
	}
	w.state = State{
		Bookings:     w.state.Bookings,
		BookingsOpen: w.state.BookingsOpen,
		Notification: w.state.Notification,
	}
	return nil
}

// RetrieveBookings fetches the bookings made under the draft's client email.
// It does not touch the step.
func (w *Wizard) RetrieveBookings(ctx context.Context) error {
	w.mu.Lock()
	email := w.state.Draft.ClientEmail
	if !notBlank(email) || w.retrieving {
		w.mu.Unlock()
		return ErrActionDisabled
	}
	w.retrieving = true
	w.mu.Unlock()

	bookings, err := w.api.ListClientBookings(ctx, w.token, email)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.retrieving = false
	if err != nil {
		w.logger.Warn("Booking retrieval failed", zap.String("email", email), zap.Error(err))
		w.notifier.Notify(models.SeverityError, msgRetrievalFailed)
		return fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	w.state.Bookings = bookings
	w.state.BookingsOpen = true
	return nil
}

func (w *Wizard) CloseBookings() {
	w.mu.Lock()
	w.state.BookingsOpen = false
	w.mu.Unlock()
}
