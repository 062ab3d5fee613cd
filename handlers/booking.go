package handlers

import (
	"context"
	"errors"
	"net/http"

	"therewecome/middleware"
	"therewecome/models"
	"therewecome/services/booking"
	"therewecome/services/notification"
	"therewecome/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler runs the booking wizard. Wizard state is loaded from the
// store for every request and saved back after the action.
type BookingHandler struct {
	API   booking.BookingAPI
	Store booking.StateStore
}

func NewBookingHandler(api booking.BookingAPI, store booking.StateStore) *BookingHandler {
	return &BookingHandler{API: api, Store: store}
}

type wizardView struct {
	View         models.View               `json:"view"`
	Step         booking.Step              `json:"step"`
	StepLabel    string                    `json:"stepLabel"`
	Steps        []string                  `json:"steps"`
	Draft        models.BookingDraft       `json:"draft"`
	Stylists     []models.StylistCandidate `json:"stylists"`
	Created      *models.Booking           `json:"created,omitempty"`
	Bookings     []models.Booking          `json:"bookings"`
	BookingsOpen bool                      `json:"bookingsOpen"`
	CanSearch    bool                      `json:"canSearch"`
	CanSubmit    bool                      `json:"canSubmit"`
	Notification *models.Notification      `json:"notification,omitempty"`
	Error        string                    `json:"error,omitempty"`
}

var errInvalidInput = errors.New("invalid input")

// run loads the wizard, applies action, saves the result and responds with
// the wizard view.
func (h *BookingHandler) run(c *gin.Context, action func(ctx context.Context, w *booking.Wizard) error) {
	logger := getLogger(c)
	ctx := c.Request.Context()
	sid := middleware.SessionIDFrom(c)

	st, err := h.Store.Load(ctx, sid)
	if err != nil {
		logger.Error("Failed to load booking wizard", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load booking", err.Error())
		return
	}

	snack := notification.Restore(st.Notification)
	w := booking.NewWizard(st, h.API, middleware.SessionFrom(c), notification.WithLogging(snack, logger), logger)

	var actErr error
	if action != nil {
		actErr = action(ctx, w)
	}

	next := w.State()
	next.Notification = snack.Current()
	if err := h.Store.Save(ctx, sid, next); err != nil {
		logger.Error("Failed to save booking wizard", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save booking", err.Error())
		return
	}

	view := wizardView{
		View:         models.ViewBook,
		Step:         next.Step,
		StepLabel:    next.Step.Label(),
		Steps:        booking.Labels(),
		Draft:        next.Draft,
		Stylists:     next.Stylists,
		Created:      next.Created,
		Bookings:     next.Bookings,
		BookingsOpen: next.BookingsOpen,
		CanSearch:    w.CanSearch(),
		CanSubmit:    w.CanSubmit(),
		Notification: next.Notification,
	}
	status := http.StatusOK
	if actErr != nil {
		status = wizardStatus(actErr)
		view.Error = actErr.Error()
	}
	c.JSON(status, view)
}

func wizardStatus(err error) int {
	switch {
	case errors.Is(err, errInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, booking.ErrUnknownStylist):
		return http.StatusNotFound
	case errors.Is(err, booking.ErrActionDisabled), errors.Is(err, booking.ErrInvalidTransition):
		return http.StatusConflict
	default:
		return remoteStatus(err)
	}
}

// WizardHandler renders the current wizard.
func (h *BookingHandler) WizardHandler(c *gin.Context) {
	h.run(c, nil)
}

type fieldsInput struct {
	Location          *string `json:"location"`
	Service           *string `json:"service"`
	ClientName        *string `json:"clientName"`
	ClientEmail       *string `json:"clientEmail"`
	ClientPhoneNumber *string `json:"clientPhoneNumber"`
	BookingTime       *string `json:"bookingTime"`
}

// UpdateFieldsHandler sets the draft fields present in the body.
func (h *BookingHandler) UpdateFieldsHandler(c *gin.Context) {
	var in fieldsInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	h.run(c, func(_ context.Context, w *booking.Wizard) error {
		setIf(in.Location, w.SetLocation)
		setIf(in.Service, w.SetService)
		setIf(in.ClientName, w.SetClientName)
		setIf(in.ClientEmail, w.SetClientEmail)
		setIf(in.ClientPhoneNumber, w.SetClientPhoneNumber)
		if in.BookingTime != nil {
			if err := w.ParseBookingTime(*in.BookingTime); err != nil {
				return errors.Join(errInvalidInput, err)
			}
		}
		return nil
	})
}

func setIf(v *string, set func(string)) {
	if v != nil {
		set(*v)
	}
}

func (h *BookingHandler) SearchHandler(c *gin.Context) {
	h.run(c, func(ctx context.Context, w *booking.Wizard) error {
		return w.SearchStylists(ctx)
	})
}

func (h *BookingHandler) SelectStylistHandler(c *gin.Context) {
	var in struct {
		StylistID string `json:"stylistId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "A stylist must be chosen", err.Error())
		return
	}
	h.run(c, func(_ context.Context, w *booking.Wizard) error {
		return w.SelectStylist(in.StylistID)
	})
}

func (h *BookingHandler) SubmitHandler(c *gin.Context) {
	h.run(c, func(ctx context.Context, w *booking.Wizard) error {
		return w.Submit(ctx)
	})
}

func (h *BookingHandler) NextHandler(c *gin.Context) {
	h.run(c, func(_ context.Context, w *booking.Wizard) error { return w.Advance() })
}

func (h *BookingHandler) BackHandler(c *gin.Context) {
	h.run(c, func(_ context.Context, w *booking.Wizard) error { return w.Retreat() })
}

func (h *BookingHandler) ResetHandler(c *gin.Context) {
	h.run(c, func(_ context.Context, w *booking.Wizard) error { return w.Reset() })
}

// RetrieveBookingsHandler opens the client's bookings. An email in the body
// replaces the draft's client email first.
func (h *BookingHandler) RetrieveBookingsHandler(c *gin.Context) {
	var in struct {
		Email string `json:"email"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&in); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}
	}
	h.run(c, func(ctx context.Context, w *booking.Wizard) error {
		if in.Email != "" {
			w.SetClientEmail(in.Email)
		}
		return w.RetrieveBookings(ctx)
	})
}

func (h *BookingHandler) CloseBookingsHandler(c *gin.Context) {
	h.run(c, func(_ context.Context, w *booking.Wizard) error {
		w.CloseBookings()
		return nil
	})
}

// DismissNotificationHandler closes the snackbar.
func (h *BookingHandler) DismissNotificationHandler(c *gin.Context) {
	ctx := c.Request.Context()
	sid := middleware.SessionIDFrom(c)
	st, err := h.Store.Load(ctx, sid)
	if err == nil {
		st.Notification = nil
		err = h.Store.Save(ctx, sid, st)
	}
	if err != nil {
		getLogger(c).Error("Failed to dismiss notification", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to dismiss notification", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}
