package handlers

import (
	"context"
	"time"

	"therewecome/services/booking"
	"therewecome/services/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Sessions *session.Manager

	// View endpoints
	HomeHandler         gin.HandlerFunc
	LoginPageHandler    gin.HandlerFunc
	RegisterPageHandler gin.HandlerFunc

	// Session endpoints
	LoginHandler    gin.HandlerFunc
	RegisterHandler gin.HandlerFunc
	LogoutHandler   gin.HandlerFunc

	// Booking wizard endpoints
	WizardHandler              gin.HandlerFunc
	UpdateFieldsHandler        gin.HandlerFunc
	SearchHandler              gin.HandlerFunc
	SelectStylistHandler       gin.HandlerFunc
	SubmitHandler              gin.HandlerFunc
	NextHandler                gin.HandlerFunc
	BackHandler                gin.HandlerFunc
	ResetHandler               gin.HandlerFunc
	RetrieveBookingsHandler    gin.HandlerFunc
	CloseBookingsHandler       gin.HandlerFunc
	DismissNotificationHandler gin.HandlerFunc

	// Stylist dashboard endpoints
	StylistHandler *StylistHandler

	// Admin endpoints
	AdminHandler *AdminHandler
}

// Services are the collaborators the handlers are built from.
type Services struct {
	Sessions    *session.Manager
	Booking     booking.BookingAPI
	WizardStore booking.StateStore
	Stylist     *StylistHandler
	Admin       *AdminHandler
}

// NewHandlerBundle assembles the handlers and resets the booking wizard
// whenever the session changes hands.
func NewHandlerBundle(s Services, logger *zap.Logger) *HandlerBundle {
	authHandler := NewAuthHandler(s.Sessions)
	bookingHandler := NewBookingHandler(s.Booking, s.WizardStore)

	s.Sessions.Subscribe(resetWizardOnSessionChange(s.WizardStore, logger))

	return &HandlerBundle{
		Sessions: s.Sessions,

		HomeHandler:         authHandler.HomeHandler,
		LoginPageHandler:    authHandler.LoginPageHandler,
		RegisterPageHandler: authHandler.RegisterPageHandler,

		LoginHandler:    authHandler.LoginHandler,
		RegisterHandler: authHandler.RegisterHandler,
		LogoutHandler:   authHandler.LogoutHandler,

		WizardHandler:              bookingHandler.WizardHandler,
		UpdateFieldsHandler:        bookingHandler.UpdateFieldsHandler,
		SearchHandler:              bookingHandler.SearchHandler,
		SelectStylistHandler:       bookingHandler.SelectStylistHandler,
		SubmitHandler:              bookingHandler.SubmitHandler,
		NextHandler:                bookingHandler.NextHandler,
		BackHandler:                bookingHandler.BackHandler,
		ResetHandler:               bookingHandler.ResetHandler,
		RetrieveBookingsHandler:    bookingHandler.RetrieveBookingsHandler,
		CloseBookingsHandler:       bookingHandler.CloseBookingsHandler,
		DismissNotificationHandler: bookingHandler.DismissNotificationHandler,

		StylistHandler: s.Stylist,
		AdminHandler:   s.Admin,
	}
}

func resetWizardOnSessionChange(store booking.StateStore, logger *zap.Logger) func(session.Event) {
	return func(ev session.Event) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Delete(ctx, ev.SessionID); err != nil {
			logger.Warn("Failed to reset booking wizard",
				zap.String("event", string(ev.Kind)), zap.Error(err))
		}
	}
}
