package handlers

import (
	"context"
	"errors"
	"net/http"

	"therewecome/middleware"
	"therewecome/models"
	"therewecome/services/stylist"
	"therewecome/utils"

	"github.com/gin-gonic/gin"
)

// StylistHandler serves the stylist dashboard.
type StylistHandler struct {
	API stylist.StylistAPI
}

func NewStylistHandler(api stylist.StylistAPI) *StylistHandler {
	return &StylistHandler{API: api}
}

func (h *StylistHandler) dashboard(c *gin.Context) *stylist.Dashboard {
	return stylist.NewDashboard(h.API, middleware.SessionFrom(c), getLogger(c))
}

func stylistError(c *gin.Context, err error) {
	status := remoteStatus(err)
	switch {
	case errors.Is(err, stylist.ErrUnknownBooking):
		status = http.StatusNotFound
	case errors.Is(err, stylist.ErrNotPending):
		status = http.StatusConflict
	}
	utils.JSONError(c, status, stylist.Message(err), err.Error())
}

// DashboardHandler renders the dashboard landing view with the bookings.
func (h *StylistHandler) DashboardHandler(c *gin.Context) {
	d := h.dashboard(c)
	if err := d.Load(c.Request.Context()); err != nil {
		stylistError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"view": models.ViewDashboard, "bookings": d.Bookings()})
}

func (h *StylistHandler) BookingsHandler(c *gin.Context) {
	d := h.dashboard(c)
	if err := d.Load(c.Request.Context()); err != nil {
		stylistError(c, err)
		return
	}
	c.JSON(http.StatusOK, d.Bookings())
}

func (h *StylistHandler) ApproveHandler(c *gin.Context) {
	h.decide(c, (*stylist.Dashboard).Approve, stylist.MsgApproved)
}

func (h *StylistHandler) RejectHandler(c *gin.Context) {
	h.decide(c, (*stylist.Dashboard).Reject, stylist.MsgRejected)
}

type decideFunc func(d *stylist.Dashboard, ctx context.Context, id string) (*models.Booking, error)

func (h *StylistHandler) decide(c *gin.Context, fn decideFunc, okMsg string) {
	ctx := c.Request.Context()
	d := h.dashboard(c)
	if err := d.Load(ctx); err != nil {
		stylistError(c, err)
		return
	}
	updated, err := fn(d, ctx, c.Param("id"))
	if err != nil {
		stylistError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": okMsg, "booking": updated, "bookings": d.Bookings()})
}

func (h *StylistHandler) ProfileHandler(c *gin.Context) {
	p, err := h.dashboard(c).Profile(c.Request.Context())
	if err != nil {
		stylistError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// UpdateProfileHandler saves the editable profile fields. Lists are
// de-duplicated the way the add controls do.
func (h *StylistHandler) UpdateProfileHandler(c *gin.Context) {
	var in models.ProfileUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	p, err := h.dashboard(c).EditProfile(c.Request.Context(), func(p *models.Profile) {
		p.FirstName, p.LastName, p.Age = in.FirstName, in.LastName, in.Age
		p.PhoneNumber, p.Country, p.StreetNumber = in.PhoneNumber, in.Country, in.StreetNumber
		p.Locations, p.Services = []string{}, []string{}
		for _, l := range in.Locations {
			stylist.AddLocation(p, l)
		}
		for _, s := range in.Services {
			stylist.AddService(p, s)
		}
	})
	if err != nil {
		stylistError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

type listEdit func(p *models.Profile, value string)

func (h *StylistHandler) editList(c *gin.Context, value string, edit listEdit) {
	p, err := h.dashboard(c).EditProfile(c.Request.Context(), func(p *models.Profile) { edit(p, value) })
	if err != nil {
		stylistError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func bindValue(c *gin.Context) (string, bool) {
	var in struct {
		Value string `json:"value" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "A value is required", err.Error())
		return "", false
	}
	return in.Value, true
}

func (h *StylistHandler) AddLocationHandler(c *gin.Context) {
	if v, ok := bindValue(c); ok {
		h.editList(c, v, func(p *models.Profile, v string) { stylist.AddLocation(p, v) })
	}
}

func (h *StylistHandler) RemoveLocationHandler(c *gin.Context) {
	h.editList(c, c.Param("value"), stylist.RemoveLocation)
}

func (h *StylistHandler) AddServiceHandler(c *gin.Context) {
	if v, ok := bindValue(c); ok {
		h.editList(c, v, func(p *models.Profile, v string) { stylist.AddService(p, v) })
	}
}

func (h *StylistHandler) RemoveServiceHandler(c *gin.Context) {
	h.editList(c, c.Param("value"), stylist.RemoveService)
}
