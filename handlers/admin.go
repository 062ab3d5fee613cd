package handlers

import (
	"bytes"
	"errors"
	"net/http"

	"therewecome/middleware"
	"therewecome/models"
	"therewecome/services/admin"
	"therewecome/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler serves the admin console.
type AdminHandler struct {
	API admin.AdminAPI
}

func NewAdminHandler(api admin.AdminAPI) *AdminHandler {
	return &AdminHandler{API: api}
}

func (ah *AdminHandler) console(c *gin.Context) *admin.Console {
	return admin.NewConsole(ah.API, middleware.SessionFrom(c), getLogger(c))
}

// AdminDashboardHandler renders the console with users and metrics.
func (ah *AdminHandler) AdminDashboardHandler(c *gin.Context) {
	ctx := c.Request.Context()
	con := ah.console(c)
	users, err := con.Users(ctx)
	if err != nil {
		utils.JSONError(c, remoteStatus(err), admin.MsgFetchFailed, err.Error())
		return
	}
	metrics, err := con.Metrics(ctx)
	if err != nil {
		utils.JSONError(c, remoteStatus(err), admin.MsgFetchFailed, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"view": models.ViewAdmin, "users": users, "metrics": metrics})
}

func (ah *AdminHandler) GetAllUsersHandler(c *gin.Context) {
	users, err := ah.console(c).Users(c.Request.Context())
	if err != nil {
		utils.JSONError(c, remoteStatus(err), admin.MsgFetchFailed, err.Error())
		return
	}
	c.JSON(http.StatusOK, users)
}

func (ah *AdminHandler) GetMetricsHandler(c *gin.Context) {
	m, err := ah.console(c).Metrics(c.Request.Context())
	if err != nil {
		utils.JSONError(c, remoteStatus(err), admin.MsgFetchFailed, err.Error())
		return
	}
	c.JSON(http.StatusOK, m)
}

// ExportStatisticsHandler downloads the metrics as statistics.csv.
func (ah *AdminHandler) ExportStatisticsHandler(c *gin.Context) {
	var buf bytes.Buffer
	if err := ah.console(c).ExportStatistics(c.Request.Context(), &buf); err != nil {
		utils.JSONError(c, remoteStatus(err), admin.MsgExportFailed, err.Error())
		return
	}
	c.Header("Content-Disposition", `attachment; filename="statistics.csv"`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

func (ah *AdminHandler) InviteHandler(c *gin.Context) {
	var in struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	if err := ah.console(c).Invite(c.Request.Context(), in.Email); err != nil {
		status := remoteStatus(err)
		if errors.Is(err, admin.ErrInvalidEmail) {
			status = http.StatusBadRequest
		}
		getLogger(c).Debug("Invitation not sent", zap.Error(err))
		utils.JSONError(c, status, admin.InviteFailureMessage(err), err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": admin.MsgInviteSent})
}
