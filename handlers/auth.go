package handlers

import (
	"errors"
	"net/http"

	"therewecome/middleware"
	"therewecome/models"
	"therewecome/services/guard"
	"therewecome/services/session"
	"therewecome/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler serves the home resolution and the login, register and logout
// transitions.
type AuthHandler struct {
	Sessions *session.Manager
}

func NewAuthHandler(m *session.Manager) *AuthHandler {
	return &AuthHandler{Sessions: m}
}

// HomeHandler sends each role to its own view; other signed-in roles land on
// the home view.
func (h *AuthHandler) HomeHandler(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	d := guard.ResolveHome(sess)
	if !d.IsRender() {
		c.Redirect(http.StatusFound, d.View.String())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"view":          d.View,
		"authenticated": sess.IsAuthenticated(),
		"role":          sess.EffectiveRole(),
	})
}

func (h *AuthHandler) LoginPageHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"view": models.ViewLogin})
}

func (h *AuthHandler) RegisterPageHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"view": models.ViewRegister})
}

func (h *AuthHandler) LoginHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Debug("Invalid login request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Email and password are required.", err.Error())
		return
	}

	sess, err := h.Sessions.Login(c.Request.Context(), middleware.SessionIDFrom(c), req.Email, req.Password)
	if err != nil {
		utils.JSONError(c, loginStatus(err), session.Message(err, "An error occurred. Please try again."), err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Login successful",
		"role":     sess.Role,
		"redirect": guard.ResolveHome(sess).View,
	})
}

// loginStatus is 401 when the API answered without a token.
func loginStatus(err error) int {
	var sessErr *session.Error
	if errors.As(err, &sessErr) && sessErr.Err == nil {
		return http.StatusUnauthorized
	}
	return remoteStatus(err)
}

func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Debug("Invalid registration request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	resp, err := h.Sessions.Register(c.Request.Context(), req)
	if err != nil {
		utils.JSONError(c, remoteStatus(err), session.Message(err, "An error occurred during registration."), err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":  "Registration successful!",
		"user":     resp,
		"redirect": models.ViewLogin,
	})
}

func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	if err := h.Sessions.Logout(c.Request.Context(), middleware.SessionIDFrom(c)); err != nil {
		getLogger(c).Error("Logout failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Logout failed. Please try again.", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out", "redirect": models.ViewLogin})
}
