package middleware

import (
	"net/http"

	"therewecome/models"
	"therewecome/services/guard"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequireRole guards a protected view. The rule is evaluated on every request
// against the session SessionMiddleware loaded.
func RequireRole(rule guard.Rule, view models.View) gin.HandlerFunc {
	return func(c *gin.Context) {
		decide(c, guard.Evaluate(SessionFrom(c), rule, view))
	}
}

// PublicOnly sends signed-in sessions away from the login and register views.
func PublicOnly(view models.View) gin.HandlerFunc {
	return func(c *gin.Context) {
		decide(c, guard.PublicOnly(SessionFrom(c), view))
	}
}

func decide(c *gin.Context, d guard.Decision) {
	if d.IsRender() {
		c.Next()
		return
	}
	requestLogger(c).Debug("Guard redirect",
		zap.String("path", c.Request.URL.Path),
		zap.String("target", d.View.String()))
	c.Redirect(http.StatusFound, d.View.String())
	c.Abort()
}
