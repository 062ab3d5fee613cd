package middleware

import (
	"context"
	"net/http"
	"time"

	"therewecome/config"
	"therewecome/models"
	"therewecome/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	ctxSessionID = "sessionID"
	ctxSession   = "session"
)

// SessionLoader reads the session stored for a browser session id.
type SessionLoader interface {
	Load(ctx context.Context, sessionID string) (models.Session, error)
}

// SessionMiddleware identifies the browser by its session cookie, issuing a
// new id when the cookie is missing, and puts the stored session in the
// context. Only token presence is checked.
func SessionMiddleware(loader SessionLoader, cookieName string, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(cookieName)
		if _, perr := uuid.Parse(sid); err != nil || perr != nil {
			sid = uuid.NewString()
		}
		// The cookie is refreshed on every request.
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(cookieName, sid, int(ttl.Seconds()), "/", "", config.IsProduction(), true)

		c.Set(utils.ContextLoggerKey, requestLogger(c).With(zap.String("sessionID", sid)))

		sess, err := loader.Load(c.Request.Context(), sid)
		if err != nil {
			requestLogger(c).Warn("Failed to load session, treating as signed out", zap.Error(err))
			sess = models.Session{}
		}

		c.Set(ctxSessionID, sid)
		c.Set(ctxSession, sess)
		c.Next()
	}
}

// SessionFrom returns the session loaded by SessionMiddleware.
func SessionFrom(c *gin.Context) models.Session {
	if v, ok := c.Get(ctxSession); ok {
		if sess, ok := v.(models.Session); ok {
			return sess
		}
	}
	return models.Session{}
}

func SessionIDFrom(c *gin.Context) string {
	return c.GetString(ctxSessionID)
}
