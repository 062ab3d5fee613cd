package handlers

import (
	"therewecome/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger returns the request logger, which carries the request and
// browser session ids once the middleware chain has run.
func getLogger(c *gin.Context) *zap.Logger {
	return utils.ContextLogger(c)
}
