package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// respondError writes a JSON error body with the given status.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// logAndRespondError logs the underlying error and writes a JSON error
// body carrying only the client-safe message.
func logAndRespondError(c *gin.Context, status int, err error, message string) {
	log.Error().
		Err(err).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Msg(message)
	respondError(c, status, message)
}
