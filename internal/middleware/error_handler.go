package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/multilingual/internal/domain/dto"
	"github.com/guttosm/multilingual/internal/i18n"
)

// ErrorHandler returns a middleware that logs errors attached to the gin
// context and, when the handler wrote nothing, answers with a translated
// 500 envelope.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()
		requestID := GetRequestID(c)

		log := Logger(c)
		log.Error().
			Str("request_id", requestID).
			Str("error", err.Error()).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Request error")

		if !c.Writer.Written() {
			message := i18n.GetTranslator().Translate(i18n.ErrKeyInternalError, i18n.GetLocale(c))
			c.JSON(http.StatusInternalServerError, dto.NewError(dto.ErrCodeInternal, message).WithRequestID(requestID))
		}
	}
}
