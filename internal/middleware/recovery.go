package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/multilingual/internal/domain/dto"
	"github.com/guttosm/multilingual/internal/i18n"
)

// Recovery returns a middleware that recovers from panics and answers 500.
// onPanic renders the response; when nil a translated JSON error envelope is
// sent. The panic value is logged with the request ID.
func Recovery(onPanic gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log := Logger(c)
				log.Error().
					Str("request_id", GetRequestID(c)).
					Interface("panic", err).
					Str("path", c.Request.URL.Path).
					Msg("PANIC recovered")

				if onPanic != nil {
					c.Status(http.StatusInternalServerError)
					onPanic(c)
					c.Abort()
					return
				}

				message := i18n.GetTranslator().Translate(i18n.ErrKeyInternalError, i18n.GetLocale(c))
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					dto.NewError(dto.ErrCodeInternal, message).WithRequestID(GetRequestID(c)))
			}
		}()
		c.Next()
	}
}
