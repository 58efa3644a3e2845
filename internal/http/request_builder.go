package http

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/multilingual/internal/domain/dto"
	"github.com/guttosm/multilingual/internal/i18n"
	"github.com/guttosm/multilingual/internal/middleware"
)

// Response DTO pools for reducing allocations.
var (
	successResponsePool = sync.Pool{
		New: func() interface{} {
			return &dto.SuccessResponse{}
		},
	}

	errorResponsePool = sync.Pool{
		New: func() interface{} {
			return &dto.ErrorResponse{}
		},
	}
)

// getSuccessResponse retrieves a SuccessResponse from the pool.
func getSuccessResponse() *dto.SuccessResponse {
	if resp, ok := successResponsePool.Get().(*dto.SuccessResponse); ok {
		return resp
	}
	return &dto.SuccessResponse{}
}

// putSuccessResponse returns a SuccessResponse to the pool.
func putSuccessResponse(resp *dto.SuccessResponse) {
	resp.Data = nil
	resp.RequestID = ""
	resp.Timestamp = time.Time{}
	successResponsePool.Put(resp)
}

// getErrorResponse retrieves an ErrorResponse from the pool.
func getErrorResponse() *dto.ErrorResponse {
	if resp, ok := errorResponsePool.Get().(*dto.ErrorResponse); ok {
		return resp
	}
	return &dto.ErrorResponse{}
}

// putErrorResponse returns an ErrorResponse to the pool.
func putErrorResponse(resp *dto.ErrorResponse) {
	resp.Error = ""
	resp.Message = ""
	resp.RequestID = ""
	resp.Timestamp = time.Time{}
	resp.Details = nil
	errorResponsePool.Put(resp)
}

// ResponseBuilder writes the JSON envelopes of the API.
// Uses sync.Pool for DTO reuse to reduce allocations.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a new response builder for the given context.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// Success sends a successful response with the given data.
func (b *ResponseBuilder) Success(statusCode int, data interface{}) {
	resp := getSuccessResponse()

	resp.Data = data
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now()

	// Gin serializes synchronously, so the DTO can go back to the pool.
	b.c.JSON(statusCode, resp)

	putSuccessResponse(resp)
}

// SuccessOK sends a 200 OK response with the given data.
func (b *ResponseBuilder) SuccessOK(data interface{}) {
	b.Success(http.StatusOK, data)
}

// Error sends an error response with the message for messageKey translated
// into the request locale. A non-nil err is attached to the context for the
// error handler middleware to log.
func (b *ResponseBuilder) Error(statusCode int, messageKey string, err error) {
	b.ErrorWithData(statusCode, messageKey, nil, err)
}

// ErrorWithData is Error with template data for the message placeholders.
// The data values are echoed as details.
func (b *ResponseBuilder) ErrorWithData(statusCode int, messageKey string, data map[string]any, err error) {
	locale := i18n.GetLocale(b.c)
	message := i18n.GetTranslator().TranslateData(messageKey, locale, data)

	resp := getErrorResponse()

	resp.Error = dto.ErrCodeFromStatus(statusCode)
	resp.Message = message
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now()
	if len(data) > 0 {
		resp.Details = make(map[string]string, len(data))
		for k, v := range data {
			if s, ok := v.(string); ok {
				resp.Details[strings.ToLower(k)] = s
			}
		}
	}

	if err != nil {
		_ = b.c.Error(err)
	}

	b.c.AbortWithStatusJSON(statusCode, resp)

	putErrorResponse(resp)
}
