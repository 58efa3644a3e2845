//go:build !integration

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/multilingual/internal/domain/dto"
	"github.com/guttosm/multilingual/internal/i18n"
	"github.com/guttosm/multilingual/internal/middleware"
)

func newBuilderContext(acceptLanguage string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if acceptLanguage != "" {
		c.Request.Header.Set(i18n.AcceptLanguageHeader, acceptLanguage)
	}
	middleware.RequestID()(c)
	return c, w
}

func TestResponseBuilder_SuccessOK(t *testing.T) {
	c, w := newBuilderContext("")

	NewResponseBuilder(c).SuccessOK(map[string]string{"hello": "world"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, map[string]any{"hello": "world"}, resp["data"])
	assert.Equal(t, middleware.GetRequestID(c), resp["request_id"])
	assert.NotEmpty(t, resp["timestamp"])
}

func TestResponseBuilder_Error(t *testing.T) {
	tests := []struct {
		name            string
		acceptLanguage  string
		status          int
		key             string
		err             error
		expectedCode    string
		expectedMessage string
	}{
		{
			name:            "english bad request",
			status:          http.StatusBadRequest,
			key:             i18n.ErrKeyInvalidRequest,
			expectedCode:    dto.ErrCodeInvalidRequest,
			expectedMessage: "Invalid request",
		},
		{
			name:            "estonian not found",
			acceptLanguage:  "et-EE,et;q=0.9",
			status:          http.StatusNotFound,
			key:             i18n.ErrKeyNotFound,
			expectedCode:    dto.ErrCodeNotFound,
			expectedMessage: "Ei leitud",
		},
		{
			name:            "internal error records cause",
			acceptLanguage:  "ru",
			status:          http.StatusInternalServerError,
			key:             i18n.ErrKeyInternalError,
			err:             errors.New("boom"),
			expectedCode:    dto.ErrCodeInternal,
			expectedMessage: "Произошла непредвиденная ошибка",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newBuilderContext(tt.acceptLanguage)

			NewResponseBuilder(c).Error(tt.status, tt.key, tt.err)

			assert.Equal(t, tt.status, w.Code)
			assert.True(t, c.IsAborted())

			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedCode, resp.Error)
			assert.Equal(t, tt.expectedMessage, resp.Message)
			assert.Equal(t, middleware.GetRequestID(c), resp.RequestID)
			assert.Empty(t, resp.Details)

			if tt.err != nil {
				require.Len(t, c.Errors, 1)
				assert.Equal(t, tt.err, c.Errors[0].Err)
			} else {
				assert.Empty(t, c.Errors)
			}
		})
	}
}

func TestResponseBuilder_ErrorWithData(t *testing.T) {
	c, w := newBuilderContext("en")

	NewResponseBuilder(c).ErrorWithData(http.StatusNotFound, i18n.ErrKeyLocaleNotFound, map[string]any{"Locale": "fr"}, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrCodeNotFound, resp.Error)
	assert.Equal(t, `Locale "fr" is not supported`, resp.Message)
	assert.Equal(t, map[string]string{"locale": "fr"}, resp.Details)
}

func TestResponseBuilder_PoolsAreReset(t *testing.T) {
	c, _ := newBuilderContext("")
	NewResponseBuilder(c).ErrorWithData(http.StatusNotFound, i18n.ErrKeyLocaleNotFound, map[string]any{"Locale": "fr"}, nil)

	c2, w2 := newBuilderContext("")
	NewResponseBuilder(c2).Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, nil)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w2.Body.Bytes(), &resp))
	assert.Empty(t, resp.Details)
	assert.Equal(t, middleware.GetRequestID(c2), resp.RequestID)
}
