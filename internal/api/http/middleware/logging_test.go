package middleware

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/dtroode/tasktracker-server/internal/logger"
)

func TestLogging_HandleHTTP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name      string
		handler   gin.HandlerFunc
		requestID string
		wantCode  int
		wantError bool
	}{
		{
			name:     "success path",
			handler:  func(c *gin.Context) { c.Status(http.StatusNoContent) },
			wantCode: http.StatusNoContent,
		},
		{
			name:      "request id is kept",
			handler:   func(c *gin.Context) { c.Status(http.StatusOK) },
			requestID: "req-123",
			wantCode:  http.StatusOK,
		},
		{
			name: "recorded error is logged",
			handler: func(c *gin.Context) {
				_ = c.Error(errors.New("boom"))
				c.AbortWithStatus(http.StatusInternalServerError)
			},
			wantCode:  http.StatusInternalServerError,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			lg := NewLogging(logger.NewWithWriter(&buf, 0))

			r := gin.New()
			r.Use(lg.HandleHTTP)
			r.GET("/x", tt.handler)

			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			if tt.requestID != "" {
				req.Header.Set(RequestIDHeader, tt.requestID)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			gotID := w.Header().Get(RequestIDHeader)
			assert.NotEmpty(t, gotID)
			if tt.requestID != "" {
				assert.Equal(t, tt.requestID, gotID)
			}
			assert.Contains(t, buf.String(), "HTTP request completed")
			assert.Equal(t, tt.wantError, bytes.Contains(buf.Bytes(), []byte("HTTP request failed")))
		})
	}
}
