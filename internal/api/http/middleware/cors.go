package middleware

import (
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORS lets the dashboard call the API from its own origin.
type CORS struct {
	trustedOrigins []string
	allowedHeaders string
}

// NewCORS creates a CORS middleware; "*" in trustedOrigins trusts any origin.
func NewCORS(trustedOrigins []string, identityHeader string) *CORS {
	return &CORS{
		trustedOrigins: trustedOrigins,
		allowedHeaders: strings.Join([]string{"Content-Type", identityHeader, RequestIDHeader}, ", "),
	}
}

func (m *CORS) HandleHTTP(c *gin.Context) {
	c.Writer.Header().Add("Vary", "Origin")
	c.Writer.Header().Add("Vary", "Access-Control-Request-Method")

	origin := c.GetHeader("Origin")
	if origin == "" || !m.trusted(origin) {
		c.Next()
		return
	}

	c.Header("Access-Control-Allow-Origin", origin)
	// preflight request
	if c.Request.Method == http.MethodOptions && c.GetHeader("Access-Control-Request-Method") != "" {
		c.Header("Access-Control-Allow-Methods", "OPTIONS, GET, POST, PUT, DELETE")
		c.Header("Access-Control-Allow-Headers", m.allowedHeaders)
		c.AbortWithStatus(http.StatusOK)
		return
	}
	c.Next()
}

func (m *CORS) trusted(origin string) bool {
	return slices.Contains(m.trustedOrigins, "*") || slices.Contains(m.trustedOrigins, origin)
}
