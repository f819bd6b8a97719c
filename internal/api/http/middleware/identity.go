package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/dtroode/tasktracker-server/internal/api/http/response"
	"github.com/dtroode/tasktracker-server/internal/logger"
	"github.com/dtroode/tasktracker-server/internal/model"
)

// Identity resolves the caller and injects the user into the request context.
type Identity struct {
	resolver       model.IdentityResolver
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewIdentity creates a new Identity middleware instance.
func NewIdentity(resolver model.IdentityResolver, contextManager model.ContextManager, logger *logger.Logger) *Identity {
	return &Identity{resolver: resolver, contextManager: contextManager, logger: logger}
}

// HandleHTTP aborts with the resolver's error when the caller is unknown.
func (m *Identity) HandleHTTP(c *gin.Context) {
	user, err := m.resolver.Resolve(c.Request)
	if err != nil {
		m.logger.Debug("Identity middleware: caller not resolved",
			"path", c.Request.URL.Path,
			"error", err.Error())
		response.Error(c, err)
		return
	}

	c.Request = c.Request.WithContext(m.contextManager.SetUserToContext(c.Request.Context(), user))
	c.Next()
}
