package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/tasktracker-server/internal/api/http/handler"
	"github.com/dtroode/tasktracker-server/internal/api/http/middleware"
	"github.com/dtroode/tasktracker-server/internal/logger"
	"github.com/dtroode/tasktracker-server/internal/model"
)

// Router wires handlers and middleware into a gin engine.
type Router struct {
	taskService    handler.TaskService
	userService    handler.UserService
	resolver       model.IdentityResolver
	contextManager model.ContextManager
	pinger         model.Pinger
	options        Options
	logger         *logger.Logger
}

// Options tunes cross-origin access for the dashboard.
type Options struct {
	TrustedOrigins []string
	IdentityHeader string
}

// New creates new HTTP Router instance.
//
// Parameters:
//   - taskService: task operations scoped by owner
//   - userService: registration
//   - resolver: maps requests on /tasks to the calling user
//   - contextManager: carries the resolved user to handlers
//   - pinger: storage liveness for /healthz
//   - options: CORS settings
//   - logger: the logger for request logging
func New(
	taskService handler.TaskService,
	userService handler.UserService,
	resolver model.IdentityResolver,
	contextManager model.ContextManager,
	pinger model.Pinger,
	options Options,
	logger *logger.Logger,
) *Router {
	return &Router{
		taskService:    taskService,
		userService:    userService,
		resolver:       resolver,
		contextManager: contextManager,
		pinger:         pinger,
		options:        options,
		logger:         logger,
	}
}

// Register builds the engine with every route and middleware attached.
func (r *Router) Register() *gin.Engine {
	logging := middleware.NewLogging(r.logger)
	cors := middleware.NewCORS(r.options.TrustedOrigins, r.options.IdentityHeader)

	e := gin.New()
	e.HandleMethodNotAllowed = true
	e.Use(logging.HandleHTTP, gin.Recovery(), cors.HandleHTTP)

	e.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "the requested resource could not be found"})
	})
	e.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	r.registerUserRoutes(e)
	r.registerTaskRoutes(e)

	return e
}

func (r *Router) registerUserRoutes(e *gin.Engine) {
	userHandler := handler.NewUser(r.userService, r.logger)
	healthHandler := handler.NewHealth(r.pinger, r.logger)

	e.POST("/register", userHandler.Register)
	e.GET("/healthz", healthHandler.Check)
}

func (r *Router) registerTaskRoutes(e *gin.Engine) {
	identity := middleware.NewIdentity(r.resolver, r.contextManager, r.logger)
	taskHandler := handler.NewTask(r.taskService, r.contextManager, r.logger)

	tasks := e.Group("/tasks", identity.HandleHTTP)
	tasks.GET("", taskHandler.List)
	tasks.POST("", taskHandler.Create)
	tasks.GET("/:id", taskHandler.Get)
	tasks.PUT("/:id", taskHandler.Update)
	tasks.DELETE("/:id", taskHandler.Delete)
}
