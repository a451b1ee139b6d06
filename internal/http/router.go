package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/taskflowhq/taskflow/internal/config"
	"github.com/taskflowhq/taskflow/internal/http/handlers"
	"github.com/taskflowhq/taskflow/internal/http/middlewares"
	"github.com/taskflowhq/taskflow/internal/identity"
	"github.com/taskflowhq/taskflow/internal/observability"
	"github.com/taskflowhq/taskflow/internal/repo/memory"
)

const maxBodyBytes = 1 << 20 // 1 MiB

// Deps carries everything the router wires up. Store and Tasks are
// interfaces/values the caller picks (postgres or in-memory), Enqueuer and
// Ping may be nil.
type Deps struct {
	Cfg      config.Config
	Store    identity.UserStore
	Tasks    *memory.TasksRepo
	Enqueuer handlers.WelcomeEnqueuer
	Ping     func() error
}

func NewRouter(log *slog.Logger, deps Deps) *gin.Engine {
	if deps.Cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(RequestLogger(log))
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware(deps.Cfg.AllowedOrigins))
	r.Use(middlewares.MaxBodyBytes(maxBodyBytes))

	if deps.Cfg.OTELEndpoint != "" {
		r.Use(otelgin.Middleware("taskflow-api"))
	}

	// Each router instance gets its own registry so tests can build routers
	// freely without duplicate-registration panics.
	reg := prometheus.NewRegistry()
	prom := observability.NewProm(reg)
	r.Use(prom.GinHandleMiddleware())
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	h := handlers.NewHealthHandler(deps.Ping)
	r.GET("/healthz", h.Healthz)
	r.GET("/readyz", h.Readyz)

	svc := identity.NewService(deps.Store, log)
	authHandler := handlers.NewAuthHandler(svc, deps.Enqueuer, log)
	tasksHandler := handlers.NewTasksHandler(deps.Tasks)

	limiter := middlewares.NewRateLimiter(30, time.Minute)

	api := r.Group("/api")
	api.Use(middlewares.RequireJSON())

	auth := api.Group("/auth")
	auth.Use(limiter.Middleware(middlewares.KeyByIP))
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// The task list is unauthenticated, like the dashboard that consumes it;
	// the only gate in the system is the gateway's route guard.
	api.GET("/tasks", tasksHandler.ListTasks)
	api.POST("/tasks", tasksHandler.CreateTask)
	api.GET("/tasks/:id", tasksHandler.GetTask)
	api.PUT("/tasks/:id", tasksHandler.UpdateTask)
	api.DELETE("/tasks/:id", tasksHandler.DeleteTask)

	return r
}
