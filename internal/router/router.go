package router

import (
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/monocle-dev/trackr/internal/config"
	"github.com/monocle-dev/trackr/internal/handlers"
	"github.com/monocle-dev/trackr/internal/middleware"
	"github.com/monocle-dev/trackr/internal/repository"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

type Deps struct {
	Config   *config.Config
	Handler  *handlers.Handler
	Verifier middleware.TokenVerifier
	Store    repository.Store
	Logger   zerolog.Logger
}

func NewRouter(deps Deps) (*gin.Engine, error) {
	if !deps.Config.Server.Development() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.SecureHeaders(deps.Config.Server.Development()))
	r.Use(middleware.Metrics())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.Config.CORS.Origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With", middleware.LegacyTokenHeader},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	authLimit, err := middleware.RateLimit(deps.Config.RateLimit.Auth)
	if err != nil {
		return nil, fmt.Errorf("auth rate limit: %w", err)
	}

	h := deps.Handler
	requireAuth := middleware.AuthMiddleware(deps.Verifier, deps.Store)

	r.GET("/health", h.HealthCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	users := r.Group("/users")
	{
		users.POST("/signup", authLimit, h.Signup)
		users.POST("/signin", authLimit, h.Signin)
		users.GET("/profile", requireAuth, h.Profile)
		users.DELETE("/profile", requireAuth, h.DeleteAccount)
	}

	projects := r.Group("/project", requireAuth)
	{
		projects.POST("", h.CreateProject)
		projects.GET("", h.ListProjects)
		projects.GET("/:id", h.GetProject)
		projects.PUT("/:id", h.UpdateProject)
		projects.DELETE("/:id", h.DeleteProject)
	}

	// POST and GET take the parent project id; the rest take the issue id.
	issues := r.Group("/issue", requireAuth)
	{
		issues.POST("/:id", h.CreateIssue)
		issues.GET("/:id", h.ListIssues)
		issues.PUT("/:id", h.UpdateIssue)
		issues.PATCH("/:id", h.SetIssueStatus)
		issues.DELETE("/:id", h.DeleteIssue)
	}

	notes := r.Group("/note", requireAuth)
	{
		notes.POST("/:id", h.CreateNote)
		notes.GET("/:id", h.ListNotes)
		notes.PUT("/:id", h.UpdateNote)
		notes.DELETE("/:id", h.DeleteNote)
	}

	admin := r.Group("/admin", requireAuth)
	{
		admin.GET("/users", h.AdminListUsers)
		admin.GET("/projects", h.AdminListProjects)
	}

	return r, nil
}
