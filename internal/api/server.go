package api

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/AI2HU/sitekit/internal/db"
	"github.com/AI2HU/sitekit/internal/logger"
	"github.com/AI2HU/sitekit/internal/models"
	"github.com/AI2HU/sitekit/internal/pagination"
	"github.com/AI2HU/sitekit/internal/settings"
	"github.com/AI2HU/sitekit/internal/urlgen"
)

const shutdownTimeout = 10 * time.Second

// Options configures the HTTP server
type Options struct {
	CORSOrigin   string
	PerPage      int
	OnEachSide   int
	RateLimit    float64 // requests per second, 0 disables
	RateBurst    int
	RootURL      string
	TrustProxies bool
}

// Server serves the site and its JSON API
type Server struct {
	router     *gin.Engine
	posts      db.PostStore
	settings   settings.Settings
	urls       *urlgen.Generator
	pager      *pagination.Renderer
	perPage    int
	onEachSide int
}

// NewServer creates a server whose URL generation and pagination markup
// follow the boot settings s.
func NewServer(posts db.PostStore, s settings.Settings, opts Options) (*Server, error) {
	pager, err := pagination.ForSettings(s)
	if err != nil {
		return nil, err
	}

	server := &Server{
		router:     gin.New(),
		posts:      posts,
		settings:   s,
		urls:       urlgen.New(s, urlgen.Options{RootURL: opts.RootURL, TrustProxies: opts.TrustProxies}),
		pager:      pager,
		perPage:    opts.PerPage,
		onEachSide: opts.OnEachSide,
	}

	tmpl, err := template.New("pages").Parse(pageTemplates)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page templates: %w", err)
	}
	server.router.SetHTMLTemplate(tmpl)

	server.router.Use(gin.Recovery())
	server.router.Use(requestIDMiddleware())
	server.router.Use(loggingMiddleware())
	server.router.Use(corsMiddleware(opts.CORSOrigin))
	if opts.RateLimit > 0 {
		burst := opts.RateBurst
		if burst < 1 {
			burst = int(opts.RateLimit) + 1
		}
		server.router.Use(rateLimitMiddleware(rate.NewLimiter(rate.Limit(opts.RateLimit), burst)))
	}
	server.router.Use(settings.Middleware(s))
	server.router.Use(urlgen.Middleware(server.urls))

	server.setupRoutes()
	return server, nil
}

func (s *Server) setupRoutes() {
	s.router.GET("/", s.index)
	s.router.GET("/home", s.home)
	s.router.GET("/posts", s.postsPage)

	v1 := s.router.Group("/api/v1")
	{
		v1.GET("/health", s.healthCheck)
		v1.GET("/settings", s.getSettings)
		v1.GET("/url", s.generateURL)

		v1.GET("/posts", s.listPosts)
		v1.GET("/posts/:id", s.getPost)
		v1.POST("/posts", s.createPost)
	}
}

// Handler returns the HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on address until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context, address string) error {
	srv := &http.Server{
		Addr:    address,
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down API server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}

func (s *Server) successResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Data:    data,
	})
}

func (s *Server) errorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, models.APIResponse{
		Success: false,
		Error:   message,
	})
}
