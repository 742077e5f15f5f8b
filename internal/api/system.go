package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AI2HU/sitekit/internal/models"
	"github.com/AI2HU/sitekit/internal/settings"
	"github.com/AI2HU/sitekit/internal/urlgen"
)

// healthCheck handles GET /api/v1/health
func (s *Server) healthCheck(c *gin.Context) {
	// Test database connection
	if err := s.posts.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, models.APIResponse{
			Success: false,
			Error:   "Database connection failed",
		})
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Data: map[string]interface{}{
			"status":    "healthy",
			"timestamp": time.Now(),
			"version":   "1.0.0",
		},
	})
}

// getSettings handles GET /api/v1/settings
func (s *Server) getSettings(c *gin.Context) {
	current := settings.FromContext(c)
	scheme, _ := current.ForcedScheme()

	s.successResponse(c, models.SettingsResponse{
		PaginationTheme: string(current.PaginationTheme),
		ForcedScheme:    scheme,
	})
}

// generateURL handles GET /api/v1/url?path=/home
func (s *Server) generateURL(c *gin.Context) {
	path := c.DefaultQuery("path", "/")

	s.successResponse(c, models.URLResponse{
		Path: path,
		URL:  urlgen.FromContext(c).To(c.Request, path, nil),
	})
}
