package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adeyemio/NaijaPulse/internal/storage"
)

// Refresher triggers one pipeline run, typically the scheduler.
type Refresher interface {
	RunOnce()
}

// Server serves the latest snapshots over HTTP.
type Server struct {
	store     *storage.Store
	refresher Refresher
}

func NewServer(store *storage.Store, refresher Refresher) *Server {
	return &Server{store: store, refresher: refresher}
}

func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", s.health)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/news", s.snapshot(storage.FileNews))
		v1.GET("/analytics", s.snapshot(storage.FileAnalytics))
		v1.GET("/trending", s.snapshot(storage.FileTrending))
		v1.GET("/sources", s.snapshot(storage.FileSourceStats))
		v1.GET("/summary", s.snapshot(storage.FileSummary))
		v1.POST("/refresh", s.refresh)
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// snapshot serves one snapshot file verbatim. Missing snapshots map
// to 404 rather than an empty document.
func (s *Server) snapshot(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := s.store.ReadRaw(name)
		if err != nil {
			if storage.IsMissing(err) {
				c.JSON(http.StatusNotFound, gin.H{
					"code":    "not_found",
					"message": "snapshot not generated yet",
				})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{
				"code":    "internal_error",
				"message": "internal server error",
			})
			return
		}
		c.Data(http.StatusOK, "application/json; charset=utf-8", data)
	}
}

func (s *Server) refresh(c *gin.Context) {
	if s.refresher == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"code":    "unavailable",
			"message": "no scheduler attached",
		})
		return
	}
	go s.refresher.RunOnce()
	c.JSON(http.StatusAccepted, gin.H{
		"code":    "ok",
		"message": "refresh started",
	})
}
