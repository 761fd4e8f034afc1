// Package api serves the facility directory and the tool-discovery
// endpoints over HTTP.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jessenahat/odhf-lode-mcp-server/internal/dataset"
)

// Server wires the gin router to the dataset loader.
type Server struct {
	router *gin.Engine
	loader *dataset.Loader
}

// NewServer builds the router with CORS and all routes registered.
func NewServer(loader *dataset.Loader) *Server {
	s := &Server{
		router: gin.Default(),
		loader: loader,
	}

	s.router.Use(corsMiddleware())
	s.setupRoutes()

	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleRoot)
	s.router.GET("/list_fields", s.handleListFields)
	s.router.GET("/list_tools", s.handleListTools)
	s.router.GET("/search_facilities", s.handleSearchFacilities)
	s.router.GET("/dataset_stats", s.handleDatasetStats)
	s.router.GET("/sse_once", s.handleSSEOnce)
	s.router.GET("/sse", s.handleSSE)
}

// Router exposes the underlying handler for http.Server and tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// corsMiddleware permits any origin without credentials, which is what
// browser-hosted agent frameworks need to reach the discovery
// endpoints.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Accept")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
