package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jessenahat/odhf-lode-mcp-server/domain/facility"
	apperrors "github.com/Jessenahat/odhf-lode-mcp-server/internal/errors"
	"github.com/Jessenahat/odhf-lode-mcp-server/internal/mcp"
)

func (s *Server) handleRoot(c *gin.Context) {
	ds := s.loader.Dataset()
	if ds.Empty() {
		c.String(http.StatusInternalServerError, "%s", apperrors.DatasetUnavailable(s.loader.Path()).Error())
		return
	}
	c.String(http.StatusOK, "ODHF facility directory: %d facilities loaded", len(ds.Records))
}

func (s *Server) handleListFields(c *gin.Context) {
	ds := s.loader.Dataset()
	if ds.Empty() {
		s.respondDatasetUnavailable(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"columns": ds.Columns})
}

func (s *Server) handleListTools(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tools": mcp.Manifest()})
}

func (s *Server) handleSearchFacilities(c *gin.Context) {
	ds := s.loader.Dataset()
	if ds.Empty() {
		s.respondDatasetUnavailable(c)
		return
	}

	rows, err := facility.Search(ds, c.Query("province"), c.Query("facility_type"))
	if err != nil {
		var schemaErr *facility.SchemaError
		if errors.As(err, &schemaErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":       apperrors.SchemaMismatch(schemaErr.Error()).Message,
				"have":        schemaErr.Have,
				"need_any_of": schemaErr.NeedAnyOf,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if len(rows) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"message": "No facilities matched the given filters. Try a broader value, e.g. province=Ontario or facility_type=hospital.",
		})
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (s *Server) handleDatasetStats(c *gin.Context) {
	ds := s.loader.Dataset()
	if ds.Empty() {
		s.respondDatasetUnavailable(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"columns": facility.Summarize(ds)})
}

func (s *Server) respondDatasetUnavailable(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error": apperrors.DatasetUnavailable(s.loader.Path()).Error(),
	})
}
