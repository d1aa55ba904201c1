package ui

import (
	"net/http"
	"path/filepath"
	"strconv"

	"demodash/internal/dataset"
	"demodash/internal/errors"
	"demodash/internal/stats"

	"github.com/gin-gonic/gin"
)

// handleDatasetStatus reports whether the session snapshot is loaded
func (s *Server) handleDatasetStatus(c *gin.Context) {
	if !s.loader.Loaded() {
		c.JSON(http.StatusOK, gin.H{"loaded": false})
		return
	}
	snap, err := s.loader.Load()
	if err != nil {
		s.jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"loaded":      true,
		"snapshot_id": snap.ID,
		"loaded_at":   snap.LoadedAt,
	})
}

// handleDatasetInfo describes the loaded dataset
func (s *Server) handleDatasetInfo(c *gin.Context) {
	snap, err := s.loader.Load()
	if err != nil {
		s.jsonError(c, err)
		return
	}
	table := snap.Table
	c.JSON(http.StatusOK, gin.H{
		"name":            filepath.Base(s.cfg.Data.File),
		"snapshot_id":     snap.ID,
		"loaded_at":       snap.LoadedAt,
		"rows":            table.RowCount(),
		"columns":         table.Headers,
		"numeric_columns": table.NumericColumns(),
		"regions":         table.Regions(),
	})
}

// handleDatasetReload drops the cached snapshot and loads the file again
func (s *Server) handleDatasetReload(c *gin.Context) {
	snap, err := s.loader.Reload()
	if err != nil {
		s.jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"snapshot_id": snap.ID,
		"rows":        snap.Table.RowCount(),
	})
}

// handleSummary returns descriptive statistics for one numeric column over
// the current region selection
func (s *Server) handleSummary(c *gin.Context) {
	snap, err := s.loader.Load()
	if err != nil {
		s.jsonError(c, err)
		return
	}

	column := c.DefaultQuery("column", dataset.ColumnLifeExpectancy)
	if !snap.Table.HasColumn(column) {
		s.jsonError(c, errors.NotFound("column "+column))
		return
	}

	filtered := dataset.Filter{Regions: c.QueryArray("region")}.Apply(snap.Table)
	summary, err := stats.Summarize(filtered.Column(column))
	if err != nil {
		s.jsonError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"column": column,
		"count":  summary.Count,
		"mean":   summary.Mean,
		"min":    summary.Min,
		"max":    summary.Max,
		"median": summary.Median,
		"stddev": summary.StdDev,
	})
}

// handleRows returns filtered rows, capped by a limit parameter
func (s *Server) handleRows(c *gin.Context) {
	snap, err := s.loader.Load()
	if err != nil {
		s.jsonError(c, err)
		return
	}

	filter := dataset.Filter{Regions: c.QueryArray("region")}
	for _, column := range c.QueryArray("range") {
		if r, ok := queryRange(c, column, column+"_min", column+"_max"); ok {
			filter.Ranges = append(filter.Ranges, r)
		}
	}
	filtered := filter.Apply(snap.Table)

	limit := 100
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 {
		limit = v
	}
	page := filtered.Head(limit)

	c.JSON(http.StatusOK, gin.H{
		"total": filtered.RowCount(),
		"rows":  page.Rows,
	})
}

// handleAssetImage serves a presentation image after an existence check
func (s *Server) handleAssetImage(c *gin.Context) {
	path, err := s.store.ImagePath(c.Param("name"))
	if err != nil {
		s.jsonError(c, err)
		return
	}
	c.File(path)
}
