package ui

import (
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"demodash/internal/charts"
	"demodash/internal/dataset"
	"demodash/internal/errors"
	"demodash/internal/stats"

	"github.com/gin-gonic/gin"
)

// chartRenderer is the common surface of go-echarts chart types
type chartRenderer interface {
	Render(w io.Writer) error
}

// handleHeatmapChart serves the correlation heatmap as a standalone document
func (s *Server) handleHeatmapChart(c *gin.Context) {
	snap, err := s.loader.Load()
	if err != nil {
		s.jsonError(c, err)
		return
	}

	cols := c.QueryArray("col")
	if len(cols) < 2 {
		s.jsonError(c, errors.InvalidInput("select at least two numeric columns for the heatmap"))
		return
	}

	filtered := dataset.Filter{Regions: c.QueryArray("region")}.Apply(snap.Table)
	matrix, err := stats.Correlate(filtered, cols)
	if err != nil {
		s.jsonError(c, err)
		return
	}

	s.renderChart(c, charts.CorrelationHeatmap(matrix))
}

// handleTopChart serves the top-regions bar chart as a standalone document
func (s *Server) handleTopChart(c *gin.Context) {
	snap, err := s.loader.Load()
	if err != nil {
		s.jsonError(c, err)
		return
	}

	limit := s.cfg.Data.TopLimit
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 {
		limit = v
	}

	filtered := dataset.Filter{Regions: c.QueryArray("region")}.Apply(snap.Table)
	top := filtered.SortedByColumnDesc(dataset.ColumnLifeExpectancy).Head(limit)

	// Ascending display order puts the highest region at the top of the bar
	names := make([]string, 0, top.RowCount())
	values := make([]float64, 0, top.RowCount())
	for i := top.RowCount() - 1; i >= 0; i-- {
		row := top.Rows[i]
		v, ok := dataset.ParseCell(row[dataset.ColumnLifeExpectancy])
		if !ok {
			continue
		}
		names = append(names, row[dataset.ColumnRegion])
		values = append(values, v)
	}

	title := "Top " + strconv.Itoa(limit) + " regions by life expectancy"
	s.renderChart(c, charts.TopRegionsBar(names, values, title))
}

// handleScatterChart serves a scatter plot as a standalone document
func (s *Server) handleScatterChart(c *gin.Context) {
	snap, err := s.loader.Load()
	if err != nil {
		s.jsonError(c, err)
		return
	}

	xCol := c.Query("x")
	yCol := c.Query("y")
	if xCol == "" || yCol == "" {
		s.jsonError(c, errors.InvalidInput("scatter requires x and y columns"))
		return
	}
	colorCol := c.Query("color")

	filter := dataset.Filter{Regions: c.QueryArray("region")}
	if r, ok := queryRange(c, xCol, "xmin", "xmax"); ok {
		filter.Ranges = append(filter.Ranges, r)
	}
	if r, ok := queryRange(c, yCol, "ymin", "ymax"); ok {
		filter.Ranges = append(filter.Ranges, r)
	}
	filtered := filter.Apply(snap.Table)

	points := make([]charts.ScatterPoint, 0, filtered.RowCount())
	for _, row := range filtered.Rows {
		x, xok := dataset.ParseCell(row[xCol])
		y, yok := dataset.ParseCell(row[yCol])
		if !xok || !yok {
			continue
		}
		p := charts.ScatterPoint{X: x, Y: y, Region: row[dataset.ColumnRegion]}
		if colorCol != "" {
			if cv, ok := dataset.ParseCell(row[colorCol]); ok {
				p.Color = cv
				p.HasColor = true
			}
		}
		points = append(points, p)
	}

	s.renderChart(c, charts.VariableScatter(points, xCol, yCol, colorCol))
}

// queryRange reads an inclusive bound pair from the query string. The filter
// is only built when both bounds are present and numeric.
func queryRange(c *gin.Context, column, minKey, maxKey string) (dataset.RangeFilter, bool) {
	minStr := strings.TrimSpace(c.Query(minKey))
	maxStr := strings.TrimSpace(c.Query(maxKey))
	if minStr == "" || maxStr == "" {
		return dataset.RangeFilter{}, false
	}
	min, errMin := strconv.ParseFloat(minStr, 64)
	max, errMax := strconv.ParseFloat(maxStr, 64)
	if errMin != nil || errMax != nil {
		return dataset.RangeFilter{}, false
	}
	if min > max {
		min, max = max, min
	}
	return dataset.RangeFilter{Column: column, Min: min, Max: max}, true
}

// renderChart writes a go-echarts chart document to the response
func (s *Server) renderChart(c *gin.Context, chart chartRenderer) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := chart.Render(c.Writer); err != nil {
		log.Printf("[Charts] Render failed: %v", err)
		c.AbortWithStatus(http.StatusInternalServerError)
	}
}

// jsonError maps application error codes to HTTP statuses
func (s *Server) jsonError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.CodeInvalidInput, errors.CodeColumnMissing, errors.CodeEmptyData:
		status = http.StatusBadRequest
	case errors.CodeNotFound, errors.CodeDataMissing:
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{
		"error": err.Error(),
		"code":  errors.GetCode(err),
	})
}
