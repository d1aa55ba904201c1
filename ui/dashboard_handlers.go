package ui

import (
	"log"
	"net/http"
	"net/url"
	"strconv"

	"demodash/internal/dataset"
	"demodash/internal/stats"

	"github.com/gin-gonic/gin"
)

// candidateScatterColumns is the preferred X-axis variable order for the main
// scatter plot; only columns present in the dataset are offered.
var candidateScatterColumns = []string{
	"under5_mortality",
	"total_deaths",
	"life_expectancy_male",
	"life_expectancy_female",
	"gdp_per_capita",
	"health_exp_pct_gdp",
	"schooling_years",
}

// RangeControl carries slider bounds and current values for one column
type RangeControl struct {
	Column string
	Min    float64
	Max    float64
	From   float64
	To     float64
}

// sectionImages are the optional presentation images shown on the dashboard
var sectionImages = []string{"top_right.png", "bottom_left.png", "bottom_right.png"}

func (s *Server) handleIndex(c *gin.Context) {
	snap, err := s.loader.Load()
	if err != nil {
		s.renderError(c, http.StatusInternalServerError, err)
		return
	}
	table := snap.Table

	regions := table.Regions()
	selectedRegions, allRegions := s.selectedRegions(c, regions)

	regionFilter := dataset.Filter{}
	if !allRegions {
		regionFilter.Regions = selectedRegions
	}
	filtered := regionFilter.Apply(table)

	var summary *stats.Summary
	if sum, err := stats.Summarize(filtered.Column(dataset.ColumnLifeExpectancy)); err == nil {
		summary = sum
	} else {
		log.Printf("[handleIndex] No life expectancy values for current selection: %v", err)
	}

	numericCols := table.NumericColumns()
	selectedCols := c.QueryArray("col")
	if len(selectedCols) == 0 {
		selectedCols = defaultHeatmapColumns(numericCols)
	}

	scatterOptions := scatterCandidates(table, numericCols)
	xVar := c.Query("x")
	if xVar == "" && len(scatterOptions) > 0 {
		xVar = scatterOptions[0]
	}

	x2, y2, color2 := rangeScatterSelection(c, numericCols)
	var xRange, yRange RangeControl
	var rangeRowCount int
	if x2 != "" && y2 != "" {
		xRange = rangeControl(c, filtered, x2, "xmin", "xmax")
		yRange = rangeControl(c, filtered, y2, "ymin", "ymax")
		ranged := dataset.Filter{Ranges: []dataset.RangeFilter{
			{Column: x2, Min: xRange.From, Max: xRange.To},
			{Column: y2, Min: yRange.From, Max: yRange.To},
		}}.Apply(filtered)
		rangeRowCount = ranged.RowCount()
	}

	images := make(map[string]bool, len(sectionImages))
	for _, name := range sectionImages {
		images[name] = s.store.ImageExists(name)
	}

	data := map[string]interface{}{
		"Title":           "demodash - Life Expectancy Dashboard",
		"SnapshotID":      snap.ID,
		"LoadedAt":        snap.LoadedAt.Format("2006-01-02 15:04:05"),
		"TotalRows":       table.RowCount(),
		"FilteredRows":    filtered.RowCount(),
		"Regions":         regions,
		"SelectedRegions": selectedRegions,
		"AllRegions":      allRegions,
		"Summary":         summary,
		"NumericColumns":  numericCols,
		"SelectedCols":    selectedCols,
		"HeatmapOK":       len(selectedCols) >= 2,
		"HeatmapURL":      s.heatmapURL(selectedCols, regionFilter.Regions),
		"TopURL":          s.topURL(regionFilter.Regions),
		"ScatterOptions":  scatterOptions,
		"ScatterX":        xVar,
		"ScatterURL":      s.scatterURL(xVar, dataset.ColumnLifeExpectancy, "", regionFilter.Regions, nil, nil),
		"X2":              x2,
		"Y2":              y2,
		"Color2":          color2,
		"XRange":          xRange,
		"YRange":          yRange,
		"RangeRowCount":   rangeRowCount,
		"RangeScatterURL": s.scatterURL(x2, y2, color2, regionFilter.Regions, &xRange, &yRange),
		"Sections":        s.store.Sections("objective", "conclusions", "defense"),
		"Images":          images,
	}

	s.renderTemplate(c, "index.html", data)
}

// selectedRegions resolves the region selection. No region parameters means
// the default selection (Global when present, otherwise the first region);
// all=1 disables the region filter entirely.
func (s *Server) selectedRegions(c *gin.Context, regions []string) ([]string, bool) {
	if c.Query("all") == "1" {
		return nil, true
	}
	selected := c.QueryArray("region")
	if len(selected) > 0 {
		return selected, false
	}
	for _, r := range regions {
		if r == "Global" {
			return []string{"Global"}, false
		}
	}
	if len(regions) > 0 {
		return regions[:1], false
	}
	return nil, true
}

func defaultHeatmapColumns(numericCols []string) []string {
	if len(numericCols) > 8 {
		return numericCols[:8]
	}
	return numericCols
}

// scatterCandidates filters the preferred X variables to those present,
// falling back to every numeric column except the dependent variable.
func scatterCandidates(t *dataset.Table, numericCols []string) []string {
	numeric := make(map[string]bool, len(numericCols))
	for _, col := range numericCols {
		numeric[col] = true
	}

	var candidates []string
	for _, col := range candidateScatterColumns {
		if t.HasColumn(col) && numeric[col] {
			candidates = append(candidates, col)
		}
	}
	if len(candidates) > 0 {
		return candidates
	}
	for _, col := range numericCols {
		if col != dataset.ColumnLifeExpectancy {
			candidates = append(candidates, col)
		}
	}
	return candidates
}

// rangeScatterSelection picks the X/Y/color variables for the range scatter
func rangeScatterSelection(c *gin.Context, numericCols []string) (string, string, string) {
	if len(numericCols) < 2 {
		return "", "", ""
	}

	x2 := c.Query("x2")
	if x2 == "" {
		x2 = numericCols[0]
	}
	y2 := c.Query("y2")
	if y2 == "" {
		y2 = dataset.ColumnLifeExpectancy
		found := false
		for _, col := range numericCols {
			if col == y2 {
				found = true
				break
			}
		}
		if !found {
			y2 = numericCols[1]
		}
	}
	return x2, y2, c.Query("color2")
}

// rangeControl computes safe slider bounds for a column and overlays any
// user-chosen values from the query string, clamped to the bounds.
func rangeControl(c *gin.Context, t *dataset.Table, column, fromKey, toKey string) RangeControl {
	min, max := stats.SafeRange(t.Column(column))
	ctl := RangeControl{Column: column, Min: min, Max: max, From: min, To: max}

	if v, err := strconv.ParseFloat(c.Query(fromKey), 64); err == nil && v >= min && v <= max {
		ctl.From = v
	}
	if v, err := strconv.ParseFloat(c.Query(toKey), 64); err == nil && v >= min && v <= max {
		ctl.To = v
	}
	if ctl.From > ctl.To {
		ctl.From, ctl.To = ctl.To, ctl.From
	}
	return ctl
}

// heatmapURL builds the embedded heatmap document URL
func (s *Server) heatmapURL(cols, regions []string) string {
	values := url.Values{}
	for _, col := range cols {
		values.Add("col", col)
	}
	for _, r := range regions {
		values.Add("region", r)
	}
	return "/charts/heatmap?" + values.Encode()
}

// topURL builds the embedded top-regions bar document URL
func (s *Server) topURL(regions []string) string {
	values := url.Values{}
	for _, r := range regions {
		values.Add("region", r)
	}
	values.Set("limit", strconv.Itoa(s.cfg.Data.TopLimit))
	return "/charts/top?" + values.Encode()
}

// scatterURL builds an embedded scatter document URL
func (s *Server) scatterURL(x, y, color string, regions []string, xr, yr *RangeControl) string {
	if x == "" || y == "" {
		return ""
	}
	values := url.Values{}
	values.Set("x", x)
	values.Set("y", y)
	if color != "" {
		values.Set("color", color)
	}
	for _, r := range regions {
		values.Add("region", r)
	}
	if xr != nil {
		values.Set("xmin", strconv.FormatFloat(xr.From, 'f', -1, 64))
		values.Set("xmax", strconv.FormatFloat(xr.To, 'f', -1, 64))
	}
	if yr != nil {
		values.Set("ymin", strconv.FormatFloat(yr.From, 'f', -1, 64))
		values.Set("ymax", strconv.FormatFloat(yr.To, 'f', -1, 64))
	}
	return "/charts/scatter?" + values.Encode()
}
