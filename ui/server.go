package ui

import (
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"strings"

	"demodash/internal/config"
	"demodash/internal/content"
	"demodash/internal/dataset"

	"github.com/gin-gonic/gin"
)

// Server represents the web server for the demodash UI
type Server struct {
	router        *gin.Engine
	cfg           *config.Config
	loader        *dataset.Loader
	store         *content.Store
	templates     *template.Template
	embeddedFiles fs.FS
}

// NewServer creates a new web server instance
func NewServer(cfg *config.Config, loader *dataset.Loader, store *content.Store, embeddedFiles fs.FS) *Server {
	gin.SetMode(cfg.Server.GinMode)
	return &Server{
		router:        gin.Default(),
		cfg:           cfg,
		loader:        loader,
		store:         store,
		embeddedFiles: embeddedFiles,
	}
}

// Initialize parses templates and wires middleware and routes
func (s *Server) Initialize() error {
	funcMap := template.FuncMap{
		"f2": func(v float64) string { return fmt.Sprintf("%.2f", v) },
		"add": func(a, b int) int {
			return a + b
		},
		"join": strings.Join,
		"contains": func(items []string, item string) bool {
			for _, it := range items {
				if it == item {
					return true
				}
			}
			return false
		},
	}

	templatesFS, err := fs.Sub(s.embeddedFiles, "ui/templates")
	if err != nil {
		return fmt.Errorf("failed to create templates filesystem: %w", err)
	}

	files, err := fs.Glob(templatesFS, "*.html")
	if err != nil {
		return fmt.Errorf("failed to glob templates: %w", err)
	}
	log.Printf("[TemplateInit] Found %d template files: %v", len(files), files)

	s.templates = template.New("").Funcs(funcMap)
	for _, file := range files {
		body, err := fs.ReadFile(templatesFS, file)
		if err != nil {
			return fmt.Errorf("failed to read template %s: %w", file, err)
		}
		if _, err := s.templates.New(file).Parse(string(body)); err != nil {
			return fmt.Errorf("failed to parse template %s: %w", file, err)
		}
	}

	s.setupMiddleware()
	s.setupRoutes()
	return nil
}

// setupMiddleware configures static file serving
func (s *Server) setupMiddleware() {
	staticFS, err := fs.Sub(s.embeddedFiles, "ui/static")
	if err != nil {
		log.Printf("[setupMiddleware] Error creating static filesystem: %v", err)
		return
	}
	s.router.StaticFS("/static", http.FS(staticFS))
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleIndex)

	// Standalone chart documents embedded by the dashboard
	s.router.GET("/charts/heatmap", s.handleHeatmapChart)
	s.router.GET("/charts/top", s.handleTopChart)
	s.router.GET("/charts/scatter", s.handleScatterChart)

	// JSON endpoints
	s.router.GET("/api/dataset/status", s.handleDatasetStatus)
	s.router.GET("/api/dataset/info", s.handleDatasetInfo)
	s.router.POST("/api/dataset/reload", s.handleDatasetReload)
	s.router.GET("/api/summary", s.handleSummary)
	s.router.GET("/api/rows", s.handleRows)

	// Asset images checked for existence before serving
	s.router.GET("/assets/:name", s.handleAssetImage)
}

// Start starts the web server
func (s *Server) Start(addr string) error {
	log.Printf("Starting demodash UI on http://%s", addr)
	return s.router.Run(addr)
}

// Router exposes the underlying engine for tests
func (s *Server) Router() *gin.Engine {
	return s.router
}

// renderTemplate writes an HTML template response
func (s *Server) renderTemplate(c *gin.Context, templateName string, data interface{}) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(c.Writer, templateName, data); err != nil {
		log.Printf("Template error: %v", err)
		c.AbortWithStatus(http.StatusInternalServerError)
	}
}

// renderError shows the dedicated error page with the underlying message
func (s *Server) renderError(c *gin.Context, status int, err error) {
	log.Printf("[Server] Request failed: %v", err)
	c.Status(status)
	if execErr := s.templates.ExecuteTemplate(c.Writer, "error.html", map[string]interface{}{
		"Title":   "demodash - Error",
		"Message": err.Error(),
	}); execErr != nil {
		c.String(status, err.Error())
	}
}
