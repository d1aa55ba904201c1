package cmd

import (
	"log"
	"net/http"
	_ "net/http/pprof"

	"demodash/internal/content"
	"demodash/internal/dataset"
	"demodash/ui"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		appConfig, err := loadConfig()
		if err != nil {
			return err
		}

		loader := dataset.NewLoader(appConfig.Data.File)
		store := content.NewStore(appConfig.Data.ContentDir, appConfig.Data.AssetsDir)

		// Warm the session cache. A failed load is surfaced on the dashboard
		// itself, so the server still starts.
		if _, err := loader.Load(); err != nil {
			log.Printf("[serve] Dataset not loadable yet: %v", err)
		}

		server := ui.NewServer(appConfig, loader, store, embeddedFiles)
		if err := server.Initialize(); err != nil {
			return err
		}

		if appConfig.Profiling.Enabled {
			go func() {
				log.Printf("[serve] pprof server starting on :%s", appConfig.Profiling.Port)
				if err := http.ListenAndServe(":"+appConfig.Profiling.Port, nil); err != nil {
					log.Printf("[serve] pprof server failed: %v", err)
				}
			}()
		}

		log.Printf("[serve] Starting demodash server on port %s", appConfig.Server.Port)
		return server.Start(":" + appConfig.Server.Port)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
