package cmd

import (
	"embed"
	"fmt"
	"log"
	"os"

	"demodash/internal/config"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// embeddedFiles holds the ui templates and static assets compiled into the
// binary; main.main injects it before command execution.
var embeddedFiles embed.FS

var rootCmd = &cobra.Command{
	Use:   "demodash",
	Short: "demodash: interactive life expectancy dashboard",
	Long:  `demodash loads a pre-cleaned demographic dataset and serves an interactive dashboard with summary statistics, a correlation heatmap, top-region bar charts, and range-filtered scatter plots.`,
}

// Execute is the entry point called by main.main()
func Execute(files embed.FS) {
	embeddedFiles = files
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loadConfig reads .env when present, then the environment
func loadConfig() (*config.Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
	return config.Load()
}
