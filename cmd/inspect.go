package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"demodash/internal/dataset"
	"demodash/internal/stats"

	"github.com/spf13/cobra"
)

var inspectFile string

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Load and validate the dataset, printing a summary to stdout",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := inspectFile
		if path == "" {
			appConfig, err := loadConfig()
			if err != nil {
				return err
			}
			path = appConfig.Data.File
		}

		snap, err := dataset.NewLoader(path).Load()
		if err != nil {
			return err
		}
		table := snap.Table

		fmt.Printf("Dataset: %s\n", path)
		fmt.Printf("Snapshot: %s (loaded %s)\n", snap.ID, snap.LoadedAt.Format("2006-01-02 15:04:05"))
		fmt.Printf("Rows: %d\n", table.RowCount())
		fmt.Printf("Regions: %d\n", len(table.Regions()))
		fmt.Printf("Columns: %s\n\n", strings.Join(table.Headers, ", "))

		numericCols := table.NumericColumns()
		if len(numericCols) == 0 {
			fmt.Println("No numeric columns found.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "COLUMN\tCOUNT\tMEAN\tMIN\tMAX\tMEDIAN\tSTDDEV")
		for _, col := range numericCols {
			summary, err := stats.Summarize(table.Column(col))
			if err != nil {
				fmt.Fprintf(w, "%s\t-\t-\t-\t-\t-\t-\n", col)
				continue
			}
			fmt.Fprintf(w, "%s\t%d\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\n",
				col, summary.Count, summary.Mean, summary.Min, summary.Max, summary.Median, summary.StdDev)
		}
		return w.Flush()
	},
}

func init() {
	inspectCmd.Flags().StringVar(&inspectFile, "file", "", "dataset file (overrides DATA_FILE)")
	rootCmd.AddCommand(inspectCmd)
}
