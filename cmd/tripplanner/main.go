// README: CLI entry point; `serve` runs the web app, `plan` generates one itinerary in the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "tripplanner",
	Short: "Trip Planner - AI-generated travel itineraries",
	Long: `Trip Planner collects a trip request (origin, destination, dates, budget,
theme and party size), asks a Gemini model for a day-by-day itinerary and
renders the Markdown answer as HTML.`,
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(planCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./tripplanner.yaml or ./config/tripplanner.yaml)")
}
