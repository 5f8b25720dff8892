package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"cinecal/internal/config"
	"cinecal/internal/pipeline"
)

var (
	flagConfig  string
	flagFormat  string
	flagVerbose bool
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cinecal",
		Short: "Scrape upcoming cinema releases into calendar files",
		Long: `Scrapes the coming-soon listings of the configured venues, enriches the
releases with external movie metadata and writes one iCalendar file per
venue.`,
		RunE:          runScrape,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVar(&flagConfig, "config", "cinecal.toml", "Path to the TOML configuration file")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	return cmd
}

func runScrape(cmd *cobra.Command, args []string) error {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	logger := newLogger(flagVerbose)

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	result, err := pipeline.New(cfg, logger).Run()
	if err != nil {
		return err
	}

	return WriteOutput(cmd.OutOrStdout(), result, format)
}

// newLogger builds the console logger all components share. Pipeline
// progress goes to stderr so stdout stays clean for the run summary.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
