// Package cmd defines the command-line interface for fedcurve.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"fedcurve/internal/contract"
	"fedcurve/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(seriesCmd)
	rootCmd.AddCommand(chairsCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(cacheCmd)

	// Add the cache subcommands to the parent cache command
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheStatusCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("start", contract.DefaultStartDate, "Start date in ISO8601 or time ago")
	rootCmd.PersistentFlags().String("end", "", "End date in ISO8601 or time ago (default: today)")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("cache-backend", string(schema.SQLiteBackend), "Fetch cache backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("cache-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().Bool("offline", false, "Serve series from the fetch cache only, never touching the network")
	rootCmd.PersistentFlags().String("fred-base-url", "", "Override the FRED CSV endpoint (mainly for testing)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of renderCmd to Viper
	renderCmd.Flags().String("out", contract.DefaultGIFPath, "Path of the animated GIF to write")
	renderCmd.Flags().String("size", "", "Frame dimensions as WIDTHxHEIGHT (default 800x600)")
	renderCmd.Flags().Int("fps", contract.DefaultFPS, "Animation frame rate")
	renderCmd.Flags().Int("pause-frames", contract.DefaultPauseFrames, "Number of repeated terminal frames for the trailing pause")
	renderCmd.Flags().Bool("skip-preview", false, "Skip the leading preview frame")
	if err := viper.BindPFlags(renderCmd.Flags()); err != nil {
		contract.LogFatal("Error binding render flags", err)
	}

	// Bind all flags of previewCmd to Viper
	previewCmd.Flags().String("png", contract.DefaultPNGPath, "Path of the preview PNG to write")
	if err := viper.BindPFlags(previewCmd.Flags()); err != nil {
		contract.LogFatal("Error binding preview flags", err)
	}
}
