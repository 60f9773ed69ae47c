package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/alexiusacademia/gostress/internal/version"
	"github.com/spf13/cobra"
)

var (
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:          "gostress",
	Short:        "2D Remote Stress Inversion Tool",
	SilenceUsage: true,
	Long: `gostress - Go Remote Stress Inversion

A CLI tool that recovers the orientation θ and the stress ratio k of a
2D remote stress from observed geological structures.

This tool helps structural geologists perform:
  - Monte Carlo and regular grid inversion of joints, dikes and stylolites
  - Cost domain mapping over (θ, k)
  - Cost function profiling per structure type

Joints and dikes are expected along σ1, stylolites along σ3.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(logLevel, logFormat)
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gostress v%-46s║\n", version.Version)
		fmt.Println("  ║   Go Remote Stress Inversion                              ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Recovers the 2D remote stress (θ, k) that best explains")
		fmt.Println("  observed joints, dikes and stylolites.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Monte Carlo and regular grid search")
		fmt.Println("    • Cost domain maps (ASCII, PNG, SVG, PDF)")
		fmt.Println("    • Cost function profiles per structure type")
		fmt.Println("    • YAML run files with custom structure types")
		fmt.Println()
		fmt.Println("  Use 'gostress --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceErrors = true

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format: text or json")
}

// setupLogging installs the default slog handler on stderr
func setupLogging(level, format string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case "text":
		handler = slog.NewTextHandler(os.Stderr, opts)
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	default:
		return fmt.Errorf("invalid --log-format %q (want text or json)", format)
	}
	slog.SetDefault(slog.New(handler))
	return nil
}
