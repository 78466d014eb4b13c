// isotd is a terminal rendition of an isometric tower-defense tech demo: a
// camera-controlled terrain tile with a pausable session and a diagnostic
// overlay.
//
// Usage:
//
//	isotd run             - Start the demo
//	isotd mesh            - Print terrain mesh statistics
//	isotd config          - Print the default configuration
//	isotd keys            - Print the default key bindings
//
// Global flags:
//
//	--config <path>  - Path to a demo YAML config
//	--log <path>     - Write logs to a file (the demo owns the terminal)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/isotd/internal/config"
)

var (
	// Global flags
	flagConfig  string
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "isotd",
	Short: "Isometric TD tech demo in your terminal",
	Long: `isotd renders a procedural terrain tile through an orbit camera
in the terminal. Pan with WASD, pause with Esc, exit with Ctrl+C.

Available commands:
  run     - Start the demo
  mesh    - Print terrain mesh statistics
  config  - Print the default configuration
  keys    - Print the default key bindings

Examples:
  isotd run
  isotd run --size 8 --fps 30
  isotd run --config ./demo.yaml --log ./isotd.log
  isotd mesh --size 3`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to demo config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Path to log file (logs are discarded when empty)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(meshCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(keysCmd)
}

// loadConfig loads and validates the demo config from --config or the
// default search path.
func loadConfig() (config.DemoConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.DemoConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.DemoConfig{}, err
	}
	return cfg, nil
}

// openLogger returns a logger writing to path, or a discarding logger when
// path is empty. The returned closer must be called when done.
func openLogger(path string) (*log.Logger, io.Closer, error) {
	if path == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log %s: %w", path, err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "isotd",
	})
	return logger, f, nil
}
