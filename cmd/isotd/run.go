package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/isotd/internal/core"
	"github.com/vovakirdan/isotd/internal/platform/tui"
)

var (
	flagFPS  int
	flagSize int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the demo",
	Long: `Start the demo in the alternate screen.

Controls:
  W/A/S/D      - Pan the camera
  Mouse wheel  - Raise/lower the camera
  Esc          - Pause/resume
  Ctrl+C       - Exit
  Ctrl+S       - Save a screenshot to ~/.isotd/screenshots

Examples:
  isotd run
  isotd run --fps 30
  isotd run --size 10 --log ./isotd.log`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	runCmd.Flags().IntVar(&flagFPS, "fps", 0, "Frames per second (0 = runtime.tick_rate from config)")
	runCmd.Flags().IntVar(&flagSize, "size", 0, "Terrain tiles per side (0 = terrain.size from config)")
}

func runDemo(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("size") {
		cfg.Terrain.Size = flagSize
	}

	logger, closer, err := openLogger(flagLogPath)
	if err != nil {
		return err
	}
	defer closer.Close()

	rc := core.DefaultConfig()
	rc.TickRate = cfg.Runtime.TickRate
	if flagFPS > 0 {
		rc.TickRate = flagFPS
	}
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	logger.Info("starting demo",
		"size", cfg.Terrain.Size,
		"fps", rc.TickRate,
		"screen", rc.ScreenW, "rows", rc.ScreenH)

	if err := tui.Run(cfg, rc, logger); err != nil {
		logger.Error("demo stopped", "error", err)
		return err
	}
	logger.Info("demo finished")
	return nil
}
