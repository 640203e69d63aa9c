package cmd

import (
	"github.com/spf13/cobra"

	"fedcurve/core"
	"fedcurve/internal/contract"
	"fedcurve/internal/raster"
)

// renderCmd renders the full animated GIF.
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the animated Phillips curve GIF.",
	Long: `Fetch the unemployment and core inflation series, merge them into a
monthly observation table and render the full animation to an animated GIF.

The animation reveals the curve one month per frame, tracing the path under
the sitting Fed Chair. When a chair's tenure ends, its path collapses into a
filled polygon that stays on screen for the rest of the animation. A static
preview frame showing all completed tenures leads the sequence, and the final
frame repeats for a trailing pause.

Examples:
  # Render with defaults (1970 onward, 800x600, 20 fps)
  fedcurve render

  # Render a smaller, faster GIF for a README
  fedcurve render --size 480x360 --fps 10 --out docs/curve.gif

  # Render only the Volcker years
  fedcurve render --start 1979-08-01 --end 1987-08-01

  # Render from cache without touching the network
  fedcurve render --offline`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		backend, err := raster.NewBackend(cfg.ImageWidth, cfg.ImageHeight)
		if err != nil {
			contract.LogFatal("Cannot initialize renderer", err)
		}
		sink := raster.NewGIFSink(cfg.GIFPath, cfg.FPS)
		if err := core.ExecuteRender(rootCtx, cfg, backend, sink); err != nil {
			contract.LogFatal("Cannot render animation", err)
		}
	},
}
