package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"fedcurve/core"
	"fedcurve/internal/contract"
	"fedcurve/internal/raster"
)

// previewCmd renders only the static preview frame.
var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render the static preview frame as a PNG.",
	Long: `Render the standalone preview frame without producing the animation.

The preview shows every chair's completed tenure as a filled polygon on one
chart, which is useful for checking data coverage and palette choices before
committing to a full render.

Examples:
  # Write phillips_preview.png in the current directory
  fedcurve preview

  # Choose the output path
  fedcurve preview --png docs/overview.png`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		backend, err := raster.NewBackend(cfg.ImageWidth, cfg.ImageHeight)
		if err != nil {
			contract.LogFatal("Cannot initialize renderer", err)
		}
		img, err := core.ExecutePreview(rootCtx, cfg, backend)
		if err != nil {
			contract.LogFatal("Cannot render preview", err)
		}
		if err := raster.SavePNG(img, cfg.PNGPath); err != nil {
			contract.LogFatal("Cannot write preview PNG", err)
		}
		fmt.Printf("Wrote preview to %s\n", cfg.PNGPath)
	},
}
