package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/godim/internal/app"
)

var (
	viewWidth, viewHeight int32
	viewExtent            float64
	viewSnapshotDir       string
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Open the interactive measurement window",
	Long: `Open a window showing the XY measurement plane. Left click places the
first point, moving the mouse previews the segment and a second left click
commits the dimension. Escape cancels a measurement in progress.`,
	Args: cobra.NoArgs,
	Run:  runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)

	viewCmd.Flags().Int32Var(&viewWidth, "width", 1400, "window width")
	viewCmd.Flags().Int32Var(&viewHeight, "height", 900, "window height")
	viewCmd.Flags().Float64Var(&viewExtent, "extent", 5, "half size of the grid in world units")
	viewCmd.Flags().StringVar(&viewSnapshotDir, "snapshot-dir", ".", "directory for snapshots taken with P")
}

func runView(cmd *cobra.Command, args []string) {
	labels, err := newLabels()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating label renderer: %v\n", err)
		os.Exit(1)
	}
	defer labels.Cleanup()

	err = app.Run(app.Options{
		Width:       viewWidth,
		Height:      viewHeight,
		Style:       style,
		Labels:      labels,
		Logger:      logger.Named("view"),
		Extent:      viewExtent,
		SnapshotDir: viewSnapshotDir,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
