package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/philipparndt/godim/internal/measurement"
	"github.com/philipparndt/godim/internal/script"
	"github.com/philipparndt/godim/internal/system"
	"github.com/philipparndt/godim/pkg/analysis"
	"github.com/philipparndt/godim/pkg/scene"
	"github.com/philipparndt/godim/pkg/snapshot"
	"github.com/philipparndt/godim/pkg/watcher"
)

var (
	replaySnapshot string
	replayWatch    bool
	snapshotWidth  int
	snapshotHeight int
)

var replayCmd = &cobra.Command{
	Use:   "replay <script.yaml>",
	Short: "Replay a YAML event script through the measurement tool",
	Long: `Replay a YAML event script through the measurement tool and print the
committed measurements. With --watch the script (and the style file) are
watched and the replay runs again whenever they change.

Script format:
  events:
    - click: [0, 0, 0]
    - move: [1, 0, 0]
    - click: [1, 0, 0]
    - key: Escape`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: yamlFiles,
	Run:               runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)

	replayCmd.Flags().StringVarP(&replaySnapshot, "snapshot", "o", "", "write a snapshot image (.png, .webp, .tga)")
	replayCmd.Flags().BoolVarP(&replayWatch, "watch", "w", false, "replay again when the script or style file changes")
	replayCmd.Flags().IntVar(&snapshotWidth, "width", 800, "snapshot width in pixels")
	replayCmd.Flags().IntVar(&snapshotHeight, "height", 600, "snapshot height in pixels")
}

func runReplay(cmd *cobra.Command, args []string) {
	path := args[0]

	if err := replay(path); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if !replayWatch {
			os.Exit(1)
		}
	}
	if !replayWatch {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fw, err := watcher.NewFileWatcher(200*time.Millisecond, logger.Named("watch"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer fw.Close()

	files := []string{path}
	if configPath != "" {
		files = append(files, configPath)
	}

	var mu sync.Mutex
	err = fw.Watch(files, func(changed string) {
		mu.Lock()
		defer mu.Unlock()

		fmt.Printf("\n%s changed, replaying\n\n", filepath.Base(changed))
		s, err := loadStyle()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		style = s
		if err := replay(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Watching for changes, press Ctrl+C to stop")
	fw.Run(ctx)
}

// replay plays the script through a fresh registry and prints the result
func replay(path string) error {
	steps, err := script.Load(path)
	if err != nil {
		return err
	}
	labels, err := newLabels()
	if err != nil {
		return fmt.Errorf("failed to create label renderer: %w", err)
	}
	defer labels.Cleanup()

	reg := system.NewRegistry()
	tool := system.CreateReference(reg, func() *measurement.Interactor {
		return measurement.NewInteractor(
			measurement.WithStyle(style),
			measurement.WithLogger(logger.Named("measure")),
			measurement.WithLabelFactory(labels),
		)
	})

	graph := scene.NewGraph()
	reg.InitAll(system.Dependencies{Scene: graph, Camera: scene.NewCamera(graph.Bounds())})
	reg.ActivateAll()
	defer reg.Teardown()

	consumed := script.Play(reg, steps)
	logger.Info("script replayed",
		zap.String("path", path),
		zap.Int("steps", len(steps)),
		zap.Int("consumed", consumed),
	)

	records := analysis.FromMeasurements(tool.Measurements())
	printReport(records, len(steps), consumed, tool.State())

	if replaySnapshot != "" {
		if err := writeSnapshot(graph, replaySnapshot); err != nil {
			return fmt.Errorf("failed to write snapshot: %w", err)
		}
		fmt.Printf("\nSnapshot written to %s\n", replaySnapshot)
	}
	return nil
}

func printReport(records []analysis.Record, steps, consumed int, state measurement.State) {
	fmt.Println("Measurements")
	fmt.Println("============")
	fmt.Printf("Events: %d (%d consumed), final state: %s\n\n", steps, consumed, state)

	if len(records) == 0 {
		fmt.Println("No measurements committed")
		return
	}

	fmt.Printf("%-4s %-28s %-28s %12s %10s %-9s\n", "#", "Start", "End", "Distance", "Label", "Tier")
	for _, r := range records {
		fmt.Printf("%-4d %-28s %-28s %12.6f %10s %-9s\n",
			r.Index, analysis.FormatVector(r.Start), analysis.FormatVector(r.End), r.Length, r.Label, r.Tier)
	}

	s := analysis.Summarize(records)
	fmt.Printf("\nTotal: %d measurement(s), %.6f raw, %s snapped\n",
		s.Count, s.TotalLength, measurement.FormatDistance(s.TotalSnapped, style.Unit, style.Precision))
	fmt.Printf("Shortest: %.6f, longest: %.6f, average: %.6f\n", s.MinLength, s.MaxLength, s.AvgLength)
}

// writeSnapshot renders the graph with a camera framing its contents
func writeSnapshot(graph *scene.Graph, path string) error {
	opts := snapshot.DefaultOptions()
	if snapshotWidth > 0 && snapshotHeight > 0 {
		opts.Width, opts.Height = snapshotWidth, snapshotHeight
	}
	camera := scene.NewCamera(graph.Bounds().Pad(style.Gap + style.LabelOffset + style.LabelHeight))
	img := snapshot.Render(graph.Objects(), camera, opts)
	return snapshot.Save(path, img)
}
