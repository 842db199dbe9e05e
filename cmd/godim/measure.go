package main

import (
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/godim/internal/measurement"
	"github.com/philipparndt/godim/internal/system"
	"github.com/philipparndt/godim/pkg/analysis"
	"github.com/philipparndt/godim/pkg/geometry"
	"github.com/philipparndt/godim/pkg/scene"
)

var (
	point1X, point1Y, point1Z float64
	point2X, point2Y, point2Z float64
	measureSnapshot           string
)

var measureCmd = &cobra.Command{
	Use:   "measure",
	Short: "Build the dimension annotation between two points",
	Long: `Build the dimension annotation between two points and print its parts:
extension lines, dimension line, arrowheads and the label placement.`,
	Args: cobra.NoArgs,
	Run:  runMeasure,
}

func init() {
	rootCmd.AddCommand(measureCmd)

	measureCmd.Flags().Float64Var(&point1X, "x1", 0.0, "X coordinate of first point")
	measureCmd.Flags().Float64Var(&point1Y, "y1", 0.0, "Y coordinate of first point")
	measureCmd.Flags().Float64Var(&point1Z, "z1", 0.0, "Z coordinate of first point")
	measureCmd.Flags().Float64Var(&point2X, "x2", 0.0, "X coordinate of second point")
	measureCmd.Flags().Float64Var(&point2Y, "y2", 0.0, "Y coordinate of second point")
	measureCmd.Flags().Float64Var(&point2Z, "z2", 0.0, "Z coordinate of second point")
	measureCmd.Flags().StringVarP(&measureSnapshot, "snapshot", "o", "", "write a snapshot image (.png, .webp, .tga)")
}

func runMeasure(cmd *cobra.Command, args []string) {
	p1 := geometry.NewVector3(point1X, point1Y, point1Z)
	p2 := geometry.NewVector3(point2X, point2Y, point2Z)

	labels, err := newLabels()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating label renderer: %v\n", err)
		os.Exit(1)
	}

	graph := scene.NewGraph()
	tool := measurement.NewInteractor(
		measurement.WithStyle(style),
		measurement.WithLogger(logger.Named("measure")),
		measurement.WithLabelFactory(labels),
	)
	tool.Init(system.Dependencies{Scene: graph})
	tool.Activate()
	defer tool.Dispose()

	tool.HandleEvent(system.CategoryMouse, system.Click(p1))
	tool.HandleEvent(system.CategoryMouse, system.Click(p2))

	m := tool.Measurements()[0]
	printAnnotation(m.Annotation)

	if measureSnapshot != "" {
		if err := writeSnapshot(graph, measureSnapshot); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing snapshot: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nSnapshot written to %s\n", measureSnapshot)
	}
}

func printAnnotation(a measurement.Annotation) {
	fmt.Println("Point-to-Point Dimension")
	fmt.Println("========================")

	fmt.Printf("\nStart:      %s\n", analysis.FormatVector(a.Start))
	fmt.Printf("End:        %s\n", analysis.FormatVector(a.End))
	fmt.Printf("Distance:   %.6f\n", a.RawDistance)
	fmt.Printf("Label:      %s (snap %g)\n", a.Text, style.SnapIncrement)

	fmt.Printf("\nDirection:  %s\n", analysis.FormatVector(a.Direction))
	fmt.Printf("Normal:     %s\n", analysis.FormatVector(a.Normal))

	fmt.Println("\nExtension lines:")
	for _, ext := range a.Extensions {
		fmt.Printf("  %s -> %s\n", analysis.FormatVector(ext.Start), analysis.FormatVector(ext.End))
	}
	fmt.Printf("Dimension line:\n  %s -> %s\n", analysis.FormatVector(a.Dimension.Start), analysis.FormatVector(a.Dimension.End))

	fmt.Println("Arrowheads:")
	for _, head := range a.Arrows {
		fmt.Printf("  at %s pointing %s\n", analysis.FormatVector(head.Position), analysis.FormatVector(head.Direction))
	}

	fmt.Printf("\nLabel placement: %s at %s, rotation %.1f° (segment angle %.1f°)\n",
		a.Label.Tier, analysis.FormatVector(a.Label.Position), a.Label.Rotation*180/math.Pi, a.Label.Angle)
}
