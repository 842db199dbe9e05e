package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/philipparndt/godim/internal/config"
	"github.com/philipparndt/godim/internal/logging"
	"github.com/philipparndt/godim/pkg/text"
	"github.com/philipparndt/godim/version"
)

var (
	configPath    string
	logLevel      string
	snapIncrement float64
	unit          string
	precision     int

	style  = config.Default()
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "godim",
	Short: "Two-point distance measurement with dimension annotations",
	Long: `godim measures the distance between two points on a plane and draws a
dimension annotation for it: extension lines, a dimension line with arrowheads
and a snapped distance label. Measurements can be taken interactively, replayed
from YAML event scripts and exported as PNG, WebP or TGA snapshots.`,
	Version:           version.GetFullVersion(),
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "style file (YAML)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Float64Var(&snapIncrement, "snap", 0, "snap increment for displayed distances (overrides the style)")
	rootCmd.PersistentFlags().StringVar(&unit, "unit", "", "display unit (overrides the style)")
	rootCmd.PersistentFlags().IntVar(&precision, "precision", -1, "decimal places of the label (overrides the style)")

	_ = rootCmd.RegisterFlagCompletionFunc("config", yamlFiles)
	_ = rootCmd.RegisterFlagCompletionFunc("log-level", cobra.FixedCompletions(
		[]string{"debug", "info", "warn", "error"}, cobra.ShellCompDirectiveNoFileComp))
}

func yamlFiles(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{"yaml", "yml"}, cobra.ShellCompDirectiveFilterFileExt
}

// setup builds the logger and resolves the style from file and flags
func setup(cmd *cobra.Command, args []string) error {
	l, err := logging.New(logLevel)
	if err != nil {
		return err
	}
	logger = l

	s, err := loadStyle()
	if err != nil {
		return err
	}
	style = s
	logger.Debug("style resolved",
		zap.String("config", configPath),
		zap.Float64("snap", style.SnapIncrement),
		zap.String("unit", style.Unit),
	)
	return nil
}

func loadStyle() (config.Style, error) {
	s := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return config.Style{}, err
		}
		s = loaded
	}
	s.Resolve(config.Overrides{
		SnapIncrement: snapIncrement,
		Unit:          unit,
		Precision:     precision,
	})
	if err := s.Validate(); err != nil {
		return config.Style{}, fmt.Errorf("config: %w", err)
	}
	return s, nil
}

// newLabels builds the label rasterizer for the current style
func newLabels() (*text.Rasterizer, error) {
	opts := text.DefaultOptions()
	opts.Foreground = style.LabelColor.ToRGBA()
	opts.WorldHeight = style.LabelHeight
	return text.NewRasterizer(opts)
}

func main() {
	err := rootCmd.Execute()
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
