// Command puzzlebox generates a puzzle dungeon from a state-variable
// description and prints it.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/puzzlebox/config"
	"github.com/katalvlaran/puzzlebox/dungeon"
	"github.com/katalvlaran/puzzlebox/render"
)

var version = "dev"

var (
	// Global flags
	verbose bool

	// Generate flags
	configPath string
	seed       int64
	width      int
	height     int
	strategy   string
	goals      []string
	plain      bool
	format     string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "puzzlebox",
	Short: "Procedural puzzle dungeon generator",
	Long: `puzzlebox turns a set of state variables (switches, levers, dials)
into a dungeon: a walk through the state graph decides which mechanisms the
player operates, the room grid is split into one enclave per mechanism, and
every pair of enclaves gets the weakest lock that keeps the walk honest.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a dungeon and print it",
	Long: `Generates a dungeon from a YAML description (--config) or from the
built-in dial-and-switch example. Flags override values from the file.

Example:
  puzzlebox generate --seed 42 --width 8 --height 6 --goal 2,1`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "puzzlebox", version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	generateCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML dungeon description")
	generateCmd.Flags().Int64Var(&seed, "seed", 0, "Random seed (0 uses the default seed)")
	generateCmd.Flags().IntVar(&width, "width", 0, "Grid width in rooms")
	generateCmd.Flags().IntVar(&height, "height", 0, "Grid height in rooms")
	generateCmd.Flags().StringVar(&strategy, "strategy", "", "Path strategy: goal or random")
	generateCmd.Flags().StringArrayVar(&goals, "goal", nil, "Goal state as comma-separated values (repeatable)")
	generateCmd.Flags().BoolVar(&plain, "plain", false, "Disable colors")
	generateCmd.Flags().StringVar(&format, "format", "text", "Output format: text or yaml")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runGenerate loads the description, applies flag overrides, generates and prints.
func runGenerate(cmd *cobra.Command, args []string) error {
	file := config.Default()
	if configPath != "" {
		var err error
		if file, err = config.Load(configPath); err != nil {
			return err
		}
		logger.Debug("Loaded configuration", zap.String("path", configPath))
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		file.Seed = seed
	}
	if flags.Changed("width") {
		file.Grid.Width = width
	}
	if flags.Changed("height") {
		file.Grid.Height = height
	}
	if flags.Changed("strategy") {
		file.Strategy = strategy
	}
	if flags.Changed("goal") {
		parsed, err := parseGoals(goals)
		if err != nil {
			return err
		}
		file.Goals = parsed
	}

	cfg, err := file.ToConfig()
	if err != nil {
		return err
	}
	d, err := dungeon.Generate(cfg, dungeon.WithLogger(logger))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch format {
	case "text":
		styles := render.DefaultStyles()
		if plain {
			styles = render.PlainStyles()
		}
		return render.Text(out, d, styles)
	case "yaml":
		return render.YAML(out, d)
	default:
		return fmt.Errorf("%w: unknown format %q", config.ErrConfiguration, format)
	}
}

// parseGoals turns "2,1" strings into goal vectors.
func parseGoals(raw []string) ([][]int, error) {
	out := make([][]int, 0, len(raw))
	for _, g := range raw {
		var goal []int
		for _, part := range strings.Split(g, ",") {
			v, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				return nil, fmt.Errorf("%w: goal %q: %v", config.ErrConfiguration, g, err)
			}
			goal = append(goal, v)
		}
		out = append(out, goal)
	}
	return out, nil
}
