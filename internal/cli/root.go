// Package cli is the sortviz command line.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"sortviz/app"
	"sortviz/hal"
	"sortviz/internal/buildinfo"
	"sortviz/sorting"
)

// ErrTooManyArgs is returned when more than one positional argument is given.
var ErrTooManyArgs = errors.New("too many arguments provided (use `help` to see usage)")

// RootOptions holds flags that are not part of app.Config.
type RootOptions struct {
	ConfigFile string
	Verbose    bool
}

// NewRootCommand creates the sortviz command. window may be nil in builds
// without a window backend; only --headless runs work then.
func NewRootCommand(window hal.WindowRunner) *cobra.Command {
	opts := &RootOptions{}
	cfg := app.DefaultConfig()

	cmd := &cobra.Command{
		Use:           "sortviz [flags] [ALGORITHM]",
		Short:         "Animate an in-place sort of random bars",
		Long:          "sortviz fills a window with random bars and animates bubble sort or quick sort over them, one comparison per frame step.",
		Version:       buildinfo.Long(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return ErrTooManyArgs
			}
			if len(args) == 1 && args[0] == "help" {
				printUsage(cmd.OutOrStdout())
				return nil
			}

			final, err := resolveConfig(cmd, opts, cfg)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				alg, err := sorting.ParseAlgorithm(args[0])
				if err != nil {
					return fmt.Errorf("%w (use `help` to see available ones)", err)
				}
				final.Algorithm = alg
			}

			log := newLogger(cmd.ErrOrStderr(), opts.Verbose)
			defer func() { _ = log.Sync() }()

			return app.Run(cmd.Context(), final, app.Options{
				Log:    log,
				Out:    cmd.OutOrStdout(),
				Window: window,
			})
		},
	}

	// -h is height; help stays reachable as --help.
	cmd.Flags().Bool("help", false, "help for sortviz")

	f := cmd.Flags()
	f.IntVarP(&cfg.Width, "width", "w", cfg.Width, "number of bars (sequence length)")
	f.IntVarP(&cfg.Height, "height", "h", cfg.Height, "window height; values are drawn from [1, HEIGHT-1]")
	f.Float64VarP(&cfg.Scale, "scale", "s", cfg.Scale, "window scale factor")
	f.IntVarP(&cfg.Delay, "delay", "d", cfg.Delay, "delay per step in milliseconds")
	f.BoolVar(&cfg.Headless, "headless", cfg.Headless, "run without a window and exit when sorted")
	f.IntVar(&cfg.Hz, "hz", cfg.Hz, "frames per second")
	f.IntVar(&cfg.Batch, "batch", cfg.Batch, "steps per frame when delay is 0")
	f.BoolVar(&cfg.HUD, "hud", cfg.HUD, "show the algorithm and step counter (toggle with Tab)")
	f.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 = derive from the clock)")
	f.StringVar(&opts.ConfigFile, "config", "", "YAML config file; flags override its values")
	f.BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging")

	return cmd
}

// resolveConfig layers defaults, the config file and explicitly set flags.
func resolveConfig(cmd *cobra.Command, opts *RootOptions, flags app.Config) (app.Config, error) {
	cfg := app.DefaultConfig()
	if opts.ConfigFile != "" {
		data, err := os.ReadFile(opts.ConfigFile)
		if err != nil {
			return app.Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return app.Config{}, fmt.Errorf("parse config %s: %w", opts.ConfigFile, err)
		}
	}

	set := cmd.Flags().Changed
	if set("width") {
		cfg.Width = flags.Width
	}
	if set("height") {
		cfg.Height = flags.Height
	}
	if set("scale") {
		cfg.Scale = flags.Scale
	}
	if set("delay") {
		cfg.Delay = flags.Delay
	}
	if set("headless") {
		cfg.Headless = flags.Headless
	}
	if set("hz") {
		cfg.Hz = flags.Hz
	}
	if set("batch") {
		cfg.Batch = flags.Batch
	}
	if set("hud") {
		cfg.HUD = flags.HUD
	}
	if set("seed") {
		cfg.Seed = flags.Seed
	}
	return cfg, nil
}

func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), level)
	return zap.New(core)
}

func printUsage(w io.Writer) {
	def := app.DefaultConfig()
	fmt.Fprintln(w, "Usage: sortviz [-w WIDTH] [-h HEIGHT] [-s SCALE] [-d DELAY] [ALGORITHM]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Default values:")
	fmt.Fprintf(w, "  WIDTH -- %d\n", def.Width)
	fmt.Fprintf(w, "  HEIGHT -- %d\n", def.Height)
	fmt.Fprintf(w, "  SCALE -- %g\n", def.Scale)
	fmt.Fprintf(w, "  DELAY -- %d\n", def.Delay)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Available algorithms:")
	for _, a := range sorting.Algorithms {
		suffix := ""
		if a == def.Algorithm {
			suffix = " (default)"
		}
		fmt.Fprintf(w, "  %s%s -- %s\n", capitalize(a.String()), suffix, a.Short())
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Keys: Space pause/resume, Enter single step while paused, Tab HUD, Esc quit.")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
