package main

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/pathlab/internal/config"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	out     io.Writer
	errOut  io.Writer
	cfgPath string
	cfg     *config.Config
	logger  zerolog.Logger
}

// flagKeys maps CLI flag names to config keys.
var flagKeys = map[string]string{
	"log-level":  "log.level",
	"log-format": "log.format",
	"pretty":     "output.pretty",
	"nodes":      "graph.nodes",
	"density":    "graph.density",
	"min-value":  "graph.min_value",
	"max-value":  "graph.max_value",
	"min-weight": "graph.min_weight",
	"max-weight": "graph.max_weight",
	"seed":       "graph.seed",
	"id-scheme":  "graph.id_scheme",
	"source":     "dijkstra.source",
	"target":     "dijkstra.target",
	"tie-break":  "dijkstra.tie_break",
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}
	d := config.Defaults()

	rootCmd := &cobra.Command{
		Use:          "pathlab",
		Short:        "Educational shortest-path engine",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd.Flags())
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "Config file path (YAML)")
	pf.String("log-level", d.Log.Level, "Log level (debug, info, warn, error)")
	pf.String("log-format", d.Log.Format, "Log format (console, json)")
	pf.Bool("pretty", d.Output.Pretty, "Indent JSON output")

	rootCmd.AddCommand(newGraphCmd(a), newDijkstraCmd(a), newGridCmd(a))

	return rootCmd
}

// addGraphFlags registers the generator flags shared by graph and dijkstra.
func addGraphFlags(fs *pflag.FlagSet) {
	d := config.Defaults().Graph
	fs.Int("nodes", d.Nodes, "Number of vertices")
	fs.Float64("density", d.Density, "Edge density in [0,1]")
	fs.Int("min-value", d.MinValue, "Smallest vertex value")
	fs.Int("max-value", d.MaxValue, "Largest vertex value")
	fs.Int("min-weight", d.MinWeight, "Smallest edge weight")
	fs.Int("max-weight", d.MaxWeight, "Largest edge weight")
	fs.Int64("seed", d.Seed, "RNG seed (0 picks one from the clock)")
	fs.String("id-scheme", d.IDScheme, "Vertex labels: decimal, letters or prefix:<p>")
}

// load resolves configuration and builds the logger.
func (a *app) load(fs *pflag.FlagSet) error {
	bound := make(map[string]*pflag.Flag, len(flagKeys))
	for name, key := range flagKeys {
		if f := fs.Lookup(name); f != nil {
			bound[key] = f
		}
	}
	cfg, err := config.Load(a.cfgPath, bound)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := newLogger(cfg.Log, a.errOut)
	if err != nil {
		return err
	}
	a.logger = logger
	for _, w := range cfg.Validate() {
		a.logger.Warn().Msg(w)
	}

	return nil
}

// newLogger builds the root logger from configuration.
func newLogger(lc config.LogConfig, w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(lc.Level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("log level: %w", err)
	}
	if lc.Format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: true}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}

// seed returns the configured seed, or a clock-derived one when it is 0.
func (a *app) seed() int64 {
	if a.cfg.Graph.Seed != 0 {
		return a.cfg.Graph.Seed
	}
	s := time.Now().UnixNano()
	a.logger.Info().Int64("seed", s).Msg("using clock seed")

	return s
}
