package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathlab/builder"
	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/dijkstra"
	"github.com/katalvlaran/pathlab/internal/config"
	"github.com/katalvlaran/pathlab/internal/export"
)

func newDijkstraCmd(a *app) *cobra.Command {
	var (
		noSteps bool
		sample  bool
	)
	d := config.Defaults().Dijkstra

	cmd := &cobra.Command{
		Use:   "dijkstra",
		Short: "Run Dijkstra and print every recorded step",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("no-steps") {
				a.cfg.Dijkstra.Steps = !noSteps
			}

			var (
				g   *core.Graph
				err error
			)
			if sample {
				g = builder.SampleGraph()
			} else if g, err = a.randomGraph(); err != nil {
				return err
			}

			dc := a.cfg.Dijkstra
			rule, ok := dijkstra.ParseTieBreak(dc.TieBreak)
			if !ok {
				return fmt.Errorf("unknown tie-break rule %q", dc.TieBreak)
			}
			opts := []dijkstra.Option{dijkstra.WithTieBreak(rule), dijkstra.WithLogger(a.logger)}
			if dc.Target != "" {
				opts = append(opts, dijkstra.WithTarget(dc.Target))
			}
			if !dc.Steps {
				opts = append(opts, dijkstra.WithoutSteps())
			}

			res, err := dijkstra.Run(g, dc.Source, opts...)
			if err != nil {
				return err
			}
			a.logger.Info().Str("source", res.Source).Int("finalized", len(res.Order)).Msg("dijkstra done")

			doc := struct {
				Graph    export.GraphDocument    `json:"graph"`
				Dijkstra export.DijkstraDocument `json:"dijkstra"`
			}{export.NewGraphDocument(g), export.NewDijkstraDocument(res)}

			return export.Encode(a.out, doc, a.cfg.Output.Pretty)
		},
	}

	fs := cmd.Flags()
	addGraphFlags(fs)
	fs.String("source", d.Source, "Source vertex")
	fs.String("target", d.Target, "Target vertex (optional)")
	fs.String("tie-break", d.TieBreak, "Tie-break rule: insertion or natural")
	fs.BoolVar(&noSteps, "no-steps", false, "Skip step snapshots")
	fs.BoolVar(&sample, "sample", false, "Use the built-in five-vertex sample graph")

	return cmd
}
