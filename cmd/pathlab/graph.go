package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathlab/builder"
	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/internal/export"
)

func newGraphCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Generate a random connected graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.randomGraph()
			if err != nil {
				return err
			}
			return export.Encode(a.out, export.NewGraphDocument(g), a.cfg.Output.Pretty)
		},
	}
	addGraphFlags(cmd.Flags())

	return cmd
}

// randomGraph runs the generator with the resolved configuration.
func (a *app) randomGraph() (*core.Graph, error) {
	gc := a.cfg.Graph
	idFn, ok := builder.IDScheme(gc.IDScheme)
	if !ok {
		return nil, fmt.Errorf("unknown id scheme %q", gc.IDScheme)
	}
	if gc.MinWeight < 0 || gc.MinWeight > gc.MaxWeight {
		return nil, fmt.Errorf("invalid weight range [%d, %d]", gc.MinWeight, gc.MaxWeight)
	}

	g, err := builder.RandomGraph(gc.Nodes, gc.Density, gc.MinValue, gc.MaxValue,
		builder.WithSeed(a.seed()),
		builder.WithIDScheme(idFn),
		builder.WithWeightRange(gc.MinWeight, gc.MaxWeight),
		builder.WithLogger(a.logger),
	)
	if err != nil {
		return nil, err
	}
	a.logger.Info().Int("nodes", g.NodeCount()).Int("edges", g.EdgeCount()).Msg("graph generated")

	return g, nil
}
