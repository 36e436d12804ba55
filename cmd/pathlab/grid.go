package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathlab/gridpath"
	"github.com/katalvlaran/pathlab/internal/export"
)

func newGridCmd(a *app) *cobra.Command {
	var (
		file   string
		inline string
	)

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Solve a right/down grid shortest path",
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, err := readGrid(file, inline)
			if err != nil {
				return err
			}
			res, err := gridpath.ShortestPath(grid)
			if err != nil {
				return err
			}
			a.logger.Info().Float64("cost", res.Cost).Int("cells", len(res.Path)).Msg("grid solved")

			return export.Encode(a.out, export.NewGridDocument(grid, res), a.cfg.Output.Pretty)
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "JSON file holding the grid")
	cmd.Flags().StringVar(&inline, "grid", "", `Inline grid, rows split by ';' and cells by ',' (e.g. "1,3;2,1")`)

	return cmd
}

// readGrid loads the grid from exactly one of file or inline.
func readGrid(file, inline string) ([][]float64, error) {
	switch {
	case file != "" && inline != "":
		return nil, errors.New("use either --file or --grid, not both")
	case inline != "":
		return export.ParseGrid(inline)
	case file != "":
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("opening grid file: %w", err)
		}
		defer f.Close()
		return export.DecodeGrid(f)
	default:
		return nil, errors.New("one of --file or --grid is required")
	}
}
