package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridbfs/bfs"
	"github.com/katalvlaran/gridbfs/internal/logger"
	"github.com/katalvlaran/gridbfs/render"
)

func componentsCmd() *cobra.Command {
	var file string

	c := &cobra.Command{
		Use:   "components",
		Short: "Label the connected regions of passable cells",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, g, err := loadGrid(file)
			if err != nil {
				return err
			}
			comps, err := bfs.Components(g)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "components: %d\n", len(comps))
			for k, comp := range comps {
				fmt.Fprintf(out, "%c: %d cells from %v\n", render.RegionLabel(k), len(comp), comp[0])
			}
			logger.L().Info("components.done", "file", file, "count", len(comps))
			return render.NewPrinter(out).Components(g, comps)
		},
	}

	c.Flags().StringVarP(&file, "file", "f", "", "Grid document (YAML, required)")
	_ = c.MarkFlagRequired("file")
	return c
}
