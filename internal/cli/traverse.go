package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridbfs/bfs"
	"github.com/katalvlaran/gridbfs/gridgraph"
	"github.com/katalvlaran/gridbfs/gridio"
	"github.com/katalvlaran/gridbfs/internal/logger"
	"github.com/katalvlaran/gridbfs/render"
)

func traverseCmd() *cobra.Command {
	var file string
	var start string
	var showMap bool

	c := &cobra.Command{
		Use:   "traverse",
		Short: "Print every cell reachable from the start, in BFS order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, g, err := loadGrid(file)
			if err != nil {
				return err
			}

			from := doc.StartCoordinate()
			if start != "" {
				if from, err = parseCoordinate(start); err != nil {
					return err
				}
			}

			log := logger.L().With("file", file, "start", from.String())
			log.Info("traverse.start", "rows", g.Rows(), "cols", g.Cols())

			seq, err := bfs.Walk(g, from)
			if err != nil {
				log.Error("traverse.invalid_start", "err", err)
				return err
			}
			p := render.NewPrinter(cmd.OutOrStdout())
			if err := p.Trace(from, seq); err != nil {
				return err
			}

			if showMap {
				res, err := bfs.Traverse(g, from)
				if err != nil {
					return err
				}
				if err := p.Map(g, res); err != nil {
					return err
				}
				log.Info("traverse.done", "visited", res.Len(), "passable", g.PassableCount())
				return nil
			}
			log.Info("traverse.done")
			return nil
		},
	}

	c.Flags().StringVarP(&file, "file", "f", "", "Grid document (YAML, required)")
	c.Flags().StringVarP(&start, "start", "s", "", "Start cell as row,col (overrides the document)")
	c.Flags().BoolVar(&showMap, "map", false, "Also draw the grid with visited cells marked")

	_ = c.MarkFlagRequired("file")
	return c
}

func loadGrid(path string) (*gridio.Document, *gridgraph.Grid, error) {
	doc, err := gridio.Load(path)
	if err != nil {
		return nil, nil, err
	}
	g, err := doc.Grid()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.L().Debug("grid.loaded", "file", path, "name", doc.Name, "cells", g.Size())
	return doc, g, nil
}

// parseCoordinate reads "row,col".
func parseCoordinate(s string) (gridgraph.Coordinate, error) {
	rs, cs, ok := strings.Cut(s, ",")
	if !ok {
		return gridgraph.Coordinate{}, fmt.Errorf("invalid coordinate %q: want row,col", s)
	}
	r, err := strconv.Atoi(strings.TrimSpace(rs))
	if err != nil {
		return gridgraph.Coordinate{}, fmt.Errorf("invalid row in %q: %w", s, err)
	}
	c, err := strconv.Atoi(strings.TrimSpace(cs))
	if err != nil {
		return gridgraph.Coordinate{}, fmt.Errorf("invalid col in %q: %w", s, err)
	}
	return gridgraph.At(r, c), nil
}
