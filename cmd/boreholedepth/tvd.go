package main

import (
	"fmt"
	"strconv"

	borehole "github.com/flywave/go-borehole"
	"github.com/spf13/cobra"
)

func newTVDCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tvd MD...",
		Short: "Print the true vertical depth for each measured depth",
		Long: `Prints one line per measured depth with its true vertical depth, or n/a when
the depth lies outside the surveyed span. A borehole with fewer than two
stations is treated as vertical.`,
		Args: cobra.MinimumNArgs(1),
		RunE: a.runTVD,
	}
}

func (a *app) runTVD(cmd *cobra.Command, args []string) error {
	depths, err := parseDepths(args)
	if err != nil {
		return err
	}

	stations, err := borehole.LoadGeometryFile(a.cfg.Geometry)
	if err != nil {
		return err
	}
	a.log.DebugContext(cmd.Context(), "Geometry loaded", "stations", len(stations))

	out := cmd.OutOrStdout()
	for i, md := range depths {
		tvd := stations.TVDFromMDOrDefault(&md)
		if tvd == nil {
			a.log.DebugContext(cmd.Context(), "Measured depth outside geometry", "md", md)
		}
		fmt.Fprintf(out, "%s\t%s\n", args[i], a.formatDepth(tvd))
	}
	return nil
}

func parseDepths(args []string) ([]float64, error) {
	depths := make([]float64, 0, len(args))
	for _, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid depth %q: %w", arg, err)
		}
		depths = append(depths, v)
	}
	return depths, nil
}
