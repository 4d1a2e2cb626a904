package main

import (
	"errors"
	"fmt"

	borehole "github.com/flywave/go-borehole"
	"github.com/spf13/cobra"
)

func newMDCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "md TVD...",
		Short: "Print the measured depth for each true vertical depth",
		Long: `Prints one line per true vertical depth with the approximate measured depth
of its first crossing, or n/a when the borehole never reaches it.`,
		Args: cobra.MinimumNArgs(1),
		RunE: a.runMD,
	}
}

func (a *app) runMD(cmd *cobra.Command, args []string) error {
	depths, err := parseDepths(args)
	if err != nil {
		return err
	}

	stations, err := borehole.LoadGeometryFile(a.cfg.Geometry)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, tvd := range depths {
		var res *float64
		md, err := stations.MDFromTVD(tvd)
		switch {
		case err == nil:
			res = &md
		case errors.Is(err, borehole.ErrOutOfRange):
			a.log.DebugContext(cmd.Context(), "Vertical depth outside geometry", "tvd", tvd)
		default:
			return err
		}
		fmt.Fprintf(out, "%s\t%s\n", args[i], a.formatDepth(res))
	}
	return nil
}
