package main

import (
	"fmt"
	"os"

	borehole "github.com/flywave/go-borehole"
	"github.com/spf13/cobra"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check that the geometry file is ordered by measured depth",
		Args:  cobra.NoArgs,
		RunE:  a.runValidate,
	}
}

func (a *app) runValidate(cmd *cobra.Command, _ []string) error {
	f, err := os.Open(a.cfg.Geometry)
	if err != nil {
		return fmt.Errorf("failed to open geometry: %w", err)
	}
	defer f.Close()

	stations, err := borehole.DecodeGeometry(f)
	if err != nil {
		return err
	}
	if err := stations.Validate(); err != nil {
		a.log.ErrorContext(cmd.Context(), "Geometry is invalid", "file", a.cfg.Geometry, "error", err)
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "OK: %s (%d stations)\n", a.cfg.Geometry, len(stations))
	return nil
}
