package main

import (
	"log/slog"
	"strconv"

	"github.com/flywave/go-borehole/internal/config"
	"github.com/flywave/go-borehole/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type app struct {
	v   *viper.Viper
	cfg *config.Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:               "boreholedepth",
		Short:             "Convert between measured and true vertical depth of a borehole",
		Long:              `Converts depths along a borehole using its directional survey and the minimum curvature method.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringP("geometry", "g", "", "YAML file with the survey stations of the borehole")
	flags.Int("precision", 3, "decimals printed for depths")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.String("log-format", "text", "log format: text or json")

	_ = a.v.BindPFlag("geometry", flags.Lookup("geometry"))
	_ = a.v.BindPFlag("precision", flags.Lookup("precision"))
	_ = a.v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("log.format", flags.Lookup("log-format"))

	root.AddCommand(newTVDCmd(a), newMDCmd(a), newValidateCmd(a))
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	a.log.DebugContext(cmd.Context(), "Configuration loaded", "geometry", cfg.Geometry)
	return nil
}

func (a *app) formatDepth(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return strconv.FormatFloat(*v, 'f', a.cfg.Precision, 64)
}
