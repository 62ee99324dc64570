// Package cmd implements the annotate command line.
package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cbsinteractive/annotate/annotation"
	"github.com/cbsinteractive/annotate/av"
	"github.com/cbsinteractive/annotate/config"
	"github.com/cbsinteractive/annotate/db"
	"github.com/cbsinteractive/annotate/timecode"
	"github.com/cbsinteractive/pkg/video"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var Version = "0.1.0"

type app struct {
	cfg *config.Config
	log logrus.FieldLogger
}

// NewRootCmd builds the command tree. Stores are only opened by the
// commands that need one.
func NewRootCmd(cfg *config.Config, log logrus.FieldLogger) *cobra.Command {
	a := &app{cfg: cfg, log: log}
	return a.root()
}

func (a *app) root() *cobra.Command {
	root := &cobra.Command{
		Use:   "annotate",
		Short: "Anchor feedback to video frames, audio regions and video regions",
		Long: `annotate converts between seconds, formatted timecodes, SMPTE timecodes
and frame numbers, decodes timestamp wire maps, and keeps annotations in
SQLite or Redis.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		a.parseCmd(),
		a.frameCmd(),
		a.smpteCmd(),
		a.decodeCmd(),
		a.overlapCmd(),
		a.addCmd(),
		a.putCmd(),
		a.getCmd(),
		a.deleteCmd(),
		a.listCmd(),
		versionCmd(),
	)
	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "annotate version %s\n", Version)
		},
	}
}

func (a *app) decoder() annotation.Decoder {
	return annotation.Decoder{DefaultFrameRate: a.cfg.DefaultFrameRate}
}

// openStore opens the store selected by the configuration.
func (a *app) openStore() (db.Store, error) {
	switch a.cfg.Store {
	case config.StoreRedis:
		return db.NewRedis(&a.cfg.Redis, a.decoder(), a.log), nil
	case config.StoreSQLite:
		return db.OpenSQLite(a.cfg.SQLitePath, a.decoder(), a.log)
	}
	return nil, errors.Errorf("unknown store %q", a.cfg.Store)
}

// rate returns the --rate flag, falling back to the configured default.
// rate reads --rate as frames per second (29.97) or as a fraction
// (30000/1001).
func (a *app) rate(cmd *cobra.Command) (float64, error) {
	s, _ := cmd.Flags().GetString("rate")
	if s == "" {
		return a.cfg.DefaultFrameRate, nil
	}
	if num, den, ok := strings.Cut(s, "/"); ok {
		n, nerr := strconv.Atoi(num)
		d, derr := strconv.Atoi(den)
		if nerr != nil || derr != nil {
			return 0, timecode.Invalid("frame rate %q is not a fraction", s)
		}
		return av.Rate(video.Framerate{Numerator: n, Denominator: d})
	}
	r, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, timecode.Invalid("frame rate %q is not a number", s)
	}
	return r, timecode.CheckRate(r)
}

func rateFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("rate", "r", "", "frame rate, as fps or num/den (default from ANNOTATE_DEFAULT_FRAME_RATE)")
}
