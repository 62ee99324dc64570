package cmd

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/cbsinteractive/annotate/timecode"
	"github.com/spf13/cobra"
)

func (a *app) parseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <timecode>...",
		Short: "Show seconds, formatted timecodes and frames for each argument",
		Long: `Each argument is either a number of seconds or a MM:SS or HH:MM:SS
timecode. The frame number and SMPTE timecode use --rate.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rate, err := a.rate(cmd)
			if err != nil {
				return err
			}
			hours, _ := cmd.Flags().GetBool("hours")
			precision, _ := cmd.Flags().GetInt("precision")

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "INPUT\tSECONDS\tTIMECODE\tPRECISE\tFRAME\tSMPTE")
			for _, arg := range args {
				t, err := timecode.Parse(arg)
				if err != nil {
					return err
				}
				n, err := t.Frame(rate)
				if err != nil {
					return err
				}
				smpte, err := t.SMPTE(rate)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%g\t%s\t%s\t%d\t%s\n",
					arg, t.Seconds(), t.Format(hours), t.FormatPrecise(precision, hours), n, smpte)
			}
			return w.Flush()
		},
	}
	rateFlag(cmd)
	cmd.Flags().Bool("hours", false, "always include the hours field")
	cmd.Flags().IntP("precision", "p", timecode.DefaultPrecision, "decimal places of the precise timecode")
	return cmd
}

func (a *app) frameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "frame <timecode>",
		Short: "Show the frame at a timecode, or the time of a frame number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rate, err := a.rate(cmd)
			if err != nil {
				return err
			}
			byNumber, _ := cmd.Flags().GetBool("number")

			var f timecode.Frame
			if byNumber {
				n, perr := strconv.ParseInt(args[0], 10, 64)
				if perr != nil {
					return timecode.Invalid("frame number %q is not an integer", args[0])
				}
				f, err = timecode.FrameFromNumber(n, rate)
			} else {
				var t timecode.Timecode
				if t, err = timecode.Parse(args[0]); err == nil {
					f, err = timecode.FrameAt(t, rate)
				}
			}
			if err != nil {
				return err
			}
			smpte, err := f.Aligned().SMPTE(rate)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", f)
			fmt.Fprintf(out, "aligned: %s (%gs)\n", f.Aligned().FormatPrecise(3, false), f.Aligned().Seconds())
			fmt.Fprintf(out, "smpte:   %s\n", smpte)
			return nil
		},
	}
	rateFlag(cmd)
	cmd.Flags().BoolP("number", "n", false, "the argument is a frame number")
	return cmd
}

func (a *app) smpteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "smpte <HH:MM:SS:FF>",
		Short: "Convert a SMPTE timecode to seconds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rate, err := a.rate(cmd)
			if err != nil {
				return err
			}
			t, err := timecode.ParseSMPTE(args[0], rate)
			if err != nil {
				return err
			}
			n, err := t.Frame(rate)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%g\t%s\tframe %d\n", t.Seconds(), t.FormatPrecise(3, true), n)
			return nil
		},
	}
	rateFlag(cmd)
	return cmd
}
