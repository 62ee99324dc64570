package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"strconv"
	"strings"

	"github.com/cbsinteractive/annotate/annotation"
	"github.com/cbsinteractive/annotate/av"
	"github.com/cbsinteractive/annotate/timecode"
	"github.com/cbsinteractive/annotate/wire"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// readTimestamp decodes the wire map named by src: inline JSON, a file
// path, or "-" for stdin.
func (a *app) readTimestamp(cmd *cobra.Command, src string) (annotation.Timestamp, error) {
	var (
		data []byte
		err  error
	)
	switch {
	case strings.HasPrefix(strings.TrimSpace(src), "{"):
		data = []byte(src)
	case src == "" || src == "-":
		data, err = ioutil.ReadAll(cmd.InOrStdin())
	default:
		data, err = ioutil.ReadFile(src)
	}
	if err != nil {
		return annotation.Timestamp{}, errors.Wrap(err, "reading timestamp")
	}
	m, err := wire.Parse(data)
	if err != nil {
		return annotation.Timestamp{}, err
	}
	return a.decoder().Decode(m)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func (a *app) decodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode [json|file|-]",
		Short: "Decode a timestamp wire map and print its canonical form",
		Long: `Video regions also print their fractional frame rate and SMPTE in and
out points. With --frame WxH, the crop that cuts the region out of a frame of
that size is printed too, along with the same-aspect box around it.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := "-"
			if len(args) == 1 {
				src = args[0]
			}
			ts, err := a.readTimestamp(cmd, src)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %s\n", ts.Kind(), ts)
			if r, ok := ts.Region(); ok {
				size, _ := cmd.Flags().GetString("frame")
				if err := writeVideo(out, r, size); err != nil {
					return err
				}
			}
			return writeJSON(out, ts.Wire())
		},
	}
	cmd.Flags().String("frame", "", "frame size as WxH, e.g. 1920x1080")
	return cmd
}

func writeVideo(w io.Writer, r av.Region, size string) error {
	in, out, err := r.Range().Timecodes(r.Rate())
	if err != nil {
		return err
	}
	fr := r.Framerate()
	fmt.Fprintf(w, "framerate: %d/%d\n", fr.Numerator, fr.Denominator)
	fmt.Fprintf(w, "smpte:     %s - %s\n", in, out)
	if size == "" {
		return nil
	}

	frame, err := parseSize(size)
	if err != nil {
		return err
	}
	c := r.Bounds().Crop(frame)
	fmt.Fprintf(w, "crop:      top=%d left=%d bottom=%d right=%d\n", c.Top, c.Left, c.Bottom, c.Right)
	fmt.Fprintf(w, "scaled:    %s\n", r.Bounds().Scale(frame))
	return nil
}

// parseSize reads WxH into a rectangle at the origin.
func parseSize(s string) (av.Rectangle, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return av.Rectangle{}, timecode.Invalid("frame size %q must be WxH", s)
	}
	w, werr := strconv.ParseInt(ws, 10, 32)
	h, herr := strconv.ParseInt(hs, 10, 32)
	if werr != nil || herr != nil {
		return av.Rectangle{}, timecode.Invalid("frame size %q must be WxH", s)
	}
	return av.NewRectangle(0, 0, int32(w), int32(h))
}

func (a *app) overlapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "overlap <a> <b>",
		Short: "Report whether two timestamps overlap",
		Long: `Each argument is inline JSON, a file, or "-" for stdin. Video regions are
also compared in space.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := a.readTimestamp(cmd, args[0])
			if err != nil {
				return errors.Wrap(err, "first timestamp")
			}
			y, err := a.readTimestamp(cmd, args[1])
			if err != nil {
				return errors.Wrap(err, "second timestamp")
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "time:  %s\n", yesNo(x.OverlapsTime(y)))
			if d, ok := x.Span().OverlapDuration(y.Span()); ok {
				fmt.Fprintf(out, "shared: %gs\n", d.Seconds())
			}
			rx, okx := x.Region()
			ry, oky := y.Region()
			if okx && oky {
				fmt.Fprintf(out, "space: %s\n", yesNo(rx.OverlapsSpace(ry)))
				fmt.Fprintf(out, "both:  %s\n", yesNo(rx.Overlaps(ry)))
			}
			return nil
		},
	}
}
