package cmd

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/cbsinteractive/annotate/annotation"
	"github.com/cbsinteractive/annotate/db"
	"github.com/cbsinteractive/annotate/timecode"
	"github.com/spf13/cobra"
)

// withStore opens the configured store for the duration of fn.
func (a *app) withStore(fn func(ctx context.Context, s db.Store) error) error {
	s, err := a.openStore()
	if err != nil {
		return err
	}
	defer s.Close()
	return fn(context.Background(), s)
}

func (a *app) addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add [json|file|-]",
		Short: "Store a timestamp under a new ID",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := "-"
			if len(args) == 1 {
				src = args[0]
			}
			ts, err := a.readTimestamp(cmd, src)
			if err != nil {
				return err
			}
			return a.withStore(func(ctx context.Context, s db.Store) error {
				id, err := db.Add(ctx, s, ts)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), id)
				return nil
			})
		},
	}
}

func (a *app) putCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "put <id> [json|file|-]",
		Short: "Store a timestamp under the given ID, replacing any previous one",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := "-"
			if len(args) == 2 {
				src = args[1]
			}
			ts, err := a.readTimestamp(cmd, src)
			if err != nil {
				return err
			}
			return a.withStore(func(ctx context.Context, s db.Store) error {
				return s.Put(ctx, args[0], ts)
			})
		},
	}
}

func (a *app) getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Print a stored timestamp as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(ctx context.Context, s db.Store) error {
				ts, err := s.Get(ctx, args[0])
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), ts)
			})
		},
	}
}

func (a *app) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a stored timestamp",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(ctx context.Context, s db.Store) error {
				return s.Delete(ctx, args[0])
			})
		},
	}
}

func (a *app) listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored timestamps in time order",
		Long: `List stored timestamps. With --from and --to, only timestamps that share
time with that window are listed. With --splice, the listed time ranges are
merged and printed as a JSON splice of [start, end] pairs in seconds.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			from, _ := cmd.Flags().GetString("from")
			to, _ := cmd.Flags().GetString("to")

			var window *annotation.Timestamp
			if from != "" || to != "" {
				r, err := timecode.ParseRange(from, to)
				if err != nil {
					return err
				}
				w := annotation.FromRange(r)
				window = &w
			}

			return a.withStore(func(ctx context.Context, s db.Store) error {
				var (
					entries []db.Entry
					err     error
				)
				if window != nil {
					entries, err = db.Overlapping(ctx, s, *window)
				} else {
					entries, err = s.List(ctx)
				}
				if err != nil {
					return err
				}

				if splice, _ := cmd.Flags().GetBool("splice"); splice {
					var l annotation.List
					for _, e := range entries {
						l = append(l, e.Timestamp)
					}
					return writeJSON(cmd.OutOrStdout(), l.Splice().Merge().Export())
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tKIND\tSTART\tEND\tTIMESTAMP")
				for _, e := range entries {
					ts := e.Timestamp
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
						e.ID, ts.Kind(), ts.Start().FormatPrecise(3, false), ts.End().FormatPrecise(3, false), ts)
				}
				return w.Flush()
			})
		},
	}
	cmd.Flags().String("from", "", "window start (MM:SS or HH:MM:SS)")
	cmd.Flags().String("to", "", "window end (MM:SS or HH:MM:SS)")
	cmd.Flags().Bool("splice", false, "print the merged time ranges as a transcode splice")
	return cmd
}
