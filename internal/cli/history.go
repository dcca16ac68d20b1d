package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tOgg1/streamwatch/internal/db"
)

const defaultHistoryLimit = 20

func newHistoryCmd(opts *rootOptions) *cobra.Command {
	limit := defaultHistoryLimit
	cmd := &cobra.Command{
		Use:   "history <handle>",
		Short: "Show recorded status checks for a channel",
		Long:  "Show the live status observations recorded for a channel, newest first.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			handle := strings.ToLower(strings.TrimSpace(args[0]))
			if limit <= 0 {
				return fmt.Errorf("--limit must be positive (got %d)", limit)
			}

			database, err := db.Open(cmd.Context(), db.Config{
				Path:          opts.cfg.DatabasePath(),
				BusyTimeoutMs: opts.cfg.Database.BusyTimeoutMs,
			})
			if err != nil {
				return fmt.Errorf("open history: %w", err)
			}
			defer database.Close()

			observations, err := db.NewStatusStore(database).History(cmd.Context(), handle, limit)
			if err != nil {
				return fmt.Errorf("load history for %s: %w", handle, err)
			}

			out := cmd.OutOrStdout()
			if len(observations) == 0 {
				fmt.Fprintf(out, "No status checks recorded for %s.\n", handle)
				return nil
			}
			rows := make([][]string, 0, len(observations))
			for _, o := range observations {
				game := o.Game
				if game == "" {
					game = "-"
				}
				rows = append(rows, []string{
					o.ObservedAt.Local().Format(time.DateTime),
					o.Status.String(),
					game,
				})
			}
			return writeTable(out, []string{"OBSERVED", "STATUS", "GAME"}, rows)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", defaultHistoryLimit, "maximum number of observations to show")
	return cmd
}
