package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"voiceclean/internal/history"
)

func newHistoryCommand(opts *rootOptions) *cobra.Command {
	var limit int
	var failedOnly bool
	var clear bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show previously processed videos",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.configPath)
			if err != nil {
				return err
			}

			store, err := history.Open(cfg.Paths.HistoryDB)
			if err != nil {
				return fmt.Errorf("open history: %w", err)
			}
			defer store.Close()

			out := cmd.OutOrStdout()
			if clear {
				if err := store.Clear(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(out, "History cleared")
				return nil
			}

			entries, err := store.List(cmd.Context(), limit, failedOnly)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(out, "No history entries")
				return nil
			}

			rows := make([][]string, 0, len(entries))
			for _, entry := range entries {
				detail := entry.OutputPath
				if entry.Status == history.StatusFailed {
					detail = entry.ErrorMessage
				}
				rows = append(rows, []string{
					entry.CreatedAt.Local().Format(time.DateTime),
					entry.Title,
					entry.Status,
					entry.Duration.Round(time.Second).String(),
					detail,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"When", "Video", "Status", "Took", "Detail"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of entries to show (0 for all)")
	cmd.Flags().BoolVar(&failedOnly, "failed", false, "Show only failed jobs")
	cmd.Flags().BoolVar(&clear, "clear", false, "Delete all history entries")
	return cmd
}
