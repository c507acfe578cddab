package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"voiceclean/internal/deps"
	"voiceclean/internal/preflight"
	"voiceclean/internal/services/elevenlabs"
)

func newDepsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Check external binaries and API readiness",
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			cfg, err := loadConfig(opts.configPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			rows := make([][]string, 0, 8)
			failures := 0

			for _, status := range deps.CheckBinaries(deps.SystemRequirements(cfg)) {
				state := "ok"
				detail := status.Command
				if !status.Available {
					state = "missing"
					detail = status.Detail
					if !status.Optional {
						failures++
					}
				}
				rows = append(rows, []string{status.Name, state, detail})
			}

			// The API key may legitimately be absent here; the check reports
			// that instead of failing the command outright.
			apiKey, keyErr := elevenlabs.ResolveKey(opts.apiKey, os.LookupEnv)
			if keyErr != nil {
				apiKey = cfg.ElevenLabs.APIKey
			}
			for _, result := range preflight.RunAll(cmd.Context(), cfg, apiKey) {
				state := "ok"
				if !result.Passed {
					state = "failed"
					failures++
				}
				rows = append(rows, []string{result.Name, state, result.Detail})
			}

			fmt.Fprintln(out, renderTable(
				[]string{"Check", "Status", "Detail"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft},
			))

			if failures > 0 {
				return fmt.Errorf("%d checks failed", failures)
			}
			return nil
		},
	}
}
