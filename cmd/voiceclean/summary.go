package main

import (
	"fmt"
	"io"
	"path/filepath"

	"voiceclean/internal/batch"
)

// printBatchSummary reports per-file outcomes after a batch run. Terminals
// get a table; pipes get one plain line per file so output stays greppable.
func printBatchSummary(out io.Writer, result batch.Result) {
	if len(result.Entries) == 0 {
		fmt.Fprintln(out, "No supported video files found")
		return
	}

	if isTerminal(out) {
		rows := make([][]string, 0, len(result.Entries))
		for _, entry := range result.Entries {
			status := "ok"
			detail := entry.Output
			if entry.Err != nil {
				status = "failed"
				detail = entry.Err.Error()
			}
			rows = append(rows, []string{filepath.Base(entry.Input), status, detail})
		}
		fmt.Fprintln(out, renderTable(
			[]string{"Video", "Status", "Detail"},
			rows,
			[]columnAlignment{alignLeft, alignLeft, alignLeft},
		))
	} else {
		for _, entry := range result.Entries {
			if entry.Err != nil {
				fmt.Fprintf(out, "failed\t%s\t%v\n", entry.Input, entry.Err)
			} else {
				fmt.Fprintf(out, "ok\t%s\t%s\n", entry.Input, entry.Output)
			}
		}
	}

	fmt.Fprintf(out, "Processed %d videos: %d succeeded, %d failed\n",
		len(result.Entries), result.Succeeded(), result.Failed())
}
