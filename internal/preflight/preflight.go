package preflight

import (
	"context"

	"voiceclean/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// minFreeBytes is the smallest amount of free space in the temp directory
// considered safe for extracting and staging audio intermediates.
const minFreeBytes = 512 * 1024 * 1024

// RunAll executes the readiness checks that gate a processing run: the temp
// directory must be writable with space to spare, and the isolation API must
// accept the key. Cheap local checks come first.
func RunAll(ctx context.Context, cfg *config.Config, apiKey string) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{
		CheckDirectoryAccess("Temp directory", cfg.Paths.TempDir),
		CheckDiskSpace("Temp directory space", cfg.Paths.TempDir, minFreeBytes),
	}
	results = append(results, CheckIsolationAPI(ctx, cfg, apiKey))
	return results
}
