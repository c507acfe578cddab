package ffmpeg

import (
	"context"
	"os/exec"
	"strings"
)

// Executor abstracts subprocess execution so tests can substitute a fake
// without invoking real media tools.
type Executor interface {
	// Run executes the binary with args and returns its combined output.
	Run(ctx context.Context, binary string, args []string) (string, error)
}

type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, binary string, args []string) (string, error) {
	cmd := exec.CommandContext(ctx, binary, args...)
	output, err := cmd.CombinedOutput()
	return strings.TrimSpace(string(output)), err
}
