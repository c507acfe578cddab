package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile creates path (and any parent directories) with the given
// contents and returns the path.
func WriteFile(t testing.TB, path string, contents []byte) string {
	t.Helper()
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// WriteVideoFixture creates a placeholder video file under dir with the
// given name. The contents are arbitrary bytes; tests pair it with fake
// executors and inspectors so no real media tooling runs.
func WriteVideoFixture(t testing.TB, dir, name string) string {
	t.Helper()
	return WriteFile(t, filepath.Join(dir, name), []byte("fixture-video-data"))
}
