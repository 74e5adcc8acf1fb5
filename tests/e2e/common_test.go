package e2e

import (
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
)

// buildPlumeBinary builds the plume binary in the specified directory and
// returns its path. It handles the build command execution and error checking.
func buildPlumeBinary(t *testing.T, dir string) string {
	t.Helper()
	name := "plume"
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	bin := filepath.Join(dir, name)
	buildCmd := exec.Command("go", "build", "-o", bin, "../../cmd/plume")
	if out, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build plume: %v\n%s", err, string(out))
	}
	return bin
}
