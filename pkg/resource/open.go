package resource

import (
	"fmt"
	"os/exec"
	"runtime"
)

// OpenExternal hands an absolute path to the host default-handler
// mechanism. The path goes through with zero transformation and is never
// executed: every branch invokes an opener binary with the path as an
// argument, no shell involved.
func OpenExternal(path string) error {
	if !IsAbsPath(path) {
		return fmt.Errorf("refusing to open non-absolute path %q", path)
	}

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		// rundll32 avoids cmd.exe quoting rules entirely.
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open externally: %w", err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
