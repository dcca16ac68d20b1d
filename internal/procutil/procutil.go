// Package procutil starts external viewer processes detached from the TUI.
package procutil

import (
	"fmt"
	"os/exec"
	"runtime"
)

// ConfigureDetached configures a command to run detached from the current session/process group.
func ConfigureDetached(cmd *exec.Cmd) {
	configureDetached(cmd)
}

// StartDetached starts name with args in its own session and returns its PID
// without waiting. Output is discarded so the child never writes over the TUI.
func StartDetached(name string, args ...string) (int, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return 0, fmt.Errorf("find %s: %w", name, err)
	}

	cmd := exec.Command(path, args...)
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	ConfigureDetached(cmd)

	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("start %s: %w", name, err)
	}
	// Reap the child when it exits so it does not linger as a zombie.
	go func() { _ = cmd.Wait() }()

	return cmd.Process.Pid, nil
}

// OpenerCommand returns the platform command that opens url in the default browser.
func OpenerCommand(goos, url string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	default:
		return "xdg-open", []string{url}
	}
}

// OpenURL opens url with the platform opener.
func OpenURL(url string) error {
	name, args := OpenerCommand(runtime.GOOS, url)
	_, err := StartDetached(name, args...)
	return err
}
