//go:build !windows

package procutil

import (
	"os/exec"
	"syscall"
)

func configureDetached(cmd *exec.Cmd) {
	if cmd == nil {
		return
	}
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setsid: true,
	}
}
