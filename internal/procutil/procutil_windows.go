//go:build windows

package procutil

import (
	"os/exec"
	"syscall"
)

const _DETACHED_PROCESS = 0x00000008

func configureDetached(cmd *exec.Cmd) {
	if cmd == nil {
		return
	}
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CreationFlags: syscall.CREATE_NEW_PROCESS_GROUP | _DETACHED_PROCESS,
		HideWindow:    true,
	}
}
