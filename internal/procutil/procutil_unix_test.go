//go:build !windows

package procutil

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigureDetachedSetsid(t *testing.T) {
	cmd := exec.Command("true")
	ConfigureDetached(cmd)
	require.NotNil(t, cmd.SysProcAttr)
	require.True(t, cmd.SysProcAttr.Setsid)
}

func TestStartDetached(t *testing.T) {
	if _, err := exec.LookPath("true"); err != nil {
		t.Skip("true not available")
	}
	pid, err := StartDetached("true")
	require.NoError(t, err)
	require.Positive(t, pid)
}
