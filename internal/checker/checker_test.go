package checker

import (
	"context"
	"errors"
	"os/exec"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("checker tests use sh")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestCheck_Passes(t *testing.T) {
	requireShell(t)

	// the script path is passed as $0
	c := New("sh", []string{"-c", `grep -q "send" "$0" && echo "no errors"`}, time.Second)

	report, err := c.Check(context.Background(), "send [EUR/2 100] (\n  source = @world\n  destination = @a\n)\n")
	require.NoError(t, err)
	assert.True(t, report.Passed)
	assert.Equal(t, []string{"no errors"}, report.Diagnostics)
}

func TestCheck_Fails(t *testing.T) {
	requireShell(t)

	c := New("sh", []string{"-c", `echo "1:0 unexpected token" >&2; echo ""; echo "  2:4 missing source"; exit 1`}, time.Second)

	report, err := c.Check(context.Background(), "garbage")
	require.NoError(t, err)
	assert.False(t, report.Passed)
	assert.ElementsMatch(t, []string{"1:0 unexpected token", "2:4 missing source"}, report.Diagnostics)
}

func TestCheck_Unavailable(t *testing.T) {
	c := New("numscribe-checker-that-does-not-exist", nil, time.Second)

	_, err := c.Check(context.Background(), "send")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCheckerUnavailable))
}

func TestCheck_NoCommand(t *testing.T) {
	_, err := New("", nil, 0).CheckFile(context.Background(), "script.num")
	assert.ErrorIs(t, err, ErrCheckerUnavailable)
}

func TestCheck_Timeout(t *testing.T) {
	requireShell(t)

	c := New("sh", []string{"-c", "sleep 5"}, 50*time.Millisecond)

	_, err := c.Check(context.Background(), "send")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
