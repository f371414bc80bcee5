package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/op/go-logging.v1"
)

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.log")
	b, err := New(path, "info", false)
	require.NoError(t, err)

	l := b.GetLogger("bench")
	l.Info("hello")
	l.Debug("hidden")
	require.NoError(t, b.Close())

	out, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(out), "INFO bench: hello")
	require.NotContains(t, string(out), "hidden")
}

func TestNew_Disabled(t *testing.T) {
	b, err := New("", "DEBUG", true)
	require.NoError(t, err)
	require.True(t, b.IsEnabledFor(logging.DEBUG, "x"))
	b.GetLogger("x").Debug("discarded")
	require.NoError(t, b.Close())
}

func TestLevels(t *testing.T) {
	for _, l := range []string{"ERROR", "warning", "Notice", "INFO", "debug"} {
		require.True(t, ValidLevel(l), l)
	}
	require.False(t, ValidLevel("verbose"))

	_, err := New("", "loud", false)
	require.Error(t, err)
}
