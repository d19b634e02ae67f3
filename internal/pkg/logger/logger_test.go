package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNopBeforeInit(t *testing.T) {
	assert.NotPanics(t, func() {
		Infof("no init %d", 1)
		Errorf("no init %s", "x")
	})
}

func TestInitFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(LogOption{Format: "json", LogDir: dir, Level: "info"}))
	Infof("[Logger:Test] hello %s", "world")
	Debugf("filtered")
	Sync()

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello world")
	assert.NotContains(t, string(data), "filtered")
}

func TestInitBadLevel(t *testing.T) {
	assert.Error(t, Init(LogOption{Level: "loud"}))
}
