package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
}

func TestSetupWritesToFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs", "programs")

	run, err := Setup(Options{Dir: dir, Level: "info", Now: fixedNow})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "esports-stream_2024-05-01_09-30-00.log"), run.Path)
	_, err = uuid.Parse(run.ID)
	assert.NoError(t, err)

	run.WithField("module", "test").Info("hello")
	run.Debug("hidden")
	require.NoError(t, run.Close())

	data, err := os.ReadFile(run.Path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=hello")
	assert.Contains(t, string(data), "module=test")
	assert.Contains(t, string(data), "run="+run.ID)
	assert.NotContains(t, string(data), "hidden")
}

func TestSetupRejectsBadLevel(t *testing.T) {
	_, err := Setup(Options{Dir: t.TempDir(), Level: "loud"})
	assert.Error(t, err)
}

func TestConsoleHookMirrorsEntries(t *testing.T) {
	var buf bytes.Buffer
	run, err := Setup(Options{Dir: t.TempDir(), Level: "warn", Console: &buf})
	require.NoError(t, err)
	defer run.Close()

	run.Info("quiet")
	run.Warn("stream stuck")

	assert.Contains(t, buf.String(), "stream stuck")
	assert.NotContains(t, buf.String(), "quiet")
}
