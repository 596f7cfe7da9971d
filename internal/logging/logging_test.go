package logging

import (
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_File(t *testing.T) {
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetLevel(log.InfoLevel)
	})
	path := filepath.Join(t.TempDir(), "domainwatch.log")

	closer, err := Init("debug", path)
	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, log.GetLevel())

	log.WithField("domain", "example.com").Debug("lookup")
	require.NoError(t, closer.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"domain":"example.com"`)
}

func TestInit_Console(t *testing.T) {
	t.Cleanup(func() { log.SetLevel(log.InfoLevel) })
	closer, err := Init("warn", Console)
	require.NoError(t, err)
	assert.NoError(t, closer.Close())
	assert.Equal(t, log.WarnLevel, log.GetLevel())
}

func TestInit_BadLevel(t *testing.T) {
	_, err := Init("loud", Console)
	assert.Error(t, err)
}
