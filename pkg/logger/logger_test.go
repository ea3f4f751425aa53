package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jeffersonsimaogoncalves/go-magellan/pkg/logger"
)

func TestLog(t *testing.T) {
	buff := bytes.NewBuffer([]byte{})
	templogger, err := logger.New().FromBuffer(buff).Make()
	require.NoError(t, err)
	require.NotNil(t, templogger)
	require.NotNil(t, templogger.Logger)
	// Get Stats Before
	require.Equal(t, buff.Len(), 0)
	templogger.Logger.Info().Msg("Test")
	// Get Stats After
	require.Contains(t, buff.String(), "Test")
}

func TestLogFields(t *testing.T) {
	buff := bytes.NewBuffer([]byte{})
	templogger, err := logger.New().FromBuffer(buff).Make()
	require.NoError(t, err)

	templogger.Debug("transforming geometry to column SRID", "column", "location", "column_srid", 4326)

	out := buff.String()
	require.Contains(t, out, "transforming geometry to column SRID")
	require.Contains(t, out, `"column":"location"`)
	require.Contains(t, out, `"column_srid":4326`)
}

func TestLogFromPath(t *testing.T) {
	path := t.TempDir() + "/magellan.log"
	templogger, err := logger.New().FromPath(path).Make()
	require.NoError(t, err)
	require.NotNil(t, templogger.LogFile)
	defer templogger.LogFile.Close()

	templogger.Info("opened", "path", path)
	require.NoError(t, templogger.LogFile.Sync())

	info, err := templogger.LogFile.Stat()
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
}
