package logger_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LabReservationService/pkg/logger"
)

func TestLogger(t *testing.T) {
	t.Run("writes to file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logs", "app.log")

		log, err := logger.New(path, "info")
		require.NoError(t, err)

		log.Info("reservation created: id=%s", "r-1")
		log.Debug("hidden: %d", 1)
		require.NoError(t, log.Close())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "reservation created: id=r-1")
		assert.False(t, strings.Contains(string(data), "hidden"))
	})

	t.Run("unknown level", func(t *testing.T) {
		_, err := logger.New("", "verbose")
		assert.Error(t, err)
	})

	t.Run("empty level defaults to info", func(t *testing.T) {
		log, err := logger.New("", "")
		require.NoError(t, err)
		assert.NoError(t, log.Close())
	})
}
