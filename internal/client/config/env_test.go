package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseEnv(t *testing.T) {
	t.Setenv("DASHAUTH_SERVER_URL", "http://env:8080/api/v1")
	t.Setenv("DASHAUTH_REQUEST_TIMEOUT", "750ms")
	t.Setenv("DASHAUTH_LOG_BACKEND", "zap")

	cfg := defaults()
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "http://env:8080/api/v1", cfg.ServerURL)
	assert.Equal(t, 750*time.Millisecond, cfg.RequestTimeout)
	assert.Equal(t, "zap", cfg.LogBackend)
	assert.Equal(t, "dashauth.db", cfg.StoragePath, "unset variables keep the current value")
}

func Test_parseEnv_BadDuration(t *testing.T) {
	t.Setenv("DASHAUTH_REQUEST_TIMEOUT", "soon")
	require.Error(t, parseEnv(defaults()))
}
