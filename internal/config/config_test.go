package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("HTTP_PUBLIC_PATH", t.TempDir())
	t.Setenv("HTTP_BIND_ADDRESS", "")
	t.Setenv("HTTP_PORT_NUMBER", "")
	t.Setenv("HTTP_THREADS", "")
	t.Setenv("HTTP_TIMEOUT", "")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, defaultPort, cfg.Port)
	assert.Equal(t, 15*time.Second, cfg.Timeout)
	assert.GreaterOrEqual(t, cfg.Threads, minThreads)
	assert.LessOrEqual(t, cfg.Threads, maxThreads)
}

func TestFromEnvInvalidPort(t *testing.T) {
	t.Setenv("HTTP_PUBLIC_PATH", t.TempDir())
	t.Setenv("HTTP_PORT_NUMBER", "not-a-port")

	_, err := FromEnv()
	assert.Error(t, err)
}

func TestFromEnvInvalidBindAddress(t *testing.T) {
	t.Setenv("HTTP_PUBLIC_PATH", t.TempDir())
	t.Setenv("HTTP_BIND_ADDRESS", "not-an-ip")

	_, err := FromEnv()
	assert.Error(t, err)
}

func TestFromEnvThreadsClamped(t *testing.T) {
	t.Setenv("HTTP_PUBLIC_PATH", t.TempDir())
	t.Setenv("HTTP_THREADS", "1000")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, maxThreads, cfg.Threads)
}

func TestFromEnvZeroTimeoutDisablesDeadline(t *testing.T) {
	t.Setenv("HTTP_PUBLIC_PATH", t.TempDir())
	t.Setenv("HTTP_TIMEOUT", "0")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), cfg.Timeout)
}
