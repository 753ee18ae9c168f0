package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gitmcp.dev/gitmcp/internal/config"
)

func TestLoad(t *testing.T) {
	t.Run("reads credentials and log file from the environment", func(t *testing.T) {
		t.Setenv("GIT_USERNAME", "octocat")
		t.Setenv("GIT_TOKEN", "s3cret")
		t.Setenv("GITMCP_LOG_FILE", "/var/log/gitmcp.log")

		cfg := config.Load()
		require.Equal(t, "octocat", cfg.Credentials.Username)
		require.Equal(t, "s3cret", cfg.Credentials.Token)
		require.Equal(t, "/var/log/gitmcp.log", cfg.LogFile)
	})

	t.Run("empty environment yields empty config", func(t *testing.T) {
		t.Setenv("GIT_USERNAME", "")
		t.Setenv("GIT_TOKEN", "")
		t.Setenv("GITMCP_LOG_FILE", "")

		cfg := config.Load()
		require.False(t, cfg.Credentials.Present())
		require.Empty(t, cfg.LogFile)
	})
}

func TestCredentialsPresent(t *testing.T) {
	require.False(t, config.Credentials{}.Present())
	require.False(t, config.Credentials{Username: "octocat"}.Present())
	require.False(t, config.Credentials{Token: "s3cret"}.Present())
	require.True(t, config.Credentials{Username: "octocat", Token: "s3cret"}.Present())
}
