// Package config provides process-wide configuration read once at startup.
// Credential values are threaded explicitly into the operations that need
// them rather than read from ambient state.
package config

import "os"

// Credentials holds the optional username and token used for network-transport
// remote operations. They are injected into the toolchain's environment for
// the duration of a single call and never persisted to repository
// configuration or logs.
type Credentials struct {
	Username string
	Token    string
}

// Present reports whether both credential values are configured.
func (c Credentials) Present() bool {
	return c.Username != "" && c.Token != ""
}

// Config holds runtime configuration for the gitmcp server.
type Config struct {
	// Repository is the optional repository path fixed at process start.
	Repository string
	// Credentials are read from GIT_USERNAME / GIT_TOKEN.
	Credentials Credentials
	// LogFile is an optional path for rotating file logs; stderr otherwise.
	LogFile string
	// Verbose enables debug logging.
	Verbose bool
}

const (
	envKeyGitUsername = "GIT_USERNAME"
	envKeyGitToken    = "GIT_TOKEN"
	envKeyLogFile     = "GITMCP_LOG_FILE"
)

// Load reads configuration from environment variables.
func Load() Config {
	return Config{
		Credentials: Credentials{
			Username: os.Getenv(envKeyGitUsername),
			Token:    os.Getenv(envKeyGitToken),
		},
		LogFile: os.Getenv(envKeyLogFile),
	}
}
