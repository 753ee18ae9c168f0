// Package cli wires flags and configuration into the server startup.
package cli

import (
	"github.com/spf13/cobra"

	"gitmcp.dev/gitmcp/internal/config"
	"gitmcp.dev/gitmcp/internal/git"
	"gitmcp.dev/gitmcp/internal/logging"
	"gitmcp.dev/gitmcp/internal/server"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version string) *cobra.Command {
	var repository string
	var logFile string
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "gitmcp",
		Short:         "MCP server exposing git repository operations as tools",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load()
			if repository != "" {
				cfg.Repository = repository
			}
			if logFile != "" {
				cfg.LogFile = logFile
			}
			cfg.Verbose = verbose

			logger := logging.Setup(cfg)

			if cfg.Repository != "" {
				if _, err := git.Open(cfg.Repository); err != nil {
					logger.Error("not a valid git repository", "path", cfg.Repository)
					return err
				}
				logger.Info("using repository", "path", cfg.Repository)
			}

			return server.New(cfg, version, logger).Run(cmd.Context())
		},
	}

	rootCmd.Flags().StringVarP(&repository, "repository", "r", "", "path to a git repository")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "write logs to a rotating file instead of stderr")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	return rootCmd
}
