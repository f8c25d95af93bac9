package cmd

import (
	"fmt"
	"os"

	"storage-template/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "storage-template",
	Short: "Object storage template service",
	Long: `Storage Template exposes an S3-compatible object store (MinIO, AWS S3)
through a small set of bucket and object operations, over HTTP or from the command line.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Report through the application's logger, console encoded for a CLI.
		// The debug level selects the development config and its ISO8601 timestamps.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			// Storage errors carry their kind in the message (e.g. "storage not_found: ...")
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Fallback when the logger itself cannot be built
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
