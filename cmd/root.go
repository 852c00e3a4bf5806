package cmd

import (
	"os"

	"github.com/djcass44/dpkg-parser/cmd/cache"
	"github.com/djcass44/go-utils/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var command = &cobra.Command{
	Use:          "dpkgp",
	Short:        "parse dpkg status files and package indices",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logLevel, _ := cmd.Flags().GetInt(flagLogLevel)

		zc := zap.NewProductionConfig()
		zc.Level = zap.NewAtomicLevelAt(zapcore.Level(logLevel * -1))

		_, ctx := logging.NewZap(cmd.Context(), zc)
		cmd.SetContext(ctx)
	},
}

const (
	flagLogLevel = "v"
	flagCacheDir = "cache-dir"
	flagRefresh  = "refresh"
)

func init() {
	command.PersistentFlags().Int(flagLogLevel, 0, "log level. Higher is more")
	command.PersistentFlags().String(flagCacheDir, "", "cache directory for remote sources (defaults to user cache dir)")
	command.PersistentFlags().Bool(flagRefresh, false, "download remote sources even if they are cached")

	_ = command.MarkPersistentFlagDirname(flagCacheDir)

	command.AddCommand(parseCmd, checkCmd, lockCmd, cache.Command)
}

func Execute(version string) {
	command.Version = version
	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}
