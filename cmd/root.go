package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hqlgen/hqlgen/internal/logger"
	"github.com/hqlgen/hqlgen/internal/version"
)

var Debug bool

var RootCmd = &cobra.Command{
	Use:   "hqlgen",
	Short: "Impala/Hive DDL and DML statement generator",
	Long: fmt.Sprintf(`hqlgen compiles YAML statement manifests into Impala-dialect SQL text.

Version: %s@%s %s %s

Commands:
  generate  Compile statement manifests to SQL
  version   Show version information

Use "hqlgen [command] --help" for more information about a command.`,
		version.App(), version.GetGitCommit(), version.Platform(), version.GetBuildDate()),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogger()
	},
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&Debug, "debug", false, "Enable debug logging")
	RootCmd.AddCommand(GenerateCmd)
	RootCmd.AddCommand(VersionCmd)
}

func setupLogger() {
	level := slog.LevelInfo
	if Debug {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	logger.SetGlobal(slog.New(handler), Debug)
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
