package buildsweep

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	flagQuiet   bool
	flagVerbose bool
	flagDebug   bool
	flagNoColor bool

	version = "1.0.0"
)

// rootCmd is the base Cobra command for the buildsweep CLI.
var rootCmd = &cobra.Command{
	Use:           "buildsweep",
	Short:         "Move build artifacts and caches to the trash",
	Long:          "buildsweep scans a directory tree for build output (build/, node_modules/, *.log, ...), reports what it found, and moves matches to a recoverable trash location.",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the buildsweep CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagQuiet, "quiet", false, "only echo warnings and errors")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "echo per-entry progress")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "echo every audit event")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
}

// echoLevel maps the verbosity flags onto the stderr echo threshold.
// The audit log file always records everything.
func echoLevel() logrus.Level {
	switch {
	case flagDebug:
		return logrus.DebugLevel
	case flagVerbose:
		return logrus.InfoLevel
	case flagQuiet:
		return logrus.ErrorLevel
	default:
		return logrus.WarnLevel
	}
}
