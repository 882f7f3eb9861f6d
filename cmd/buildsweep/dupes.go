package buildsweep

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xiebaiyuan/buildsweep/internal/config"
	"github.com/xiebaiyuan/buildsweep/internal/dupes"
	"github.com/xiebaiyuan/buildsweep/internal/report"
)

var (
	flagDupeMinSize   int64
	flagDupeWhitelist []string
)

func init() {
	cmd := &cobra.Command{
		Use:   "dupes <target-dir>",
		Short: "Report duplicate files by content hash",
		Long: "dupes groups files by size, hashes equal-sized candidates, and reports " +
			"byte-identical groups with the space that the extra copies waste. It never " +
			"deletes anything.",
		Args: cobra.ExactArgs(1),
		RunE: runDupes,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().Int64Var(&flagDupeMinSize, "min-size", 1, "skip files smaller than this many bytes")
	cmd.Flags().StringArrayVar(&flagDupeWhitelist, "whitelist-dir", nil, "additional protected directory name (repeatable)")
}

func runDupes(_ *cobra.Command, args []string) error {
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if c, err := config.LoadLocal(args[0]); err == nil {
		lcfg = c
	}

	minSize := flagDupeMinSize
	if minSize == 1 {
		if v := pickInt64(0, lcfg.DupeMinSize, gcfg.DupeMinSize); v > 0 {
			minSize = v
		}
	}

	groups, stats, err := dupes.Find(args[0], dupes.Options{
		MinSize:       minSize,
		WhitelistDirs: pickList(flagDupeWhitelist, lcfg.WhitelistDirs, gcfg.WhitelistDirs),
	})
	if err != nil {
		return err
	}
	report.PrintDupes(os.Stdout, groups, report.PrintOptions{NoColor: flagNoColor})
	if flagVerbose || flagDebug {
		fmt.Fprintf(os.Stdout, "Files seen: %d, hashed: %d\n", stats.FilesSeen, stats.FilesHashed)
	}
	return nil
}
