package buildsweep

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/xiebaiyuan/buildsweep/internal/audit"
	"github.com/xiebaiyuan/buildsweep/internal/config"
	"github.com/xiebaiyuan/buildsweep/internal/engine"
	"github.com/xiebaiyuan/buildsweep/internal/report"
	"github.com/xiebaiyuan/buildsweep/internal/trash"
)

var (
	flagDryRun       bool
	flagNoConfirm    bool
	flagExclude      []string
	flagFilePatterns []string
	flagWhitelist    []string
)

func init() {
	cmd := &cobra.Command{
		Use:   "clean <target-dir> [extra-pattern ...]",
		Short: "Find and trash build directories and artifacts",
		Long: "clean walks the target directory for entries matching the built-in and " +
			"user-supplied patterns, shows their sizes grouped by parent directory, asks " +
			"for confirmation, and moves each match to a recoverable trash location. " +
			"Children are always processed before the directories that contain them, so " +
			"re-running after an interrupted run is safe.",
		Args: cobra.MinimumNArgs(1),
		RunE: runClean,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "perform all steps except actual removal")
	cmd.Flags().BoolVar(&flagNoConfirm, "no-confirm", false, "skip interactive confirmation")
	cmd.Flags().StringArrayVar(&flagExclude, "exclude", nil, "veto matches under this path fragment (repeatable)")
	cmd.Flags().StringArrayVar(&flagFilePatterns, "file", nil, "additional file-match pattern (repeatable)")
	cmd.Flags().StringArrayVar(&flagWhitelist, "whitelist-dir", nil, "additional protected directory name (repeatable)")
}

func runClean(cmd *cobra.Command, args []string) error {
	target := args[0]
	extraDirPatterns := args[1:]

	// Load configs: CLI > local > global.
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if c, err := config.LoadLocal(target); err == nil {
		lcfg = c
	}

	cfg := engine.Config{
		Root:          target,
		DirPatterns:   pickList(extraDirPatterns, lcfg.DirPatterns, gcfg.DirPatterns),
		FilePatterns:  pickList(flagFilePatterns, lcfg.FilePatterns, gcfg.FilePatterns),
		Exclude:       pickList(flagExclude, lcfg.Exclude, gcfg.Exclude),
		WhitelistDirs: pickList(flagWhitelist, lcfg.WhitelistDirs, gcfg.WhitelistDirs),
		DryRun:        flagDryRun,
		NoConfirm:     flagNoConfirm || pickBool(false, lcfg.NoConfirm, gcfg.NoConfirm),
	}
	opts := report.PrintOptions{
		NoColor: flagNoColor || pickBool(false, lcfg.NoColor, gcfg.NoColor),
		Verbose: flagVerbose || flagDebug,
	}

	// The removal capability must exist before any scanning happens.
	// Dry runs never call it, so its absence only blocks real runs.
	var remover engine.Remover
	if !cfg.DryRun {
		t, err := trash.Detect()
		if err != nil {
			return fmt.Errorf("%w (install a `trash` command or ensure a home directory exists)", err)
		}
		remover = t
	}

	logPath, err := audit.DefaultLogPath(time.Now())
	if err != nil {
		return err
	}
	log := audit.New(logPath, echoLevel())
	defer log.Close()

	if !flagQuiet {
		report.PrintBanner(os.Stdout, cfg)
	}

	started := time.Now()
	entries, err := engine.Scan(cfg)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		report.PrintNothingToDo(os.Stdout)
		return nil
	}
	log.Infof("scan of %s matched %d entries", cfg.Root, len(entries))

	sizing := engine.Aggregate(entries)
	if !flagQuiet {
		report.PrintPlan(os.Stdout, sizing, opts)
	}

	if !cfg.DryRun && !cfg.NoConfirm {
		if !confirmStdin(cmd, sizing.Total) {
			fmt.Fprintln(os.Stdout, "Cancelled.")
			log.Infof("run cancelled by user")
			return nil
		}
	}

	planned := engine.Plan(entries)
	rc := &engine.RunContext{Remover: remover, Log: log, DryRun: cfg.DryRun}
	outcomes := rc.Execute(planned)

	tally := engine.CountOutcomes(outcomes)
	reclaimed := engine.ReclaimedBytes(outcomes, sizing)
	report.PrintSummary(os.Stdout, tally, reclaimed, log.Path(), cfg.DryRun, opts)

	_ = log.WriteRecord(audit.RunRecord{
		Timestamp:      time.Now(),
		Root:           cfg.Root,
		DryRun:         cfg.DryRun,
		Matched:        len(entries),
		Succeeded:      tally.Succeeded,
		Failed:         tally.Failed,
		AlreadyGone:    tally.AlreadyGone,
		ParentDeleted:  tally.ParentDeleted,
		BytesReclaimed: reclaimed,
		Duration:       time.Since(started).String(),
	})
	return nil
}

// confirmStdin is the interactive confirmation gate: it blocks on the
// command's input stream until the user answers. Tests and scripted
// callers inject a canned answer via cmd.SetIn or --no-confirm.
func confirmStdin(cmd *cobra.Command, total int64) bool {
	fmt.Fprintf(os.Stdout, "Move the items above (%s) to the trash? Type 'yes' to confirm: ",
		report.FormatSize(total, true))
	sc := bufio.NewScanner(cmd.InOrStdin())
	if !sc.Scan() {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(sc.Text()), "yes")
}
