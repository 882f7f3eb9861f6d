package report

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	humanize "github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	"github.com/xiebaiyuan/buildsweep/internal/dupes"
	"github.com/xiebaiyuan/buildsweep/internal/engine"
)

// PrintOptions controls rendering of the plan table and summary.
type PrintOptions struct {
	NoColor bool
	Verbose bool
}

var (
	styleGB   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // red
	styleMB   = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // yellow
	styleDim  = lipgloss.NewStyle().Faint(true)
	styleGood = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // green
)

// FormatSize renders a byte count, colored by magnitude when color is
// enabled: gigabytes red, megabytes yellow.
func FormatSize(bytes int64, noColor bool) string {
	s := humanize.IBytes(uint64(bytes))
	if noColor {
		return s
	}
	switch {
	case bytes >= 1<<30:
		return styleGB.Render(s)
	case bytes >= 1<<20:
		return styleMB.Render(s)
	default:
		return s
	}
}

// PrintBanner discloses what the run is about to do: the protected
// whitelist and the active pattern sets.
func PrintBanner(w io.Writer, cfg engine.Config) {
	fmt.Fprintf(w, "Whitelisted directories (never removed): %v\n", cfg.ActiveWhitelist())
	fmt.Fprintf(w, "Directory patterns: %v\n", cfg.ActiveDirPatterns())
	fmt.Fprintf(w, "File patterns: %v\n", cfg.ActiveFilePatterns())
}

// PrintPlan renders the matched entries grouped by parent directory,
// with contained matches listed but annotated rather than re-counted.
func PrintPlan(w io.Writer, sizing engine.Sizing, opts PrintOptions) {
	table := tablewriter.NewWriter(w)
	table.Header("PARENT", "MATCH", "KIND", "PATTERN", "SIZE")
	for _, g := range sizing.ByParent {
		for _, e := range g.Entries {
			es := sizing.PerEntry[e.Path]
			size := FormatSize(es.Bytes, opts.NoColor)
			switch {
			case !es.Known:
				size = "unknown"
			case es.Contained:
				size = "(within parent match)"
			}
			_ = table.Append([]string{
				g.Parent,
				filepath.Base(e.Path),
				string(e.Kind),
				e.Rule.Pattern,
				size,
			})
		}
	}
	_ = table.Render()

	if opts.Verbose && len(sizing.ByRule) > 0 {
		fmt.Fprintln(w, "By pattern:")
		for _, rs := range sizing.ByRule {
			fmt.Fprintf(w, "  %-28s %4d  %s\n", rs.Pattern, rs.Count, FormatSize(rs.Bytes, opts.NoColor))
		}
	}
	if sizing.Unknown > 0 {
		fmt.Fprintf(w, "%d entries vanished before they could be measured\n", sizing.Unknown)
	}
	fmt.Fprintf(w, "Total to reclaim: %s\n", FormatSize(sizing.Total, opts.NoColor))
}

// PrintNothingToDo is the zero-match report. The run still exits 0.
func PrintNothingToDo(w io.Writer) {
	fmt.Fprintln(w, "No matching directories or files found. Nothing to do.")
}

// PrintSummary renders the final per-outcome tallies, the reclaimed
// size, and where the audit log went.
func PrintSummary(w io.Writer, tally engine.Tally, reclaimed int64, logPath string, dryRun bool, opts PrintOptions) {
	label := "Removed"
	if dryRun {
		label = "Would remove"
	}
	ok := fmt.Sprintf("%s: %d items (%s)", label, tally.Succeeded, FormatSize(reclaimed, opts.NoColor))
	if !opts.NoColor {
		ok = styleGood.Render(ok)
	}
	fmt.Fprintln(w, ok)
	if tally.AlreadyGone > 0 {
		fmt.Fprintf(w, "Skipped (already gone): %d\n", tally.AlreadyGone)
	}
	if tally.ParentDeleted > 0 {
		fmt.Fprintf(w, "Skipped (parent removed): %d\n", tally.ParentDeleted)
	}
	if tally.Failed > 0 {
		fmt.Fprintf(w, "Failed: %d (see log)\n", tally.Failed)
	}
	if logPath != "" {
		line := "Log: " + logPath
		if !opts.NoColor {
			line = styleDim.Render(line)
		}
		fmt.Fprintln(w, line)
	}
}

// PrintDupes renders duplicate groups as a table plus a wasted-bytes
// footer.
func PrintDupes(w io.Writer, groups []dupes.Group, opts PrintOptions) {
	if len(groups) == 0 {
		fmt.Fprintln(w, "No duplicate files found.")
		return
	}
	table := tablewriter.NewWriter(w)
	table.Header("HASH", "SIZE", "COPIES", "PATHS")
	var wasted int64
	for _, g := range groups {
		wasted += g.Size * int64(len(g.Paths)-1)
		for i, p := range g.Paths {
			hash, size, copies := "", "", ""
			if i == 0 {
				hash = g.Hash
				size = humanize.IBytes(uint64(g.Size))
				copies = fmt.Sprintf("%d", len(g.Paths))
			}
			_ = table.Append([]string{hash, size, copies, p})
		}
	}
	_ = table.Render()
	fmt.Fprintf(w, "%d duplicate groups, %s wasted\n", len(groups), FormatSize(wasted, opts.NoColor))
}
