package engine

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/xiebaiyuan/buildsweep/internal/types"
)

// EntrySize is the measured size of one candidate entry.
type EntrySize struct {
	Bytes int64
	Known bool // false when the entry vanished before measurement
	// Contained is true when another matched entry is a strict path
	// ancestor; the entry is listed but not counted in any total.
	Contained bool
}

// ParentGroup collects the entries sharing an immediate parent directory,
// for display only. Order of deletion is unaffected.
type ParentGroup struct {
	Parent  string
	Entries []types.CandidateEntry
	Bytes   int64 // sum over non-contained members
}

// RuleStat tallies count and bytes per matching pattern.
type RuleStat struct {
	Pattern string
	Count   int
	Bytes   int64
}

// Sizing is the result of measuring a candidate set before any removal.
type Sizing struct {
	PerEntry map[string]EntrySize // keyed by absolute path
	ByParent []ParentGroup
	ByRule   []RuleStat
	Total    int64 // deduplicated grand total
	Unknown  int   // entries that vanished before measurement
}

// Aggregate measures each entry and rolls up totals. A directory's size
// already covers any separately matched descendant, so contained entries
// are listed individually but excluded from the grand total, the
// per-parent totals, and the per-pattern totals alike.
func Aggregate(entries []types.CandidateEntry) Sizing {
	s := Sizing{PerEntry: make(map[string]EntrySize, len(entries))}

	contained := containedSet(entries)
	ruleStats := map[string]*RuleStat{}
	groups := map[string]*ParentGroup{}

	for _, e := range entries {
		size, known := measure(e)
		es := EntrySize{Bytes: size, Known: known, Contained: contained[e.Path]}
		s.PerEntry[e.Path] = es
		if !known {
			s.Unknown++
		}

		parent := filepath.Dir(e.Path)
		g, ok := groups[parent]
		if !ok {
			g = &ParentGroup{Parent: parent}
			groups[parent] = g
		}
		g.Entries = append(g.Entries, e)

		if es.Contained {
			continue
		}
		g.Bytes += size
		s.Total += size
		rs, ok := ruleStats[e.Rule.Pattern]
		if !ok {
			rs = &RuleStat{Pattern: e.Rule.Pattern}
			ruleStats[e.Rule.Pattern] = rs
		}
		rs.Count++
		rs.Bytes += size
	}

	for _, g := range groups {
		sort.Slice(g.Entries, func(i, j int) bool { return g.Entries[i].Path < g.Entries[j].Path })
		s.ByParent = append(s.ByParent, *g)
	}
	sort.Slice(s.ByParent, func(i, j int) bool { return s.ByParent[i].Parent < s.ByParent[j].Parent })

	for _, rs := range ruleStats {
		s.ByRule = append(s.ByRule, *rs)
	}
	sort.Slice(s.ByRule, func(i, j int) bool {
		if s.ByRule[i].Bytes != s.ByRule[j].Bytes {
			return s.ByRule[i].Bytes > s.ByRule[j].Bytes
		}
		return s.ByRule[i].Pattern < s.ByRule[j].Pattern
	})
	return s
}

// containedSet marks every entry that sits inside another matched entry.
func containedSet(entries []types.CandidateEntry) map[string]bool {
	dirs := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Kind == types.KindDir {
			dirs = append(dirs, e.Path+string(filepath.Separator))
		}
	}
	out := make(map[string]bool, len(entries))
	for _, e := range entries {
		for _, d := range dirs {
			if len(e.Path) > len(d) && strings.HasPrefix(e.Path, d) {
				out[e.Path] = true
				break
			}
		}
	}
	return out
}

// measure returns the apparent byte length for files and symlinks, and
// the recursive sum of file lengths for directories. A vanished entry
// measures zero with known=false instead of failing the aggregation.
func measure(e types.CandidateEntry) (int64, bool) {
	st, err := os.Lstat(e.Path)
	if err != nil {
		return 0, false
	}
	if e.Kind != types.KindDir || !st.IsDir() {
		return st.Size(), true
	}
	var total int64
	_ = filepath.WalkDir(e.Path, func(_ string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if info, err := d.Info(); err == nil {
			total += info.Size()
		}
		return nil
	})
	return total, true
}
