package engine

import (
	"sort"
	"strings"

	"github.com/xiebaiyuan/buildsweep/internal/types"
)

// Plan orders entries so that every entry nested inside another matched
// entry comes before its container: deeper paths first, ties broken by
// lexicographic path order for reproducible runs. The containing
// directory is therefore still intact whenever a nested match is
// processed.
func Plan(entries []types.CandidateEntry) []types.CandidateEntry {
	planned := append([]types.CandidateEntry(nil), entries...)
	sort.SliceStable(planned, func(i, j int) bool {
		di, dj := depth(planned[i].Rel), depth(planned[j].Rel)
		if di != dj {
			return di > dj
		}
		return planned[i].Path < planned[j].Path
	})
	return planned
}

func depth(rel string) int {
	return strings.Count(rel, "/")
}
