package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xiebaiyuan/buildsweep/internal/types"
)

func entry(path, rel string) types.CandidateEntry {
	return types.CandidateEntry{Path: path, Rel: rel, Kind: types.KindDir}
}

func TestPlan_DeepestFirst(t *testing.T) {
	in := []types.CandidateEntry{
		entry("/r/a/build", "a/build"),
		entry("/r/a/build/obj", "a/build/obj"),
		entry("/r/tmp", "tmp"),
		entry("/r/a/b/c/node_modules", "a/b/c/node_modules"),
	}
	out := Plan(in)

	assert.Equal(t, []string{
		"a/b/c/node_modules",
		"a/build/obj",
		"a/build",
		"tmp",
	}, rels(out))

	// Every entry still precedes its ancestors.
	pos := map[string]int{}
	for i, e := range out {
		pos[e.Rel] = i
	}
	assert.Less(t, pos["a/build/obj"], pos["a/build"])
}

func TestPlan_TiesBreakLexicographically(t *testing.T) {
	in := []types.CandidateEntry{
		entry("/r/z/build", "z/build"),
		entry("/r/a/build", "a/build"),
		entry("/r/m/tmp", "m/tmp"),
	}
	out := Plan(in)
	assert.Equal(t, []string{"a/build", "m/tmp", "z/build"}, rels(out))
}

func TestPlan_LeavesInputUntouched(t *testing.T) {
	in := []types.CandidateEntry{
		entry("/r/a/build/obj", "a/build/obj"),
		entry("/r/a/build", "a/build"),
	}
	// Order is already depth-descending; Plan copies rather than sorts
	// in place, so callers can keep the scan order around.
	orig := []string{in[0].Rel, in[1].Rel}
	_ = Plan(in)
	assert.Equal(t, orig, []string{in[0].Rel, in[1].Rel})
}

func TestPlan_Deterministic(t *testing.T) {
	in := []types.CandidateEntry{
		entry("/r/b/tmp", "b/tmp"),
		entry("/r/a/out", "a/out"),
		entry("/r/c/dist", "c/dist"),
	}
	first := rels(Plan(in))
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, rels(Plan(in)))
	}
}
