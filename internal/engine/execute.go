package engine

import (
	"os"
	"strings"

	"github.com/xiebaiyuan/buildsweep/internal/audit"
	"github.com/xiebaiyuan/buildsweep/internal/types"
)

// Remover is the recoverable-removal capability: move a path to a
// trash/recycle location and report success or failure. Permanent
// erasure never satisfies this contract.
type Remover interface {
	Trash(path string) error
}

// RunContext owns the mutable state of one execution pass: the
// recoverable-removal capability, the audit sink, and the set of
// directories already removed in this run. It is passed explicitly
// through the pipeline; there are no process-wide globals.
type RunContext struct {
	Remover Remover
	Log     *audit.Logger
	DryRun  bool

	removedDirs []string // trailing-separator prefixes of trashed dirs
}

// Execute processes the planned entries in order. Each entry moves
// through pending -> {skipped | attempting} -> {succeeded | failed}; a
// failure is local and the run continues. Every transition is appended
// to the audit log regardless of verbosity.
func (rc *RunContext) Execute(planned []types.CandidateEntry) []types.Outcome {
	outcomes := make([]types.Outcome, 0, len(planned))
	for _, e := range planned {
		outcomes = append(outcomes, rc.executeOne(e))
	}
	return outcomes
}

func (rc *RunContext) executeOne(e types.CandidateEntry) types.Outcome {
	if rc.parentRemoved(e.Path) {
		rc.Log.Debugf("skip (parent already trashed): %s", e.Path)
		return types.Outcome{Entry: e, Kind: types.SkippedParentDeleted}
	}
	if _, err := os.Lstat(e.Path); err != nil {
		// Vanished between scan and execution; success-adjacent.
		rc.Log.Debugf("skip (already gone): %s", e.Path)
		return types.Outcome{Entry: e, Kind: types.SkippedAlreadyGone}
	}
	if rc.DryRun {
		rc.Log.Infof("dry-run: would trash %s", e.Path)
		rc.noteRemoved(e)
		return types.Outcome{Entry: e, Kind: types.Succeeded}
	}
	rc.Log.Debugf("trashing: %s", e.Path)
	if err := rc.Remover.Trash(e.Path); err != nil {
		rc.Log.Errorf("trash failed: %s: %v", e.Path, err)
		return types.Outcome{Entry: e, Kind: types.Failed, Err: err}
	}
	rc.Log.Infof("trashed: %s", e.Path)
	rc.noteRemoved(e)
	return types.Outcome{Entry: e, Kind: types.Succeeded}
}

func (rc *RunContext) noteRemoved(e types.CandidateEntry) {
	if e.Kind == types.KindDir {
		rc.removedDirs = append(rc.removedDirs, e.Path+string(os.PathSeparator))
	}
}

func (rc *RunContext) parentRemoved(path string) bool {
	for _, prefix := range rc.removedDirs {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// Tally summarizes a slice of outcomes for reporting.
type Tally struct {
	Succeeded     int
	Failed        int
	AlreadyGone   int
	ParentDeleted int
}

// CountOutcomes folds outcomes into a Tally.
func CountOutcomes(outcomes []types.Outcome) Tally {
	var t Tally
	for _, o := range outcomes {
		switch o.Kind {
		case types.Succeeded:
			t.Succeeded++
		case types.Failed:
			t.Failed++
		case types.SkippedAlreadyGone:
			t.AlreadyGone++
		case types.SkippedParentDeleted:
			t.ParentDeleted++
		}
	}
	return t
}

// ReclaimedBytes sums the measured sizes of successfully removed,
// non-contained entries.
func ReclaimedBytes(outcomes []types.Outcome, sizing Sizing) int64 {
	var total int64
	for _, o := range outcomes {
		if o.Kind != types.Succeeded {
			continue
		}
		if es, ok := sizing.PerEntry[o.Entry.Path]; ok && !es.Contained {
			total += es.Bytes
		}
	}
	return total
}
