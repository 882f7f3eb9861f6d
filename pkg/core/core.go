package core

import (
	"time"

	"github.com/xiebaiyuan/buildsweep/internal/audit"
	"github.com/xiebaiyuan/buildsweep/internal/engine"
	"github.com/xiebaiyuan/buildsweep/internal/trash"
	"github.com/xiebaiyuan/buildsweep/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
type Config = engine.Config
type CandidateEntry = types.CandidateEntry
type Outcome = types.Outcome

// Result bundles everything a run produced.
type Result struct {
	Entries        []CandidateEntry
	Outcomes       []Outcome
	Tally          engine.Tally
	TotalBytes     int64
	BytesReclaimed int64
	Duration       time.Duration
}

// Scan walks the configured root and returns the candidate entries
// without removing anything.
func Scan(cfg Config) ([]CandidateEntry, error) {
	return engine.Scan(cfg)
}

// Clean is the stable non-interactive entrypoint for other programs: it
// scans, plans, and executes in one call, with no confirmation gate and
// no terminal output. Set cfg.DryRun to preview.
func Clean(cfg Config) (Result, error) {
	started := time.Now()
	var res Result

	entries, err := engine.Scan(cfg)
	if err != nil {
		return res, err
	}
	res.Entries = entries
	sizing := engine.Aggregate(entries)
	res.TotalBytes = sizing.Total

	var remover engine.Remover
	if !cfg.DryRun {
		t, err := trash.Detect()
		if err != nil {
			return res, err
		}
		remover = t
	}

	rc := &engine.RunContext{Remover: remover, Log: audit.NewNop(), DryRun: cfg.DryRun}
	res.Outcomes = rc.Execute(engine.Plan(entries))
	res.Tally = engine.CountOutcomes(res.Outcomes)
	res.BytesReclaimed = engine.ReclaimedBytes(res.Outcomes, sizing)
	res.Duration = time.Since(started)
	return res, nil
}
