package engine

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/xiebaiyuan/buildsweep/internal/types"
)

// ErrPathNotFound is returned when the scan root does not exist or is
// not a directory. This is fatal and never retried.
var ErrPathNotFound = errors.New("target directory not found")

// Scan walks the target tree exactly once and returns every entry that
// matches a rule and survives the whitelist and exclusion filters. A
// matched directory's subtree is still traversed in the same pass so
// independently matching nested entries are discovered, but children
// are never recorded under an ancestor's rule: each match record refers
// to the entry itself. Symlinks are classified but never followed.
func Scan(cfg Config) ([]types.CandidateEntry, error) {
	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrPathNotFound, cfg.Root)
	}
	st, err := os.Stat(root)
	if err != nil || !st.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrPathNotFound, cfg.Root)
	}

	rules := cfg.rules()
	wl := cfg.whitelist()

	var entries []types.CandidateEntry
	walkErr := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtrees are skipped, not fatal.
			return nil
		}
		if p == root {
			return nil
		}
		rel := relSlash(root, p)
		if wl.Excluded(rel) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		kind := classify(d)
		switch kind {
		case types.KindDir:
			rule, ok := MatchAny(rel, rules, types.RuleDir)
			if !ok {
				return nil
			}
			if excludedByPatterns(rel, cfg.Exclude) {
				return nil
			}
			entries = append(entries, types.CandidateEntry{Path: p, Rel: rel, Kind: kind, Rule: rule})
			// Keep walking: nested entries matching their own rules are
			// recorded too, and the planner orders them before this one.
			return nil
		default:
			rule, ok := MatchAny(rel, rules, types.RuleFile)
			if !ok {
				// A symlink whose name matches a directory rule is still a
				// leaf candidate; it is trashed as a link, never followed.
				if kind != types.KindSymlink {
					return nil
				}
				rule, ok = MatchAny(rel, rules, types.RuleDir)
				if !ok {
					return nil
				}
			}
			if excludedByPatterns(rel, cfg.Exclude) {
				return nil
			}
			entries = append(entries, types.CandidateEntry{Path: p, Rel: rel, Kind: kind, Rule: rule})
			return nil
		}
	})
	if walkErr != nil {
		return nil, walkErr
	}
	return entries, nil
}

func classify(d fs.DirEntry) types.EntryKind {
	if d.Type()&fs.ModeSymlink != 0 {
		return types.KindSymlink
	}
	if d.IsDir() {
		return types.KindDir
	}
	return types.KindFile
}

func relSlash(root, p string) string {
	rel, err := filepath.Rel(root, p)
	if err != nil {
		rel = p
	}
	return strings.ReplaceAll(rel, string(filepath.Separator), "/")
}
