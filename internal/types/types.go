package types

// RuleKind says whether a match rule targets directories or files.
type RuleKind string

const (
	RuleDir  RuleKind = "dir"
	RuleFile RuleKind = "file"
)

// MatchRule is a deletion rule: either an exact base-name or a glob
// pattern, depending on whether the pattern contains a wildcard.
type MatchRule struct {
	Pattern string   `json:"pattern"`
	Kind    RuleKind `json:"kind"`
}

// EntryKind classifies a discovered filesystem entry. Symlinks are kept
// distinct so they are never traversed or sized through.
type EntryKind string

const (
	KindDir     EntryKind = "directory"
	KindFile    EntryKind = "file"
	KindSymlink EntryKind = "symlink"
)

// CandidateEntry is a filesystem path selected for possible removal.
// Entries are created by the scanner and never mutated afterwards; a new
// run produces a fresh set.
type CandidateEntry struct {
	Path string    `json:"path"` // absolute path
	Rel  string    `json:"rel"`  // path relative to the scan root, forward slashes
	Kind EntryKind `json:"kind"`
	Rule MatchRule `json:"rule"` // the rule that selected this entry
}

// OutcomeKind is the terminal state of one planned entry.
type OutcomeKind string

const (
	Succeeded            OutcomeKind = "succeeded"
	Failed               OutcomeKind = "failed"
	SkippedAlreadyGone   OutcomeKind = "skipped_already_gone"
	SkippedParentDeleted OutcomeKind = "skipped_parent_deleted"
)

// Outcome records what happened to a single entry during execution.
type Outcome struct {
	Entry CandidateEntry
	Kind  OutcomeKind
	Err   error // set only for Failed
}
