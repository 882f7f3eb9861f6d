package core

import (
	"encoding/json"
	"io"
)

// MarshalEntries pretty-prints candidate entries as JSON for humans or
// pipelines.
func MarshalEntries(w io.Writer, entries []CandidateEntry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

// UnmarshalEntries decodes entries JSON, useful for ingestion tests.
func UnmarshalEntries(r io.Reader) ([]CandidateEntry, error) {
	var es []CandidateEntry
	if err := json.NewDecoder(r).Decode(&es); err != nil {
		return nil, err
	}
	return es, nil
}
