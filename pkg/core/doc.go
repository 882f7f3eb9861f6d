// Package core provides a small, stable facade over buildsweep's
// internal engine for external integrations. It deliberately re-exports
// a narrow API surface so scripts and other tools can depend on a
// stable import path without exposing internal implementation packages.
//
// Example:
//
//	cfg := core.Config{Root: ".", DryRun: true}
//	entries, err := core.Scan(cfg)
//	if err != nil { /* handle */ }
//	_ = core.MarshalEntries(os.Stdout, entries)
package core
