// Package engine contains the core cleanup logic: pattern matching,
// tree scanning, size aggregation, deletion planning, and execution
// against a recoverable-removal capability. This package is internal;
// external consumers should use the stable facade in pkg/core.
package engine
