package engine

import (
	"path"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
	"github.com/xiebaiyuan/buildsweep/internal/types"
)

// Default patterns mirror the build artifacts this tool has always
// targeted: native build trees, JS/Rust/Java output dirs, caches.
var defaultDirPatterns = []string{
	"build", "cmake-build-*", "build.lite.*", "build.mml.*", "build.macos.*",
	"build.opt", "tmp", "CMakeFiles", "node_modules", "dist", ".cache",
	".tmp", ".sass-cache", "coverage", "target", "obj", "out", "Debug", "Release",
}

var defaultFilePatterns = []string{
	"*.log",
	"libpaddle_api_light_bundled.a",
}

// DefaultDirPatterns returns a copy of the built-in directory patterns.
func DefaultDirPatterns() []string {
	return append([]string(nil), defaultDirPatterns...)
}

// DefaultFilePatterns returns a copy of the built-in file patterns.
func DefaultFilePatterns() []string {
	return append([]string(nil), defaultFilePatterns...)
}

// BuildRules combines the built-in pattern sets with user additions into
// an immutable rule list. Directory rules come first so a name matching
// both kinds is attributed to the directory rule.
func BuildRules(extraDirs, extraFiles []string) []types.MatchRule {
	rules := make([]types.MatchRule, 0, len(defaultDirPatterns)+len(defaultFilePatterns)+len(extraDirs)+len(extraFiles))
	for _, p := range defaultDirPatterns {
		rules = append(rules, types.MatchRule{Pattern: p, Kind: types.RuleDir})
	}
	for _, p := range extraDirs {
		if p = strings.TrimSpace(p); p != "" {
			rules = append(rules, types.MatchRule{Pattern: p, Kind: types.RuleDir})
		}
	}
	for _, p := range defaultFilePatterns {
		rules = append(rules, types.MatchRule{Pattern: p, Kind: types.RuleFile})
	}
	for _, p := range extraFiles {
		if p = strings.TrimSpace(p); p != "" {
			rules = append(rules, types.MatchRule{Pattern: p, Kind: types.RuleFile})
		}
	}
	return rules
}

// Matches reports whether the relative path (forward slashes) is
// selected by the rule. Exact rules compare the final path segment
// verbatim. Wildcard rules glob against the base name, against the
// "ends with /pattern" form of the relative path, and against the
// "contains /pattern/" form (so a directory pattern also covers
// anything inside the directory). Matching is case-sensitive and
// performs no I/O.
func Matches(rel string, rule types.MatchRule) bool {
	if matchesSelf(rel, rule) {
		return true
	}
	if !strings.ContainsAny(rule.Pattern, "*?[") {
		return false
	}
	ok, _ := doublestar.Match("**/"+rule.Pattern+"/**", rel)
	return ok
}

// matchesSelf is the recording form of Matches: it selects only paths
// that are themselves the matched entry, never paths merely inside a
// matched directory. The scanner uses it so a match record always
// refers to the directory root, not its contents.
func matchesSelf(rel string, rule types.MatchRule) bool {
	base := path.Base(rel)
	if !strings.ContainsAny(rule.Pattern, "*?[") {
		return base == rule.Pattern
	}
	if ok, _ := doublestar.Match(rule.Pattern, base); ok {
		return true
	}
	ok, _ := doublestar.Match("**/"+rule.Pattern, rel)
	return ok
}

// MatchAny returns the first rule of the wanted kind whose recording
// form selects rel.
func MatchAny(rel string, rules []types.MatchRule, kind types.RuleKind) (types.MatchRule, bool) {
	for _, r := range rules {
		if r.Kind != kind {
			continue
		}
		if matchesSelf(rel, r) {
			return r, true
		}
	}
	return types.MatchRule{}, false
}
