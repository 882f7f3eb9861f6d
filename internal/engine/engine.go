package engine

import (
	"github.com/xiebaiyuan/buildsweep/internal/types"
)

// Config controls a single cleanup run: scan scope, matching rules, and
// execution mode. It is constructed once from flags and config files and
// read-only afterwards.
type Config struct {
	Root          string
	DirPatterns   []string // extra directory patterns on top of the defaults
	FilePatterns  []string // extra file patterns on top of the defaults
	Exclude       []string // veto patterns applied after matching
	WhitelistDirs []string // extra protected directory names
	DryRun        bool
	NoConfirm     bool
}

func (c Config) rules() []types.MatchRule {
	return BuildRules(c.DirPatterns, c.FilePatterns)
}

func (c Config) whitelist() Whitelist {
	return NewWhitelist(c.WhitelistDirs)
}

// ActiveDirPatterns lists the directory patterns in effect, defaults first.
func (c Config) ActiveDirPatterns() []string {
	return append(DefaultDirPatterns(), c.DirPatterns...)
}

// ActiveFilePatterns lists the file patterns in effect, defaults first.
func (c Config) ActiveFilePatterns() []string {
	return append(DefaultFilePatterns(), c.FilePatterns...)
}

// ActiveWhitelist lists the protected directory names in effect.
func (c Config) ActiveWhitelist() []string {
	return c.whitelist().Names()
}
