package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWhitelist_SegmentMatchOnly(t *testing.T) {
	wl := NewWhitelist(nil)

	assert.True(t, wl.Excluded(".git/objects/pack"))
	assert.True(t, wl.Excluded("vendor/.mgit/config"))
	assert.True(t, wl.Excluded("deps/third-party/zlib/build"))
	assert.True(t, wl.Excluded("proj/.git"))

	// Segment equality only; substrings never trip the whitelist.
	assert.False(t, wl.Excluded("proj/my.git.bak/build"))
	assert.False(t, wl.Excluded("proj/third-party-notes/build"))
	assert.False(t, wl.Excluded("proj/src/build"))
	assert.False(t, wl.Excluded(""))
	assert.False(t, wl.Excluded("."))
}

func TestWhitelist_UserAdditions(t *testing.T) {
	wl := NewWhitelist([]string{"important", ""})
	assert.True(t, wl.Excluded("proj/important/build"))
	assert.False(t, wl.Excluded("proj/unimportant/build"))

	names := wl.Names()
	assert.Contains(t, names, ".git")
	assert.Contains(t, names, "important")
	assert.NotContains(t, names, "")
}

func TestExcludedByPatterns(t *testing.T) {
	tests := []struct {
		name     string
		rel      string
		patterns []string
		want     bool
	}{
		{"no patterns", "proj/build", nil, false},
		{"base name equality", "proj/build", []string{"build"}, true},
		{"path fragment", "keep/this/build", []string{"keep"}, true},
		{"fragment is segment-exact", "keeper/build", []string{"keep"}, false},
		{"glob on base", "proj/app.log", []string{"*.log"}, true},
		{"glob miss", "proj/app.log", []string{"*.tmp"}, false},
		{"empty pattern ignored", "proj/build", []string{""}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, excludedByPatterns(tt.rel, tt.patterns))
		})
	}
}
