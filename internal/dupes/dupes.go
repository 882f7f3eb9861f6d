// Package dupes finds duplicate files by grouping on size and then
// hashing equal-sized candidates, so most files are never read.
package dupes

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	xxhash "github.com/cespare/xxhash/v2"

	"github.com/xiebaiyuan/buildsweep/internal/engine"
)

// Options configures a duplicate scan.
type Options struct {
	// MinSize skips files smaller than this many bytes. Zero-length
	// files are always skipped; they are trivially identical.
	MinSize int64
	// WhitelistDirs are extra protected directory names on top of the
	// defaults; whitelisted subtrees are not inspected.
	WhitelistDirs []string
}

// Group is one set of byte-identical files.
type Group struct {
	Hash  string
	Size  int64
	Paths []string
}

// Stats summarizes a duplicate scan.
type Stats struct {
	FilesSeen   int
	FilesHashed int
	Groups      int
	WastedBytes int64
}

// Find walks root and returns duplicate groups in deterministic order:
// largest wasted bytes first, ties by hash.
func Find(root string, opts Options) ([]Group, Stats, error) {
	var stats Stats
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, stats, fmt.Errorf("%w: %s", engine.ErrPathNotFound, root)
	}
	st, err := os.Stat(abs)
	if err != nil || !st.IsDir() {
		return nil, stats, fmt.Errorf("%w: %s", engine.ErrPathNotFound, root)
	}

	wl := engine.NewWhitelist(opts.WhitelistDirs)
	minSize := opts.MinSize
	if minSize < 1 {
		minSize = 1
	}

	bySize := map[int64][]string{}
	walkErr := filepath.WalkDir(abs, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if p != abs && wl[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil || info.Size() < minSize {
			return nil
		}
		stats.FilesSeen++
		bySize[info.Size()] = append(bySize[info.Size()], p)
		return nil
	})
	if walkErr != nil {
		return nil, stats, walkErr
	}

	byHash := map[string]*Group{}
	for size, paths := range bySize {
		if len(paths) < 2 {
			continue
		}
		for _, p := range paths {
			h, err := hashFile(p)
			if err != nil {
				// Vanished or unreadable; skip the file, not the scan.
				continue
			}
			stats.FilesHashed++
			// Key on size too so equal hashes of different lengths
			// never merge.
			key := fmt.Sprintf("%d/%016x", size, h)
			g, ok := byHash[key]
			if !ok {
				g = &Group{Hash: fmt.Sprintf("%016x", h), Size: size}
				byHash[key] = g
			}
			g.Paths = append(g.Paths, p)
		}
	}

	var groups []Group
	for _, g := range byHash {
		if len(g.Paths) < 2 {
			continue
		}
		sort.Strings(g.Paths)
		groups = append(groups, *g)
		stats.Groups++
		stats.WastedBytes += g.Size * int64(len(g.Paths)-1)
	}
	sort.Slice(groups, func(i, j int) bool {
		wi := groups[i].Size * int64(len(groups[i].Paths)-1)
		wj := groups[j].Size * int64(len(groups[j].Paths)-1)
		if wi != wj {
			return wi > wj
		}
		return groups[i].Hash < groups[j].Hash
	})
	return groups, stats, nil
}

func hashFile(path string) (uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return 0, err
	}
	return h.Sum64(), nil
}
