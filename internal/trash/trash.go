// Package trash provides the recoverable-removal capability: moving a
// path to a trash location from which it can be restored. Nothing in
// this package ever unlinks permanently.
package trash

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// ErrUnavailable means no recoverable trash location could be set up in
// this environment. Callers must abort before scanning.
var ErrUnavailable = errors.New("no recoverable trash capability available")

// Trasher moves a path into a recoverable trash location.
type Trasher interface {
	Trash(path string) error
	Name() string
}

// Detect picks the best available capability: the external `trash`
// command when installed (it integrates with the OS recycle bin),
// otherwise a freedesktop-style trash directory under the user's home.
func Detect() (Trasher, error) {
	if bin, err := exec.LookPath("trash"); err == nil {
		return &cmdTrasher{bin: bin}, nil
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return nil, ErrUnavailable
	}
	return NewDirTrasher(filepath.Join(home, ".local", "share", "Trash")), nil
}

type cmdTrasher struct {
	bin string
}

func (t *cmdTrasher) Name() string { return t.bin }

func (t *cmdTrasher) Trash(path string) error {
	out, err := exec.Command(t.bin, path).CombinedOutput()
	if err != nil {
		return fmt.Errorf("trash %s: %v: %s", path, err, out)
	}
	return nil
}

// DirTrasher implements the freedesktop trash layout: the payload moves
// into <root>/files and a matching .trashinfo record goes into
// <root>/info so desktop environments can restore it.
type DirTrasher struct {
	root string
	now  func() time.Time
}

// NewDirTrasher returns a DirTrasher rooted at the given directory.
func NewDirTrasher(root string) *DirTrasher {
	return &DirTrasher{root: root, now: time.Now}
}

func (t *DirTrasher) Name() string { return t.root }

func (t *DirTrasher) Trash(path string) error {
	filesDir := filepath.Join(t.root, "files")
	infoDir := filepath.Join(t.root, "info")
	if err := os.MkdirAll(filesDir, 0o700); err != nil {
		return fmt.Errorf("prepare trash: %w", err)
	}
	if err := os.MkdirAll(infoDir, 0o700); err != nil {
		return fmt.Errorf("prepare trash: %w", err)
	}

	name := t.freeName(filesDir, filepath.Base(path))
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	info := fmt.Sprintf("[Trash Info]\nPath=%s\nDeletionDate=%s\n",
		abs, t.now().Format("2006-01-02T15:04:05"))
	if err := os.WriteFile(filepath.Join(infoDir, name+".trashinfo"), []byte(info), 0o600); err != nil {
		return fmt.Errorf("write trash info: %w", err)
	}
	if err := os.Rename(path, filepath.Join(filesDir, name)); err != nil {
		// Leave no orphaned info record behind.
		_ = os.Remove(filepath.Join(infoDir, name+".trashinfo"))
		return fmt.Errorf("move to trash: %w", err)
	}
	return nil
}

// freeName returns a destination base name that does not collide with an
// earlier trashed item of the same name.
func (t *DirTrasher) freeName(filesDir, base string) string {
	name := base
	for i := 2; ; i++ {
		if _, err := os.Lstat(filepath.Join(filesDir, name)); err != nil {
			return name
		}
		name = fmt.Sprintf("%s.%d", base, i)
	}
}
