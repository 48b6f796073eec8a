// Package fs provides file-based output for converted documents.
package fs

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fwojciec/chatdocx"
)

// Ensure Destination implements chatdocx.Destination at compile time.
var _ chatdocx.Destination = (*Destination)(nil)

// Destination writes documents to the local file system with atomic
// replace semantics. Content is written to a temporary file in the target
// directory, then renamed over the target.
type Destination struct{}

// NewDestination creates a new Destination.
func NewDestination() *Destination {
	return &Destination{}
}

// CheckWritable reports whether path can be replaced. An existing file is
// opened for appending without writing anything, which fails when another
// program holds it locked or it is read-only. For a new file the parent
// directory must accept a new file.
func (d *Destination) CheckWritable(path string) error {
	if path == "" {
		return chatdocx.Errorf(chatdocx.EUNWRITABLE, "output path is empty")
	}

	info, err := os.Stat(path)
	switch {
	case err == nil:
		if info.IsDir() {
			return chatdocx.Errorf(chatdocx.EUNWRITABLE, "%s is a directory", path)
		}
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0)
		if err != nil {
			return unwritable(path, err)
		}
		if err := f.Close(); err != nil {
			return unwritable(path, err)
		}
		return nil
	case errors.Is(err, fs.ErrNotExist):
		return probeDir(path)
	default:
		return unwritable(path, err)
	}
}

// probeDir creates and removes a temporary file next to path.
func probeDir(path string) error {
	f, err := os.CreateTemp(filepath.Dir(path), ".chatdocx-probe-*")
	if err != nil {
		return unwritable(path, err)
	}
	name := f.Name()
	f.Close()
	if err := os.Remove(name); err != nil {
		return unwritable(path, err)
	}
	return nil
}

// Save replaces the file at path with the output of write. On any failure
// the temporary file is removed and an existing file at path is left as it
// was.
func (d *Destination) Save(path string, write func(w io.Writer) error) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return unwritable(path, err)
	}
	tmp := f.Name()

	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	if err := write(f); err != nil {
		return err
	}
	if err := f.Sync(); err != nil {
		return unwritable(path, err)
	}
	if err := f.Chmod(fileMode(path)); err != nil {
		return unwritable(path, err)
	}
	if err := f.Close(); err != nil {
		return unwritable(path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return unwritable(path, err)
	}
	return nil
}

// fileMode returns the permissions of the regular file at path, or 0644
// when there is none.
func fileMode(path string) fs.FileMode {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return 0644
	}
	return info.Mode().Perm()
}

func unwritable(path string, err error) error {
	return chatdocx.Errorf(chatdocx.EUNWRITABLE, "cannot write %s: %v", path, err)
}
