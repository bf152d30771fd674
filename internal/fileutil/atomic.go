// Package fileutil provides file system utilities.
package fileutil

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteAtomic streams write's output to a hidden temporary file next to
// filename, then renames it into place. Readers see the old file or the
// complete new one. On any failure the target is untouched and the temporary
// file is removed.
func WriteAtomic(filename string, perm os.FileMode, write func(io.Writer) error) error {
	// the rename must not cross filesystems
	tmp, err := os.CreateTemp(filepath.Dir(filename), "."+filepath.Base(filename)+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	renamed := false
	defer func() {
		if !renamed {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	buf := bufio.NewWriter(tmp)
	steps := []struct {
		name string
		run  func() error
	}{
		{"write", func() error { return write(buf) }},
		{"flush", buf.Flush},
		{"sync", tmp.Sync},
		{"chmod", func() error { return tmp.Chmod(perm) }},
		{"close", tmp.Close},
	}
	for _, step := range steps {
		if err := step.run(); err != nil {
			return fmt.Errorf("%s %s: %w", step.name, tmp.Name(), err)
		}
	}

	if err := os.Rename(tmp.Name(), filename); err != nil {
		return fmt.Errorf("rename into %s: %w", filename, err)
	}
	renamed = true
	return nil
}
