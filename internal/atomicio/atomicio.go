// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package atomicio replaces file contents atomically, optionally keeping
// backups of the previous contents.
package atomicio

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/natefinch/atomic"
)

const backupTimeFormat = "20060102150405.000000000"

// now is overridden in tests.
var now = time.Now

// WriteFile replaces the contents of name with everything read from r. The
// data is written to a temporary file in the same directory, which is then
// renamed over name, so readers observe either the old or the new contents
// and never a mix. Permission bits of an existing file are preserved.
//
// A symbolic link is followed and the file it points to is replaced. A file
// with more than one hard link is instead overwritten in place, so that every
// name sees the new contents; that write is not atomic.
//
// If backups is positive and name exists, its previous contents are kept as
// name.<timestamp>.bak and only the newest backups copies are retained.
func WriteFile(name string, r io.Reader, backups int) error {
	if target, err := filepath.EvalSymlinks(name); err == nil {
		name = target
	}

	if backups > 0 {
		if err := backup(name); err != nil {
			return fmt.Errorf("backing up %q: %w", name, err)
		}
	}

	links, err := linkCount(name)
	if err != nil {
		return err
	}
	if links > 1 {
		err = overwrite(name, r)
	} else {
		err = atomic.WriteFile(name, r)
	}
	if err != nil {
		return err
	}

	if backups > 0 {
		return pruneBackups(name, backups)
	}
	return nil
}

func overwrite(name string, r io.Reader) error {
	f, err := os.OpenFile(name, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func backup(name string) error {
	f, err := os.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	defer f.Close()

	backupName := name + "." + now().UTC().Format(backupTimeFormat) + ".bak"
	return atomic.WriteFile(backupName, f)
}

// Backups returns the backup files of name, oldest first.
func Backups(name string) ([]string, error) {
	backups, err := filepath.Glob(globEscape(name) + ".*.bak")
	if err != nil {
		return nil, err
	}
	slices.Sort(backups)
	return backups, nil
}

func pruneBackups(name string, keep int) error {
	backups, err := Backups(name)
	if err != nil {
		return err
	}

	for i := 0; i < len(backups)-keep; i++ {
		if err := os.Remove(backups[i]); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}

	return nil
}

func globEscape(s string) string {
	var out []rune
	for _, r := range s {
		switch r {
		case '*', '?', '[', '\\':
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(out)
}
