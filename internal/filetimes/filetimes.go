// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package filetimes captures and restores file access and modification times.
package filetimes

import (
	"os"
	"time"
)

// Times holds the access and modification times of a file.
type Times struct {
	Access time.Time
	Modify time.Time
}

// Get returns the current access and modification times of path.
func Get(path string) (Times, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return Times{}, err
	}
	return Times{
		Access: accessTime(path, fi),
		Modify: fi.ModTime(),
	}, nil
}

// Restore sets the access and modification times of path to t.
func Restore(path string, t Times) error {
	return os.Chtimes(path, t.Access, t.Modify)
}
