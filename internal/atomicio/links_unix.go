// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

//go:build unix

package atomicio

import (
	"errors"
	"io/fs"

	"golang.org/x/sys/unix"
)

// linkCount returns the number of hard links to name, or 0 if it does not
// exist.
func linkCount(name string) (uint64, error) {
	var st unix.Stat_t
	if err := unix.Stat(name, &st); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, err
	}
	return uint64(st.Nlink), nil
}
