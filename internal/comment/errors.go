// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package comment

import "errors"

// Errors returned by [Process]. The returned error wraps one of these along
// with the underlying cause.
var (
	// ErrFileNotReadable means the target file could not be opened or read.
	ErrFileNotReadable = errors.New("file not readable")
	// ErrScratchCreationFailed means the private scratch file could not be
	// created or written.
	ErrScratchCreationFailed = errors.New("cannot create scratch file")
	// ErrFileNotWritable means the prepared content could not replace the
	// target file.
	ErrFileNotWritable = errors.New("file not writable")
	// ErrUnsupportedFileType means no handler matches the file name.
	ErrUnsupportedFileType = errors.New("don't know what type of file it is")
)
