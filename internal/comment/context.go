// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package comment

import (
	"path/filepath"
	"strings"

	"go.astrophena.name/comment/internal/filetimes"
)

// FileContext describes one file to be processed. It is built once per file
// and never modified by this package.
type FileContext struct {
	// Path is the file path as given on the command line.
	Path string
	// BaseName is the part of Path after the final separator.
	BaseName string
	// Extension is the suffix of Path starting at the last dot, or empty if
	// that dot is not part of BaseName.
	Extension string
	// Author is written into newly inserted header blocks.
	Author string
	// DateText is the already formatted date to write.
	DateText string
	// Times are the access and modification times captured before any
	// change, restored after the rewrite.
	Times filetimes.Times
}

const separators = "/" + string(filepath.Separator)

// NewFileContext returns a FileContext for path.
func NewFileContext(path, author, dateText string, times filetimes.Times) *FileContext {
	base := path
	baseStart := strings.LastIndexAny(path, separators) + 1
	if baseStart > 0 {
		base = path[baseStart:]
	}

	var ext string
	if dot := strings.LastIndexByte(path, '.'); dot >= baseStart {
		ext = path[dot:]
	}

	return &FileContext{
		Path:      path,
		BaseName:  base,
		Extension: ext,
		Author:    author,
		DateText:  dateText,
		Times:     times,
	}
}
