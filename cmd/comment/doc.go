// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Comment inserts or updates the "last modified" date in the header comment of
source files.

# Usage

	$ comment [flags...] <file>...

The date written is the modification time of each file, formatted with the
configured date format. The file's access and modification times are left as
they were.

Supported files are recognized by name:

  - C sources and headers (.c, .h) get a doxygen @date field.
  - Makefiles (Makefile, makefile, .mk) and shell scripts (.sh) get a
    "# Date:" line. A shell script keeps its #! line first.
  - TeX documents (.tex) get a "% Date:" line.

If the file already has a date, only the date is replaced. Otherwise a new
header block with the author and date is added at the top.

# Configuration

Settings are read from $XDG_CONFIG_HOME/comment/config.yaml (or the file given
with -config) and can be changed with -set:

	$ comment -set author="Anders Tornblad" -set date_format=dd.mm.yyyy

Known keys are author, date_format and backups. The environment variables
COMMENT_AUTHOR, COMMENT_DATE_FORMAT and COMMENT_BACKUPS override the file.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/comment/internal/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
