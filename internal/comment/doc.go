// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package comment inserts or updates a "last modified date" annotation in
// the leading comment block of a source file.
//
// The comment syntax is chosen from the file's name:
//
//	Makefile, makefile, *.mk  # Date: lines
//	*.c, *.h                  doxygen @date field in a /** ... */ block
//	*.tex                     % Date: lines
//	*.sh                      # Date: lines, below a #! line if present
//
// Each file is scanned once to locate an existing annotation, which yields a
// [Plan]. The plan is then applied through a private scratch file and the
// result replaces the original in a single step. Bytes outside the annotation
// are preserved, and the file's access and modification times are restored
// afterwards.
package comment
