// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package comment

import "fmt"

// Unit is the unit of the offsets in a [Location].
type Unit int

const (
	// Bytes offsets count bytes from the start of the file.
	Bytes Unit = iota
	// Lines offsets count logical lines from the start of the file.
	Lines
)

// Location is the result of a scan: either no annotation was found, or one
// spans [Start, End) in the original file.
type Location struct {
	Start, End int
	Unit       Unit
	found      bool
}

// Absent returns a Location reporting that no annotation exists.
func Absent(u Unit) Location { return Location{Unit: u} }

// Present returns a Location for an annotation spanning [start, end).
// It panics if start > end or start < 0.
func Present(start, end int, u Unit) Location {
	if start < 0 || start > end {
		panic(fmt.Sprintf("comment: invalid span [%d, %d)", start, end))
	}
	return Location{Start: start, End: end, Unit: u, found: true}
}

// Found reports whether an annotation was located.
func (l Location) Found() bool { return l.found }

func (l Location) String() string {
	if !l.found {
		return "absent"
	}
	unit := "byte"
	if l.Unit == Lines {
		unit = "line"
	}
	return fmt.Sprintf("%s [%d, %d)", unit, l.Start, l.End)
}
