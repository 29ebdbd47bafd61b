// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package comment

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

// readBoundary is the longest physical line fragment the line scanner reads
// at once. Longer lines continue into the next read.
const readBoundary = 1024

// LineMatch is the result of [ScanLines].
type LineMatch struct {
	// Location is the logical line holding the date, in Lines.
	Location
	// ExtraSpace reports whether a space follows the comment leader.
	ExtraSpace bool
	// UpperCaseFirst reports whether "Date" is capitalized.
	UpperCaseFirst bool
	// Shebang reports whether the first line starts with "#!".
	Shebang bool
}

type datePrefix struct {
	text                  string
	extraSpace, upperCase bool
}

func datePrefixes(leader byte) []datePrefix {
	l := string(leader)
	return []datePrefix{
		{l + " Date:", true, true},
		{l + "Date:", false, true},
		{l + " date:", true, false},
		{l + "date:", false, false},
	}
}

// ScanLines looks for the first line starting with a date marker: the
// comment leader, an optional space, then "Date:" or "date:". Only the first
// fragment of a line is tested; the rest of a line longer than the read
// boundary is never matched.
func ScanLines(r io.Reader, leader byte) (LineMatch, error) {
	br := bufio.NewReaderSize(r, readBoundary)
	prefixes := datePrefixes(leader)

	m := LineMatch{Location: Absent(Lines)}
	var (
		index     int
		firstPart = true
	)
	for {
		frag, err := br.ReadSlice('\n')
		if err != nil && !errors.Is(err, bufio.ErrBufferFull) && !errors.Is(err, io.EOF) {
			return LineMatch{}, fmt.Errorf("%w: %w", ErrFileNotReadable, err)
		}

		if firstPart && len(frag) > 0 {
			for _, p := range prefixes {
				if bytes.HasPrefix(frag, []byte(p.text)) {
					m.Location = Present(index, index, Lines)
					m.ExtraSpace = p.extraSpace
					m.UpperCaseFirst = p.upperCase
					return m, nil
				}
			}
			if index == 0 && bytes.HasPrefix(frag, []byte("#!")) {
				m.Shebang = true
			}
			index++
		}

		if errors.Is(err, io.EOF) {
			return m, nil
		}
		firstPart = !errors.Is(err, bufio.ErrBufferFull)
	}
}

// dateLine renders the replacement for a matched date line.
func (m LineMatch) dateLine(leader byte, dateText string) []byte {
	var b bytes.Buffer
	b.WriteByte(leader)
	if m.ExtraSpace {
		b.WriteByte(' ')
	}
	if m.UpperCaseFirst {
		b.WriteByte('D')
	} else {
		b.WriteByte('d')
	}
	b.WriteString("ate: ")
	b.WriteString(dateText)
	b.WriteByte('\n')
	return b.Bytes()
}
