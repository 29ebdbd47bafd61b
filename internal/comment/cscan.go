// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package comment

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// cState is a state of the doxygen @date scanner.
type cState int

const (
	cOutside     cState = iota // looking for /
	cSlash                     // saw /, looking for *
	cOpen                      // saw /*, looking for a second *
	cDoxygen                   // inside /** ... */, looking for @ or *
	cDoxygenStar               // saw * inside doxygen comment, looking for /
	cAt                        // saw @, looking for d
	cAtD                       // looking for a
	cAtDa                      // looking for t
	cAtDat                     // looking for e
	cDateKeyword               // matched @date, skipping blanks
	cDateValue                 // inside the date value, looking for \n
	cDone                      // found the end of the value
	cPlain                     // inside /* ... */, looking for *
	cPlainStar                 // saw * inside plain comment, looking for /
)

// step returns the state that follows s on input c. If reexamine is true, c
// was not consumed and must be fed again to the new state.
func (s cState) step(c byte) (next cState, reexamine bool) {
	switch s {
	case cOutside:
		if c == '/' {
			return cSlash, false
		}
	case cSlash:
		if c == '*' {
			return cOpen, false
		}
		return cOutside, true
	case cOpen:
		if c == '*' {
			return cDoxygen, false
		}
		return cPlain, true
	case cDoxygen:
		switch c {
		case '@':
			return cAt, false
		case '*':
			return cDoxygenStar, false
		}
	case cDoxygenStar:
		if c == '/' {
			return cOutside, false
		}
		return cDoxygen, true
	case cAt, cAtD, cAtDa, cAtDat:
		if c == "date"[s-cAt] {
			return s + 1, false
		}
		return cDoxygen, true
	case cDateKeyword:
		switch c {
		case '\n':
			return cDone, false
		case ' ', '\t':
		default:
			return cDateValue, false
		}
	case cDateValue:
		if c == '\n' {
			return cDone, false
		}
	case cPlain:
		if c == '*' {
			return cPlainStar, false
		}
	case cPlainStar:
		switch c {
		case '/':
			return cOutside, false
		case '*':
		default:
			return cPlain, false
		}
	}
	return s, false
}

// ScanC looks for the value of the first doxygen @date field in r. Only
// /** ... */ comments are searched; the contents of plain /* ... */ comments
// are skipped. The returned Location is in bytes and spans the date value
// without the trailing newline. An @date with no value yields an empty span
// just before the newline.
func ScanC(r io.Reader) (Location, error) {
	br := bufio.NewReader(r)

	var (
		state     = cOutside
		pos       = 0 // offset of the next unread byte
		dateStart = -1
		dateEnd   = -1
	)
	for state != cDone {
		c, err := br.ReadByte()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Location{}, fmt.Errorf("%w: %w", ErrFileNotReadable, err)
		}

		next, reexamine := state.step(c)
		if next != state {
			switch next {
			case cDateValue:
				dateStart = pos
			case cDone:
				dateEnd = pos
			}
		}
		if reexamine {
			// Cannot fail: a byte was just read.
			_ = br.UnreadByte()
		} else {
			pos++
		}
		state = next
	}

	if dateEnd == -1 {
		return Absent(Bytes), nil
	}
	if dateStart == -1 {
		dateStart = dateEnd
	}
	return Present(dateStart, dateEnd, Bytes), nil
}
