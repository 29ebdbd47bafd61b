// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package comment

import (
	"fmt"
	"io"
)

// A handler scans a file of one type and decides how to edit it.
type handler interface {
	plan(fc *FileContext, r io.Reader) (Plan, error)
}

// cHandler edits the @date field of a doxygen block comment.
type cHandler struct{}

func (cHandler) plan(fc *FileContext, r io.Reader) (Plan, error) {
	loc, err := ScanC(r)
	if err != nil {
		return Plan{}, err
	}
	if loc.Found() {
		return Plan{Location: loc, Text: []byte(fc.DateText)}, nil
	}
	header := fmt.Sprintf("/**\n * @file %s\n * @author %s\n * @date %s\n */\n", fc.BaseName, fc.Author, fc.DateText)
	return Plan{Location: loc, Text: []byte(header)}, nil
}

// lineHandler edits a "Date:" line comment.
type lineHandler struct {
	leader byte
	// title returns the first line of a new header block, without the leader.
	title func(fc *FileContext) string
	// keepShebang inserts new headers below a leading #! line.
	keepShebang bool
}

func (h lineHandler) plan(fc *FileContext, r io.Reader) (Plan, error) {
	m, err := ScanLines(r, h.leader)
	if err != nil {
		return Plan{}, err
	}
	if m.Found() {
		return Plan{Location: m.Location, Text: m.dateLine(h.leader, fc.DateText)}, nil
	}
	l := string(h.leader)
	header := fmt.Sprintf("%[1]s %[2]s\n%[1]s Author: %[3]s\n%[1]s Date: %[4]s\n\n", l, h.title(fc), fc.Author, fc.DateText)
	return Plan{
		Location:      m.Location,
		Text:          []byte(header),
		KeepFirstLine: h.keepShebang && m.Shebang,
	}, nil
}

func makefileTitle(*FileContext) string { return "Makefile" }

func baseNameTitle(fc *FileContext) string { return fc.BaseName }

var handlers = map[Kind]handler{
	KindC:        cHandler{},
	KindMakefile: lineHandler{leader: '#', title: makefileTitle},
	KindShell:    lineHandler{leader: '#', title: makefileTitle, keepShebang: true},
	KindTex:      lineHandler{leader: '%', title: baseNameTitle},
}
