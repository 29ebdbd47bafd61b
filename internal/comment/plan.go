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

// Plan describes an edit: either prepend a header block (when Location is
// absent) or replace the located span with Text. A Plan holds no file
// handles.
type Plan struct {
	Location Location
	// Text is the header block to prepend, or the replacement for the span.
	Text []byte
	// KeepFirstLine places the header after the first line of the file
	// instead of before it. It only applies when Location is absent.
	KeepFirstLine bool
}

// Action reports what the edit does.
func (p Plan) Action() Action {
	if p.Location.Found() {
		return ActionReplaced
	}
	return ActionInserted
}

// Apply streams the original content from src to dst with the edit applied.
func (p Plan) Apply(src *bufio.Reader, dst io.Writer) error {
	switch {
	case !p.Location.Found():
		if p.KeepFirstLine {
			line, err := src.ReadBytes('\n')
			if err != nil && !errors.Is(err, io.EOF) {
				return err
			}
			if _, err := dst.Write(line); err != nil {
				return err
			}
			if !bytes.HasSuffix(line, []byte("\n")) {
				if _, err := io.WriteString(dst, "\n"); err != nil {
					return err
				}
			}
		}
		if _, err := dst.Write(p.Text); err != nil {
			return err
		}

	case p.Location.Unit == Bytes:
		if _, err := io.CopyN(dst, src, int64(p.Location.Start)); err != nil {
			return fmt.Errorf("copying up to byte %d: %w", p.Location.Start, err)
		}
		if _, err := dst.Write(p.Text); err != nil {
			return err
		}
		if _, err := src.Discard(p.Location.End - p.Location.Start); err != nil {
			return fmt.Errorf("skipping bytes [%d, %d): %w", p.Location.Start, p.Location.End, err)
		}

	case p.Location.Unit == Lines:
		for i := range p.Location.Start {
			line, err := src.ReadBytes('\n')
			if _, werr := dst.Write(line); werr != nil {
				return werr
			}
			if err != nil {
				if errors.Is(err, io.EOF) {
					err = io.ErrUnexpectedEOF
				}
				return fmt.Errorf("copying line %d: %w", i, err)
			}
		}
		// The matched line is dropped whole, however long it is.
		if _, err := src.ReadBytes('\n'); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if _, err := dst.Write(p.Text); err != nil {
			return err
		}
	}

	_, err := io.Copy(dst, src)
	return err
}
