// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package comment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"go.astrophena.name/comment/internal/logger"
)

// Kind is a file type known to [Process].
type Kind int

const (
	KindUnsupported Kind = iota
	KindMakefile
	KindC
	KindTex
	KindShell
)

func (k Kind) String() string {
	switch k {
	case KindMakefile:
		return "makefile"
	case KindC:
		return "c"
	case KindTex:
		return "tex"
	case KindShell:
		return "shell"
	default:
		return "unsupported"
	}
}

// Classify returns the kind of fc, judged by its name alone. The first
// matching rule wins: a base name of "makefile" or "Makefile", then the
// extensions .mk, .c or .h, .tex and .sh.
func Classify(fc *FileContext) Kind {
	switch {
	case fc.BaseName == "makefile" || fc.BaseName == "Makefile":
		return KindMakefile
	case fc.Extension == ".mk":
		return KindMakefile
	case fc.Extension == ".c" || fc.Extension == ".h":
		return KindC
	case fc.Extension == ".tex":
		return KindTex
	case fc.Extension == ".sh":
		return KindShell
	}
	return KindUnsupported
}

// Action is the outcome of [Process] for one file.
type Action int

const (
	ActionNone      Action = iota
	ActionInserted         // a new header block was added
	ActionReplaced         // an existing date was replaced
	ActionUnchanged        // the file already had the right date
)

func (a Action) String() string {
	switch a {
	case ActionInserted:
		return "inserted"
	case ActionReplaced:
		return "replaced"
	case ActionUnchanged:
		return "unchanged"
	default:
		return "none"
	}
}

// Process inserts or updates the date annotation of the file described by
// fc. Errors wrap one of the package sentinel errors.
func Process(ctx context.Context, fc *FileContext, opts Options) (Action, error) {
	kind := Classify(fc)
	h, ok := handlers[kind]
	if !ok {
		return ActionNone, fmt.Errorf("%w: %s", ErrUnsupportedFileType, fc.Path)
	}

	f, err := os.Open(fc.Path)
	if err != nil {
		return ActionNone, fmt.Errorf("%w: %w", ErrFileNotReadable, err)
	}
	plan, err := h.plan(fc, f)
	f.Close()
	if err != nil {
		return ActionNone, err
	}

	logger.Debug(ctx, "scanned file",
		slog.String("path", fc.Path),
		slog.String("kind", kind.String()),
		slog.String("location", plan.Location.String()),
		slog.Bool("keep_first_line", plan.KeepFirstLine),
	)

	action, err := rewrite(ctx, fc, plan, opts)
	if errors.Is(err, ErrScratchCreationFailed) || errors.Is(err, ErrFileNotWritable) {
		// Reading the file may have moved its access time.
		restoreTimes(ctx, fc.Path, fc.Times)
	}
	return action, err
}
