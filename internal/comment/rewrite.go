// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package comment

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/zeebo/xxh3"

	"go.astrophena.name/comment/internal/atomicio"
	"go.astrophena.name/comment/internal/filetimes"
	"go.astrophena.name/comment/internal/logger"
)

// Options control how [Process] writes its result.
type Options struct {
	// DryRun prepares the new content but never touches the file.
	DryRun bool
	// Backups is the number of previous versions to keep next to the file.
	Backups int
}

// rewrite applies plan to the file described by fc. The new content is
// first prepared in a private scratch file, so a failure before the final
// replace leaves the original untouched. Symbolic links are followed and the
// file they point to is rewritten.
func rewrite(ctx context.Context, fc *FileContext, plan Plan, opts Options) (Action, error) {
	target, err := filepath.EvalSymlinks(fc.Path)
	if err != nil {
		return ActionNone, fmt.Errorf("%w: %w", ErrFileNotReadable, err)
	}

	scratch, err := os.CreateTemp("", "comment-"+fc.BaseName+"-*")
	if err != nil {
		return ActionNone, fmt.Errorf("%w: %w", ErrScratchCreationFailed, err)
	}
	defer scratch.Close()
	// Nobody else can open the scratch file by name once it is unlinked.
	if err := os.Remove(scratch.Name()); err != nil {
		logger.Debug(ctx, "scratch file not unlinked", slog.String("scratch", scratch.Name()), slog.Any("err", err))
		defer os.Remove(scratch.Name())
	}

	orig, err := os.Open(target)
	if err != nil {
		return ActionNone, fmt.Errorf("%w: %w", ErrFileNotReadable, err)
	}
	defer orig.Close()

	var (
		origHash, newHash = xxh3.New(), xxh3.New()
		src               = &trackingReader{r: io.TeeReader(orig, origHash)}
		dst               = &trackingWriter{w: io.MultiWriter(scratch, newHash)}
		bw                = bufio.NewWriter(dst)
	)
	if err := plan.Apply(bufio.NewReader(src), bw); err != nil {
		return ActionNone, classifyCopyError(src, dst, err)
	}
	if err := bw.Flush(); err != nil {
		return ActionNone, fmt.Errorf("%w: %w", ErrScratchCreationFailed, err)
	}
	orig.Close()

	action := plan.Action()
	attrs := []slog.Attr{
		slog.String("path", fc.Path),
		slog.String("location", plan.Location.String()),
	}
	if target != fc.Path {
		attrs = append(attrs, slog.String("target", target))
	}

	if src.n == dst.n && origHash.Sum128() == newHash.Sum128() {
		logger.Debug(ctx, "content unchanged", attrs...)
		if !opts.DryRun {
			restoreTimes(ctx, target, fc.Times)
		}
		return ActionUnchanged, nil
	}

	if opts.DryRun {
		logger.Info(ctx, "would update file", append(attrs, slog.String("action", action.String()))...)
		return action, nil
	}

	if _, err := scratch.Seek(0, io.SeekStart); err != nil {
		return ActionNone, fmt.Errorf("%w: %w", ErrScratchCreationFailed, err)
	}
	if err := checkWritable(target); err != nil {
		return ActionNone, fmt.Errorf("%w: %w", ErrFileNotWritable, err)
	}
	if err := atomicio.WriteFile(target, scratch, opts.Backups); err != nil {
		return ActionNone, fmt.Errorf("%w: %w", ErrFileNotWritable, err)
	}
	restoreTimes(ctx, target, fc.Times)

	logger.Info(ctx, "updated file", append(attrs, slog.String("action", action.String()))...)
	return action, nil
}

func checkWritable(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return err
	}
	return f.Close()
}

func restoreTimes(ctx context.Context, path string, times filetimes.Times) {
	if err := filetimes.Restore(path, times); err != nil {
		logger.Warn(ctx, "cannot restore file times", slog.String("path", path), slog.Any("err", err))
	}
}

// classifyCopyError tells failures of the original from failures of the
// scratch file. Anything else means the original ended before the scanned
// location, which only happens if it changed under us.
func classifyCopyError(src *trackingReader, dst *trackingWriter, err error) error {
	switch {
	case dst.err != nil:
		return fmt.Errorf("%w: %w", ErrScratchCreationFailed, err)
	case src.err != nil:
		return fmt.Errorf("%w: %w", ErrFileNotReadable, err)
	default:
		return fmt.Errorf("%w: file changed while processing: %w", ErrFileNotReadable, err)
	}
}

// trackingReader counts bytes read and remembers the first failure.
type trackingReader struct {
	r   io.Reader
	n   int64
	err error
}

func (t *trackingReader) Read(p []byte) (int, error) {
	n, err := t.r.Read(p)
	t.n += int64(n)
	if err != nil && !errors.Is(err, io.EOF) && t.err == nil {
		t.err = err
	}
	return n, err
}

// trackingWriter counts bytes written and remembers the first failure.
type trackingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (t *trackingWriter) Write(p []byte) (int, error) {
	n, err := t.w.Write(p)
	t.n += int64(n)
	if err != nil && t.err == nil {
		t.err = err
	}
	return n, err
}
