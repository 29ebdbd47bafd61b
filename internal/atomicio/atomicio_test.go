// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package atomicio

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"go.astrophena.name/comment/internal/testutil"
)

func TestWriteFile(t *testing.T) {
	t.Parallel()

	t.Run("replaces contents", func(t *testing.T) {
		t.Parallel()
		file := testutil.WriteFile(t, "main.c", "old\n")

		if err := WriteFile(file, strings.NewReader("new\n"), 0); err != nil {
			t.Fatal(err)
		}

		testutil.AssertEqual(t, testutil.ReadFile(t, file), "new\n")
		backups, err := Backups(file)
		if err != nil {
			t.Fatal(err)
		}
		testutil.AssertEqual(t, len(backups), 0)
	})

	t.Run("preserves permissions", func(t *testing.T) {
		t.Parallel()
		file := testutil.WriteFile(t, "build.sh", "#!/bin/sh\n")
		if err := os.Chmod(file, 0o755); err != nil {
			t.Fatal(err)
		}

		if err := WriteFile(file, strings.NewReader("#!/bin/sh\n# Date: x\n"), 0); err != nil {
			t.Fatal(err)
		}

		fi, err := os.Stat(file)
		if err != nil {
			t.Fatal(err)
		}
		testutil.AssertEqual(t, fi.Mode().Perm(), os.FileMode(0o755))
	})

	t.Run("leaves no temporary files", func(t *testing.T) {
		t.Parallel()
		file := testutil.WriteFile(t, "Makefile", "all:\n")

		if err := WriteFile(file, strings.NewReader("# Date: x\nall:\n"), 0); err != nil {
			t.Fatal(err)
		}

		entries, err := os.ReadDir(filepath.Dir(file))
		if err != nil {
			t.Fatal(err)
		}
		testutil.AssertEqual(t, len(entries), 1)
	})

	t.Run("follows symlinks", func(t *testing.T) {
		t.Parallel()
		target := testutil.WriteFile(t, "real.c", "old\n")
		link := filepath.Join(filepath.Dir(target), "link.c")
		if err := os.Symlink("real.c", link); err != nil {
			t.Skipf("cannot create symlink: %v", err)
		}

		if err := WriteFile(link, strings.NewReader("new\n"), 0); err != nil {
			t.Fatal(err)
		}

		fi, err := os.Lstat(link)
		if err != nil {
			t.Fatal(err)
		}
		testutil.AssertEqual(t, fi.Mode()&os.ModeSymlink != 0, true)
		testutil.AssertEqual(t, testutil.ReadFile(t, target), "new\n")
	})

	t.Run("keeps hard links", func(t *testing.T) {
		t.Parallel()
		a := testutil.WriteFile(t, "a.c", "old\n")
		b := filepath.Join(filepath.Dir(a), "b.c")
		if err := os.Link(a, b); err != nil {
			t.Skipf("cannot create hard link: %v", err)
		}

		if err := WriteFile(a, strings.NewReader("new\n"), 0); err != nil {
			t.Fatal(err)
		}

		testutil.AssertEqual(t, testutil.ReadFile(t, a), "new\n")
		testutil.AssertEqual(t, testutil.ReadFile(t, b), "new\n")

		fa, err := os.Stat(a)
		if err != nil {
			t.Fatal(err)
		}
		fb, err := os.Stat(b)
		if err != nil {
			t.Fatal(err)
		}
		testutil.AssertEqual(t, os.SameFile(fa, fb), true)
	})
}

func TestWriteFileBackups(t *testing.T) {
	// Not parallel: overrides now.
	var tick int64
	now = func() time.Time {
		tick++
		return time.Unix(1700000000, tick)
	}
	t.Cleanup(func() { now = time.Now })

	file := testutil.WriteFile(t, "main.c", "v0")

	for i := 1; i <= 5; i++ {
		if err := WriteFile(file, strings.NewReader("v"+strconv.Itoa(i)), 3); err != nil {
			t.Fatal(err)
		}
	}

	testutil.AssertEqual(t, testutil.ReadFile(t, file), "v5")

	backups, err := Backups(file)
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, len(backups), 3)

	var contents []string
	for _, b := range backups {
		contents = append(contents, testutil.ReadFile(t, b))
	}
	testutil.AssertEqual(t, contents, []string{"v2", "v3", "v4"})
}
