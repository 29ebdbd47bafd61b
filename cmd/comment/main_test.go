// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.astrophena.name/comment/internal/cli"
	"go.astrophena.name/comment/internal/cli/clitest"
	"go.astrophena.name/comment/internal/comment"
	"go.astrophena.name/comment/internal/config"
	"go.astrophena.name/comment/internal/filetimes"
	"go.astrophena.name/comment/internal/testutil"
)

// testApp remembers the scratch directory of a test case.
type testApp struct {
	*app
	dir string
}

var mtime = time.Date(2017, 8, 30, 12, 0, 0, 0, time.UTC)

var fixtures = map[string]string{
	"main.c":    "/**\n * @date 2000-01-01\n */\nint main(void) { return 0; }\n",
	"Makefile":  "all:\n",
	"notes.txt": "hello\n",
}

func setup(t *testing.T, dir string) *testApp {
	for name, content := range fixtures {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		if err := filetimes.Restore(path, filetimes.Times{Access: mtime, Modify: mtime}); err != nil {
			t.Fatal(err)
		}
	}
	return &testApp{app: new(app), dir: dir}
}

func read(t *testing.T, ta *testApp, name string) string {
	t.Helper()
	return testutil.ReadFile(t, filepath.Join(ta.dir, name))
}

func TestRun(t *testing.T) {
	t.Parallel()

	baseEnv := map[string]string{
		"XDG_CONFIG_HOME": "$DIR/config",
		"COMMENT_AUTHOR":  "Anders Tornblad",
	}

	clitest.Run(t, setup, map[string]clitest.Case[*testApp]{
		"no arguments": {
			Env:     baseEnv,
			WantErr: cli.ErrInvalidArgs,
		},
		"version": {
			Args:    []string{"-version"},
			WantErr: cli.ErrExitVersion,
		},
		"stamps files": {
			Args: []string{"$DIR/main.c", "$DIR/Makefile"},
			Env:  baseEnv,
			CheckFunc: func(t *testing.T, ta *testApp) {
				testutil.AssertEqual(t, read(t, ta, "main.c"), "/**\n * @date 2017-08-30\n */\nint main(void) { return 0; }\n")
				testutil.AssertEqual(t, read(t, ta, "Makefile"), "# Makefile\n# Author: Anders Tornblad\n# Date: 2017-08-30\n\nall:\n")

				times, err := filetimes.Get(filepath.Join(ta.dir, "main.c"))
				if err != nil {
					t.Fatal(err)
				}
				if !times.Modify.Equal(mtime) {
					t.Errorf("modification time = %v, want %v", times.Modify, mtime)
				}
			},
		},
		"author flag": {
			Args: []string{"-author", "Someone Else", "$DIR/Makefile"},
			Env:  baseEnv,
			CheckFunc: func(t *testing.T, ta *testApp) {
				if got := read(t, ta, "Makefile"); !strings.Contains(got, "# Author: Someone Else\n") {
					t.Errorf("author not overridden:\n%s", got)
				}
			},
		},
		"format flag": {
			Args: []string{"-format", "dd.mm.yyyy", "$DIR/main.c"},
			Env:  baseEnv,
			CheckFunc: func(t *testing.T, ta *testApp) {
				if got := read(t, ta, "main.c"); !strings.Contains(got, "@date 30.08.2017\n") {
					t.Errorf("format not applied:\n%s", got)
				}
			},
		},
		"dry run": {
			Args:         []string{"-dry", "$DIR/main.c", "$DIR/Makefile"},
			Env:          baseEnv,
			WantInStdout: "Makefile: inserted",
			CheckFunc: func(t *testing.T, ta *testApp) {
				testutil.AssertEqual(t, read(t, ta, "main.c"), fixtures["main.c"])
				testutil.AssertEqual(t, read(t, ta, "Makefile"), fixtures["Makefile"])
			},
		},
		"verbose": {
			Args:         []string{"-v", "$DIR/main.c"},
			Env:          baseEnv,
			WantInStderr: "scanned file",
		},
		"unsupported file does not stop the batch": {
			Args:         []string{"$DIR/notes.txt", "$DIR/main.c"},
			Env:          baseEnv,
			WantErr:      comment.ErrUnsupportedFileType,
			WantInStderr: "don't know what type of file it is",
			CheckFunc: func(t *testing.T, ta *testApp) {
				testutil.AssertEqual(t, read(t, ta, "notes.txt"), fixtures["notes.txt"])
				if got := read(t, ta, "main.c"); !strings.Contains(got, "@date 2017-08-30\n") {
					t.Errorf("main.c not stamped:\n%s", got)
				}
			},
		},
		"missing file": {
			Args:    []string{"$DIR/missing.c"},
			Env:     baseEnv,
			WantErr: comment.ErrFileNotReadable,
		},
		"set saves configuration": {
			Args: []string{"-set", "name=Someone", "-set", "date_format=dd.mm.yyyy"},
			Env:  baseEnv,
			CheckFunc: func(t *testing.T, ta *testApp) {
				cfg, err := config.Load(filepath.Join(ta.dir, "config", "comment", "config.yaml"), func(string) string { return "" }, config.Config{})
				if err != nil {
					t.Fatal(err)
				}
				testutil.AssertEqual(t, cfg, config.Config{Author: "Someone", DateFormat: "dd.mm.yyyy"})
			},
		},
		"set then stamp": {
			Args: []string{"-set", "date_format=yyyy", "$DIR/main.c"},
			Env:  baseEnv,
			CheckFunc: func(t *testing.T, ta *testApp) {
				if got := read(t, ta, "main.c"); !strings.Contains(got, "@date 2017\n") {
					t.Errorf("saved format not used:\n%s", got)
				}
			},
		},
		"config path from environment": {
			Args: []string{"-set", "backups=3"},
			Env: map[string]string{
				"COMMENT_CONFIG": "$DIR/custom.yaml",
				"COMMENT_AUTHOR": "x",
			},
			CheckFunc: func(t *testing.T, ta *testApp) {
				if got := read(t, ta, "custom.yaml"); !strings.Contains(got, "backups: 3") {
					t.Errorf("custom.yaml = %q", got)
				}
			},
		},
		"malformed set": {
			Args:    []string{"-set", "author"},
			Env:     baseEnv,
			WantErr: cli.ErrInvalidArgs,
		},
		"unknown key": {
			Args:    []string{"-set", "colour=blue"},
			Env:     baseEnv,
			WantErr: config.ErrUnknownKey,
		},
	})
}
