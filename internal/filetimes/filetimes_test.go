// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package filetimes

import (
	"os"
	"runtime"
	"testing"
	"time"

	"go.astrophena.name/comment/internal/testutil"
)

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	path := testutil.WriteFile(t, "main.c", "int main(void) { return 0; }\n")
	want := Times{
		Access: time.Date(2017, 8, 30, 12, 0, 0, 0, time.UTC),
		Modify: time.Date(2017, 8, 23, 9, 30, 0, 0, time.UTC),
	}
	if runtime.GOOS != "linux" {
		want.Access = want.Modify
	}

	if err := Restore(path, want); err != nil {
		t.Fatal(err)
	}
	got, err := Get(path)
	if err != nil {
		t.Fatal(err)
	}

	testutil.AssertEqual(t, got.Modify.UTC(), want.Modify)
	testutil.AssertEqual(t, got.Access.UTC(), want.Access)
}

func TestGetMissing(t *testing.T) {
	t.Parallel()

	if _, err := Get("testdata/missing.c"); !os.IsNotExist(err) {
		t.Fatalf("want not-exist error, got %v", err)
	}
}
