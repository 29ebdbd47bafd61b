// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package comment

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"testing"

	"go.astrophena.name/comment/internal/testutil"
)

func TestPlanApply(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		in   string
		plan Plan
		want string
	}{
		"replace bytes": {
			in:   "/**\n * @date 2020-01-01\n */\n",
			plan: Plan{Location: Present(13, 23, Bytes), Text: []byte("2021-12-31")},
			want: "/**\n * @date 2021-12-31\n */\n",
		},
		"fill empty value": {
			in:   "/** @date\n */",
			plan: Plan{Location: Present(9, 9, Bytes), Text: []byte("2021-12-31")},
			want: "/** @date2021-12-31\n */",
		},
		"prepend": {
			in:   "int x;\n",
			plan: Plan{Location: Absent(Bytes), Text: []byte("/** */\n")},
			want: "/** */\nint x;\n",
		},
		"prepend to empty": {
			in:   "",
			plan: Plan{Location: Absent(Lines), Text: []byte("# Date: x\n\n")},
			want: "# Date: x\n\n",
		},
		"keep first line": {
			in:   "#!/bin/sh\necho hi\n",
			plan: Plan{Location: Absent(Lines), Text: []byte("# Date: x\n\n"), KeepFirstLine: true},
			want: "#!/bin/sh\n# Date: x\n\necho hi\n",
		},
		"keep unterminated first line": {
			in:   "#!/bin/sh",
			plan: Plan{Location: Absent(Lines), Text: []byte("# Date: x\n\n"), KeepFirstLine: true},
			want: "#!/bin/sh\n# Date: x\n\n",
		},
		"replace line": {
			in:   "a\n#Date: old\nb\n",
			plan: Plan{Location: Present(1, 1, Lines), Text: []byte("#Date: new\n")},
			want: "a\n#Date: new\nb\n",
		},
		"replace unterminated last line": {
			in:   "a\n#Date: old",
			plan: Plan{Location: Present(1, 1, Lines), Text: []byte("#Date: new\n")},
			want: "a\n#Date: new\n",
		},
		"replace long line": {
			in:   "#date: " + strings.Repeat("y", 2*readBoundary) + "\nrest\n",
			plan: Plan{Location: Present(0, 0, Lines), Text: []byte("#date: z\n")},
			want: "#date: z\nrest\n",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var out strings.Builder
			if err := tc.plan.Apply(bufio.NewReader(strings.NewReader(tc.in)), &out); err != nil {
				t.Fatal(err)
			}
			testutil.AssertEqual(t, out.String(), tc.want)
		})
	}
}

func TestPlanApplyShortInput(t *testing.T) {
	t.Parallel()

	cases := map[string]Plan{
		"bytes": {Location: Present(10, 12, Bytes), Text: []byte("x")},
		"lines": {Location: Present(3, 3, Lines), Text: []byte("x\n")},
	}

	for name, plan := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			err := plan.Apply(bufio.NewReader(strings.NewReader("a\n")), io.Discard)
			if !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
				t.Fatalf("want EOF error, got %v", err)
			}
		})
	}
}

func TestPlanAction(t *testing.T) {
	t.Parallel()
	testutil.AssertEqual(t, Plan{Location: Absent(Bytes)}.Action(), ActionInserted)
	testutil.AssertEqual(t, Plan{Location: Present(1, 2, Bytes)}.Action(), ActionReplaced)
}

func TestPresentPanicsOnInvalidSpan(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Fatal("want panic")
		}
	}()
	Present(2, 1, Bytes)
}
