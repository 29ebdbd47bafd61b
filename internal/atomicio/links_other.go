// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

//go:build !unix

package atomicio

// Hard links are not detected here; every file is replaced by rename.
func linkCount(string) (uint64, error) { return 1, nil }
