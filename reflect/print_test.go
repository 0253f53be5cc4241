// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package reflect

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
)

// TestPrintfGolden renders Scenario A and checks the tree shape against a
// golden text block; on mismatch it reports a unified diff the way
// diff.Unified does, rather than a raw string comparison.
func TestPrintfGolden(t *testing.T) {
	r := buildMinimalCBuffer(t)

	var buf bytes.Buffer
	r.Printf(&buf)
	got := buf.String()

	want := strings.Join([]string{
		"Namespace #0 (local=0, children=2)",
		"  Register Globals (local=0, children=1)",
		"    input=CBuffer bind=(0,0) count=1",
		"    Variable Globals (local=0, children=0)",
		"      type Globals: class=Struct kind=Void rows=0 cols=0",
		"        .g_color:",
		"          type float4: class=Vector kind=Float rows=1 cols=4",
		"",
	}, "\n")

	if got != want {
		diff := difflib.UnifiedDiff{
			A:        difflib.SplitLines(want),
			B:        difflib.SplitLines(got),
			FromFile: "want",
			ToFile:   "got",
			Context:  3,
		}
		text, err := difflib.GetUnifiedDiffString(diff)
		if err != nil {
			t.Fatalf("Printf output mismatch (failed to build diff: %v)\nwant:\n%s\ngot:\n%s", err, want, got)
		}
		t.Fatalf("Printf output mismatch:\n%s", text)
	}
}
