// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package reflect

import "testing"

func TestScenarioE_Strip(t *testing.T) {
	r := buildMinimalCBuffer(t)
	original := *r // shallow copy is enough: strip never reuses backing arrays it clears

	r.StripSymbols()

	if r.stringsDebug.len() != 0 {
		t.Error("expected debug strings to be cleared")
	}
	if r.sources.len() != 0 {
		t.Error("expected sources to be cleared")
	}
	if len(r.NodeSymbols) != 0 {
		t.Error("expected node symbols to be cleared")
	}
	if len(r.MemberNameIDs) != 0 {
		t.Error("expected member name ids to be cleared")
	}
	if len(r.TypeNameIDs) != 0 {
		t.Error("expected type name ids to be cleared")
	}
	if r.Features.Has(FeatureSymbolInfo) {
		t.Error("expected SYMBOL_INFO to be cleared")
	}

	if !IsSameNonDebug(&original, r) {
		t.Error("expected stripped instance to be is_same_non_debug to the original")
	}

	data := Dump(r)
	reloaded, err := Load(data, false)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !Equal(r, reloaded) {
		t.Error("expected reloaded stripped instance to equal the stripped instance")
	}
}

func TestStripIdempotent(t *testing.T) {
	r := buildMinimalCBuffer(t)
	r.StripSymbols()
	first := *r
	r.StripSymbols()

	if !Equal(&first, r) {
		t.Error("expected strip(strip(x)) == strip(x)")
	}
}
