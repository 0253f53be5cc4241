// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package reflect

import "testing"

func TestScenarioD_DumpLoadRoundTrip(t *testing.T) {
	r := buildMinimalCBuffer(t)
	r.GenerateNameLookupTable()

	data := Dump(r)

	loaded, err := Load(data, false)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if !Equal(r, loaded) {
		t.Fatal("round-tripped instance is not structurally equal to the original")
	}
}

func TestScenarioD_TrailingBytesRejected(t *testing.T) {
	r := buildMinimalCBuffer(t)
	data := Dump(r)
	data = append(data, 0xAB)

	if _, err := Load(data, false); err == nil {
		t.Fatal("expected Load to reject trailing bytes")
	}
}

func TestArrayDedup(t *testing.T) {
	r := NewReflection(FeatureBasics)

	id1 := r.PushArray(6, []uint32{2, 3})
	id2 := r.PushArray(6, []uint32{2, 3})
	if id1 != id2 {
		t.Errorf("expected identical array descriptors to dedup, got %d and %d", id1, id2)
	}
	if len(r.Arrays) != 1 {
		t.Errorf("expected 1 array descriptor, got %d", len(r.Arrays))
	}

	id3 := r.PushArray(8, []uint32{2, 4})
	if id3 == id1 {
		t.Error("expected a differently-shaped array to get a new id")
	}
}

func TestPushArraySingleDimensionReturnsNone(t *testing.T) {
	r := NewReflection(FeatureBasics)
	if id := r.PushArray(4, []uint32{4}); id != NoneArrayID {
		t.Errorf("expected NoneArrayID for rank-1 array, got %d", id)
	}
	if id := r.PushArray(1, nil); id != NoneArrayID {
		t.Errorf("expected NoneArrayID for total<=1, got %d", id)
	}
}
