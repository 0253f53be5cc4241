// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package reflect

import "testing"

// buildMinimalCBuffer builds Scenario A: a single cbuffer Globals at
// (b0, space0) containing one float4 g_color.
func buildMinimalCBuffer(t *testing.T) *Reflection {
	t.Helper()
	r := NewReflection(FeatureBasics | FeatureUserTypes | FeatureSymbolInfo)

	elementType := TypeExpr{
		Name: "Globals",
		Fields: []FieldExpr{
			{Name: "g_color", Type: TypeExpr{Name: "float4", Scalar: TypeFloat, Rows: 1, Columns: 4}},
		},
	}

	r.FillRegister(0, RegisterInput{
		Name:      "Globals",
		InputType: InputCBuffer,
		BindPoint: 0,
		Element:   &ElementInput{Name: "Globals", Type: elementType},
	}, 0, true)

	return r
}

func TestScenarioA_MinimalCBuffer(t *testing.T) {
	r := buildMinimalCBuffer(t)

	if len(r.Nodes) != 3 {
		t.Fatalf("expected 3 nodes, got %d", len(r.Nodes))
	}
	if r.Nodes[1].Type != NodeRegister {
		t.Errorf("node 1 should be Register, got %s", r.Nodes[1].Type)
	}
	if r.Nodes[2].Type != NodeVariable {
		t.Errorf("node 2 should be Variable, got %s", r.Nodes[2].Type)
	}

	if len(r.Registers) != 1 {
		t.Fatalf("expected 1 register, got %d", len(r.Registers))
	}
	reg := r.Registers[0]
	if reg.InputType != InputCBuffer || reg.BindPoint != 0 || reg.Space != 0 || reg.BindCount != 1 || reg.BufferID != 0 {
		t.Errorf("unexpected register fields: %+v", reg)
	}

	if len(r.Buffers) != 1 || r.Buffers[0].Type != CBufferTypeCBuffer || r.Buffers[0].NodeID != 1 {
		t.Errorf("unexpected buffer: %+v", r.Buffers)
	}

	var foundStruct, foundVector bool
	for _, ty := range r.Types {
		if ty.Class == ClassStruct && ty.MemberCount == 1 {
			foundStruct = true
		}
		if ty.Class == ClassVector && ty.Kind == TypeFloat && ty.Columns == 4 {
			foundVector = true
		}
	}
	if !foundStruct {
		t.Error("expected a Struct type with 1 member")
	}
	if !foundVector {
		t.Error("expected a Vector-of-Float type with columns=4")
	}

	if err := Validate(r); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestScenarioB_TextureArray(t *testing.T) {
	r := NewReflection(FeatureBasics | FeatureUserTypes)

	space := uint32(2)
	r.FillRegister(0, RegisterInput{
		Name:       "tex",
		InputType:  InputTexture,
		Dimension:  DimTexture2D,
		ReturnType: ReturnFloat,
		BindPoint:  5,
		Space:      &space,
		ArrayDims:  []uint32{2, 3},
	}, 0, true)

	if len(r.Registers) != 1 {
		t.Fatalf("expected 1 register, got %d", len(r.Registers))
	}
	reg := r.Registers[0]
	if reg.InputType != InputTexture || reg.Dimension != DimTexture2D || reg.ReturnType != ReturnFloat {
		t.Errorf("unexpected classification: %+v", reg)
	}
	if reg.BindCount != 6 {
		t.Errorf("expected bind_count 6, got %d", reg.BindCount)
	}
	if reg.Space != 2 {
		t.Errorf("expected space 2, got %d", reg.Space)
	}
	if reg.BindPoint != 5 {
		t.Errorf("expected bind_point 5, got %d", reg.BindPoint)
	}
	if reg.ArrayID == NoneArrayID {
		t.Fatal("expected a non-NONE array_id")
	}
	arr := r.Arrays[reg.ArrayID]
	sizes := r.ArraySizes[arr.Start : arr.Start+uint32(arr.Rank)]
	if len(sizes) != 2 || sizes[0] != 2 || sizes[1] != 3 {
		t.Errorf("expected dims [2,3], got %v", sizes)
	}

	if err := Validate(r); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestScenarioC_Enum(t *testing.T) {
	r := NewReflection(FeatureBasics)

	enumNode := r.PushNode("Mode", NodeEnum, 0, uint32(len(r.Enums)), nil, nil)
	r.Enums = append(r.Enums, Enum{NodeID: enumNode, ElementType: EnumU16})

	values := []struct {
		name string
		v    int64
	}{{"A", 1}, {"B", 2}, {"C", 7}}
	for _, ev := range values {
		evNode := r.PushNode(ev.name, NodeEnumValue, enumNode, uint32(len(r.EnumValues)), nil, nil)
		r.EnumValues = append(r.EnumValues, EnumValue{Value: ev.v, NodeID: evNode})
	}

	if r.Nodes[enumNode].ChildCount != 3 {
		t.Fatalf("expected enum child_count 3, got %d", r.Nodes[enumNode].ChildCount)
	}
	if r.Enums[0].ElementType != EnumU16 {
		t.Errorf("expected element_type u16, got %s", r.Enums[0].ElementType)
	}
	for i, want := range []int64{1, 2, 7} {
		if r.EnumValues[i].Value != want {
			t.Errorf("enum value %d: got %d, want %d", i, r.EnumValues[i].Value, want)
		}
	}

	if err := Validate(r); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}
