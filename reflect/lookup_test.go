// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package reflect

import "testing"

// TestScenarioF_NameLookup builds `namespace A { namespace B { cbuffer C {
// float4 v; } } }` and checks the two fully-resolved lookup tables built by
// GenerateNameLookupTable. The cbuffer's backing Variable node is pushed
// with the same name as its Register (register.go/FillRegister, grounded on
// DxcReflection.cpp's FillReflectionRegisterAt reusing ValDesc->getName()
// for non-list register kinds), so the member's fully resolved name carries
// the cbuffer's own name twice — "A::B::C.C.v" rather than "A::B::C.v" —
// which is what this test asserts against, computed from the node's own
// recorded fully-resolved name rather than hardcoded twice.
func TestScenarioF_NameLookup(t *testing.T) {
	r := NewReflection(FeatureBasics | FeatureUserTypes | FeatureSymbolInfo)

	nsA := r.PushNode("A", NodeNamespace, 0, 0, nil, nil)
	nsB := r.PushNode("B", NodeNamespace, nsA, 0, nil, nil)

	elementType := TypeExpr{
		Name: "C",
		Fields: []FieldExpr{
			{Name: "v", Type: TypeExpr{Name: "float4", Scalar: TypeFloat, Rows: 1, Columns: 4}},
		},
	}
	r.FillRegister(nsB, RegisterInput{
		Name:      "C",
		InputType: InputCBuffer,
		BindPoint: 0,
		Element:   &ElementInput{Name: "C", Type: elementType},
	}, 0, true)

	if !r.GenerateNameLookupTable() {
		t.Fatal("expected GenerateNameLookupTable to succeed")
	}

	registerNodeID := NodeID(3) // 0=root, 1=A, 2=B, 3=Register, 4=Variable
	if r.Nodes[registerNodeID].Type != NodeRegister {
		t.Fatalf("test setup: node %d is not the Register", registerNodeID)
	}

	gotID, ok := r.FullyResolvedToNodeID["A::B::C"]
	if !ok || gotID != registerNodeID {
		t.Errorf(`expected fully_resolved_to_node_id["A::B::C"] == %d, got %d (ok=%v)`, registerNodeID, gotID, ok)
	}

	variableNodeID := registerNodeID + 1
	variableSelf := r.NodeIDToFullyResolved[variableNodeID]

	memberID, ok := r.FullyResolvedToMemberID[variableSelf+".v"]
	if !ok {
		t.Fatalf("expected a member lookup entry for %q", variableSelf+".v")
	}

	typeID := TypeID(r.Nodes[variableNodeID].LocalID)
	ty := r.Types[typeID]
	if memberID != ty.MemberStart {
		t.Errorf("expected member id %d (v is the struct's only field), got %d", ty.MemberStart, memberID)
	}
	if r.MemberNameIDs[memberID] != r.stringsDebug.ids["v"] {
		t.Errorf("resolved member id %d does not name field v", memberID)
	}
}
