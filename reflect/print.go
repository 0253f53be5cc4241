// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package reflect

import (
	"fmt"
	"io"
	"strings"
)

// Printf writes a human-readable tree dump of r to w (§6.3 printf).
// Exact whitespace is non-normative — only the node/type shape matters.
func (r *Reflection) Printf(w io.Writer) {
	if len(r.Nodes) == 0 {
		return
	}
	r.recursePrint(w, 0, 0, 0)
}

func (r *Reflection) recursePrint(w io.Writer, nodeID NodeID, depth, localID uint32) uint32 {
	node := r.Nodes[nodeID]
	indent := strings.Repeat("  ", int(depth))

	name := fmt.Sprintf("#%d", localID)
	if r.HasSymbolInfo() && int(nodeID) < len(r.NodeSymbols) {
		if n := r.DebugString(r.NodeSymbols[nodeID].NameID); n != "" {
			name = n
		}
	}

	fmt.Fprintf(w, "%s%s %s (local=%d, children=%d)\n", indent, node.Type, name, node.LocalID, node.ChildCount)

	switch node.Type {
	case NodeRegister:
		reg := r.Registers[node.LocalID]
		fmt.Fprintf(w, "%s  input=%s bind=(%d,%d) count=%d\n", indent, reg.InputType, reg.BindPoint, reg.Space, reg.BindCount)
	case NodeVariable:
		r.printType(w, TypeID(node.LocalID), depth+1)
	case NodeEnum:
		e := r.Enums[node.LocalID]
		fmt.Fprintf(w, "%s  element_type=%s\n", indent, e.ElementType)
	case NodeEnumValue:
		ev := r.EnumValues[node.LocalID]
		fmt.Fprintf(w, "%s  value=%d\n", indent, ev.Value)
	}

	for i, j := uint32(0), uint32(0); i < node.ChildCount; i, j = i+1, j+1 {
		childID := nodeID + 1 + NodeID(i)
		i += r.recursePrint(w, childID, depth+1, j)
	}
	return node.ChildCount
}

func (r *Reflection) printType(w io.Writer, id TypeID, depth uint32) {
	t := r.Types[id]
	indent := strings.Repeat("  ", int(depth))
	name := ""
	if r.HasSymbolInfo() && int(id) < len(r.TypeNameIDs) {
		name = r.DebugString(r.TypeNameIDs[id])
	}
	fmt.Fprintf(w, "%stype %s: class=%s kind=%s rows=%d cols=%d\n", indent, name, t.Class, t.Kind, t.Rows, t.Columns)
	if t.Class == ClassStruct {
		for i := uint32(0); i < t.MemberCount; i++ {
			memberID := t.MemberStart + i
			memberName := ""
			if r.HasSymbolInfo() && int(memberID) < len(r.MemberNameIDs) {
				memberName = r.DebugString(r.MemberNameIDs[memberID])
			}
			fmt.Fprintf(w, "%s  .%s:\n", indent, memberName)
			r.printType(w, r.MemberTypeIDs[memberID], depth+2)
		}
	}
}
