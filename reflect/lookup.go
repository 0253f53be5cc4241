// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package reflect

import "strconv"

// GenerateNameLookupTable builds the reverse fully-qualified-name indices
// (§4.8). It is a mutating, producer-side-complete pass: call it once
// after construction (or after Load) and before sharing the instance with
// concurrent readers. Returns false without effect if symbol info is
// absent or there are no nodes — mirroring the original's same early-out.
func (r *Reflection) GenerateNameLookupTable() bool {
	if !r.HasSymbolInfo() || len(r.Nodes) == 0 {
		return false
	}
	r.FullyResolvedToNodeID = make(map[string]NodeID, len(r.Nodes))
	r.NodeIDToFullyResolved = make([]string, len(r.Nodes))
	r.FullyResolvedToMemberID = make(map[string]uint32)
	r.recurseNameGeneration(0, 0, "", false)
	return true
}

// recurseNameGeneration walks the tree in the flat pre-order layout,
// using child_count to skip each child's own subtree rather than
// re-deriving it — the same shape as the original RecurseNameGeneration.
// It returns this node's child_count so the caller can skip past it.
func (r *Reflection) recurseNameGeneration(nodeID NodeID, localID uint32, parent string, isDot bool) uint32 {
	node := r.Nodes[nodeID]
	self := r.DebugString(r.NodeSymbols[nodeID].NameID)
	if self == "" && nodeID != 0 {
		self = strconv.FormatUint(uint64(localID), 10)
	}
	if parent != "" {
		if isDot {
			self = parent + "." + self
		} else {
			self = parent + "::" + self
		}
	}
	r.FullyResolvedToNodeID[self] = nodeID
	r.NodeIDToFullyResolved[nodeID] = self

	isDotChild := node.Type == NodeRegister
	isVariable := node.Type == NodeVariable

	for i, j := uint32(0), uint32(0); i < node.ChildCount; i, j = i+1, j+1 {
		childID := nodeID + 1 + NodeID(i)
		i += r.recurseNameGeneration(childID, j, self, isDotChild)
	}

	if isVariable {
		r.registerMemberNames(TypeID(node.LocalID), self)
	}

	return node.ChildCount
}

// registerMemberNames recursively registers FullyResolvedToMemberID
// entries for a Variable node's struct-typed members (and their
// struct-typed members, and so on).
func (r *Reflection) registerMemberNames(typeID TypeID, selfName string) {
	t := r.Types[typeID]
	if t.Class != ClassStruct {
		return
	}
	for i := uint32(0); i < t.MemberCount; i++ {
		memberID := t.MemberStart + i
		memberName := selfName + "." + r.DebugString(r.MemberNameIDs[memberID])
		r.FullyResolvedToMemberID[memberName] = memberID
		r.registerMemberNames(r.MemberTypeIDs[memberID], memberName)
	}
}
