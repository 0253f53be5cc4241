// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package reflect

// Validate checks every invariant in §3 against a loaded instance, failing
// fast on the first violation found (unlike the teacher package's
// error-collecting ir.Validator) — matching the original byte-constructor,
// which throws at the first bad cross-reference rather than accumulating
// a report, and spec §7's "load validation errors ... discards the
// instance" contract.
func Validate(r *Reflection) error {
	if len(r.Nodes) == 0 {
		return newInvalidInput("reflection has no nodes")
	}
	root := r.Nodes[0]
	if root.Type != NodeNamespace {
		return newInvalidInput("node 0 must be Namespace, got %s", root.Type)
	}
	if root.ParentID != NoneID {
		return newInvalidInput("node 0 parent_id must be NONE")
	}
	if root.ChildCount != uint32(len(r.Nodes))-1 {
		return newInvalidInput("node 0 child_count %d != |nodes|-1 (%d)", root.ChildCount, len(r.Nodes)-1)
	}

	if len(r.NodeSymbols) > 0 && len(r.NodeSymbols) != len(r.Nodes) {
		return newInvalidInput("node_symbols length %d != |nodes| %d", len(r.NodeSymbols), len(r.Nodes))
	}

	for i, n := range r.Nodes {
		if !n.Type.Valid() {
			return newInvalidInput("node %d has invalid type %d", i, n.Type)
		}
		if i > 0 {
			if uint32(n.ParentID) >= uint32(i) {
				return newInvalidInput("node %d parent_id %d not strictly less than its own index", i, n.ParentID)
			}
		}
		if n.AnnotationStart+n.AnnotationCount > uint32(len(r.Annotations)) {
			return newInvalidInput("node %d annotation range out of bounds", i)
		}
		if err := validateLocalID(r, i, n); err != nil {
			return err
		}
	}

	if err := validatePreorder(r); err != nil {
		return err
	}
	if err := validateRegisters(r); err != nil {
		return err
	}
	if err := validateBuffers(r); err != nil {
		return err
	}
	if err := validateEnums(r); err != nil {
		return err
	}
	if err := validateArrays(r); err != nil {
		return err
	}
	if err := validateAnnotations(r); err != nil {
		return err
	}
	if err := validateMembers(r); err != nil {
		return err
	}
	if err := validateTypes(r); err != nil {
		return err
	}
	if err := validateSources(r); err != nil {
		return err
	}
	return nil
}

func validateLocalID(r *Reflection, i int, n Node) error {
	switch n.Type {
	case NodeRegister:
		if n.LocalID >= uint32(len(r.Registers)) {
			return newInvalidInput("node %d localId %d out of range for registers", i, n.LocalID)
		}
	case NodeFunction:
		if n.LocalID >= uint32(len(r.Functions)) {
			return newInvalidInput("node %d localId %d out of range for functions", i, n.LocalID)
		}
	case NodeEnum:
		if n.LocalID >= uint32(len(r.Enums)) {
			return newInvalidInput("node %d localId %d out of range for enums", i, n.LocalID)
		}
	case NodeEnumValue:
		if n.LocalID >= uint32(len(r.EnumValues)) {
			return newInvalidInput("node %d localId %d out of range for enum_values", i, n.LocalID)
		}
	case NodeVariable:
		if n.LocalID >= uint32(len(r.Types)) {
			return newInvalidInput("node %d localId %d out of range for types", i, n.LocalID)
		}
	case NodeNamespace, NodeTypedef, NodeUsing:
		// unused; local_id is ignored for these kinds.
	}
	return nil
}

// validatePreorder checks invariant §3.2 / testable property §8.1-2: the
// range [i+1, i+1+childCount) is exactly n's transitive descendants, and
// child_count is consistent bottom-up.
func validatePreorder(r *Reflection) error {
	computed := make([]uint32, len(r.Nodes))
	for i := len(r.Nodes) - 1; i >= 1; i-- {
		p := r.Nodes[i].ParentID
		computed[p] += 1 + computed[i]
	}
	for i, n := range r.Nodes {
		if n.ChildCount != computed[i] {
			return newInvalidInput("node %d child_count %d, computed %d", i, n.ChildCount, computed[i])
		}
		end := i + 1 + int(n.ChildCount)
		if end > len(r.Nodes) {
			return newInvalidInput("node %d descendant range exceeds |nodes|", i)
		}
		for j := i + 1; j < end; j++ {
			if uint32(r.Nodes[j].ParentID) < uint32(i) {
				return newInvalidInput("node %d descendant %d has parent outside the subtree", i, j)
			}
		}
	}
	return nil
}

func validateRegisters(r *Reflection) error {
	for i, reg := range r.Registers {
		if !reg.InputType.Valid() {
			return newInvalidInput("register %d has invalid input_type %d", i, reg.InputType)
		}
		if !reg.ReturnType.Valid() {
			return newInvalidInput("register %d has invalid return_type %d", i, reg.ReturnType)
		}
		if !reg.Dimension.Valid() {
			return newInvalidInput("register %d has invalid srv_dimension %d", i, reg.Dimension)
		}
		if reg.BindCount < 1 {
			return newInvalidInput("register %d bind_count must be >= 1", i)
		}
		if uint32(reg.NodeID) >= uint32(len(r.Nodes)) {
			return newInvalidInput("register %d node_id out of range", i)
		}
		node := r.Nodes[reg.NodeID]
		if node.Type != NodeRegister || int(node.LocalID) != i {
			return newInvalidInput("register %d node_id does not point back to itself", i)
		}
		if reg.ArrayID != NoneArrayID {
			if uint32(reg.ArrayID) >= uint32(len(r.Arrays)) {
				return newInvalidInput("register %d array_id out of range", i)
			}
			if reg.BindCount <= 1 {
				return newInvalidInput("register %d has array_id but bind_count <= 1", i)
			}
		}
		if reg.InputType.IsBufferBacked() {
			if uint32(reg.BufferID) >= uint32(len(r.Buffers)) {
				return newInvalidInput("register %d buffer_id out of range", i)
			}
			buf := r.Buffers[reg.BufferID]
			if buf.NodeID != reg.NodeID {
				return newInvalidInput("register %d buffer node_id mismatch", i)
			}
			if buf.Type != bufferTypeForInput(reg.InputType) {
				return newInvalidInput("register %d buffer cbuffer_type mismatch", i)
			}
		}
	}
	return nil
}

func validateBuffers(r *Reflection) error {
	for i, buf := range r.Buffers {
		if !buf.Type.Valid() {
			return newInvalidInput("buffer %d has invalid cbuffer_type %d", i, buf.Type)
		}
		if uint32(buf.NodeID) >= uint32(len(r.Nodes)) {
			return newInvalidInput("buffer %d node_id out of range", i)
		}
		node := r.Nodes[buf.NodeID]
		if node.Type != NodeRegister {
			return newInvalidInput("buffer %d node is not a Register", i)
		}
		if int(node.LocalID) >= len(r.Registers) || r.Registers[node.LocalID].BufferID != BufferID(i) {
			return newInvalidInput("buffer %d register does not point back to it", i)
		}
		childCount := 0
		for j := int(buf.NodeID) + 1; j < len(r.Nodes) && j <= int(buf.NodeID)+1+int(node.ChildCount); j++ {
			if r.Nodes[j].ParentID != buf.NodeID {
				continue
			}
			childCount++
			if r.Nodes[j].Type != NodeVariable {
				return newInvalidInput("buffer %d has a non-Variable child", i)
			}
		}
		if childCount < 1 {
			return newInvalidInput("buffer %d node has no children", i)
		}
	}
	return nil
}

func validateEnums(r *Reflection) error {
	for i, e := range r.Enums {
		if !e.ElementType.Valid() {
			return newInvalidInput("enum %d has invalid element_type %d", i, e.ElementType)
		}
		if uint32(e.NodeID) >= uint32(len(r.Nodes)) {
			return newInvalidInput("enum %d node_id out of range", i)
		}
		node := r.Nodes[e.NodeID]
		if node.Type != NodeEnum || int(node.LocalID) != i {
			return newInvalidInput("enum %d node_id does not point back to itself", i)
		}
		for j := int(e.NodeID) + 1; j < len(r.Nodes) && j <= int(e.NodeID)+1+int(node.ChildCount); j++ {
			if r.Nodes[j].ParentID != e.NodeID {
				continue
			}
			if r.Nodes[j].Type != NodeEnumValue || r.Nodes[j].ChildCount != 0 {
				return newInvalidInput("enum %d has a non-leaf or non-EnumValue child", i)
			}
		}
	}
	for i, ev := range r.EnumValues {
		if uint32(ev.NodeID) >= uint32(len(r.Nodes)) {
			return newInvalidInput("enum_value %d node_id out of range", i)
		}
	}
	return nil
}

func validateArrays(r *Reflection) error {
	for i, a := range r.Arrays {
		if a.Rank < 2 || a.Rank > 8 {
			return newInvalidInput("array %d rank %d out of [2,8]", i, a.Rank)
		}
		if a.Start+uint32(a.Rank) > uint32(len(r.ArraySizes)) {
			return newInvalidInput("array %d size range out of bounds", i)
		}
	}
	return nil
}

func validateAnnotations(r *Reflection) error {
	for i, a := range r.Annotations {
		if a.StringNonDebugID >= uint32(len(r.stringsNonDebug.strings)) {
			return newInvalidInput("annotation %d string_non_debug_id out of range", i)
		}
	}
	return nil
}

func validateMembers(r *Reflection) error {
	for i, id := range r.MemberTypeIDs {
		if uint32(id) >= uint32(len(r.Types)) {
			return newInvalidInput("member_type_ids[%d] out of range", i)
		}
	}
	if len(r.MemberNameIDs) > 0 {
		for i, id := range r.MemberNameIDs {
			if uint32(id) >= uint32(len(r.stringsDebug.strings)) {
				return newInvalidInput("member_name_ids[%d] out of range", i)
			}
		}
	}
	return nil
}

func validateTypes(r *Reflection) error {
	for i, t := range r.Types {
		if !t.Class.Valid() {
			return newInvalidInput("type %d has invalid class %d", i, t.Class)
		}
		if t.BaseClass != NoneBaseType && uint32(t.BaseClass) >= uint32(len(r.Types)) {
			return newInvalidInput("type %d base_class out of range", i)
		}
		if t.IsMultiDim && uint32(t.MultiDimID) >= uint32(len(r.Arrays)) {
			return newInvalidInput("type %d array_id out of range", i)
		}
		switch t.Class {
		case ClassScalar:
			if t.Rows != 1 || t.Columns != 1 || !t.Kind.IsScalarKind() {
				return newInvalidInput("type %d Scalar constraints violated", i)
			}
		case ClassVector:
			if t.Rows != 1 || t.Columns < 1 || t.Columns > 128 || !t.Kind.IsScalarKind() {
				return newInvalidInput("type %d Vector constraints violated", i)
			}
		case ClassMatrixRows, ClassMatrixColumns:
			if t.Rows < 1 || t.Rows > 128 || t.Columns < 1 || t.Columns > 128 || !t.Kind.IsScalarKind() {
				return newInvalidInput("type %d Matrix constraints violated", i)
			}
		case ClassStruct:
			if t.MemberCount < 1 || t.Kind != TypeVoid || t.Rows != 0 || t.Columns != 0 {
				return newInvalidInput("type %d Struct constraints violated", i)
			}
		case ClassObject:
			if t.Rows != 0 || t.Columns != 0 || !t.Kind.IsObjectKind() {
				return newInvalidInput("type %d Object constraints violated", i)
			}
		case ClassInterfaceClass, ClassInterfacePointer, ClassBitField:
			// Accepted as structurally valid; the producer never emits
			// these (spec §9 Open Questions), so no field rules apply.
		}
		if t.MemberStart+t.MemberCount > uint32(len(r.MemberTypeIDs)) {
			return newInvalidInput("type %d member range out of bounds", i)
		}
	}
	return nil
}

func validateSources(r *Reflection) error {
	if !r.HasSymbolInfo() {
		if r.sources.len() != 0 || r.stringsDebug.len() != 0 {
			return newInvalidInput("symbol info disabled but sources/debug strings non-empty")
		}
		return nil
	}
	for i, id := range r.sources.ids {
		if uint32(id) >= uint32(len(r.stringsDebug.strings)) {
			return newInvalidInput("sources[%d] debug-string id out of range", i)
		}
	}
	return nil
}
