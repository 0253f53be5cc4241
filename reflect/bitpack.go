// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package reflect

// Per-entity wire encode/decode. Each record is written as a sequence of
// standard-width little-endian integers rather than cross-word bit
// splicing: every sub-field still respects the bit-width bounds from §3,
// and no field is split across two words, though some small fields are
// packed together into one word (e.g. Node's type+localId and
// annotation count+start, Type's member start+count). This is the deliberate
// divergence from the original's packed-word layout documented in
// DESIGN.md — §9 permits any on-disk layout that preserves size and
// alignment relative to the abstract field widths, and this package
// never needs byte-compatibility with the original container.

func writeNode(w *writer, n Node) {
	w.u32(uint32(n.Type) | uint32(n.LocalID)<<6)
	w.u32(uint32(n.ParentID))
	w.u32(uint32(n.AnnotationCount) | n.AnnotationStart<<10)
	w.u32(n.ChildCount)
}

func readNode(r *reader) Node {
	word0 := r.u32()
	parentID := r.u32()
	word2 := r.u32()
	childCount := r.u32()
	return Node{
		Type:            NodeType(word0 & 0x3f),
		LocalID:         word0 >> 6,
		ParentID:        NodeID(parentID),
		AnnotationCount: word2 & 0x3ff,
		AnnotationStart: word2 >> 10,
		ChildCount:      childCount,
	}
}

func writeNodeSymbol(w *writer, s NodeSymbol) {
	w.u32(uint32(s.NameID))
	w.u16(uint16(s.FileNameID))
	w.u16(0) // padding to keep the record 4-byte aligned throughout
	w.u32(s.SourceLineStart)
	w.u32(s.SourceLineCount)
	w.u32(s.SourceColumnStart)
	w.u32(s.SourceColumnEnd)
}

func readNodeSymbol(r *reader) NodeSymbol {
	nameID := r.u32()
	fileID := r.u16()
	_ = r.u16()
	lineStart := r.u32()
	lineCount := r.u32()
	colStart := r.u32()
	colEnd := r.u32()
	return NodeSymbol{
		NameID:            StringID(nameID),
		FileNameID:        SourceID(fileID),
		SourceLineStart:   lineStart,
		SourceLineCount:   lineCount,
		SourceColumnStart: colStart,
		SourceColumnEnd:   colEnd,
	}
}

func writeRegister(w *writer, reg Register) {
	w.u8(uint8(reg.InputType))
	w.u8(uint8(reg.Dimension))
	w.u8(uint8(reg.ReturnType))
	w.u8(reg.UserFlags)
	w.u32(reg.BindPoint)
	w.u32(reg.Space)
	w.u32(reg.BindCount)
	w.u32(reg.NumSamples)
	w.u32(uint32(reg.NodeID))
	w.u32(uint32(reg.ArrayID))
	w.u32(uint32(reg.BufferID))
}

func readRegister(r *reader) Register {
	inputType := r.u8()
	dim := r.u8()
	ret := r.u8()
	flags := r.u8()
	bindPoint := r.u32()
	space := r.u32()
	bindCount := r.u32()
	samples := r.u32()
	nodeID := r.u32()
	arrayID := r.u32()
	bufferID := r.u32()
	return Register{
		InputType:  RegisterInputType(inputType),
		Dimension:  SRVDimension(dim),
		ReturnType: ResourceReturnType(ret),
		UserFlags:  flags,
		BindPoint:  bindPoint,
		Space:      space,
		BindCount:  bindCount,
		NumSamples: samples,
		NodeID:     NodeID(nodeID),
		ArrayID:    ArrayID(arrayID),
		BufferID:   BufferID(bufferID),
	}
}

func writeFunction(w *writer, f Function) {
	w.u32(uint32(f.NodeID))
	flags := f.NumParameters & 0x3fffffff
	if f.HasReturn {
		flags |= 1 << 30
	}
	if f.HasDefinition {
		flags |= 1 << 31
	}
	w.u32(flags)
}

func readFunction(r *reader) Function {
	nodeID := r.u32()
	flags := r.u32()
	return Function{
		NodeID:        NodeID(nodeID),
		NumParameters: flags & 0x3fffffff,
		HasReturn:     flags&(1<<30) != 0,
		HasDefinition: flags&(1<<31) != 0,
	}
}

func writeEnum(w *writer, e Enum) {
	w.u32(uint32(e.NodeID))
	w.u8(uint8(e.ElementType))
	w.u8(0)
	w.u16(0)
}

func readEnum(r *reader) Enum {
	nodeID := r.u32()
	elemType := r.u8()
	_ = r.u8()
	_ = r.u16()
	return Enum{NodeID: NodeID(nodeID), ElementType: EnumElementType(elemType)}
}

func writeEnumValue(w *writer, v EnumValue) {
	w.i64(v.Value)
	w.u32(uint32(v.NodeID))
	w.u32(0)
}

func readEnumValue(r *reader) EnumValue {
	value := r.i64()
	nodeID := r.u32()
	_ = r.u32()
	return EnumValue{Value: value, NodeID: NodeID(nodeID)}
}

func writeAnnotation(w *writer, a Annotation) {
	v := a.StringNonDebugID & 0x7fffffff
	if a.IsBuiltin {
		v |= 1 << 31
	}
	w.u32(v)
}

func readAnnotation(r *reader) Annotation {
	v := r.u32()
	return Annotation{StringNonDebugID: v & 0x7fffffff, IsBuiltin: v&(1<<31) != 0}
}

func writeArray(w *writer, a Array) {
	w.u8(a.Rank)
	w.u8(0)
	w.u16(0)
	w.u32(a.Start)
}

func readArray(r *reader) Array {
	rank := r.u8()
	_ = r.u8()
	_ = r.u16()
	start := r.u32()
	return Array{Rank: rank, Start: start}
}

func writeType(w *writer, t Type) {
	w.u8(uint8(t.Class))
	w.u8(uint8(t.Kind))
	w.u8(t.Rows)
	w.u8(t.Columns)
	elementCountOrArrayID := t.ElementCount
	if t.IsMultiDim {
		elementCountOrArrayID = uint32(t.MultiDimID)&0x7fffffff | 1<<31
	}
	w.u32(elementCountOrArrayID)
	w.u32(uint32(t.BaseClass))
	memberWord := t.MemberStart&0xffffff | t.MemberCount<<24
	w.u32(memberWord)
}

func readType(r *reader) Type {
	class := r.u8()
	kind := r.u8()
	rows := r.u8()
	cols := r.u8()
	ecOrArray := r.u32()
	base := r.u32()
	memberWord := r.u32()

	t := Type{
		Class:       VariableClass(class),
		Kind:        VariableType(kind),
		Rows:        rows,
		Columns:     cols,
		BaseClass:   TypeID(base),
		MemberStart: memberWord & 0xffffff,
		MemberCount: memberWord >> 24,
	}
	if ecOrArray&(1<<31) != 0 {
		t.IsMultiDim = true
		t.MultiDimID = ArrayID(ecOrArray & 0x7fffffff)
	} else {
		t.ElementCount = ecOrArray
	}
	return t
}

func writeBuffer(w *writer, b Buffer) {
	w.u8(uint8(b.Type))
	w.u8(0)
	w.u16(0)
	w.u32(uint32(b.NodeID))
}

func readBuffer(r *reader) Buffer {
	typ := r.u8()
	_ = r.u8()
	_ = r.u16()
	nodeID := r.u32()
	return Buffer{Type: CBufferType(typ), NodeID: NodeID(nodeID)}
}
