// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package reflect

var magic = [4]byte{'D', 'H', 'R', 'D'}

const wireVersion uint16 = 0

// header mirrors §4.6's fixed-size header: magic, version, one count per
// persisted table. Arrays is persisted as its own section (the Open
// Questions §9 resolution chosen by this implementation: the `arrays`
// table is NOT reconstructed from array_sizes, it is a standard section
// between array_sizes and member_type_ids).
type header struct {
	SourcesCount      uint16
	Features          FeatureFlags
	StringsNonDebug   uint32
	StringsDebug      uint32
	Nodes             uint32
	Registers         uint32
	Functions         uint32
	Enums             uint32
	EnumValues        uint32
	Annotations       uint32
	Arrays            uint32
	ArraySizes        uint32
	Members           uint32
	Types             uint32
	Buffers           uint32
}

func (h *header) write(w *writer) {
	w.bytes(magic[:])
	w.u16(wireVersion)
	w.u16(h.SourcesCount)
	w.u32(uint32(h.Features))
	w.u32(h.StringsNonDebug)
	w.u32(h.StringsDebug)
	w.u32(h.Nodes)
	w.u32(h.Registers)
	w.u32(h.Functions)
	w.u32(h.Enums)
	w.u32(h.EnumValues)
	w.u32(h.Annotations)
	w.u32(h.Arrays)
	w.u32(h.ArraySizes)
	w.u32(h.Members)
	w.u32(h.Types)
	w.u32(h.Buffers)
}

func readHeader(r *reader) header {
	var got [4]byte
	for i := range got {
		got[i] = r.u8()
	}
	if r.err == nil && got != magic {
		r.fail("bad magic")
		return header{}
	}
	version := r.u16()
	if r.err == nil && version != wireVersion {
		r.fail("unsupported version")
		return header{}
	}

	var h header
	h.SourcesCount = r.u16()
	h.Features = FeatureFlags(r.u32())
	h.StringsNonDebug = r.u32()
	h.StringsDebug = r.u32()
	h.Nodes = r.u32()
	h.Registers = r.u32()
	h.Functions = r.u32()
	h.Enums = r.u32()
	h.EnumValues = r.u32()
	h.Annotations = r.u32()
	h.Arrays = r.u32()
	h.ArraySizes = r.u32()
	h.Members = r.u32()
	h.Types = r.u32()
	h.Buffers = r.u32()

	if r.err == nil && !h.Features.Has(FeatureSymbolInfo) && (h.SourcesCount != 0 || h.StringsDebug != 0) {
		r.fail("symbol info disabled but sources/debug-string counts are non-zero")
	}
	return h
}
