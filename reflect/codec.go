// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package reflect

import (
	"tlog.app/go/loc"
	"tlog.app/go/tlog"
)

const wordAlign = 4

// Dump serializes r into the DHRD binary container (§4.6). The header and
// each section are appended in order to a growing buffer; no size is
// computed up front, and the returned slice holds exactly the bytes written.
func Dump(r *Reflection) []byte {
	w := &writer{}

	h := header{
		SourcesCount:    uint16(r.sources.len()),
		Features:        r.Features,
		StringsNonDebug: uint32(r.stringsNonDebug.len()),
		StringsDebug:    uint32(r.stringsDebug.len()),
		Nodes:           uint32(len(r.Nodes)),
		Registers:       uint32(len(r.Registers)),
		Functions:       uint32(len(r.Functions)),
		Enums:           uint32(len(r.Enums)),
		EnumValues:      uint32(len(r.EnumValues)),
		Annotations:     uint32(len(r.Annotations)),
		Arrays:          uint32(len(r.Arrays)),
		ArraySizes:      uint32(len(r.ArraySizes)),
		Members:         uint32(len(r.MemberTypeIDs)),
		Types:           uint32(len(r.Types)),
		Buffers:         uint32(len(r.Buffers)),
	}
	h.write(w)

	hasSym := r.HasSymbolInfo()

	for _, s := range r.stringsDebug.strings {
		w.str(s)
	}
	for _, s := range r.stringsNonDebug.strings {
		w.str(s)
	}

	w.align(wordAlign)
	for _, id := range r.sources.ids {
		w.u32(uint32(id))
	}

	w.align(wordAlign)
	for _, n := range r.Nodes {
		writeNode(w, n)
	}

	if hasSym {
		w.align(wordAlign)
		for _, s := range r.NodeSymbols {
			writeNodeSymbol(w, s)
		}
	}

	w.align(wordAlign)
	for _, reg := range r.Registers {
		writeRegister(w, reg)
	}

	w.align(wordAlign)
	for _, f := range r.Functions {
		writeFunction(w, f)
	}

	w.align(wordAlign)
	for _, e := range r.Enums {
		writeEnum(w, e)
	}

	w.align(8)
	for _, v := range r.EnumValues {
		writeEnumValue(w, v)
	}

	w.align(wordAlign)
	for _, a := range r.Annotations {
		writeAnnotation(w, a)
	}

	w.align(wordAlign)
	for _, v := range r.ArraySizes {
		w.u32(v)
	}

	w.align(wordAlign)
	for _, a := range r.Arrays {
		writeArray(w, a)
	}

	w.align(wordAlign)
	for _, id := range r.MemberTypeIDs {
		w.u32(uint32(id))
	}

	if hasSym {
		w.align(wordAlign)
		for _, id := range r.MemberNameIDs {
			w.u32(uint32(id))
		}
	}

	w.align(wordAlign)
	for _, t := range r.Types {
		writeType(w, t)
	}

	if hasSym {
		w.align(wordAlign)
		for _, id := range r.TypeNameIDs {
			w.u32(uint32(id))
		}
	}

	w.align(wordAlign)
	for _, b := range r.Buffers {
		writeBuffer(w, b)
	}

	tlog.V("reflect").Printw("dump", "bytes", len(w.buf), "nodes", len(r.Nodes))
	return w.buf
}

// Load parses a DHRD container produced by Dump, validates every §3
// invariant, and — if buildLookup is set — builds the name-lookup table
// before returning. Any format or validation error discards the partially
// read instance; Load never returns a half-built *Reflection alongside a
// non-nil error.
func Load(data []byte, buildLookup bool) (*Reflection, error) {
	r := &reader{buf: data}
	h := readHeader(r)
	if r.err != nil {
		return nil, r.err
	}

	hasSym := h.Features.Has(FeatureSymbolInfo)

	out := &Reflection{
		Features:   h.Features,
		arrayDedup: make(map[string]ArrayID),
		typeDedup:  make(map[string]TypeID),
	}
	out.stringsDebug = newStringPool()
	out.stringsNonDebug = newStringPool()
	out.sources = newSourceTable()

	debugCount := uint32(0)
	if hasSym {
		debugCount = h.StringsDebug
	}
	for i := uint32(0); i < debugCount; i++ {
		out.stringsDebug.strings = append(out.stringsDebug.strings, r.str())
	}
	for i := uint32(0); i < h.StringsNonDebug; i++ {
		out.stringsNonDebug.strings = append(out.stringsNonDebug.strings, r.str())
	}
	reindex(&out.stringsDebug)
	reindex(&out.stringsNonDebug)

	r.align(wordAlign)
	sourceCount := uint32(0)
	if hasSym {
		sourceCount = uint32(h.SourcesCount)
	}
	for i := uint32(0); i < sourceCount; i++ {
		out.sources.ids = append(out.sources.ids, StringID(r.u32()))
	}
	for i, id := range out.sources.ids {
		if int(id) < len(out.stringsDebug.strings) {
			out.sources.lookup[out.stringsDebug.strings[id]] = SourceID(i)
		}
	}

	r.align(wordAlign)
	out.Nodes = make([]Node, h.Nodes)
	for i := range out.Nodes {
		out.Nodes[i] = readNode(r)
	}

	if hasSym {
		r.align(wordAlign)
		out.NodeSymbols = make([]NodeSymbol, h.Nodes)
		for i := range out.NodeSymbols {
			out.NodeSymbols[i] = readNodeSymbol(r)
		}
	}

	r.align(wordAlign)
	out.Registers = make([]Register, h.Registers)
	for i := range out.Registers {
		out.Registers[i] = readRegister(r)
	}

	r.align(wordAlign)
	out.Functions = make([]Function, h.Functions)
	for i := range out.Functions {
		out.Functions[i] = readFunction(r)
	}

	r.align(wordAlign)
	out.Enums = make([]Enum, h.Enums)
	for i := range out.Enums {
		out.Enums[i] = readEnum(r)
	}

	r.align(8)
	out.EnumValues = make([]EnumValue, h.EnumValues)
	for i := range out.EnumValues {
		out.EnumValues[i] = readEnumValue(r)
	}

	r.align(wordAlign)
	out.Annotations = make([]Annotation, h.Annotations)
	for i := range out.Annotations {
		out.Annotations[i] = readAnnotation(r)
	}

	r.align(wordAlign)
	out.ArraySizes = make([]uint32, h.ArraySizes)
	for i := range out.ArraySizes {
		out.ArraySizes[i] = r.u32()
	}

	r.align(wordAlign)
	out.Arrays = make([]Array, h.Arrays)
	for i := range out.Arrays {
		out.Arrays[i] = readArray(r)
	}
	for i, a := range out.Arrays {
		out.arrayDedup[arrayKey(out.ArraySizes[a.Start:a.Start+uint32(a.Rank)])] = ArrayID(i)
	}

	r.align(wordAlign)
	out.MemberTypeIDs = make([]TypeID, h.Members)
	for i := range out.MemberTypeIDs {
		out.MemberTypeIDs[i] = TypeID(r.u32())
	}

	if hasSym {
		r.align(wordAlign)
		out.MemberNameIDs = make([]StringID, h.Members)
		for i := range out.MemberNameIDs {
			out.MemberNameIDs[i] = StringID(r.u32())
		}
	}

	r.align(wordAlign)
	out.Types = make([]Type, h.Types)
	for i := range out.Types {
		out.Types[i] = readType(r)
	}

	if hasSym {
		r.align(wordAlign)
		out.TypeNameIDs = make([]StringID, h.Types)
		for i := range out.TypeNameIDs {
			out.TypeNameIDs[i] = StringID(r.u32())
		}
	}

	r.align(wordAlign)
	out.Buffers = make([]Buffer, h.Buffers)
	for i := range out.Buffers {
		out.Buffers[i] = readBuffer(r)
	}

	if r.err != nil {
		return nil, r.err
	}
	if !r.atEnd() {
		return nil, newInvalidInput("trailing bytes after last section")
	}

	if err := Validate(out); err != nil {
		return nil, err
	}

	if buildLookup {
		out.GenerateNameLookupTable()
	}

	tlog.V("reflect").Printw("load", "bytes", len(data), "nodes", len(out.Nodes), "from", loc.Caller(1))
	return out, nil
}

// reindex rebuilds a stringPool's ids map after its strings slice was
// populated directly by Load (which bypasses intern to preserve on-disk
// order exactly, including any accidental pre-dedup duplicates a producer
// never would have created).
func reindex(p *stringPool) {
	p.ids = make(map[string]StringID, len(p.strings))
	for i, s := range p.strings {
		if _, ok := p.ids[s]; !ok {
			p.ids[s] = StringID(i)
		}
	}
}
