// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package reflect

import "slices"

// Equal is full structural equality: every table, including debug strings,
// sources, and node symbols (§4.9, testable property §8.6).
func Equal(a, b *Reflection) bool {
	return a.Features == b.Features &&
		isSameNonDebug(a, b) &&
		slices.Equal(a.stringsDebug.strings, b.stringsDebug.strings) &&
		slices.Equal(a.sources.ids, b.sources.ids) &&
		slices.Equal(a.NodeSymbols, b.NodeSymbols) &&
		slices.Equal(a.MemberNameIDs, b.MemberNameIDs) &&
		slices.Equal(a.TypeNameIDs, b.TypeNameIDs)
}

// IsSameNonDebug compares two instances ignoring debug strings, sources,
// node symbols, the member/type name id tables, and the SYMBOL_INFO feature
// bit — the comparison used after StripSymbols (§4.9, property §8.7).
// Arrays and ArraySizes are part of the non-debug comparison: stripping
// symbols never clears them.
func IsSameNonDebug(a, b *Reflection) bool { return isSameNonDebug(a, b) }

func isSameNonDebug(a, b *Reflection) bool {
	return a.Features&^FeatureSymbolInfo == b.Features&^FeatureSymbolInfo &&
		slices.Equal(a.stringsNonDebug.strings, b.stringsNonDebug.strings) &&
		slices.Equal(a.Nodes, b.Nodes) &&
		slices.Equal(a.Registers, b.Registers) &&
		slices.Equal(a.Functions, b.Functions) &&
		slices.Equal(a.Enums, b.Enums) &&
		slices.Equal(a.EnumValues, b.EnumValues) &&
		slices.Equal(a.Annotations, b.Annotations) &&
		slices.Equal(a.Arrays, b.Arrays) &&
		slices.Equal(a.ArraySizes, b.ArraySizes) &&
		slices.Equal(a.MemberTypeIDs, b.MemberTypeIDs) &&
		slices.Equal(a.Types, b.Types) &&
		slices.Equal(a.Buffers, b.Buffers)
}

// StripSymbols clears every debug-only table in place and drops the
// SYMBOL_INFO feature flag (§4.9). Arrays/ArraySizes, like every
// non-debug table, are left untouched — they're needed regardless of
// symbol info.
func (r *Reflection) StripSymbols() {
	r.stringsDebug.clear()
	r.sources.clear()
	r.NodeSymbols = nil
	r.MemberNameIDs = nil
	r.TypeNameIDs = nil
	r.FullyResolvedToNodeID = nil
	r.NodeIDToFullyResolved = nil
	r.FullyResolvedToMemberID = nil
	r.Features &^= FeatureSymbolInfo
}
