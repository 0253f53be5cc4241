// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package reflect implements the HLSL reflection data model: a compact,
// validated, relocatable representation of the structure of a shader
// source program (registers/bindings, cbuffers, types, functions, enums,
// namespaces, annotations, and optional symbol/source-location info).
//
// A Reflection instance is produced by an external AST-walk collaborator
// calling the Builder operations in Reflection (PushNode, PushArray,
// RegisterType, FillRegister) during a single-owner construction phase;
// Buffer records are created only by FillRegister, and there is no
// separate buffer-registration operation. After construction the instance then is read-only for any number of concurrent
// consumers. Call GenerateNameLookupTable before sharing if lookups are
// needed — it mutates the instance.
//
// Binary containers use the "DHRD" wire format: see Dump and Load.
package reflect

import "tlog.app/go/tlog"

// Reflection is a complete reflection instance: every entity table plus
// the feature flags that say which tables are meaningful. The zero value
// has no root node and no initialized string pools or dedup maps, so it
// neither passes Validate nor accepts builder calls; use NewReflection to
// start building with a chosen set of features.
type Reflection struct {
	Features FeatureFlags

	stringsDebug    stringPool
	stringsNonDebug stringPool
	sources         sourceTable

	Nodes       []Node
	NodeSymbols []NodeSymbol // parallel to Nodes; empty unless FeatureSymbolInfo

	Registers []Register
	Functions []Function
	Enums     []Enum
	EnumValues []EnumValue
	Annotations []Annotation

	Arrays     []Array
	ArraySizes []uint32

	MemberTypeIDs []TypeID
	MemberNameIDs []StringID // parallel to MemberTypeIDs; empty unless symbols

	Types       []Type
	TypeNameIDs []StringID // parallel to Types; empty unless symbols

	Buffers []Buffer

	// arrayDedup / typeDedup cache structural keys -> id the way
	// ir.TypeRegistry does, as a lookup aside the append-ordered slices
	// above; append order is never disturbed by the cache (spec §9).
	arrayDedup map[string]ArrayID
	typeDedup  map[string]TypeID

	// Name-lookup tables, built by GenerateNameLookupTable. nil until then.
	FullyResolvedToNodeID   map[string]NodeID
	NodeIDToFullyResolved   []string
	FullyResolvedToMemberID map[string]uint32
}

// NewReflection creates an empty reflection instance that will populate
// only the tables implied by features.
func NewReflection(features FeatureFlags) *Reflection {
	r := &Reflection{
		Features:        features,
		stringsDebug:    newStringPool(),
		stringsNonDebug: newStringPool(),
		sources:         newSourceTable(),
		arrayDedup:      make(map[string]ArrayID),
		typeDedup:       make(map[string]TypeID),
	}
	// Node 0 is the synthetic global-scope namespace root (invariant §3.1).
	r.Nodes = append(r.Nodes, Node{Type: NodeNamespace, ParentID: NoneID})
	if features.Has(FeatureSymbolInfo) {
		// Reserve debug-string id 0 for the empty name so the root's
		// zero-value NameID resolves to "" rather than colliding with
		// whatever the first real PushNode call happens to intern.
		nameID := r.stringsDebug.intern("")
		r.NodeSymbols = append(r.NodeSymbols, NodeSymbol{FileNameID: NoneFileID, NameID: nameID})
	}
	tlog.V("reflect").Printw("new reflection", "features", uint32(features))
	return r
}

// HasSymbolInfo reports whether debug names/source locations are present.
func (r *Reflection) HasSymbolInfo() bool { return r.Features.Has(FeatureSymbolInfo) }

// InternString interns text into the debug or non-debug pool per §4.1.
func (r *Reflection) InternString(text string, debug bool) StringID {
	if debug {
		return r.stringsDebug.intern(text)
	}
	return r.stringsNonDebug.intern(text)
}

// DebugString returns the interned debug string for id.
func (r *Reflection) DebugString(id StringID) string { return r.stringsDebug.get(id) }

// NonDebugString returns the interned non-debug string for id.
func (r *Reflection) NonDebugString(id StringID) string { return r.stringsNonDebug.get(id) }
