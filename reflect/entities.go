// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package reflect

// Handle types for referencing reflection entities. Distinct named types
// (rather than bare uint32) catch mismatched-table bugs at compile time,
// the way ir.TypeHandle/ir.FunctionHandle do in the teacher package.
type (
	NodeID      uint32
	RegisterID  uint32
	FunctionID  uint32
	EnumID      uint32
	EnumValueID uint32
	BufferID    uint32
	ArrayID     uint32
	TypeID      uint32
	StringID    uint32
	SourceID    uint16
)

// Sentinel "no value" markers for each width used by the model.
const (
	NoneID       NodeID     = 0xFFFFFF // 24-bit all-ones
	NoneArrayID  ArrayID    = 0xFFFFFFFF
	NoneBaseType TypeID     = 0xFFFFFFFF
	NoneSource   SourceID   = 0xFFFF
	NoneFileID              = NoneSource
	rootParentID NodeID     = 0xFFFFFF
)

// Node is the spine of the model: a tree rooted at index 0. Fields use
// plain Go ints rather than exposing packed words (see DESIGN.md, §9); the
// bit-width bounds below are enforced by PushNode.
type Node struct {
	Type            NodeType
	LocalID         uint32 // < 1<<24
	ParentID        NodeID // < 1<<24, index strictly less than self (root: NoneID)
	AnnotationStart uint32 // < 1<<20
	AnnotationCount uint32 // < 1<<10
	ChildCount      uint32 // < 1<<24, inclusive transitive descendant count
}

// NodeSymbol carries human-readable debug information for a Node, present
// only when FeatureSymbolInfo is enabled. Parallel to the Nodes table.
type NodeSymbol struct {
	NameID           StringID // into debug strings; local name only
	FileNameID       SourceID // 0xFFFF == no source location
	SourceLineStart  uint32   // < 1<<20
	SourceLineCount  uint32   // < 1<<16
	SourceColumnStart uint32  // < 1<<17
	SourceColumnEnd   uint32  // < 1<<17
}

// Register is a resource binding point.
type Register struct {
	InputType    RegisterInputType
	Dimension    SRVDimension
	ReturnType   ResourceReturnType
	UserFlags    uint8
	BindPoint    uint32
	Space        uint32
	BindCount    uint32 // >= 1
	NumSamples   uint32
	NodeID       NodeID
	ArrayID      ArrayID // NoneArrayID if not a multi-dim array
	BufferID     BufferID
}

// Buffer describes a cbuffer/tbuffer/structured-resource's contents.
type Buffer struct {
	Type   CBufferType
	NodeID NodeID
}

// Function describes an HLSL function declaration.
type Function struct {
	NodeID        NodeID
	NumParameters uint32 // < 1<<30
	HasReturn     bool
	HasDefinition bool
}

// Enum describes an `enum class` declaration.
type Enum struct {
	NodeID      NodeID
	ElementType EnumElementType
}

// EnumValue describes a single enumerator.
type EnumValue struct {
	Value  int64
	NodeID NodeID
}

// Annotation is a piece of metadata attached to a Node: either a known
// compiler attribute (IsBuiltin, rendered structurally) or free user text.
type Annotation struct {
	StringNonDebugID uint32 // < 1<<31, index into the non-debug string pool
	IsBuiltin        bool
}

// Array is a multi-dimensional array descriptor, always rank in [2,8].
// Dimension sizes live in Reflection.ArraySizes[Start : Start+Rank].
type Array struct {
	Rank  uint8  // in [2,8]
	Start uint32 // < 1<<28
}

// Type is the hardest entity: a packed description of an HLSL type,
// covering scalars, vectors, matrices, structs, and opaque objects.
type Type struct {
	Class       VariableClass
	Kind        VariableType
	Rows        uint8
	Columns     uint8
	// ElementCount holds a flat 1-D array length (0 == not an array).
	// IsMultiDim/MultiDimID below select between this and an ArrayID.
	ElementCount uint32
	IsMultiDim   bool
	MultiDimID   ArrayID
	BaseClass    TypeID // NoneBaseType if none
	MemberStart  uint32 // < 1<<24
	MemberCount  uint32 // < 1<<8
}

// IsArray reports whether the type is any kind of array (1-D or multi-dim).
func (t *Type) IsArray() bool { return t.IsMultiDim || t.ElementCount > 0 }
