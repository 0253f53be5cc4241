// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package reflect

// TypeExpr is the producer-facing description of an HLSL type, the input
// to RegisterType. A real front end walks a Clang AST and builds one of
// these per type it encounters; walking that AST is out of scope here; the
// type-registration algorithm (array unwrap, dedup, recursive member
// resolution) is what this package owns.
//
// Exactly one of the following shapes should be populated:
//   - neither IsObject nor Fields set (see isScalarShape): a scalar of
//     kind Scalar, or — with Rows/Columns set — a vector or matrix of it.
//   - IsObject: an opaque object type (texture, buffer, sampler, ...).
//   - Fields != nil: a struct, whose members are registered recursively.
type TypeExpr struct {
	// Name is the type's spelling as written, e.g. "float4x4", "MyStruct",
	// "Texture2D<float4>". Used for debug-string interning only.
	Name string

	// Scalar element kind. For a bare scalar, Rows == Columns == 0. For a
	// vector, Rows == 1 and Columns == vector width. For a matrix, both
	// are set. Ignored when IsObject or Fields != nil.
	Scalar  VariableType
	Rows    uint8
	Columns uint8

	// RowMajor overrides the default matrix packing order for this type;
	// nil defers to BuilderOptions.DefaultRowMajor. Meaningless unless
	// Rows > 1 && Columns > 1.
	RowMajor *bool

	// Object is the opaque object kind (textures, buffers, samplers, ...).
	IsObject bool
	Object   VariableType

	// Fields, when non-nil, makes this a struct type; Class resolves to
	// ClassStruct and each field is registered as a member in order.
	Fields []FieldExpr

	// Base is the type this one inherits from (HLSL class/struct
	// inheritance), or nil for none.
	Base *TypeExpr

	// ArrayDims are the array dimensions applied to the element type
	// described by the rest of this TypeExpr, outermost first. Empty
	// means "not an array".
	ArrayDims []uint32
}

// FieldExpr is one member of a struct TypeExpr.
type FieldExpr struct {
	Name string
	Type TypeExpr
}

// isScalarShape reports whether e describes a scalar/vector/matrix rather
// than an object or struct.
func (e *TypeExpr) isScalarShape() bool {
	return !e.IsObject && e.Fields == nil
}
