// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package reflect

import (
	"strconv"
	"strings"
)

const (
	maxMemberStart = 1 << 24
	maxMemberCount = 1 << 8
)

// arrayInfo carries the ElementCount/IsMultiDim/MultiDimID fields that fold
// onto whatever Type record would otherwise be produced for the unwrapped
// element, mirroring GenerateTypeInfo (DxcReflection.cpp:453-700): arrays
// are unwrapped up front and arraySize/elementsOrArrayId are set on the
// *same* record as cls/rows/columns/baseType/membersOffset/membersCount,
// never on a separate wrapper entry.
type arrayInfo struct {
	elementCount uint32
	isMultiDim   bool
	multiDimID   ArrayID
}

func (a arrayInfo) applyTo(t *Type) {
	t.ElementCount = a.elementCount
	t.IsMultiDim = a.isMultiDim
	t.MultiDimID = a.multiDimID
}

// RegisterType registers ast (recursively registering its base type and
// members, if any) and returns the TypeID of the resulting entry,
// deduplicating structurally identical types the way a previously-seen
// array descriptor is deduplicated in PushArray (§4.4). defaultRowMajor is
// used for any matrix that doesn't set its own RowMajor.
func (r *Reflection) RegisterType(ast TypeExpr, defaultRowMajor bool) TypeID {
	if len(ast.ArrayDims) > 0 {
		return r.registerArrayOf(ast, defaultRowMajor)
	}
	return r.registerShape(ast, defaultRowMajor, arrayInfo{})
}

// registerArrayOf strips ArrayDims off ast, folds the dimensions through
// PushArray, and registers the element's own shape (struct/object/scalar)
// with the resulting array info applied to that same Type record (§4.3/§4.4
// interaction) — an array of struct is still one Struct-class record, with
// its own ElementCount/MultiDimID alongside its inherited MemberStart/
// MemberCount, not a second record chained off a repurposed BaseClass.
func (r *Reflection) registerArrayOf(ast TypeExpr, defaultRowMajor bool) TypeID {
	dims := ast.ArrayDims
	elem := ast
	elem.ArrayDims = nil

	total := uint32(1)
	for _, d := range dims {
		total *= d
	}

	arrayID := r.PushArray(total, dims)

	info := arrayInfo{}
	if arrayID == NoneArrayID {
		info.elementCount = total
	} else {
		info.isMultiDim = true
		info.multiDimID = arrayID
	}

	return r.registerShape(elem, defaultRowMajor, info)
}

// registerShape dispatches on ast's shape (struct / object / scalar-vector-
// matrix) the way RegisterType's switch used to, threading arr through to
// whichever one builds the Type record so array-ness lands on that same
// record instead of a separate wrapper.
func (r *Reflection) registerShape(ast TypeExpr, defaultRowMajor bool, arr arrayInfo) TypeID {
	switch {
	case ast.Fields != nil:
		return r.registerStruct(ast, defaultRowMajor, arr)
	case ast.IsObject:
		return r.registerLeaf(Type{
			Class: ClassObject,
			Kind:  ast.Object,
		}, ast.Name, arr)
	default:
		return r.registerScalarShape(ast, defaultRowMajor, arr)
	}
}

func (r *Reflection) registerScalarShape(ast TypeExpr, defaultRowMajor bool, arr arrayInfo) TypeID {
	t := Type{Kind: ast.Scalar}
	switch {
	case ast.Rows == 0 && ast.Columns == 0:
		t.Class = ClassScalar
		t.Rows = 1
		t.Columns = 1
	case ast.Rows <= 1:
		t.Class = ClassVector
		t.Rows = 1
		t.Columns = ast.Columns
	default:
		rowMajor := defaultRowMajor
		if ast.RowMajor != nil {
			rowMajor = *ast.RowMajor
		}
		if rowMajor {
			t.Class = ClassMatrixRows
		} else {
			t.Class = ClassMatrixColumns
		}
		t.Rows = ast.Rows
		t.Columns = ast.Columns
	}
	return r.registerLeaf(t, ast.Name, arr)
}

func (r *Reflection) registerStruct(ast TypeExpr, defaultRowMajor bool, arr arrayInfo) TypeID {
	t := Type{
		Class:       ClassStruct,
		BaseClass:   NoneBaseType,
		MemberCount: uint32(len(ast.Fields)),
	}
	assertf(t.MemberCount < maxMemberCount, "struct %q has too many members", ast.Name)
	arr.applyTo(&t)

	if ast.Base != nil {
		t.BaseClass = r.RegisterType(*ast.Base, defaultRowMajor)
	}

	memberIDs := make([]TypeID, len(ast.Fields))
	memberNames := make([]StringID, len(ast.Fields))
	for i, f := range ast.Fields {
		memberIDs[i] = r.RegisterType(f.Type, defaultRowMajor)
		if r.HasSymbolInfo() {
			memberNames[i] = r.InternString(f.Name, true)
		}
	}

	key := structTypeKey(t.BaseClass, memberIDs, arr)
	if id, ok := r.typeDedup[key]; ok {
		return id
	}

	t.MemberStart = uint32(len(r.MemberTypeIDs))
	assertf(t.MemberStart < maxMemberStart, "member table overflow")
	r.MemberTypeIDs = append(r.MemberTypeIDs, memberIDs...)
	if r.HasSymbolInfo() {
		r.MemberNameIDs = append(r.MemberNameIDs, memberNames...)
	}

	id := TypeID(len(r.Types))
	r.Types = append(r.Types, t)
	if r.HasSymbolInfo() {
		r.TypeNameIDs = append(r.TypeNameIDs, r.InternString(ast.Name, true))
	}
	r.typeDedup[key] = id
	return id
}

// structTypeKey dedups structs by base type, exact member-type sequence,
// and array info rather than by table position, since MemberStart is
// monotonic and would otherwise defeat dedup entirely; array info must be
// part of the key too, or e.g. Light[4] and Light[8] would collapse to the
// same entry since they share base type and member sequence.
func structTypeKey(base TypeID, members []TypeID, arr arrayInfo) string {
	var b strings.Builder
	b.Grow(32 + len(members)*6)
	b.WriteString("struct:")
	b.WriteString(strconv.FormatUint(uint64(base), 10))
	for _, m := range members {
		b.WriteByte(';')
		b.WriteString(strconv.FormatUint(uint64(m), 10))
	}
	b.WriteByte('@')
	b.WriteString(strconv.FormatUint(uint64(arr.elementCount), 10))
	b.WriteByte(',')
	b.WriteString(strconv.FormatUint(boolToUint(arr.isMultiDim), 10))
	b.WriteByte(',')
	b.WriteString(strconv.FormatUint(uint64(arr.multiDimID), 10))
	return b.String()
}

// registerLeaf is the common path for scalar/vector/matrix/object types
// that carry no member list of their own.
func (r *Reflection) registerLeaf(t Type, name string, arr arrayInfo) TypeID {
	t.BaseClass = NoneBaseType
	arr.applyTo(&t)
	return r.internType(t, name)
}

// internType applies structural dedup (typeDedup, keyed independent of
// Name/debug info — two differently-spelled but structurally identical
// types collapse to one entry, matching ir.TypeRegistry's behavior) and
// appends a new Types/TypeNameIDs entry on first sight.
func (r *Reflection) internType(t Type, name string) TypeID {
	key := typeKey(t)
	if id, ok := r.typeDedup[key]; ok {
		return id
	}

	id := TypeID(len(r.Types))
	r.Types = append(r.Types, t)
	if r.HasSymbolInfo() {
		r.TypeNameIDs = append(r.TypeNameIDs, r.InternString(name, true))
	}
	r.typeDedup[key] = id
	return id
}

func typeKey(t Type) string {
	var b strings.Builder
	b.Grow(48)
	writeUint := func(v uint64) {
		b.WriteString(strconv.FormatUint(v, 10))
		b.WriteByte(':')
	}
	writeUint(uint64(t.Class))
	writeUint(uint64(t.Kind))
	writeUint(uint64(t.Rows))
	writeUint(uint64(t.Columns))
	writeUint(uint64(t.ElementCount))
	writeUint(boolToUint(t.IsMultiDim))
	writeUint(uint64(t.MultiDimID))
	writeUint(uint64(t.BaseClass))
	writeUint(uint64(t.MemberStart))
	writeUint(uint64(t.MemberCount))
	return b.String()
}

func boolToUint(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
