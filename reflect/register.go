// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package reflect

// Sentinel sample counts distinguished in the wire format (§4.5, Open
// Questions): a non-multisampled resource (or one for which sample count
// doesn't apply, such as a buffer) records SampleCountNotApplicable; a
// Texture2DMS/Texture2DMSArray with an unspecified sample count records
// SampleCountMultisampleUnknown; any other resource (samplers,
// RaytracingAccelerationStructure) that carries no sample count at all
// also uses SampleCountNotApplicable, mirroring the original encoding
// where only an explicitly-zero multisample count is distinguishable from
// "no such thing as a sample count here".
const (
	SampleCountNotApplicable      uint32 = 0xFFFFFFFF
	SampleCountMultisampleUnknown uint32 = 0
)

// ElementInput describes the struct (or $Element wrapper) backing a
// structured/constant/texture buffer register, when the register's input
// type requires one (IsStructuredLike or IsBufferBacked).
type ElementInput struct {
	// Name is usually "$Element" for template-parameterized buffers, or
	// the cbuffer/tbuffer's own declared name.
	Name string
	Type TypeExpr
}

// RegisterInput is the producer-facing description of a single resource
// binding, the input to FillRegister (§4.5). A real front end derives one
// of these per UnusualAnnotation::UA_RegisterAssignment it finds; the
// Clang-specific classification logic (GetRegisterTypeInfo,
// GetTextureRegisterInfo) is the caller's job, not this package's — this
// package owns validation, dedup, and table layout only.
type RegisterInput struct {
	Name       string
	InputType  RegisterInputType
	BindPoint  uint32
	Space      *uint32 // nil selects FillRegister's autoBindSpace argument
	ArrayDims  []uint32
	Dimension  SRVDimension
	ReturnType ResourceReturnType
	NumSamples uint32
	UserFlags  uint8

	// Element is non-nil exactly when InputType.IsStructuredLike() or
	// InputType is InputCBuffer/InputTBuffer.
	Element *ElementInput

	Src *SourceRange
}

// FillRegister registers a full resource binding under parentID: the
// Register entry itself, a backing Buffer record (only for cbuffer,
// tbuffer, and structured-like input types; other registers get none and
// keep BufferID 0), its array descriptor if it's an array, and — for buffer-backed or structured-like inputs — the nested
// $Element/struct type plus its child Variable node (§4.5 steps 1-6,
// mirroring FillReflectionRegisterAt).
func (r *Reflection) FillRegister(parentID NodeID, in RegisterInput, autoBindSpace uint32, defaultRowMajor bool) RegisterID {
	assertf(in.InputType.Valid(), "invalid register input type %d", in.InputType)

	arrayFlat := uint32(1)
	for _, d := range in.ArrayDims {
		arrayFlat *= d
	}

	nodeID := r.PushNode(in.Name, NodeRegister, parentID, uint32(len(r.Registers)), nil, in.Src)
	arrayID := r.PushArray(arrayFlat, in.ArrayDims)

	bufType := bufferTypeForInput(in.InputType)
	var bufferID BufferID
	if bufType != CBufferTypeInterfacePointers {
		bufferID = BufferID(len(r.Buffers))
		r.Buffers = append(r.Buffers, Buffer{Type: bufType, NodeID: nodeID})
	}

	space := autoBindSpace
	if in.Space != nil {
		space = *in.Space
	}

	reg := Register{
		InputType:  in.InputType,
		Dimension:  in.Dimension,
		ReturnType: in.ReturnType,
		UserFlags:  in.UserFlags,
		BindPoint:  in.BindPoint,
		Space:      space,
		BindCount:  arrayFlat,
		NumSamples: in.NumSamples,
		NodeID:     nodeID,
		ArrayID:    arrayID,
		BufferID:   bufferID,
	}
	regID := RegisterID(len(r.Registers))
	r.Registers = append(r.Registers, reg)

	if in.Element != nil {
		typeID := r.RegisterType(in.Element.Type, defaultRowMajor)
		r.PushNode(in.Element.Name, NodeVariable, nodeID, uint32(typeID), nil, nil)
	}

	return regID
}
