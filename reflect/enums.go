// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package reflect

// NodeType discriminates the table a Node's LocalID indexes into. Ordering
// matches hlsl::DxcHLSLNodeType in the original DXC reflection header.
type NodeType uint8

const (
	NodeRegister NodeType = iota
	NodeFunction
	NodeEnum
	NodeEnumValue
	NodeNamespace
	NodeTypedef
	NodeUsing
	NodeVariable

	nodeTypeStart = NodeRegister
	nodeTypeEnd   = NodeVariable
)

func (t NodeType) Valid() bool { return t >= nodeTypeStart && t <= nodeTypeEnd }

func (t NodeType) String() string {
	switch t {
	case NodeRegister:
		return "Register"
	case NodeFunction:
		return "Function"
	case NodeEnum:
		return "Enum"
	case NodeEnumValue:
		return "EnumValue"
	case NodeNamespace:
		return "Namespace"
	case NodeTypedef:
		return "Typedef"
	case NodeUsing:
		return "Using"
	case NodeVariable:
		return "Variable"
	default:
		return "Unknown"
	}
}

// RegisterInputType mirrors D3D_SHADER_INPUT_TYPE: the resource-binding
// kind a Register describes. Ordering matches D3DReflectionStrings.cpp.
type RegisterInputType uint8

const (
	InputCBuffer RegisterInputType = iota
	InputTBuffer
	InputTexture
	InputSampler
	InputUAVRWTyped
	InputStructured
	InputUAVRWStructured
	InputByteAddress
	InputUAVRWByteAddress
	InputUAVAppendStructured
	InputUAVConsumeStructured
	InputUAVRWStructuredWithCounter
	InputRTAccelerationStructure
	InputUAVFeedbackTexture

	registerInputStart = InputCBuffer
	registerInputEnd   = InputUAVFeedbackTexture
)

func (t RegisterInputType) Valid() bool { return t >= registerInputStart && t <= registerInputEnd }

func (t RegisterInputType) String() string {
	switch t {
	case InputCBuffer:
		return "CBuffer"
	case InputTBuffer:
		return "TBuffer"
	case InputTexture:
		return "Texture"
	case InputSampler:
		return "Sampler"
	case InputUAVRWTyped:
		return "UAVRWTyped"
	case InputStructured:
		return "Structured"
	case InputUAVRWStructured:
		return "UAVRWStructured"
	case InputByteAddress:
		return "ByteAddress"
	case InputUAVRWByteAddress:
		return "UAVRWByteAddress"
	case InputUAVAppendStructured:
		return "UAVAppendStructured"
	case InputUAVConsumeStructured:
		return "UAVConsumeStructured"
	case InputUAVRWStructuredWithCounter:
		return "UAVRWStructuredWithCounter"
	case InputRTAccelerationStructure:
		return "RTAccelerationStructure"
	case InputUAVFeedbackTexture:
		return "UAVFeedbackTexture"
	default:
		return "Unknown"
	}
}

// IsStructuredLike reports whether the input type carries a $Element
// backing struct the way a StructuredBuffer does.
func (t RegisterInputType) IsStructuredLike() bool {
	switch t {
	case InputStructured, InputUAVRWStructured, InputUAVAppendStructured,
		InputUAVConsumeStructured, InputUAVRWStructuredWithCounter:
		return true
	default:
		return false
	}
}

// IsBufferBacked reports whether the input type requires a Buffer record
// (cbuffer, tbuffer, or any structured-resource kind).
func (t RegisterInputType) IsBufferBacked() bool {
	switch t {
	case InputCBuffer, InputTBuffer:
		return true
	default:
		return t.IsStructuredLike()
	}
}

// SRVDimension mirrors D3D_SRV_DIMENSION.
type SRVDimension uint8

const (
	DimUnknown SRVDimension = iota
	DimBuffer
	DimTexture1D
	DimTexture1DArray
	DimTexture2D
	DimTexture2DArray
	DimTexture2DMS
	DimTexture2DMSArray
	DimTexture3D
	DimTextureCube
	DimTextureCubeArray
	DimBufferEx

	srvDimensionEnd = DimBufferEx
)

func (d SRVDimension) Valid() bool { return d <= srvDimensionEnd }

func (d SRVDimension) String() string {
	names := [...]string{
		"Unknown", "Buffer", "Texture1D", "Texture1DArray", "Texture2D",
		"Texture2DArray", "Texture2DMS", "Texture2DMSArray", "Texture3D",
		"TextureCube", "TextureCubeArray", "BufferEx",
	}
	if int(d) < len(names) {
		return names[d]
	}
	return "Unknown"
}

// ResourceReturnType mirrors D3D_RESOURCE_RETURN_TYPE.
type ResourceReturnType uint8

const (
	ReturnUnorm ResourceReturnType = iota + 1
	ReturnSnorm
	ReturnSint
	ReturnUint
	ReturnFloat
	ReturnMixed
	ReturnDouble
	ReturnContinued

	returnTypeEnd = ReturnContinued
)

func (r ResourceReturnType) Valid() bool { return r <= returnTypeEnd }

func (r ResourceReturnType) String() string {
	switch r {
	case 0:
		return "None"
	case ReturnUnorm:
		return "Unorm"
	case ReturnSnorm:
		return "Snorm"
	case ReturnSint:
		return "Sint"
	case ReturnUint:
		return "Uint"
	case ReturnFloat:
		return "Float"
	case ReturnMixed:
		return "Mixed"
	case ReturnDouble:
		return "Double"
	case ReturnContinued:
		return "Continued"
	default:
		return "Unknown"
	}
}

// VariableClass mirrors D3D_SHADER_VARIABLE_CLASS. InterfaceClass,
// InterfacePointer, and BitField are accepted by the validator as
// structurally valid but are never produced by RegisterType/FillRegister
// (see spec Open Questions).
type VariableClass uint8

const (
	ClassScalar VariableClass = iota
	ClassVector
	ClassMatrixRows
	ClassMatrixColumns
	ClassObject
	ClassStruct
	ClassInterfaceClass
	ClassInterfacePointer
	ClassBitField

	variableClassEnd = ClassBitField
)

func (c VariableClass) Valid() bool { return c <= variableClassEnd }

func (c VariableClass) String() string {
	names := [...]string{
		"Scalar", "Vector", "MatrixRows", "MatrixColumns", "Object",
		"Struct", "InterfaceClass", "InterfacePointer", "BitField",
	}
	if int(c) < len(names) {
		return names[c]
	}
	return "Unknown"
}

// VariableType mirrors D3D_SHADER_VARIABLE_TYPE's full taxonomy, including
// the object kinds register_type never emits for non-opaque scalars. The
// ordering matches D3DReflectionStrings.cpp; exact numeric parity with the
// Microsoft D3D12 headers isn't required since this is a standalone wire
// format, not a byte-compatible DXIL container (see DESIGN.md).
type VariableType uint8

const (
	TypeVoid VariableType = iota
	TypeBool
	TypeInt
	TypeFloat
	TypeString
	TypeTexture
	TypeTexture1D
	TypeTexture2D
	TypeTexture3D
	TypeTextureCube
	TypeSampler
	TypeSampler1D
	TypeSampler2D
	TypeSampler3D
	TypeSamplerCube
	TypePixelShader
	TypeVertexShader
	TypePixelFragment
	TypeVertexFragment
	TypeUInt
	TypeUInt8
	TypeGeometryShader
	TypeRasterizer
	TypeDepthStencil
	TypeBlend
	TypeBuffer
	TypeCBuffer
	TypeTBuffer
	TypeTexture1DArray
	TypeTexture2DArray
	TypeRenderTargetView
	TypeDepthStencilView
	TypeTexture2DMS
	TypeTexture2DMSArray
	TypeTextureCubeArray
	TypeHullShader
	TypeDomainShader
	TypeInterfacePointer
	TypeComputeShader
	TypeDouble
	TypeRWTexture1D
	TypeRWTexture1DArray
	TypeRWTexture2D
	TypeRWTexture2DArray
	TypeRWTexture3D
	TypeRWBuffer
	TypeByteAddressBuffer
	TypeRWByteAddressBuffer
	TypeStructuredBuffer
	TypeRWStructuredBuffer
	TypeAppendStructuredBuffer
	TypeConsumeStructuredBuffer
	TypeMin8Float
	TypeMin10Float
	TypeMin16Float
	TypeMin12Int
	TypeMin16Int
	TypeMin16UInt
	TypeInt16
	TypeUInt16
	TypeFloat16
	TypeInt64
	TypeUInt64

	variableTypeEnd = TypeUInt64
)

func (t VariableType) Valid() bool { return t <= variableTypeEnd }

// IsScalarKind reports whether t is usable as the element type of a Scalar,
// Vector, or Matrix typed value (invariant §3 rule 11).
func (t VariableType) IsScalarKind() bool {
	switch t {
	case TypeBool, TypeInt, TypeFloat, TypeMin8Float, TypeMin10Float,
		TypeMin16Float, TypeMin12Int, TypeMin16Int, TypeMin16UInt,
		TypeInt16, TypeUInt16, TypeFloat16, TypeInt64, TypeUInt64,
		TypeUInt, TypeDouble:
		return true
	default:
		return false
	}
}

// IsObjectKind reports whether t is a valid opaque object type (invariant
// §3 rule 11, the Object class case).
func (t VariableType) IsObjectKind() bool {
	switch t {
	case TypeString, TypeTexture1D, TypeTexture2D, TypeTexture3D,
		TypeTextureCube, TypeSampler, TypeBuffer, TypeCBuffer, TypeTBuffer,
		TypeTexture1DArray, TypeTexture2DArray, TypeTexture2DMS,
		TypeTexture2DMSArray, TypeTextureCubeArray, TypeRWTexture1D,
		TypeRWTexture1DArray, TypeRWTexture2D, TypeRWTexture2DArray,
		TypeRWTexture3D, TypeRWBuffer, TypeByteAddressBuffer,
		TypeRWByteAddressBuffer, TypeStructuredBuffer, TypeRWStructuredBuffer,
		TypeAppendStructuredBuffer, TypeConsumeStructuredBuffer:
		return true
	default:
		return false
	}
}

func (t VariableType) String() string {
	names := [...]string{
		"Void", "Bool", "Int", "Float", "String", "Texture", "Texture1D",
		"Texture2D", "Texture3D", "TextureCube", "Sampler", "Sampler1D",
		"Sampler2D", "Sampler3D", "SamplerCube", "PixelShader",
		"VertexShader", "PixelFragment", "VertexFragment", "UInt", "UInt8",
		"GeometryShader", "Rasterizer", "DepthStencil", "Blend", "Buffer",
		"CBuffer", "TBuffer", "Texture1DArray", "Texture2DArray",
		"RenderTargetView", "DepthStencilView", "Texture2DMS",
		"Texture2DMSArray", "TextureCubeArray", "HullShader", "DomainShader",
		"InterfacePointer", "ComputeShader", "Double", "RWTexture1D",
		"RWTexture1DArray", "RWTexture2D", "RWTexture2DArray", "RWTexture3D",
		"RWBuffer", "ByteAddressBuffer", "RWByteAddressBuffer",
		"StructuredBuffer", "RWStructuredBuffer", "AppendStructuredBuffer",
		"ConsumeStructuredBuffer", "Min8Float", "Min10Float", "Min16Float",
		"Min12Int", "Min16Int", "Min16UInt", "Int16", "UInt16", "Float16",
		"Int64", "UInt64",
	}
	if int(t) < len(names) {
		return names[t]
	}
	return "Unknown"
}

// CBufferType mirrors D3D_CBUFFER_TYPE.
type CBufferType uint8

const (
	CBufferTypeCBuffer CBufferType = iota
	CBufferTypeTBuffer
	CBufferTypeInterfacePointers
	CBufferTypeResourceBindInfo

	cbufferTypeEnd = CBufferTypeResourceBindInfo
)

func (c CBufferType) Valid() bool { return c <= cbufferTypeEnd }

func (c CBufferType) String() string {
	switch c {
	case CBufferTypeCBuffer:
		return "CBuffer"
	case CBufferTypeTBuffer:
		return "TBuffer"
	case CBufferTypeInterfacePointers:
		return "InterfacePointers"
	case CBufferTypeResourceBindInfo:
		return "ResourceBindInfo"
	default:
		return "Unknown"
	}
}

// bufferTypeForInput derives the Buffer.CBufferType a Register's input
// type implies (§3 invariant 5, §4.5 step 4). InterfacePointers is the
// "no buffer record" sentinel: only cbuffer/tbuffer/structured-like
// inputs get a Buffer entry at all.
func bufferTypeForInput(t RegisterInputType) CBufferType {
	switch {
	case t == InputCBuffer:
		return CBufferTypeCBuffer
	case t == InputTBuffer:
		return CBufferTypeTBuffer
	case t.IsStructuredLike():
		return CBufferTypeResourceBindInfo
	default:
		return CBufferTypeInterfacePointers
	}
}

// EnumElementType mirrors the six backing integer widths an HLSL
// `enum class Foo : T` can declare.
type EnumElementType uint8

const (
	EnumU16 EnumElementType = iota
	EnumI16
	EnumU32
	EnumI32
	EnumU64
	EnumI64

	enumElementTypeEnd = EnumI64
)

func (e EnumElementType) Valid() bool { return e <= enumElementTypeEnd }

func (e EnumElementType) String() string {
	names := [...]string{"u16", "i16", "u32", "i32", "u64", "i64"}
	if int(e) < len(names) {
		return names[e]
	}
	return "unknown"
}

// FeatureFlags selects which entity tables a producer populates; persisted
// in the header so a consumer knows which tables are meaningful.
type FeatureFlags uint32

const (
	FeatureBasics FeatureFlags = 1 << iota
	FeatureFunctions
	FeatureUserTypes
	FeatureNamespaces
	FeatureSymbolInfo
	FeatureScopes
)

func (f FeatureFlags) Has(bit FeatureFlags) bool { return f&bit != 0 }
