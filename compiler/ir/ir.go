package ir

import "strconv"

type (
	ShaderStage uint32

	ResourceNodeType uint32

	// ResourceNode is a user data node as the generator sees it.
	// InnerTable is a view into the same backing slice as the node itself.
	ResourceNode struct {
		Type           ResourceNodeType
		SizeInDwords   uint32
		OffsetInDwords uint32

		// Descriptor nodes.
		Set     uint32
		Binding uint32

		// ImmutableValue holds len/ImmutableStride descriptors, zero-padded to the stride.
		ImmutableValue  []uint32
		ImmutableStride int

		// DescriptorTableVaPtr.
		InnerTable []ResourceNode

		// IndirectUserDataVaPtr and StreamOutTableVaPtr.
		IndirectSizeInDwords uint32
	}

	BufDataFormat uint32
	BufNumFormat  uint32
)

const (
	ShaderStageVertex ShaderStage = iota
	ShaderStageTessControl
	ShaderStageTessEval
	ShaderStageGeometry
	ShaderStageFragment
	ShaderStageCompute

	ShaderStageCopyShader

	ShaderStageCount
)

const (
	ResourceNodeTypeUnknown ResourceNodeType = iota
	DescriptorResource
	DescriptorSampler
	DescriptorCombinedTexture
	DescriptorTexelBuffer
	DescriptorFmask
	DescriptorBuffer
	DescriptorTableVaPtr
	IndirectUserDataVaPtr
	PushConst
	DescriptorBufferCompact
	StreamOutTableVaPtr
	DescriptorYCbCrSampler

	ResourceNodeTypeCount
)

const (
	BufDataFormatInvalid BufDataFormat = iota
	BufDataFormat8
	BufDataFormat16
	BufDataFormat8_8
	BufDataFormat32
	BufDataFormat16_16
	BufDataFormat10_11_11
	BufDataFormat11_11_10
	BufDataFormat10_10_10_2
	BufDataFormat2_10_10_10
	BufDataFormat8_8_8_8
	BufDataFormat32_32
	BufDataFormat16_16_16_16
	BufDataFormat32_32_32
	BufDataFormat32_32_32_32
	BufDataFormatReserved
	BufDataFormat8_8_8_8_Bgra
	BufDataFormat8_8_8
	BufDataFormat8_8_8_Bgr
	BufDataFormat2_10_10_10_Bgra
	BufDataFormat64
	BufDataFormat64_64
	BufDataFormat64_64_64
	BufDataFormat64_64_64_64
	BufDataFormat4_4
	BufDataFormat4_4_4_4
	BufDataFormat4_4_4_4_Bgra
	BufDataFormat5_6_5
	BufDataFormat5_6_5_Bgr
	BufDataFormat5_6_5_1
	BufDataFormat5_6_5_1_Bgra
	BufDataFormat1_5_6_5
	BufDataFormat5_9_9_9

	BufDataFormatCount
)

const (
	BufNumFormatUnorm BufNumFormat = iota
	BufNumFormatSnorm
	BufNumFormatUscaled
	BufNumFormatSscaled
	BufNumFormatUint
	BufNumFormatSint
	BufNumFormatSnormOgl
	BufNumFormatFloat
	_
	BufNumFormatSrgb
	BufNumFormatOther

	BufNumFormatCount
)

var resourceNodeTypeNames = [ResourceNodeTypeCount]string{
	"unknown", "resource", "sampler", "combined_texture", "texel_buffer", "fmask", "buffer",
	"table", "indirect_user_data", "push_const", "buffer_compact", "stream_out_table", "ycbcr_sampler",
}

var bufDataFormatNames = [BufDataFormatCount]string{
	"invalid", "8", "16", "8_8", "32", "16_16", "10_11_11", "11_11_10", "10_10_10_2", "2_10_10_10",
	"8_8_8_8", "32_32", "16_16_16_16", "32_32_32", "32_32_32_32", "reserved", "8_8_8_8_bgra",
	"8_8_8", "8_8_8_bgr", "2_10_10_10_bgra", "64", "64_64", "64_64_64", "64_64_64_64", "4_4",
	"4_4_4_4", "4_4_4_4_bgra", "5_6_5", "5_6_5_bgr", "5_6_5_1", "5_6_5_1_bgra", "1_5_6_5", "5_9_9_9",
}

var bufNumFormatNames = [BufNumFormatCount]string{
	"unorm", "snorm", "uscaled", "sscaled", "uint", "sint", "snorm_ogl", "float", "", "srgb", "other",
}

var shaderStageNames = [ShaderStageCount]string{"vs", "tcs", "tes", "gs", "fs", "cs", "copy"}

func (s ShaderStage) String() string { return name(shaderStageNames[:], uint32(s)) }

func (t ResourceNodeType) String() string { return name(resourceNodeTypeNames[:], uint32(t)) }

func (f BufDataFormat) String() string { return name(bufDataFormatNames[:], uint32(f)) }

func (f BufNumFormat) String() string { return name(bufNumFormatNames[:], uint32(f)) }

// IsDescriptor reports whether the node is a scalar descriptor
// which has a set and binding.
func (t ResourceNodeType) IsDescriptor() bool {
	switch t {
	case ResourceNodeTypeUnknown, DescriptorTableVaPtr, IndirectUserDataVaPtr, StreamOutTableVaPtr:
		return false
	}

	return t < ResourceNodeTypeCount
}

func name(names []string, i uint32) string {
	if int(i) < len(names) && names[i] != "" {
		return names[i]
	}

	return "?" + strconv.FormatUint(uint64(i), 10)
}
