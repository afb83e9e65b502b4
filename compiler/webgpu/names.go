package webgpu

import (
	"github.com/gogpu/gputypes"
	"tlog.app/go/errors"

	"github.com/slowlang/pipestate/compiler/api"
)

type (
	vertexFormat struct {
		name string
		f    gputypes.VertexFormat
		vk   api.Format
	}

	textureFormat struct {
		name string
		f    gputypes.TextureFormat
		vk   api.Format
	}
)

// Names are the WebGPU enum strings.
var vertexFormats = []vertexFormat{
	{"uint8x2", gputypes.VertexFormatUint8x2, api.FormatR8G8Uint},
	{"uint8x4", gputypes.VertexFormatUint8x4, api.FormatR8G8B8A8Uint},
	{"sint8x2", gputypes.VertexFormatSint8x2, api.FormatR8G8Sint},
	{"sint8x4", gputypes.VertexFormatSint8x4, api.FormatR8G8B8A8Sint},
	{"unorm8x2", gputypes.VertexFormatUnorm8x2, api.FormatR8G8Unorm},
	{"unorm8x4", gputypes.VertexFormatUnorm8x4, api.FormatR8G8B8A8Unorm},
	{"snorm8x2", gputypes.VertexFormatSnorm8x2, api.FormatR8G8Snorm},
	{"snorm8x4", gputypes.VertexFormatSnorm8x4, api.FormatR8G8B8A8Snorm},
	{"uint16x2", gputypes.VertexFormatUint16x2, api.FormatR16G16Uint},
	{"uint16x4", gputypes.VertexFormatUint16x4, api.FormatR16G16B16A16Uint},
	{"sint16x2", gputypes.VertexFormatSint16x2, api.FormatR16G16Sint},
	{"sint16x4", gputypes.VertexFormatSint16x4, api.FormatR16G16B16A16Sint},
	{"unorm16x2", gputypes.VertexFormatUnorm16x2, api.FormatR16G16Unorm},
	{"unorm16x4", gputypes.VertexFormatUnorm16x4, api.FormatR16G16B16A16Unorm},
	{"snorm16x2", gputypes.VertexFormatSnorm16x2, api.FormatR16G16Snorm},
	{"snorm16x4", gputypes.VertexFormatSnorm16x4, api.FormatR16G16B16A16Snorm},
	{"float16x2", gputypes.VertexFormatFloat16x2, api.FormatR16G16Sfloat},
	{"float16x4", gputypes.VertexFormatFloat16x4, api.FormatR16G16B16A16Sfloat},
	{"float32", gputypes.VertexFormatFloat32, api.FormatR32Sfloat},
	{"float32x2", gputypes.VertexFormatFloat32x2, api.FormatR32G32Sfloat},
	{"float32x3", gputypes.VertexFormatFloat32x3, api.FormatR32G32B32Sfloat},
	{"float32x4", gputypes.VertexFormatFloat32x4, api.FormatR32G32B32A32Sfloat},
	{"uint32", gputypes.VertexFormatUint32, api.FormatR32Uint},
	{"uint32x2", gputypes.VertexFormatUint32x2, api.FormatR32G32Uint},
	{"uint32x3", gputypes.VertexFormatUint32x3, api.FormatR32G32B32Uint},
	{"uint32x4", gputypes.VertexFormatUint32x4, api.FormatR32G32B32A32Uint},
	{"sint32", gputypes.VertexFormatSint32, api.FormatR32Sint},
	{"sint32x2", gputypes.VertexFormatSint32x2, api.FormatR32G32Sint},
	{"sint32x3", gputypes.VertexFormatSint32x3, api.FormatR32G32B32Sint},
	{"sint32x4", gputypes.VertexFormatSint32x4, api.FormatR32G32B32A32Sint},
}

var textureFormats = []textureFormat{
	{"r8unorm", gputypes.TextureFormatR8Unorm, api.FormatR8Unorm},
	{"r8snorm", gputypes.TextureFormatR8Snorm, api.FormatR8Snorm},
	{"r8uint", gputypes.TextureFormatR8Uint, api.FormatR8Uint},
	{"r8sint", gputypes.TextureFormatR8Sint, api.FormatR8Sint},
	{"r16uint", gputypes.TextureFormatR16Uint, api.FormatR16Uint},
	{"r16sint", gputypes.TextureFormatR16Sint, api.FormatR16Sint},
	{"r16float", gputypes.TextureFormatR16Float, api.FormatR16Sfloat},
	{"rg8unorm", gputypes.TextureFormatRG8Unorm, api.FormatR8G8Unorm},
	{"rg8snorm", gputypes.TextureFormatRG8Snorm, api.FormatR8G8Snorm},
	{"rg8uint", gputypes.TextureFormatRG8Uint, api.FormatR8G8Uint},
	{"rg8sint", gputypes.TextureFormatRG8Sint, api.FormatR8G8Sint},
	{"r32uint", gputypes.TextureFormatR32Uint, api.FormatR32Uint},
	{"r32sint", gputypes.TextureFormatR32Sint, api.FormatR32Sint},
	{"r32float", gputypes.TextureFormatR32Float, api.FormatR32Sfloat},
	{"rg16uint", gputypes.TextureFormatRG16Uint, api.FormatR16G16Uint},
	{"rg16sint", gputypes.TextureFormatRG16Sint, api.FormatR16G16Sint},
	{"rg16float", gputypes.TextureFormatRG16Float, api.FormatR16G16Sfloat},
	{"rgba8unorm", gputypes.TextureFormatRGBA8Unorm, api.FormatR8G8B8A8Unorm},
	{"rgba8unorm-srgb", gputypes.TextureFormatRGBA8UnormSrgb, api.FormatR8G8B8A8Srgb},
	{"rgba8snorm", gputypes.TextureFormatRGBA8Snorm, api.FormatR8G8B8A8Snorm},
	{"rgba8uint", gputypes.TextureFormatRGBA8Uint, api.FormatR8G8B8A8Uint},
	{"rgba8sint", gputypes.TextureFormatRGBA8Sint, api.FormatR8G8B8A8Sint},
	{"bgra8unorm", gputypes.TextureFormatBGRA8Unorm, api.FormatB8G8R8A8Unorm},
	{"bgra8unorm-srgb", gputypes.TextureFormatBGRA8UnormSrgb, api.FormatB8G8R8A8Srgb},
	{"rgb10a2uint", gputypes.TextureFormatRGB10A2Uint, api.FormatA2B10G10R10UintPack32},
	{"rgb10a2unorm", gputypes.TextureFormatRGB10A2Unorm, api.FormatA2B10G10R10UnormPack32},
	{"rg11b10ufloat", gputypes.TextureFormatRG11B10Ufloat, api.FormatB10G11R11UfloatPack32},
	{"rgb9e5ufloat", gputypes.TextureFormatRGB9E5Ufloat, api.FormatE5B9G9R9UfloatPack32},
	{"rg32uint", gputypes.TextureFormatRG32Uint, api.FormatR32G32Uint},
	{"rg32sint", gputypes.TextureFormatRG32Sint, api.FormatR32G32Sint},
	{"rg32float", gputypes.TextureFormatRG32Float, api.FormatR32G32Sfloat},
	{"rgba16uint", gputypes.TextureFormatRGBA16Uint, api.FormatR16G16B16A16Uint},
	{"rgba16sint", gputypes.TextureFormatRGBA16Sint, api.FormatR16G16B16A16Sint},
	{"rgba16float", gputypes.TextureFormatRGBA16Float, api.FormatR16G16B16A16Sfloat},
	{"rgba32uint", gputypes.TextureFormatRGBA32Uint, api.FormatR32G32B32A32Uint},
	{"rgba32sint", gputypes.TextureFormatRGBA32Sint, api.FormatR32G32B32A32Sint},
	{"rgba32float", gputypes.TextureFormatRGBA32Float, api.FormatR32G32B32A32Sfloat},
	{"depth16unorm", gputypes.TextureFormatDepth16Unorm, api.FormatD16Unorm},
	{"depth32float", gputypes.TextureFormatDepth32Float, api.FormatD32Sfloat},
	{"depth24plus-stencil8", gputypes.TextureFormatDepth24PlusStencil8, api.FormatD24UnormS8Uint},
}

var topologies = map[string]gputypes.PrimitiveTopology{
	"point-list":     gputypes.PrimitiveTopologyPointList,
	"line-list":      gputypes.PrimitiveTopologyLineList,
	"line-strip":     gputypes.PrimitiveTopologyLineStrip,
	"triangle-list":  gputypes.PrimitiveTopologyTriangleList,
	"triangle-strip": gputypes.PrimitiveTopologyTriangleStrip,
}

var cullModes = map[string]gputypes.CullMode{
	"none":  gputypes.CullModeNone,
	"front": gputypes.CullModeFront,
	"back":  gputypes.CullModeBack,
}

var frontFaces = map[string]gputypes.FrontFace{
	"ccw": gputypes.FrontFaceCCW,
	"cw":  gputypes.FrontFaceCW,
}

var stepModes = map[string]gputypes.VertexStepMode{
	"vertex":   gputypes.VertexStepModeVertex,
	"instance": gputypes.VertexStepModeInstance,
}

func ParseVertexFormat(s string) (gputypes.VertexFormat, error) {
	for _, e := range vertexFormats {
		if e.name == s {
			return e.f, nil
		}
	}

	return 0, errors.New("unknown vertex format: %q", s)
}

func ParseTextureFormat(s string) (gputypes.TextureFormat, error) {
	for _, e := range textureFormats {
		if e.name == s {
			return e.f, nil
		}
	}

	return 0, errors.New("unknown texture format: %q", s)
}

// parse looks s up in m. Empty s is the zero value.
func parse[T any](m map[string]T, what, s string) (r T, err error) {
	if s == "" {
		return r, nil
	}

	r, ok := m[s]
	if !ok {
		return r, errors.New("unknown %v: %q", what, s)
	}

	return r, nil
}
