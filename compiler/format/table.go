package format

import (
	"github.com/slowlang/pipestate/compiler/api"
	"github.com/slowlang/pipestate/compiler/ir"
)

// table is indexed by api.Format. Rows must stay dense and in code order.
var table = [...]Entry{
	invalid(api.FormatUndefined),
	color(api.FormatR4G4UnormPack8, ir.BufDataFormat4_4, ir.BufNumFormatUnorm),
	color(api.FormatR4G4B4A4UnormPack16, ir.BufDataFormat4_4_4_4, ir.BufNumFormatUnorm),
	color(api.FormatB4G4R4A4UnormPack16, ir.BufDataFormat4_4_4_4_Bgra, ir.BufNumFormatUnorm),
	color(api.FormatR5G6B5UnormPack16, ir.BufDataFormat5_6_5, ir.BufNumFormatUnorm),
	color(api.FormatB5G6R5UnormPack16, ir.BufDataFormat5_6_5_Bgr, ir.BufNumFormatUnorm),
	color(api.FormatR5G5B5A1UnormPack16, ir.BufDataFormat5_6_5_1, ir.BufNumFormatUnorm),
	color(api.FormatB5G5R5A1UnormPack16, ir.BufDataFormat5_6_5_1_Bgra, ir.BufNumFormatUnorm),
	color(api.FormatA1R5G5B5UnormPack16, ir.BufDataFormat1_5_6_5, ir.BufNumFormatUnorm),
	both(api.FormatR8Unorm, ir.BufDataFormat8, ir.BufNumFormatUnorm),
	both(api.FormatR8Snorm, ir.BufDataFormat8, ir.BufNumFormatSnorm),
	both(api.FormatR8Uscaled, ir.BufDataFormat8, ir.BufNumFormatUscaled),
	both(api.FormatR8Sscaled, ir.BufDataFormat8, ir.BufNumFormatSscaled),
	both(api.FormatR8Uint, ir.BufDataFormat8, ir.BufNumFormatUint),
	both(api.FormatR8Sint, ir.BufDataFormat8, ir.BufNumFormatSint),
	color(api.FormatR8Srgb, ir.BufDataFormat8, ir.BufNumFormatSrgb),
	both(api.FormatR8G8Unorm, ir.BufDataFormat8_8, ir.BufNumFormatUnorm),
	both(api.FormatR8G8Snorm, ir.BufDataFormat8_8, ir.BufNumFormatSnorm),
	both(api.FormatR8G8Uscaled, ir.BufDataFormat8_8, ir.BufNumFormatUscaled),
	both(api.FormatR8G8Sscaled, ir.BufDataFormat8_8, ir.BufNumFormatSscaled),
	both(api.FormatR8G8Uint, ir.BufDataFormat8_8, ir.BufNumFormatUint),
	both(api.FormatR8G8Sint, ir.BufDataFormat8_8, ir.BufNumFormatSint),
	color(api.FormatR8G8Srgb, ir.BufDataFormat8_8, ir.BufNumFormatSrgb),
	color(api.FormatR8G8B8Unorm, ir.BufDataFormat8_8_8, ir.BufNumFormatUnorm),
	color(api.FormatR8G8B8Snorm, ir.BufDataFormat8_8_8, ir.BufNumFormatSnorm),
	color(api.FormatR8G8B8Uscaled, ir.BufDataFormat8_8_8, ir.BufNumFormatUscaled),
	color(api.FormatR8G8B8Sscaled, ir.BufDataFormat8_8_8, ir.BufNumFormatSscaled),
	color(api.FormatR8G8B8Uint, ir.BufDataFormat8_8_8, ir.BufNumFormatUint),
	color(api.FormatR8G8B8Sint, ir.BufDataFormat8_8_8, ir.BufNumFormatSint),
	color(api.FormatR8G8B8Srgb, ir.BufDataFormat8_8_8, ir.BufNumFormatSrgb),
	color(api.FormatB8G8R8Unorm, ir.BufDataFormat8_8_8_Bgr, ir.BufNumFormatUnorm),
	color(api.FormatB8G8R8Snorm, ir.BufDataFormat8_8_8_Bgr, ir.BufNumFormatSnorm),
	color(api.FormatB8G8R8Uscaled, ir.BufDataFormat8_8_8_Bgr, ir.BufNumFormatUscaled),
	color(api.FormatB8G8R8Sscaled, ir.BufDataFormat8_8_8_Bgr, ir.BufNumFormatSscaled),
	color(api.FormatB8G8R8Uint, ir.BufDataFormat8_8_8_Bgr, ir.BufNumFormatUint),
	color(api.FormatB8G8R8Sint, ir.BufDataFormat8_8_8_Bgr, ir.BufNumFormatSint),
	color(api.FormatB8G8R8Srgb, ir.BufDataFormat8_8_8_Bgr, ir.BufNumFormatSrgb),
	both(api.FormatR8G8B8A8Unorm, ir.BufDataFormat8_8_8_8, ir.BufNumFormatUnorm),
	both(api.FormatR8G8B8A8Snorm, ir.BufDataFormat8_8_8_8, ir.BufNumFormatSnorm),
	both(api.FormatR8G8B8A8Uscaled, ir.BufDataFormat8_8_8_8, ir.BufNumFormatUscaled),
	both(api.FormatR8G8B8A8Sscaled, ir.BufDataFormat8_8_8_8, ir.BufNumFormatSscaled),
	both(api.FormatR8G8B8A8Uint, ir.BufDataFormat8_8_8_8, ir.BufNumFormatUint),
	both(api.FormatR8G8B8A8Sint, ir.BufDataFormat8_8_8_8, ir.BufNumFormatSint),
	color(api.FormatR8G8B8A8Srgb, ir.BufDataFormat8_8_8_8, ir.BufNumFormatSrgb),
	both(api.FormatB8G8R8A8Unorm, ir.BufDataFormat8_8_8_8_Bgra, ir.BufNumFormatUnorm),
	both(api.FormatB8G8R8A8Snorm, ir.BufDataFormat8_8_8_8_Bgra, ir.BufNumFormatSnorm),
	both(api.FormatB8G8R8A8Uscaled, ir.BufDataFormat8_8_8_8_Bgra, ir.BufNumFormatUscaled),
	both(api.FormatB8G8R8A8Sscaled, ir.BufDataFormat8_8_8_8_Bgra, ir.BufNumFormatSscaled),
	both(api.FormatB8G8R8A8Uint, ir.BufDataFormat8_8_8_8_Bgra, ir.BufNumFormatUint),
	both(api.FormatB8G8R8A8Sint, ir.BufDataFormat8_8_8_8_Bgra, ir.BufNumFormatSint),
	color(api.FormatB8G8R8A8Srgb, ir.BufDataFormat8_8_8_8_Bgra, ir.BufNumFormatSrgb),
	both(api.FormatA8B8G8R8UnormPack32, ir.BufDataFormat8_8_8_8, ir.BufNumFormatUnorm),
	both(api.FormatA8B8G8R8SnormPack32, ir.BufDataFormat8_8_8_8, ir.BufNumFormatSnorm),
	both(api.FormatA8B8G8R8UscaledPack32, ir.BufDataFormat8_8_8_8, ir.BufNumFormatUscaled),
	both(api.FormatA8B8G8R8SscaledPack32, ir.BufDataFormat8_8_8_8, ir.BufNumFormatSscaled),
	both(api.FormatA8B8G8R8UintPack32, ir.BufDataFormat8_8_8_8, ir.BufNumFormatUint),
	both(api.FormatA8B8G8R8SintPack32, ir.BufDataFormat8_8_8_8, ir.BufNumFormatSint),
	color(api.FormatA8B8G8R8SrgbPack32, ir.BufDataFormat8_8_8_8, ir.BufNumFormatSrgb),
	both(api.FormatA2R10G10B10UnormPack32, ir.BufDataFormat2_10_10_10_Bgra, ir.BufNumFormatUnorm),
	both(api.FormatA2R10G10B10SnormPack32, ir.BufDataFormat2_10_10_10_Bgra, ir.BufNumFormatSnorm),
	both(api.FormatA2R10G10B10UscaledPack32, ir.BufDataFormat2_10_10_10_Bgra, ir.BufNumFormatUscaled),
	both(api.FormatA2R10G10B10SscaledPack32, ir.BufDataFormat2_10_10_10_Bgra, ir.BufNumFormatSscaled),
	both(api.FormatA2R10G10B10UintPack32, ir.BufDataFormat2_10_10_10_Bgra, ir.BufNumFormatUint),
	both(api.FormatA2R10G10B10SintPack32, ir.BufDataFormat2_10_10_10_Bgra, ir.BufNumFormatSint),
	both(api.FormatA2B10G10R10UnormPack32, ir.BufDataFormat2_10_10_10, ir.BufNumFormatUnorm),
	vertex(api.FormatA2B10G10R10SnormPack32, ir.BufDataFormat2_10_10_10, ir.BufNumFormatSnorm),
	both(api.FormatA2B10G10R10UscaledPack32, ir.BufDataFormat2_10_10_10, ir.BufNumFormatUscaled),
	vertex(api.FormatA2B10G10R10SscaledPack32, ir.BufDataFormat2_10_10_10, ir.BufNumFormatSscaled),
	both(api.FormatA2B10G10R10UintPack32, ir.BufDataFormat2_10_10_10, ir.BufNumFormatUint),
	vertex(api.FormatA2B10G10R10SintPack32, ir.BufDataFormat2_10_10_10, ir.BufNumFormatSint),
	both(api.FormatR16Unorm, ir.BufDataFormat16, ir.BufNumFormatUnorm),
	both(api.FormatR16Snorm, ir.BufDataFormat16, ir.BufNumFormatSnorm),
	both(api.FormatR16Uscaled, ir.BufDataFormat16, ir.BufNumFormatUscaled),
	both(api.FormatR16Sscaled, ir.BufDataFormat16, ir.BufNumFormatSscaled),
	both(api.FormatR16Uint, ir.BufDataFormat16, ir.BufNumFormatUint),
	both(api.FormatR16Sint, ir.BufDataFormat16, ir.BufNumFormatSint),
	both(api.FormatR16Sfloat, ir.BufDataFormat16, ir.BufNumFormatFloat),
	both(api.FormatR16G16Unorm, ir.BufDataFormat16_16, ir.BufNumFormatUnorm),
	both(api.FormatR16G16Snorm, ir.BufDataFormat16_16, ir.BufNumFormatSnorm),
	both(api.FormatR16G16Uscaled, ir.BufDataFormat16_16, ir.BufNumFormatUscaled),
	both(api.FormatR16G16Sscaled, ir.BufDataFormat16_16, ir.BufNumFormatSscaled),
	both(api.FormatR16G16Uint, ir.BufDataFormat16_16, ir.BufNumFormatUint),
	both(api.FormatR16G16Sint, ir.BufDataFormat16_16, ir.BufNumFormatSint),
	both(api.FormatR16G16Sfloat, ir.BufDataFormat16_16, ir.BufNumFormatFloat),
	invalid(api.FormatR16G16B16Unorm),
	invalid(api.FormatR16G16B16Snorm),
	invalid(api.FormatR16G16B16Uscaled),
	invalid(api.FormatR16G16B16Sscaled),
	invalid(api.FormatR16G16B16Uint),
	invalid(api.FormatR16G16B16Sint),
	invalid(api.FormatR16G16B16Sfloat),
	both(api.FormatR16G16B16A16Unorm, ir.BufDataFormat16_16_16_16, ir.BufNumFormatUnorm),
	both(api.FormatR16G16B16A16Snorm, ir.BufDataFormat16_16_16_16, ir.BufNumFormatSnorm),
	both(api.FormatR16G16B16A16Uscaled, ir.BufDataFormat16_16_16_16, ir.BufNumFormatUscaled),
	both(api.FormatR16G16B16A16Sscaled, ir.BufDataFormat16_16_16_16, ir.BufNumFormatSscaled),
	both(api.FormatR16G16B16A16Uint, ir.BufDataFormat16_16_16_16, ir.BufNumFormatUint),
	both(api.FormatR16G16B16A16Sint, ir.BufDataFormat16_16_16_16, ir.BufNumFormatSint),
	both(api.FormatR16G16B16A16Sfloat, ir.BufDataFormat16_16_16_16, ir.BufNumFormatFloat),
	both(api.FormatR32Uint, ir.BufDataFormat32, ir.BufNumFormatUint),
	both(api.FormatR32Sint, ir.BufDataFormat32, ir.BufNumFormatSint),
	both(api.FormatR32Sfloat, ir.BufDataFormat32, ir.BufNumFormatFloat),
	both(api.FormatR32G32Uint, ir.BufDataFormat32_32, ir.BufNumFormatUint),
	both(api.FormatR32G32Sint, ir.BufDataFormat32_32, ir.BufNumFormatSint),
	both(api.FormatR32G32Sfloat, ir.BufDataFormat32_32, ir.BufNumFormatFloat),
	both(api.FormatR32G32B32Uint, ir.BufDataFormat32_32_32, ir.BufNumFormatUint),
	both(api.FormatR32G32B32Sint, ir.BufDataFormat32_32_32, ir.BufNumFormatSint),
	both(api.FormatR32G32B32Sfloat, ir.BufDataFormat32_32_32, ir.BufNumFormatFloat),
	both(api.FormatR32G32B32A32Uint, ir.BufDataFormat32_32_32_32, ir.BufNumFormatUint),
	both(api.FormatR32G32B32A32Sint, ir.BufDataFormat32_32_32_32, ir.BufNumFormatSint),
	both(api.FormatR32G32B32A32Sfloat, ir.BufDataFormat32_32_32_32, ir.BufNumFormatFloat),
	vertex(api.FormatR64Uint, ir.BufDataFormat64, ir.BufNumFormatUint),
	vertex(api.FormatR64Sint, ir.BufDataFormat64, ir.BufNumFormatSint),
	vertex(api.FormatR64Sfloat, ir.BufDataFormat64, ir.BufNumFormatFloat),
	vertex(api.FormatR64G64Uint, ir.BufDataFormat64_64, ir.BufNumFormatUint),
	vertex(api.FormatR64G64Sint, ir.BufDataFormat64_64, ir.BufNumFormatSint),
	vertex(api.FormatR64G64Sfloat, ir.BufDataFormat64_64, ir.BufNumFormatFloat),
	vertex(api.FormatR64G64B64Uint, ir.BufDataFormat64_64_64, ir.BufNumFormatUint),
	vertex(api.FormatR64G64B64Sint, ir.BufDataFormat64_64_64, ir.BufNumFormatSint),
	vertex(api.FormatR64G64B64Sfloat, ir.BufDataFormat64_64_64, ir.BufNumFormatFloat),
	vertex(api.FormatR64G64B64A64Uint, ir.BufDataFormat64_64_64_64, ir.BufNumFormatUint),
	vertex(api.FormatR64G64B64A64Sint, ir.BufDataFormat64_64_64_64, ir.BufNumFormatSint),
	vertex(api.FormatR64G64B64A64Sfloat, ir.BufDataFormat64_64_64_64, ir.BufNumFormatFloat),
	both(api.FormatB10G11R11UfloatPack32, ir.BufDataFormat10_11_11, ir.BufNumFormatFloat),
	color(api.FormatE5B9G9R9UfloatPack32, ir.BufDataFormat5_9_9_9, ir.BufNumFormatFloat),
	color(api.FormatD16Unorm, ir.BufDataFormat16, ir.BufNumFormatUnorm),
	invalid(api.FormatX8D24UnormPack32),
	color(api.FormatD32Sfloat, ir.BufDataFormat32, ir.BufNumFormatFloat),
	color(api.FormatS8Uint, ir.BufDataFormat8, ir.BufNumFormatUint),
	color(api.FormatD16UnormS8Uint, ir.BufDataFormat16, ir.BufNumFormatFloat),
	invalid(api.FormatD24UnormS8Uint),
	color(api.FormatD32SfloatS8Uint, ir.BufDataFormat32, ir.BufNumFormatFloat),
	invalid(api.FormatBC1RGBUnormBlock),
	invalid(api.FormatBC1RGBSrgbBlock),
	invalid(api.FormatBC1RGBAUnormBlock),
	invalid(api.FormatBC1RGBASrgbBlock),
	invalid(api.FormatBC2UnormBlock),
	invalid(api.FormatBC2SrgbBlock),
	invalid(api.FormatBC3UnormBlock),
	invalid(api.FormatBC3SrgbBlock),
	invalid(api.FormatBC4UnormBlock),
	invalid(api.FormatBC4SnormBlock),
	invalid(api.FormatBC5UnormBlock),
	invalid(api.FormatBC5SnormBlock),
	invalid(api.FormatBC6HUfloatBlock),
	invalid(api.FormatBC6HSfloatBlock),
	invalid(api.FormatBC7UnormBlock),
	invalid(api.FormatBC7SrgbBlock),
	invalid(api.FormatETC2R8G8B8UnormBlock),
	invalid(api.FormatETC2R8G8B8SrgbBlock),
	invalid(api.FormatETC2R8G8B8A1UnormBlock),
	invalid(api.FormatETC2R8G8B8A1SrgbBlock),
	invalid(api.FormatETC2R8G8B8A8UnormBlock),
	invalid(api.FormatETC2R8G8B8A8SrgbBlock),
	invalid(api.FormatEACR11UnormBlock),
	invalid(api.FormatEACR11SnormBlock),
	invalid(api.FormatEACR11G11UnormBlock),
	invalid(api.FormatEACR11G11SnormBlock),
	invalid(api.FormatASTC4x4UnormBlock),
	invalid(api.FormatASTC4x4SrgbBlock),
	invalid(api.FormatASTC5x4UnormBlock),
	invalid(api.FormatASTC5x4SrgbBlock),
	invalid(api.FormatASTC5x5UnormBlock),
	invalid(api.FormatASTC5x5SrgbBlock),
	invalid(api.FormatASTC6x5UnormBlock),
	invalid(api.FormatASTC6x5SrgbBlock),
	invalid(api.FormatASTC6x6UnormBlock),
	invalid(api.FormatASTC6x6SrgbBlock),
	invalid(api.FormatASTC8x5UnormBlock),
	invalid(api.FormatASTC8x5SrgbBlock),
	invalid(api.FormatASTC8x6UnormBlock),
	invalid(api.FormatASTC8x6SrgbBlock),
	invalid(api.FormatASTC8x8UnormBlock),
	invalid(api.FormatASTC8x8SrgbBlock),
	invalid(api.FormatASTC10x5UnormBlock),
	invalid(api.FormatASTC10x5SrgbBlock),
	invalid(api.FormatASTC10x6UnormBlock),
	invalid(api.FormatASTC10x6SrgbBlock),
	invalid(api.FormatASTC10x8UnormBlock),
	invalid(api.FormatASTC10x8SrgbBlock),
	invalid(api.FormatASTC10x10UnormBlock),
	invalid(api.FormatASTC10x10SrgbBlock),
	invalid(api.FormatASTC12x10UnormBlock),
	invalid(api.FormatASTC12x10SrgbBlock),
	invalid(api.FormatASTC12x12UnormBlock),
	invalid(api.FormatASTC12x12SrgbBlock),
}

func invalid(f api.Format) Entry {
	return Entry{Format: f, Dfmt: ir.BufDataFormatInvalid, Nfmt: ir.BufNumFormatUnorm}
}

func vertex(f api.Format, d ir.BufDataFormat, n ir.BufNumFormat) Entry {
	return Entry{Format: f, Dfmt: d, Nfmt: n, Vertex: true}
}

func color(f api.Format, d ir.BufDataFormat, n ir.BufNumFormat) Entry {
	return Entry{Format: f, Dfmt: d, Nfmt: n, Color: true}
}

func both(f api.Format, d ir.BufDataFormat, n ir.BufNumFormat) Entry {
	return Entry{Format: f, Dfmt: d, Nfmt: n, Vertex: true, Color: true}
}
