package api

import (
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
	"tlog.app/go/errors"
)

// Format is a Vulkan format code (VkFormat). Only the core range
// UNDEFINED..ASTC_12x12_SRGB_BLOCK is known here.
type Format uint32

const (
	FormatUndefined Format = iota
	FormatR4G4UnormPack8
	FormatR4G4B4A4UnormPack16
	FormatB4G4R4A4UnormPack16
	FormatR5G6B5UnormPack16
	FormatB5G6R5UnormPack16
	FormatR5G5B5A1UnormPack16
	FormatB5G5R5A1UnormPack16
	FormatA1R5G5B5UnormPack16
	FormatR8Unorm
	FormatR8Snorm
	FormatR8Uscaled
	FormatR8Sscaled
	FormatR8Uint
	FormatR8Sint
	FormatR8Srgb
	FormatR8G8Unorm
	FormatR8G8Snorm
	FormatR8G8Uscaled
	FormatR8G8Sscaled
	FormatR8G8Uint
	FormatR8G8Sint
	FormatR8G8Srgb
	FormatR8G8B8Unorm
	FormatR8G8B8Snorm
	FormatR8G8B8Uscaled
	FormatR8G8B8Sscaled
	FormatR8G8B8Uint
	FormatR8G8B8Sint
	FormatR8G8B8Srgb
	FormatB8G8R8Unorm
	FormatB8G8R8Snorm
	FormatB8G8R8Uscaled
	FormatB8G8R8Sscaled
	FormatB8G8R8Uint
	FormatB8G8R8Sint
	FormatB8G8R8Srgb
	FormatR8G8B8A8Unorm
	FormatR8G8B8A8Snorm
	FormatR8G8B8A8Uscaled
	FormatR8G8B8A8Sscaled
	FormatR8G8B8A8Uint
	FormatR8G8B8A8Sint
	FormatR8G8B8A8Srgb
	FormatB8G8R8A8Unorm
	FormatB8G8R8A8Snorm
	FormatB8G8R8A8Uscaled
	FormatB8G8R8A8Sscaled
	FormatB8G8R8A8Uint
	FormatB8G8R8A8Sint
	FormatB8G8R8A8Srgb
	FormatA8B8G8R8UnormPack32
	FormatA8B8G8R8SnormPack32
	FormatA8B8G8R8UscaledPack32
	FormatA8B8G8R8SscaledPack32
	FormatA8B8G8R8UintPack32
	FormatA8B8G8R8SintPack32
	FormatA8B8G8R8SrgbPack32
	FormatA2R10G10B10UnormPack32
	FormatA2R10G10B10SnormPack32
	FormatA2R10G10B10UscaledPack32
	FormatA2R10G10B10SscaledPack32
	FormatA2R10G10B10UintPack32
	FormatA2R10G10B10SintPack32
	FormatA2B10G10R10UnormPack32
	FormatA2B10G10R10SnormPack32
	FormatA2B10G10R10UscaledPack32
	FormatA2B10G10R10SscaledPack32
	FormatA2B10G10R10UintPack32
	FormatA2B10G10R10SintPack32
	FormatR16Unorm
	FormatR16Snorm
	FormatR16Uscaled
	FormatR16Sscaled
	FormatR16Uint
	FormatR16Sint
	FormatR16Sfloat
	FormatR16G16Unorm
	FormatR16G16Snorm
	FormatR16G16Uscaled
	FormatR16G16Sscaled
	FormatR16G16Uint
	FormatR16G16Sint
	FormatR16G16Sfloat
	FormatR16G16B16Unorm
	FormatR16G16B16Snorm
	FormatR16G16B16Uscaled
	FormatR16G16B16Sscaled
	FormatR16G16B16Uint
	FormatR16G16B16Sint
	FormatR16G16B16Sfloat
	FormatR16G16B16A16Unorm
	FormatR16G16B16A16Snorm
	FormatR16G16B16A16Uscaled
	FormatR16G16B16A16Sscaled
	FormatR16G16B16A16Uint
	FormatR16G16B16A16Sint
	FormatR16G16B16A16Sfloat
	FormatR32Uint
	FormatR32Sint
	FormatR32Sfloat
	FormatR32G32Uint
	FormatR32G32Sint
	FormatR32G32Sfloat
	FormatR32G32B32Uint
	FormatR32G32B32Sint
	FormatR32G32B32Sfloat
	FormatR32G32B32A32Uint
	FormatR32G32B32A32Sint
	FormatR32G32B32A32Sfloat
	FormatR64Uint
	FormatR64Sint
	FormatR64Sfloat
	FormatR64G64Uint
	FormatR64G64Sint
	FormatR64G64Sfloat
	FormatR64G64B64Uint
	FormatR64G64B64Sint
	FormatR64G64B64Sfloat
	FormatR64G64B64A64Uint
	FormatR64G64B64A64Sint
	FormatR64G64B64A64Sfloat
	FormatB10G11R11UfloatPack32
	FormatE5B9G9R9UfloatPack32
	FormatD16Unorm
	FormatX8D24UnormPack32
	FormatD32Sfloat
	FormatS8Uint
	FormatD16UnormS8Uint
	FormatD24UnormS8Uint
	FormatD32SfloatS8Uint
	FormatBC1RGBUnormBlock
	FormatBC1RGBSrgbBlock
	FormatBC1RGBAUnormBlock
	FormatBC1RGBASrgbBlock
	FormatBC2UnormBlock
	FormatBC2SrgbBlock
	FormatBC3UnormBlock
	FormatBC3SrgbBlock
	FormatBC4UnormBlock
	FormatBC4SnormBlock
	FormatBC5UnormBlock
	FormatBC5SnormBlock
	FormatBC6HUfloatBlock
	FormatBC6HSfloatBlock
	FormatBC7UnormBlock
	FormatBC7SrgbBlock
	FormatETC2R8G8B8UnormBlock
	FormatETC2R8G8B8SrgbBlock
	FormatETC2R8G8B8A1UnormBlock
	FormatETC2R8G8B8A1SrgbBlock
	FormatETC2R8G8B8A8UnormBlock
	FormatETC2R8G8B8A8SrgbBlock
	FormatEACR11UnormBlock
	FormatEACR11SnormBlock
	FormatEACR11G11UnormBlock
	FormatEACR11G11SnormBlock
	FormatASTC4x4UnormBlock
	FormatASTC4x4SrgbBlock
	FormatASTC5x4UnormBlock
	FormatASTC5x4SrgbBlock
	FormatASTC5x5UnormBlock
	FormatASTC5x5SrgbBlock
	FormatASTC6x5UnormBlock
	FormatASTC6x5SrgbBlock
	FormatASTC6x6UnormBlock
	FormatASTC6x6SrgbBlock
	FormatASTC8x5UnormBlock
	FormatASTC8x5SrgbBlock
	FormatASTC8x6UnormBlock
	FormatASTC8x6SrgbBlock
	FormatASTC8x8UnormBlock
	FormatASTC8x8SrgbBlock
	FormatASTC10x5UnormBlock
	FormatASTC10x5SrgbBlock
	FormatASTC10x6UnormBlock
	FormatASTC10x6SrgbBlock
	FormatASTC10x8UnormBlock
	FormatASTC10x8SrgbBlock
	FormatASTC10x10UnormBlock
	FormatASTC10x10SrgbBlock
	FormatASTC12x10UnormBlock
	FormatASTC12x10SrgbBlock
	FormatASTC12x12UnormBlock
	FormatASTC12x12SrgbBlock

	FormatCount
)

var formatNames = [FormatCount]string{
	FormatUndefined:                "UNDEFINED",
	FormatR4G4UnormPack8:           "R4G4_UNORM_PACK8",
	FormatR4G4B4A4UnormPack16:      "R4G4B4A4_UNORM_PACK16",
	FormatB4G4R4A4UnormPack16:      "B4G4R4A4_UNORM_PACK16",
	FormatR5G6B5UnormPack16:        "R5G6B5_UNORM_PACK16",
	FormatB5G6R5UnormPack16:        "B5G6R5_UNORM_PACK16",
	FormatR5G5B5A1UnormPack16:      "R5G5B5A1_UNORM_PACK16",
	FormatB5G5R5A1UnormPack16:      "B5G5R5A1_UNORM_PACK16",
	FormatA1R5G5B5UnormPack16:      "A1R5G5B5_UNORM_PACK16",
	FormatR8Unorm:                  "R8_UNORM",
	FormatR8Snorm:                  "R8_SNORM",
	FormatR8Uscaled:                "R8_USCALED",
	FormatR8Sscaled:                "R8_SSCALED",
	FormatR8Uint:                   "R8_UINT",
	FormatR8Sint:                   "R8_SINT",
	FormatR8Srgb:                   "R8_SRGB",
	FormatR8G8Unorm:                "R8G8_UNORM",
	FormatR8G8Snorm:                "R8G8_SNORM",
	FormatR8G8Uscaled:              "R8G8_USCALED",
	FormatR8G8Sscaled:              "R8G8_SSCALED",
	FormatR8G8Uint:                 "R8G8_UINT",
	FormatR8G8Sint:                 "R8G8_SINT",
	FormatR8G8Srgb:                 "R8G8_SRGB",
	FormatR8G8B8Unorm:              "R8G8B8_UNORM",
	FormatR8G8B8Snorm:              "R8G8B8_SNORM",
	FormatR8G8B8Uscaled:            "R8G8B8_USCALED",
	FormatR8G8B8Sscaled:            "R8G8B8_SSCALED",
	FormatR8G8B8Uint:               "R8G8B8_UINT",
	FormatR8G8B8Sint:               "R8G8B8_SINT",
	FormatR8G8B8Srgb:               "R8G8B8_SRGB",
	FormatB8G8R8Unorm:              "B8G8R8_UNORM",
	FormatB8G8R8Snorm:              "B8G8R8_SNORM",
	FormatB8G8R8Uscaled:            "B8G8R8_USCALED",
	FormatB8G8R8Sscaled:            "B8G8R8_SSCALED",
	FormatB8G8R8Uint:               "B8G8R8_UINT",
	FormatB8G8R8Sint:               "B8G8R8_SINT",
	FormatB8G8R8Srgb:               "B8G8R8_SRGB",
	FormatR8G8B8A8Unorm:            "R8G8B8A8_UNORM",
	FormatR8G8B8A8Snorm:            "R8G8B8A8_SNORM",
	FormatR8G8B8A8Uscaled:          "R8G8B8A8_USCALED",
	FormatR8G8B8A8Sscaled:          "R8G8B8A8_SSCALED",
	FormatR8G8B8A8Uint:             "R8G8B8A8_UINT",
	FormatR8G8B8A8Sint:             "R8G8B8A8_SINT",
	FormatR8G8B8A8Srgb:             "R8G8B8A8_SRGB",
	FormatB8G8R8A8Unorm:            "B8G8R8A8_UNORM",
	FormatB8G8R8A8Snorm:            "B8G8R8A8_SNORM",
	FormatB8G8R8A8Uscaled:          "B8G8R8A8_USCALED",
	FormatB8G8R8A8Sscaled:          "B8G8R8A8_SSCALED",
	FormatB8G8R8A8Uint:             "B8G8R8A8_UINT",
	FormatB8G8R8A8Sint:             "B8G8R8A8_SINT",
	FormatB8G8R8A8Srgb:             "B8G8R8A8_SRGB",
	FormatA8B8G8R8UnormPack32:      "A8B8G8R8_UNORM_PACK32",
	FormatA8B8G8R8SnormPack32:      "A8B8G8R8_SNORM_PACK32",
	FormatA8B8G8R8UscaledPack32:    "A8B8G8R8_USCALED_PACK32",
	FormatA8B8G8R8SscaledPack32:    "A8B8G8R8_SSCALED_PACK32",
	FormatA8B8G8R8UintPack32:       "A8B8G8R8_UINT_PACK32",
	FormatA8B8G8R8SintPack32:       "A8B8G8R8_SINT_PACK32",
	FormatA8B8G8R8SrgbPack32:       "A8B8G8R8_SRGB_PACK32",
	FormatA2R10G10B10UnormPack32:   "A2R10G10B10_UNORM_PACK32",
	FormatA2R10G10B10SnormPack32:   "A2R10G10B10_SNORM_PACK32",
	FormatA2R10G10B10UscaledPack32: "A2R10G10B10_USCALED_PACK32",
	FormatA2R10G10B10SscaledPack32: "A2R10G10B10_SSCALED_PACK32",
	FormatA2R10G10B10UintPack32:    "A2R10G10B10_UINT_PACK32",
	FormatA2R10G10B10SintPack32:    "A2R10G10B10_SINT_PACK32",
	FormatA2B10G10R10UnormPack32:   "A2B10G10R10_UNORM_PACK32",
	FormatA2B10G10R10SnormPack32:   "A2B10G10R10_SNORM_PACK32",
	FormatA2B10G10R10UscaledPack32: "A2B10G10R10_USCALED_PACK32",
	FormatA2B10G10R10SscaledPack32: "A2B10G10R10_SSCALED_PACK32",
	FormatA2B10G10R10UintPack32:    "A2B10G10R10_UINT_PACK32",
	FormatA2B10G10R10SintPack32:    "A2B10G10R10_SINT_PACK32",
	FormatR16Unorm:                 "R16_UNORM",
	FormatR16Snorm:                 "R16_SNORM",
	FormatR16Uscaled:               "R16_USCALED",
	FormatR16Sscaled:               "R16_SSCALED",
	FormatR16Uint:                  "R16_UINT",
	FormatR16Sint:                  "R16_SINT",
	FormatR16Sfloat:                "R16_SFLOAT",
	FormatR16G16Unorm:              "R16G16_UNORM",
	FormatR16G16Snorm:              "R16G16_SNORM",
	FormatR16G16Uscaled:            "R16G16_USCALED",
	FormatR16G16Sscaled:            "R16G16_SSCALED",
	FormatR16G16Uint:               "R16G16_UINT",
	FormatR16G16Sint:               "R16G16_SINT",
	FormatR16G16Sfloat:             "R16G16_SFLOAT",
	FormatR16G16B16Unorm:           "R16G16B16_UNORM",
	FormatR16G16B16Snorm:           "R16G16B16_SNORM",
	FormatR16G16B16Uscaled:         "R16G16B16_USCALED",
	FormatR16G16B16Sscaled:         "R16G16B16_SSCALED",
	FormatR16G16B16Uint:            "R16G16B16_UINT",
	FormatR16G16B16Sint:            "R16G16B16_SINT",
	FormatR16G16B16Sfloat:          "R16G16B16_SFLOAT",
	FormatR16G16B16A16Unorm:        "R16G16B16A16_UNORM",
	FormatR16G16B16A16Snorm:        "R16G16B16A16_SNORM",
	FormatR16G16B16A16Uscaled:      "R16G16B16A16_USCALED",
	FormatR16G16B16A16Sscaled:      "R16G16B16A16_SSCALED",
	FormatR16G16B16A16Uint:         "R16G16B16A16_UINT",
	FormatR16G16B16A16Sint:         "R16G16B16A16_SINT",
	FormatR16G16B16A16Sfloat:       "R16G16B16A16_SFLOAT",
	FormatR32Uint:                  "R32_UINT",
	FormatR32Sint:                  "R32_SINT",
	FormatR32Sfloat:                "R32_SFLOAT",
	FormatR32G32Uint:               "R32G32_UINT",
	FormatR32G32Sint:               "R32G32_SINT",
	FormatR32G32Sfloat:             "R32G32_SFLOAT",
	FormatR32G32B32Uint:            "R32G32B32_UINT",
	FormatR32G32B32Sint:            "R32G32B32_SINT",
	FormatR32G32B32Sfloat:          "R32G32B32_SFLOAT",
	FormatR32G32B32A32Uint:         "R32G32B32A32_UINT",
	FormatR32G32B32A32Sint:         "R32G32B32A32_SINT",
	FormatR32G32B32A32Sfloat:       "R32G32B32A32_SFLOAT",
	FormatR64Uint:                  "R64_UINT",
	FormatR64Sint:                  "R64_SINT",
	FormatR64Sfloat:                "R64_SFLOAT",
	FormatR64G64Uint:               "R64G64_UINT",
	FormatR64G64Sint:               "R64G64_SINT",
	FormatR64G64Sfloat:             "R64G64_SFLOAT",
	FormatR64G64B64Uint:            "R64G64B64_UINT",
	FormatR64G64B64Sint:            "R64G64B64_SINT",
	FormatR64G64B64Sfloat:          "R64G64B64_SFLOAT",
	FormatR64G64B64A64Uint:         "R64G64B64A64_UINT",
	FormatR64G64B64A64Sint:         "R64G64B64A64_SINT",
	FormatR64G64B64A64Sfloat:       "R64G64B64A64_SFLOAT",
	FormatB10G11R11UfloatPack32:    "B10G11R11_UFLOAT_PACK32",
	FormatE5B9G9R9UfloatPack32:     "E5B9G9R9_UFLOAT_PACK32",
	FormatD16Unorm:                 "D16_UNORM",
	FormatX8D24UnormPack32:         "X8_D24_UNORM_PACK32",
	FormatD32Sfloat:                "D32_SFLOAT",
	FormatS8Uint:                   "S8_UINT",
	FormatD16UnormS8Uint:           "D16_UNORM_S8_UINT",
	FormatD24UnormS8Uint:           "D24_UNORM_S8_UINT",
	FormatD32SfloatS8Uint:          "D32_SFLOAT_S8_UINT",
	FormatBC1RGBUnormBlock:         "BC1_RGB_UNORM_BLOCK",
	FormatBC1RGBSrgbBlock:          "BC1_RGB_SRGB_BLOCK",
	FormatBC1RGBAUnormBlock:        "BC1_RGBA_UNORM_BLOCK",
	FormatBC1RGBASrgbBlock:         "BC1_RGBA_SRGB_BLOCK",
	FormatBC2UnormBlock:            "BC2_UNORM_BLOCK",
	FormatBC2SrgbBlock:             "BC2_SRGB_BLOCK",
	FormatBC3UnormBlock:            "BC3_UNORM_BLOCK",
	FormatBC3SrgbBlock:             "BC3_SRGB_BLOCK",
	FormatBC4UnormBlock:            "BC4_UNORM_BLOCK",
	FormatBC4SnormBlock:            "BC4_SNORM_BLOCK",
	FormatBC5UnormBlock:            "BC5_UNORM_BLOCK",
	FormatBC5SnormBlock:            "BC5_SNORM_BLOCK",
	FormatBC6HUfloatBlock:          "BC6H_UFLOAT_BLOCK",
	FormatBC6HSfloatBlock:          "BC6H_SFLOAT_BLOCK",
	FormatBC7UnormBlock:            "BC7_UNORM_BLOCK",
	FormatBC7SrgbBlock:             "BC7_SRGB_BLOCK",
	FormatETC2R8G8B8UnormBlock:     "ETC2_R8G8B8_UNORM_BLOCK",
	FormatETC2R8G8B8SrgbBlock:      "ETC2_R8G8B8_SRGB_BLOCK",
	FormatETC2R8G8B8A1UnormBlock:   "ETC2_R8G8B8A1_UNORM_BLOCK",
	FormatETC2R8G8B8A1SrgbBlock:    "ETC2_R8G8B8A1_SRGB_BLOCK",
	FormatETC2R8G8B8A8UnormBlock:   "ETC2_R8G8B8A8_UNORM_BLOCK",
	FormatETC2R8G8B8A8SrgbBlock:    "ETC2_R8G8B8A8_SRGB_BLOCK",
	FormatEACR11UnormBlock:         "EAC_R11_UNORM_BLOCK",
	FormatEACR11SnormBlock:         "EAC_R11_SNORM_BLOCK",
	FormatEACR11G11UnormBlock:      "EAC_R11G11_UNORM_BLOCK",
	FormatEACR11G11SnormBlock:      "EAC_R11G11_SNORM_BLOCK",
	FormatASTC4x4UnormBlock:        "ASTC_4x4_UNORM_BLOCK",
	FormatASTC4x4SrgbBlock:         "ASTC_4x4_SRGB_BLOCK",
	FormatASTC5x4UnormBlock:        "ASTC_5x4_UNORM_BLOCK",
	FormatASTC5x4SrgbBlock:         "ASTC_5x4_SRGB_BLOCK",
	FormatASTC5x5UnormBlock:        "ASTC_5x5_UNORM_BLOCK",
	FormatASTC5x5SrgbBlock:         "ASTC_5x5_SRGB_BLOCK",
	FormatASTC6x5UnormBlock:        "ASTC_6x5_UNORM_BLOCK",
	FormatASTC6x5SrgbBlock:         "ASTC_6x5_SRGB_BLOCK",
	FormatASTC6x6UnormBlock:        "ASTC_6x6_UNORM_BLOCK",
	FormatASTC6x6SrgbBlock:         "ASTC_6x6_SRGB_BLOCK",
	FormatASTC8x5UnormBlock:        "ASTC_8x5_UNORM_BLOCK",
	FormatASTC8x5SrgbBlock:         "ASTC_8x5_SRGB_BLOCK",
	FormatASTC8x6UnormBlock:        "ASTC_8x6_UNORM_BLOCK",
	FormatASTC8x6SrgbBlock:         "ASTC_8x6_SRGB_BLOCK",
	FormatASTC8x8UnormBlock:        "ASTC_8x8_UNORM_BLOCK",
	FormatASTC8x8SrgbBlock:         "ASTC_8x8_SRGB_BLOCK",
	FormatASTC10x5UnormBlock:       "ASTC_10x5_UNORM_BLOCK",
	FormatASTC10x5SrgbBlock:        "ASTC_10x5_SRGB_BLOCK",
	FormatASTC10x6UnormBlock:       "ASTC_10x6_UNORM_BLOCK",
	FormatASTC10x6SrgbBlock:        "ASTC_10x6_SRGB_BLOCK",
	FormatASTC10x8UnormBlock:       "ASTC_10x8_UNORM_BLOCK",
	FormatASTC10x8SrgbBlock:        "ASTC_10x8_SRGB_BLOCK",
	FormatASTC10x10UnormBlock:      "ASTC_10x10_UNORM_BLOCK",
	FormatASTC10x10SrgbBlock:       "ASTC_10x10_SRGB_BLOCK",
	FormatASTC12x10UnormBlock:      "ASTC_12x10_UNORM_BLOCK",
	FormatASTC12x10SrgbBlock:       "ASTC_12x10_SRGB_BLOCK",
	FormatASTC12x12UnormBlock:      "ASTC_12x12_UNORM_BLOCK",
	FormatASTC12x12SrgbBlock:       "ASTC_12x12_SRGB_BLOCK",
}

func (f Format) String() string {
	if f < FormatCount {
		return formatNames[f]
	}

	return "Format(" + strconv.FormatUint(uint64(f), 10) + ")"
}

// ParseFormat accepts a format name with or without the VK_FORMAT_ prefix,
// case insensitive, or a decimal code.
func ParseFormat(s string) (Format, error) {
	if x, err := strconv.ParseUint(s, 0, 32); err == nil {
		return Format(x), nil
	}

	n := strings.TrimPrefix(strings.ToUpper(s), "VK_FORMAT_")

	for f, name := range formatNames {
		if name == n {
			return Format(f), nil
		}
	}

	return 0, errors.New("unknown format: %q", s)
}

func (f *Format) UnmarshalYAML(n *yaml.Node) (err error) {
	*f, err = ParseFormat(n.Value)
	if err != nil {
		return errors.Wrap(err, "line %d", n.Line)
	}

	return nil
}
