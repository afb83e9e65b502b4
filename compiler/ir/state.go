package ir

import "strconv"

type (
	NggFlag uint32

	NggSubgroupSizing uint32

	WaveBreak uint32

	ShadowDescriptorTableUsage uint32

	Options struct {
		Hash [2]uint64

		IncludeDisassembly      bool
		ReconfigWorkgroupLayout bool
		IncludeIr               bool

		ShadowDescriptorTableUsage   ShadowDescriptorTableUsage
		ShadowDescriptorTablePtrHigh uint32

		// Meaningful only for GFX10+ graphics pipelines.
		NggFlags            NggFlag
		NggBackfaceExponent uint32
		NggSubgroupSizing   NggSubgroupSizing
		NggVertsPerSubgroup uint32
		NggPrimsPerSubgroup uint32
	}

	ShaderOptions struct {
		Hash [2]uint64

		TrapPresent bool
		DebugMode   bool
		AllowReZ    bool

		VgprLimit                     uint32
		SgprLimit                     uint32
		MaxThreadGroupsPerComputeUnit uint32

		WaveSize      uint32
		WgpMode       bool
		SubgroupSize  uint32
		WaveBreakSize WaveBreak

		LoadScalarizerThreshold uint32

		UseSiScheduler  bool
		UpdateDescInElf bool
		UnrollThreshold uint32
	}

	PrimitiveTopology uint32
	PolygonMode       uint32
	CullModeFlags     uint32

	InputAssemblyState struct {
		Topology           PrimitiveTopology
		PatchControlPoints uint32
		DisableVertexReuse bool
		SwitchWinding      bool
		EnableMultiView    bool
	}

	ViewportState struct {
		DepthClipEnable bool
	}

	RasterizerState struct {
		RasterizerDiscardEnable bool
		InnerCoverage           bool
		PerSampleShading        bool
		NumSamples              uint32
		SamplePatternIdx        uint32
		UsrClipPlaneMask        uint8
		PolygonMode             PolygonMode
		CullMode                CullModeFlags
		FrontFaceClockwise      bool
		DepthBiasEnable         bool
	}

	// VertexInputRate is VertexInputRateVertex, VertexInputRateNone,
	// VertexInputRateInstance or an instance divisor.
	VertexInputRate uint32

	VertexInputDescription struct {
		Location  uint32
		Binding   uint32
		Offset    uint32
		Stride    uint32
		Dfmt      BufDataFormat
		Nfmt      BufNumFormat
		InputRate VertexInputRate
	}

	// ColorExportFormat with Dfmt == BufDataFormatInvalid is an unused target.
	ColorExportFormat struct {
		Dfmt                 BufDataFormat
		Nfmt                 BufNumFormat
		BlendEnable          bool
		BlendSrcAlphaToColor bool
	}

	ColorExportState struct {
		AlphaToCoverageEnable bool
		DualSourceBlendEnable bool
	}
)

const (
	NggFlagDisable NggFlag = 1 << iota
	NggFlagEnableGsUse
	NggFlagForceNonPassthrough
	NggFlagDontAlwaysUsePrimShaderTable
	NggFlagCompactSubgroup
	NggFlagEnableFastLaunch
	NggFlagEnableVertexReuse
	NggFlagEnableBackfaceCulling
	NggFlagEnableFrustumCulling
	NggFlagEnableBoxFilterCulling
	NggFlagEnableSphereCulling
	NggFlagEnableSmallPrimFilter
	NggFlagEnableCullDistanceCulling
)

const (
	NggSubgroupSizingAuto NggSubgroupSizing = iota
	NggSubgroupSizingMaximumSize
	NggSubgroupSizingHalfSize
	NggSubgroupSizingOptimizeForVerts
	NggSubgroupSizingOptimizeForPrims
	NggSubgroupSizingExplicit
)

const (
	WaveBreakNone WaveBreak = iota
	WaveBreak8x8
	WaveBreak16x16
	WaveBreak32x32
	WaveBreakDrawTime
)

const (
	ShadowDescriptorTableAuto ShadowDescriptorTableUsage = iota
	ShadowDescriptorTableEnable
	ShadowDescriptorTableDisable
)

// Topology, polygon mode and cull mode share Vulkan numbering.
const (
	PrimitiveTopologyPointList PrimitiveTopology = iota
	PrimitiveTopologyLineList
	PrimitiveTopologyLineStrip
	PrimitiveTopologyTriangleList
	PrimitiveTopologyTriangleStrip
	PrimitiveTopologyTriangleFan
	PrimitiveTopologyLineListWithAdjacency
	PrimitiveTopologyLineStripWithAdjacency
	PrimitiveTopologyTriangleListWithAdjacency
	PrimitiveTopologyTriangleStripWithAdjacency
	PrimitiveTopologyPatchList
)

const (
	PolygonModeFill PolygonMode = iota
	PolygonModeLine
	PolygonModePoint
)

const (
	CullModeNone  CullModeFlags = 0
	CullModeFront CullModeFlags = 1
	CullModeBack  CullModeFlags = 2
)

const (
	VertexInputRateVertex   VertexInputRate = ^VertexInputRate(0)
	VertexInputRateNone     VertexInputRate = 0
	VertexInputRateInstance VertexInputRate = 1
)

const MaxColorTargets = 8

func (r VertexInputRate) String() string {
	switch r {
	case VertexInputRateVertex:
		return "vertex"
	case VertexInputRateNone:
		return "none"
	case VertexInputRateInstance:
		return "instance"
	}

	return "divisor " + strconv.FormatUint(uint64(r), 10)
}
