package api

import (
	"gopkg.in/yaml.v3"
	"tlog.app/go/errors"
)

type (
	// Hash128 is a 128-bit content digest as two little-endian qwords.
	Hash128 [2]uint64

	ShaderHash struct {
		Lower uint64 `yaml:"lower"`
		Upper uint64 `yaml:"upper"`
	}

	ShaderModuleData struct {
		Hash Hash128 `yaml:"hash,flow"`
	}

	PipelineShaderOptions struct {
		ClientHash ShaderHash `yaml:"client_hash"`

		TrapPresent bool `yaml:"trap_present"`
		DebugMode   bool `yaml:"debug_mode"`
		AllowReZ    bool `yaml:"allow_rez"`

		VgprLimit                     uint32 `yaml:"vgpr_limit"`
		SgprLimit                     uint32 `yaml:"sgpr_limit"`
		MaxThreadGroupsPerComputeUnit uint32 `yaml:"max_thread_groups_per_cu"`

		WaveSize          uint32        `yaml:"wave_size"`
		WgpMode           bool          `yaml:"wgp_mode"`
		AllowVaryWaveSize bool          `yaml:"allow_vary_wave_size"`
		WaveBreakSize     WaveBreakSize `yaml:"wave_break_size"`

		EnableLoadScalarizer bool   `yaml:"enable_load_scalarizer"`
		ScalarThreshold      uint32 `yaml:"scalar_threshold"`

		UseSiScheduler  bool   `yaml:"use_si_scheduler"`
		UpdateDescInElf bool   `yaml:"update_desc_in_elf"`
		UnrollThreshold uint32 `yaml:"unroll_threshold"`
	}

	PipelineShaderInfo struct {
		ModuleData *ShaderModuleData `yaml:"module,omitempty"`
		EntryPoint string            `yaml:"entry,omitempty"`

		Options PipelineShaderOptions `yaml:"options"`

		UserDataNodes         []ResourceMappingNode  `yaml:"user_data_nodes"`
		DescriptorRangeValues []DescriptorRangeValue `yaml:"descriptor_range_values"`
	}

	PipelineOptions struct {
		IncludeDisassembly           bool                       `yaml:"include_disassembly"`
		ReconfigWorkgroupLayout      bool                       `yaml:"reconfig_workgroup_layout"`
		IncludeIr                    bool                       `yaml:"include_ir"`
		ShadowDescriptorTableUsage   ShadowDescriptorTableUsage `yaml:"shadow_descriptor_table_usage"`
		ShadowDescriptorTablePtrHigh uint32                     `yaml:"shadow_descriptor_table_ptr_high"`
	}

	NggState struct {
		EnableNgg                 bool                  `yaml:"enable"`
		EnableGsUse               bool                  `yaml:"enable_gs_use"`
		ForceNonPassthrough       bool                  `yaml:"force_non_passthrough"`
		AlwaysUsePrimShaderTable  bool                  `yaml:"always_use_prim_shader_table"`
		CompactMode               NggCompactMode        `yaml:"compact_mode"`
		EnableFastLaunch          bool                  `yaml:"enable_fast_launch"`
		EnableVertexReuse         bool                  `yaml:"enable_vertex_reuse"`
		EnableBackfaceCulling     bool                  `yaml:"enable_backface_culling"`
		EnableFrustumCulling      bool                  `yaml:"enable_frustum_culling"`
		EnableBoxFilterCulling    bool                  `yaml:"enable_box_filter_culling"`
		EnableSphereCulling       bool                  `yaml:"enable_sphere_culling"`
		EnableSmallPrimFilter     bool                  `yaml:"enable_small_prim_filter"`
		EnableCullDistanceCulling bool                  `yaml:"enable_cull_distance_culling"`
		BackfaceExponent          uint32                `yaml:"backface_exponent"`
		SubgroupSizing            NggSubgroupSizingType `yaml:"subgroup_sizing"`
		PrimsPerSubgroup          uint32                `yaml:"prims_per_subgroup"`
		VertsPerSubgroup          uint32                `yaml:"verts_per_subgroup"`
	}

	InputAssemblyState struct {
		Topology           PrimitiveTopology `yaml:"topology"`
		PatchControlPoints uint32            `yaml:"patch_control_points"`
		DeviceIndex        uint32            `yaml:"device_index"`
		DisableVertexReuse bool              `yaml:"disable_vertex_reuse"`
		SwitchWinding      bool              `yaml:"switch_winding"`
		EnableMultiView    bool              `yaml:"enable_multi_view"`
	}

	ViewportState struct {
		DepthClipEnable bool `yaml:"depth_clip_enable"`
	}

	RasterizerState struct {
		RasterizerDiscardEnable bool          `yaml:"discard"`
		InnerCoverage           bool          `yaml:"inner_coverage"`
		PerSampleShading        bool          `yaml:"per_sample_shading"`
		NumSamples              uint32        `yaml:"num_samples"`
		SamplePatternIdx        uint32        `yaml:"sample_pattern_idx"`
		UsrClipPlaneMask        uint8         `yaml:"usr_clip_plane_mask"`
		PolygonMode             PolygonMode   `yaml:"polygon_mode"`
		CullMode                CullModeFlags `yaml:"cull_mode"`
		FrontFace               FrontFace     `yaml:"front_face"`
		DepthBiasEnable         bool          `yaml:"depth_bias_enable"`
	}

	ColorTarget struct {
		BlendEnable          bool   `yaml:"blend_enable"`
		BlendSrcAlphaToColor bool   `yaml:"blend_src_alpha_to_color"`
		Format               Format `yaml:"format"`
	}

	ColorBlendState struct {
		AlphaToCoverageEnable bool                         `yaml:"alpha_to_coverage"`
		DualSourceBlendEnable bool                         `yaml:"dual_source_blend"`
		Target                [MaxColorTargets]ColorTarget `yaml:"targets"`
	}

	VertexInputBindingDescription struct {
		Binding   uint32          `yaml:"binding"`
		Stride    uint32          `yaml:"stride"`
		InputRate VertexInputRate `yaml:"input_rate"`
	}

	VertexInputAttributeDescription struct {
		Location uint32 `yaml:"location"`
		Binding  uint32 `yaml:"binding"`
		Format   Format `yaml:"format"`
		Offset   uint32 `yaml:"offset"`
	}

	VertexInputBindingDivisorDescription struct {
		Binding uint32 `yaml:"binding"`
		Divisor uint32 `yaml:"divisor"`
	}

	// VertexInputState is VkPipelineVertexInputStateCreateInfo with the
	// divisor extension structure folded in. Divisors is nil when the
	// extension is absent.
	VertexInputState struct {
		Bindings   []VertexInputBindingDescription        `yaml:"bindings"`
		Attributes []VertexInputAttributeDescription      `yaml:"attributes"`
		Divisors   []VertexInputBindingDivisorDescription `yaml:"divisors,omitempty"`
	}

	GraphicsPipelineBuildInfo struct {
		Stages [ShaderStageGfxCount]PipelineShaderInfo `yaml:"-"`

		VertexInput *VertexInputState `yaml:"vertex_input,omitempty"`

		IaState  InputAssemblyState `yaml:"ia"`
		VpState  ViewportState      `yaml:"vp"`
		RsState  RasterizerState    `yaml:"rs"`
		CbState  ColorBlendState    `yaml:"cb"`
		NggState NggState           `yaml:"ngg"`

		Options PipelineOptions `yaml:"options"`
	}

	ComputePipelineBuildInfo struct {
		DeviceIndex uint32             `yaml:"device_index"`
		Cs          PipelineShaderInfo `yaml:"-"`
		Options     PipelineOptions    `yaml:"options"`
	}

	PrimitiveTopology uint32
	PolygonMode       uint32
	CullModeFlags     uint32
	FrontFace         uint32
	VertexInputRate   uint32

	ShadowDescriptorTableUsage uint32
	NggSubgroupSizingType      uint32
	NggCompactMode             uint32
	WaveBreakSize              uint32
)

const MaxColorTargets = 8

// Vulkan enum values.
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

	CullModeFrontAndBack = CullModeFront | CullModeBack
)

const (
	FrontFaceCounterClockwise FrontFace = iota
	FrontFaceClockwise
)

const (
	VertexInputRateVertex VertexInputRate = iota
	VertexInputRateInstance
)

const (
	ShadowDescriptorTableAuto ShadowDescriptorTableUsage = iota
	ShadowDescriptorTableEnable
	ShadowDescriptorTableDisable
)

const (
	NggSubgroupSizingAuto NggSubgroupSizingType = iota
	NggSubgroupSizingMaximumSize
	NggSubgroupSizingHalfSize
	NggSubgroupSizingOptimizeForVerts
	NggSubgroupSizingOptimizeForPrims
	NggSubgroupSizingExplicit
)

const (
	NggCompactDisable NggCompactMode = iota
	NggCompactVertices
	NggCompactSubgroup
)

const (
	WaveBreakNone WaveBreakSize = iota
	WaveBreak8x8
	WaveBreak16x16
	WaveBreak32x32
	WaveBreakDrawTime
)

// Compact64 folds a 128-bit digest into 64 bits the way MetroHash does.
func (h Hash128) Compact64() uint64 {
	return h[0] ^ h[1]
}

func (h ShaderHash) IsZero() bool {
	return h.Lower == 0 && h.Upper == 0
}

// UnmarshalYAML takes up to MaxColorTargets targets, the rest stay unused.
func (s *ColorBlendState) UnmarshalYAML(n *yaml.Node) error {
	var x struct {
		AlphaToCoverageEnable bool          `yaml:"alpha_to_coverage"`
		DualSourceBlendEnable bool          `yaml:"dual_source_blend"`
		Targets               []ColorTarget `yaml:"targets"`
	}

	err := n.Decode(&x)
	if err != nil {
		return err
	}

	if len(x.Targets) > MaxColorTargets {
		return errors.New("line %d: %d color targets, max %d", n.Line, len(x.Targets), MaxColorTargets)
	}

	*s = ColorBlendState{
		AlphaToCoverageEnable: x.AlphaToCoverageEnable,
		DualSourceBlendEnable: x.DualSourceBlendEnable,
	}

	copy(s.Target[:], x.Targets)

	return nil
}
