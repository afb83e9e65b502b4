package webgpu

import (
	"context"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slowlang/pipestate/compiler/api"
	"github.com/slowlang/pipestate/compiler/format"
	"github.com/slowlang/pipestate/compiler/ir"
	"github.com/slowlang/pipestate/compiler/pipeline"
)

func testPipeline() *Pipeline {
	blend := gputypes.BlendStatePremultiplied()

	return &Pipeline{
		Vertex:   &api.ShaderModuleData{Hash: api.Hash128{1, 2}},
		Fragment: &api.ShaderModuleData{Hash: api.Hash128{3, 4}},
		BindGroups: [][]gputypes.BindGroupLayoutEntry{
			{
				{
					Binding:    0,
					Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
					Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
				},
				{
					Binding:    1,
					Visibility: gputypes.ShaderStageFragment,
					Texture: &gputypes.TextureBindingLayout{
						SampleType:    gputypes.TextureSampleTypeFloat,
						ViewDimension: gputypes.TextureViewDimension2D,
					},
				},
				{
					Binding:    2,
					Visibility: gputypes.ShaderStageFragment,
					Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
				},
			},
			{
				{
					Binding:    3,
					Visibility: gputypes.ShaderStageVertex,
					Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeReadOnlyStorage},
				},
			},
		},
		Buffers: []gputypes.VertexBufferLayout{
			{
				ArrayStride: 16,
				StepMode:    gputypes.VertexStepModeVertex,
				Attributes: []gputypes.VertexAttribute{
					{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
					{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1},
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeBack,
		},
		Targets: []gputypes.ColorTargetState{
			{Format: gputypes.TextureFormatBGRA8Unorm, Blend: &blend, WriteMask: gputypes.ColorWriteMaskAll},
			{Format: gputypes.TextureFormatDepth24PlusStencil8},
		},
	}
}

func TestUserDataNodes(t *testing.T) {
	nodes := UserDataNodes(testPipeline().BindGroups)
	require.Len(t, nodes, 2)

	assert.Equal(t, api.DescriptorTableVaPtr, nodes[0].Type)
	assert.Equal(t, uint32(1), nodes[1].OffsetInDwords)

	assert.Equal(t, []api.ResourceMappingNode{
		{Type: api.DescriptorBuffer, SizeInDwords: 4, OffsetInDwords: 0, SrdRange: api.SrdRange{Set: 0, Binding: 0}},
		{Type: api.DescriptorResource, SizeInDwords: 8, OffsetInDwords: 4, SrdRange: api.SrdRange{Set: 0, Binding: 1}},
		{Type: api.DescriptorSampler, SizeInDwords: 4, OffsetInDwords: 12, SrdRange: api.SrdRange{Set: 0, Binding: 2}},
	}, nodes[0].TablePtr)

	assert.Equal(t, []api.ResourceMappingNode{
		{Type: api.DescriptorBuffer, SizeInDwords: 4, SrdRange: api.SrdRange{Set: 1, Binding: 3}},
	}, nodes[1].TablePtr)

	assert.Nil(t, UserDataNodes(nil))
}

func TestVertexFormat(t *testing.T) {
	for _, tc := range []struct {
		f  gputypes.VertexFormat
		vk api.Format
	}{
		{gputypes.VertexFormatUint8x2, api.FormatR8G8Uint},
		{gputypes.VertexFormatUint8x4, api.FormatR8G8B8A8Uint},
		{gputypes.VertexFormatSint8x2, api.FormatR8G8Sint},
		{gputypes.VertexFormatSint8x4, api.FormatR8G8B8A8Sint},
		{gputypes.VertexFormatUnorm8x2, api.FormatR8G8Unorm},
		{gputypes.VertexFormatUnorm8x4, api.FormatR8G8B8A8Unorm},
		{gputypes.VertexFormatSnorm8x2, api.FormatR8G8Snorm},
		{gputypes.VertexFormatSnorm8x4, api.FormatR8G8B8A8Snorm},
		{gputypes.VertexFormatUint16x2, api.FormatR16G16Uint},
		{gputypes.VertexFormatUint16x4, api.FormatR16G16B16A16Uint},
		{gputypes.VertexFormatSint16x2, api.FormatR16G16Sint},
		{gputypes.VertexFormatSint16x4, api.FormatR16G16B16A16Sint},
		{gputypes.VertexFormatUnorm16x2, api.FormatR16G16Unorm},
		{gputypes.VertexFormatUnorm16x4, api.FormatR16G16B16A16Unorm},
		{gputypes.VertexFormatSnorm16x2, api.FormatR16G16Snorm},
		{gputypes.VertexFormatSnorm16x4, api.FormatR16G16B16A16Snorm},
		{gputypes.VertexFormatFloat16x2, api.FormatR16G16Sfloat},
		{gputypes.VertexFormatFloat16x4, api.FormatR16G16B16A16Sfloat},
		{gputypes.VertexFormatFloat32, api.FormatR32Sfloat},
		{gputypes.VertexFormatFloat32x2, api.FormatR32G32Sfloat},
		{gputypes.VertexFormatFloat32x3, api.FormatR32G32B32Sfloat},
		{gputypes.VertexFormatFloat32x4, api.FormatR32G32B32A32Sfloat},
		{gputypes.VertexFormatUint32, api.FormatR32Uint},
		{gputypes.VertexFormatUint32x2, api.FormatR32G32Uint},
		{gputypes.VertexFormatUint32x3, api.FormatR32G32B32Uint},
		{gputypes.VertexFormatUint32x4, api.FormatR32G32B32A32Uint},
		{gputypes.VertexFormatSint32, api.FormatR32Sint},
		{gputypes.VertexFormatSint32x2, api.FormatR32G32Sint},
		{gputypes.VertexFormatSint32x3, api.FormatR32G32B32Sint},
		{gputypes.VertexFormatSint32x4, api.FormatR32G32B32A32Sint},
	} {
		assert.Equal(t, tc.vk, VertexFormat(tc.f), "%v", tc.f)

		e, ok := format.Get(tc.vk)
		require.True(t, ok)
		assert.True(t, e.Vertex, "%v", tc.vk)
	}
}

func TestTextureFormat(t *testing.T) {
	for _, tc := range []struct {
		f     gputypes.TextureFormat
		vk    api.Format
		color bool
	}{
		{gputypes.TextureFormatR8Unorm, api.FormatR8Unorm, true},
		{gputypes.TextureFormatR8Snorm, api.FormatR8Snorm, true},
		{gputypes.TextureFormatR8Uint, api.FormatR8Uint, true},
		{gputypes.TextureFormatR8Sint, api.FormatR8Sint, true},
		{gputypes.TextureFormatR16Uint, api.FormatR16Uint, true},
		{gputypes.TextureFormatR16Sint, api.FormatR16Sint, true},
		{gputypes.TextureFormatR16Float, api.FormatR16Sfloat, true},
		{gputypes.TextureFormatRG8Unorm, api.FormatR8G8Unorm, true},
		{gputypes.TextureFormatRG8Snorm, api.FormatR8G8Snorm, true},
		{gputypes.TextureFormatRG8Uint, api.FormatR8G8Uint, true},
		{gputypes.TextureFormatRG8Sint, api.FormatR8G8Sint, true},
		{gputypes.TextureFormatR32Uint, api.FormatR32Uint, true},
		{gputypes.TextureFormatR32Sint, api.FormatR32Sint, true},
		{gputypes.TextureFormatR32Float, api.FormatR32Sfloat, true},
		{gputypes.TextureFormatRG16Uint, api.FormatR16G16Uint, true},
		{gputypes.TextureFormatRG16Sint, api.FormatR16G16Sint, true},
		{gputypes.TextureFormatRG16Float, api.FormatR16G16Sfloat, true},
		{gputypes.TextureFormatRGBA8Unorm, api.FormatR8G8B8A8Unorm, true},
		{gputypes.TextureFormatRGBA8UnormSrgb, api.FormatR8G8B8A8Srgb, true},
		{gputypes.TextureFormatRGBA8Snorm, api.FormatR8G8B8A8Snorm, true},
		{gputypes.TextureFormatRGBA8Uint, api.FormatR8G8B8A8Uint, true},
		{gputypes.TextureFormatRGBA8Sint, api.FormatR8G8B8A8Sint, true},
		{gputypes.TextureFormatBGRA8Unorm, api.FormatB8G8R8A8Unorm, true},
		{gputypes.TextureFormatBGRA8UnormSrgb, api.FormatB8G8R8A8Srgb, true},
		{gputypes.TextureFormatRGB10A2Uint, api.FormatA2B10G10R10UintPack32, true},
		{gputypes.TextureFormatRGB10A2Unorm, api.FormatA2B10G10R10UnormPack32, true},
		{gputypes.TextureFormatRG11B10Ufloat, api.FormatB10G11R11UfloatPack32, true},
		{gputypes.TextureFormatRGB9E5Ufloat, api.FormatE5B9G9R9UfloatPack32, true},
		{gputypes.TextureFormatRG32Uint, api.FormatR32G32Uint, true},
		{gputypes.TextureFormatRG32Sint, api.FormatR32G32Sint, true},
		{gputypes.TextureFormatRG32Float, api.FormatR32G32Sfloat, true},
		{gputypes.TextureFormatRGBA16Uint, api.FormatR16G16B16A16Uint, true},
		{gputypes.TextureFormatRGBA16Sint, api.FormatR16G16B16A16Sint, true},
		{gputypes.TextureFormatRGBA16Float, api.FormatR16G16B16A16Sfloat, true},
		{gputypes.TextureFormatRGBA32Uint, api.FormatR32G32B32A32Uint, true},
		{gputypes.TextureFormatRGBA32Sint, api.FormatR32G32B32A32Sint, true},
		{gputypes.TextureFormatRGBA32Float, api.FormatR32G32B32A32Sfloat, true},
		{gputypes.TextureFormatDepth16Unorm, api.FormatD16Unorm, true},
		{gputypes.TextureFormatDepth32Float, api.FormatD32Sfloat, true},
		{gputypes.TextureFormatDepth24PlusStencil8, api.FormatD24UnormS8Uint, false},
	} {
		assert.Equal(t, tc.vk, TextureFormat(tc.f), "%v", tc.f)

		e, ok := format.Get(tc.vk)
		require.True(t, ok)
		assert.Equal(t, tc.color, e.Color, "%v", tc.vk)
	}

	assert.Equal(t, api.FormatUndefined, TextureFormat(gputypes.TextureFormatUndefined))
}

func TestParseFormatNames(t *testing.T) {
	for _, e := range vertexFormats {
		f, err := ParseVertexFormat(e.name)
		require.NoError(t, err)
		assert.Equal(t, e.f, f, e.name)
	}

	for _, e := range textureFormats {
		f, err := ParseTextureFormat(e.name)
		require.NoError(t, err)
		assert.Equal(t, e.f, f, e.name)
	}

	_, err := ParseVertexFormat("float64")
	assert.Error(t, err)

	_, err = ParseTextureFormat("")
	assert.Error(t, err)
}

func TestPrimitive(t *testing.T) {
	for _, tc := range []struct {
		in gputypes.PrimitiveTopology
		ia api.PrimitiveTopology
	}{
		{gputypes.PrimitiveTopologyPointList, api.PrimitiveTopologyPointList},
		{gputypes.PrimitiveTopologyLineList, api.PrimitiveTopologyLineList},
		{gputypes.PrimitiveTopologyLineStrip, api.PrimitiveTopologyLineStrip},
		{gputypes.PrimitiveTopologyTriangleList, api.PrimitiveTopologyTriangleList},
		{gputypes.PrimitiveTopologyTriangleStrip, api.PrimitiveTopologyTriangleStrip},
	} {
		ia, _ := Primitive(gputypes.PrimitiveState{Topology: tc.in})
		assert.Equal(t, tc.ia, ia.Topology, "%v", tc.in)
	}

	_, rs := Primitive(gputypes.PrimitiveState{CullMode: gputypes.CullModeFront, FrontFace: gputypes.FrontFaceCW})
	assert.Equal(t, api.CullModeFront, rs.CullMode)
	assert.Equal(t, api.FrontFaceClockwise, rs.FrontFace)
	assert.Equal(t, uint32(1), rs.NumSamples)

	_, rs = Primitive(gputypes.PrimitiveState{FrontFace: gputypes.FrontFaceCCW})
	assert.Equal(t, api.CullModeNone, rs.CullMode)
	assert.Equal(t, api.FrontFaceCounterClockwise, rs.FrontFace)
}

func TestDescriptionPipeline(t *testing.T) {
	d := Description{
		BindGroups: [][]BindingDesc{{{Binding: 4, Type: "storage"}, {Binding: 5, Type: "read-only-storage"}}},
		Buffers: []BufferDesc{{
			Stride:     12,
			StepMode:   "instance",
			Attributes: []AttributeDesc{{Location: 2, Offset: 4, Format: "sint16x2"}},
		}},
		Primitive: PrimitiveDesc{Topology: "triangle-strip", CullMode: "back"},
		Targets:   []TargetDesc{{Format: "rgba8unorm-srgb"}, {Format: "rg16float", Blend: true}},
	}

	md := &api.ShaderModuleData{Hash: api.Hash128{1, 2}}

	p, err := d.Pipeline(md, nil)
	require.NoError(t, err)

	assert.Same(t, md, p.Vertex)
	assert.Nil(t, p.Fragment)

	require.Len(t, p.BindGroups, 1)
	require.Len(t, p.BindGroups[0], 2)
	assert.Equal(t, gputypes.BufferBindingTypeStorage, p.BindGroups[0][0].Buffer.Type)
	assert.Equal(t, gputypes.BufferBindingTypeReadOnlyStorage, p.BindGroups[0][1].Buffer.Type)
	assert.Equal(t, uint32(5), p.BindGroups[0][1].Binding)

	require.Len(t, p.Buffers, 1)
	assert.Equal(t, gputypes.VertexStepModeInstance, p.Buffers[0].StepMode)
	assert.Equal(t, []gputypes.VertexAttribute{{Format: gputypes.VertexFormatSint16x2, Offset: 4, ShaderLocation: 2}}, p.Buffers[0].Attributes)

	assert.Equal(t, gputypes.PrimitiveTopologyTriangleStrip, p.Primitive.Topology)
	assert.Equal(t, gputypes.CullModeBack, p.Primitive.CullMode)

	require.Len(t, p.Targets, 2)
	assert.Nil(t, p.Targets[0].Blend)
	assert.NotNil(t, p.Targets[1].Blend)

	g, stages := BuildInfo(context.Background(), p)
	assert.Equal(t, api.ShaderStageVertex.Mask(), stages)
	assert.Equal(t, api.FormatR16G16Sfloat, g.CbState.Target[1].Format)
	assert.True(t, g.CbState.Target[1].BlendEnable)
	assert.Equal(t, api.PrimitiveTopologyTriangleStrip, g.IaState.Topology)
}

func TestAssemble(t *testing.T) {
	ctx := context.Background()

	g, stages := BuildInfo(ctx, testPipeline())
	assert.Equal(t, api.ShaderStageVertex.Mask()|api.ShaderStageFragment.Mask(), stages)

	c := &pipeline.Context{
		GfxIP:    api.GfxIPVersion{Major: 10, Minor: 3},
		Stages:   stages,
		Graphics: g,
		Defaults: pipeline.DefaultDefaults(),
	}

	cfg, err := pipeline.Assemble(ctx, c)
	require.NoError(t, err)

	assert.Equal(t, [2]uint64{1 ^ 2, 0}, cfg.ShaderOptions[ir.ShaderStageVertex].Hash)
	assert.Equal(t, [2]uint64{3 ^ 4, 0}, cfg.ShaderOptions[ir.ShaderStageFragment].Hash)

	require.Len(t, cfg.UserDataNodes, 2)
	assert.Len(t, cfg.UserDataNodes[0].InnerTable, 3)
	assert.Len(t, cfg.UserDataNodes[1].InnerTable, 1)

	assert.Equal(t, []ir.VertexInputDescription{
		{Location: 0, Binding: 0, Offset: 0, Stride: 16, Dfmt: ir.BufDataFormat32_32, Nfmt: ir.BufNumFormatFloat, InputRate: ir.VertexInputRateVertex},
		{Location: 1, Binding: 0, Offset: 8, Stride: 16, Dfmt: ir.BufDataFormat32_32, Nfmt: ir.BufNumFormatFloat, InputRate: ir.VertexInputRateVertex},
	}, cfg.VertexInputs)

	// depth-stencil is not a color export format
	assert.Equal(t, []ir.ColorExportFormat{
		{Dfmt: ir.BufDataFormat8_8_8_8_Bgra, Nfmt: ir.BufNumFormatUnorm, BlendEnable: true},
	}, cfg.ColorExportFormats)

	assert.Equal(t, ir.PrimitiveTopologyTriangleList, cfg.InputAssembly.Topology)
	assert.Equal(t, ir.CullModeBack, cfg.Rasterizer.CullMode)
	assert.False(t, cfg.Rasterizer.FrontFaceClockwise)
	assert.Equal(t, uint32(1), cfg.Rasterizer.NumSamples)
}

func TestDescriptionDefaults(t *testing.T) {
	p, err := (&Description{}).Pipeline(nil, nil)
	require.NoError(t, err)

	assert.Equal(t, gputypes.PrimitiveTopologyTriangleList, p.Primitive.Topology)

	g, stages := BuildInfo(context.Background(), p)
	assert.Equal(t, api.StageMask(0), stages)
	assert.Equal(t, api.PrimitiveTopologyTriangleList, g.IaState.Topology)
	assert.Nil(t, g.VertexInput)
}
