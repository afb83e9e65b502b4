// Package dump renders generator configuration as indented text.
package dump

import (
	"context"

	"github.com/nikandfor/hacked/hfmt"
	"tlog.app/go/errors"

	"github.com/slowlang/pipestate/compiler/ir"
	"github.com/slowlang/pipestate/compiler/resource"
)

func Format(ctx context.Context, b []byte, x any) ([]byte, error) {
	return format(ctx, b, x, 0)
}

func format(ctx context.Context, b []byte, x any, d int) ([]byte, error) {
	switch x := x.(type) {
	case *ir.Config:
		return formatConfig(ctx, b, x, d)
	case resource.Table:
		return formatNodes(ctx, b, x.Root, d)
	case []ir.ResourceNode:
		return formatNodes(ctx, b, x, d)
	default:
		return nil, errors.New("unsupported type: %T", x)
	}
}

func formatConfig(ctx context.Context, b []byte, x *ir.Config, d int) (_ []byte, err error) {
	b = app(b, d, "stages")

	for s := ir.ShaderStage(0); s < ir.ShaderStageCount; s++ {
		if x.HasStage(s) {
			b = app(b, 0, " %v", s)
		}
	}

	b = append(b, '\n')

	b = formatOptions(b, &x.Options, d)

	for s := ir.ShaderStage(0); s < ir.ShaderStageCount; s++ {
		if !x.HasStage(s) {
			continue
		}

		b = app(b, d, "shader %v {\n", s)
		b = formatShaderOptions(b, &x.ShaderOptions[s], d+1)
		b = app(b, d, "}\n")
	}

	b = app(b, d, "device_index %d\n", x.DeviceIndex)

	if len(x.UserDataNodes) != 0 {
		b = app(b, d, "user_data {\n")

		b, err = formatNodes(ctx, b, x.UserDataNodes, d+1)
		if err != nil {
			return nil, errors.Wrap(err, "user data")
		}

		b = app(b, d, "}\n")
	}

	for _, v := range x.VertexInputs {
		b = app(b, d, "vertex_input location %d binding %d offset %d stride %d format %v/%v rate %v\n",
			v.Location, v.Binding, v.Offset, v.Stride, v.Dfmt, v.Nfmt, v.InputRate)
	}

	for i, f := range x.ColorExportFormats {
		if f.Dfmt == ir.BufDataFormatInvalid {
			continue
		}

		b = app(b, d, "color_export %d format %v/%v blend %v src_alpha_to_color %v\n", i, f.Dfmt, f.Nfmt, f.BlendEnable, f.BlendSrcAlphaToColor)
	}

	if !x.HasStage(ir.ShaderStageCompute) {
		cb := &x.ColorExportState
		ia := &x.InputAssembly
		rs := &x.Rasterizer

		b = app(b, d, "color_export_state alpha_to_coverage %v dual_source_blend %v\n", cb.AlphaToCoverageEnable, cb.DualSourceBlendEnable)
		b = app(b, d, "input_assembly topology %d patch_control_points %d disable_vertex_reuse %v switch_winding %v multi_view %v\n",
			ia.Topology, ia.PatchControlPoints, ia.DisableVertexReuse, ia.SwitchWinding, ia.EnableMultiView)
		b = app(b, d, "viewport depth_clip %v\n", x.Viewport.DepthClipEnable)
		b = app(b, d, "rasterizer discard %v inner_coverage %v per_sample_shading %v samples %d pattern %d clip_planes %#x\n",
			rs.RasterizerDiscardEnable, rs.InnerCoverage, rs.PerSampleShading, rs.NumSamples, rs.SamplePatternIdx, rs.UsrClipPlaneMask)
		b = app(b, d+1, "polygon_mode %d cull_mode %d front_face_cw %v depth_bias %v\n",
			rs.PolygonMode, rs.CullMode, rs.FrontFaceClockwise, rs.DepthBiasEnable)
	}

	return b, nil
}

func formatOptions(b []byte, x *ir.Options, d int) []byte {
	b = app(b, d, "hash %016x %016x\n", x.Hash[0], x.Hash[1])
	b = app(b, d, "include_disassembly %v include_ir %v reconfig_workgroup_layout %v\n", x.IncludeDisassembly, x.IncludeIr, x.ReconfigWorkgroupLayout)
	b = app(b, d, "shadow_descriptor_table %d ptr_high %#x\n", x.ShadowDescriptorTableUsage, x.ShadowDescriptorTablePtrHigh)

	if x.NggFlags != 0 {
		b = app(b, d, "ngg flags %#x backface_exponent %d sizing %d verts %d prims %d\n",
			x.NggFlags, x.NggBackfaceExponent, x.NggSubgroupSizing, x.NggVertsPerSubgroup, x.NggPrimsPerSubgroup)
	}

	return b
}

func formatShaderOptions(b []byte, x *ir.ShaderOptions, d int) []byte {
	b = app(b, d, "hash %016x %016x\n", x.Hash[0], x.Hash[1])
	b = app(b, d, "vgpr %d sgpr %d max_thread_groups %d\n", x.VgprLimit, x.SgprLimit, x.MaxThreadGroupsPerComputeUnit)
	b = app(b, d, "wave_size %d subgroup_size %d wgp %v wave_break %d\n", x.WaveSize, x.SubgroupSize, x.WgpMode, x.WaveBreakSize)
	b = app(b, d, "scalar_threshold %d unroll_threshold %d si_scheduler %v\n", x.LoadScalarizerThreshold, x.UnrollThreshold, x.UseSiScheduler)

	if x.TrapPresent || x.DebugMode || x.AllowReZ || x.UpdateDescInElf {
		b = app(b, d, "trap %v debug %v allow_rez %v update_desc_in_elf %v\n", x.TrapPresent, x.DebugMode, x.AllowReZ, x.UpdateDescInElf)
	}

	return b
}

func formatNodes(ctx context.Context, b []byte, x []ir.ResourceNode, d int) (_ []byte, err error) {
	for i := range x {
		n := &x[i]

		b = app(b, d, "%v offset %d size %d", n.Type, n.OffsetInDwords, n.SizeInDwords)

		switch {
		case n.Type == ir.DescriptorTableVaPtr:
			b = append(b, " {\n"...)

			b, err = formatNodes(ctx, b, n.InnerTable, d+1)
			if err != nil {
				return nil, errors.Wrap(err, "node %d", i)
			}

			b = app(b, d, "}\n")

			continue
		case n.Type == ir.IndirectUserDataVaPtr, n.Type == ir.StreamOutTableVaPtr:
			b = app(b, 0, " indirect %d", n.IndirectSizeInDwords)
		case n.Type.IsDescriptor() && n.Type != ir.PushConst:
			b = app(b, 0, " set %d binding %d", n.Set, n.Binding)
		case n.Type == ir.PushConst:
		default:
			return nil, errors.New("node %d: unsupported type: %v", i, n.Type)
		}

		if n.ImmutableValue != nil {
			b = app(b, 0, " immutable %d x %d %x", len(n.ImmutableValue)/n.ImmutableStride, n.ImmutableStride, n.ImmutableValue)
		}

		b = append(b, '\n')
	}

	return b, nil
}

func app(b []byte, d int, f string, args ...any) []byte {
	for i := 0; i < d; i++ {
		b = append(b, '\t')
	}

	b = hfmt.Appendf(b, f, args...)
	return b
}
