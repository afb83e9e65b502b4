// Package webgpu describes pipelines given in WebGPU terms
// with the Vulkan-style build info the assembler takes.
package webgpu

import (
	"context"

	"github.com/gogpu/gputypes"
	"tlog.app/go/tlog"

	"github.com/slowlang/pipestate/compiler/api"
)

type (
	// Pipeline is a render pipeline as a WebGPU client sets it up.
	// Bind group i becomes descriptor set i.
	Pipeline struct {
		Vertex   *api.ShaderModuleData
		Fragment *api.ShaderModuleData

		BindGroups [][]gputypes.BindGroupLayoutEntry

		Buffers   []gputypes.VertexBufferLayout
		Primitive gputypes.PrimitiveState
		Targets   []gputypes.ColorTargetState
	}
)

// Descriptor sizes in dwords.
const (
	bufferSize   = 4
	imageSize    = 8
	samplerSize  = 4
	tablePtrSize = 1
)

// BuildInfo returns graphics build info and the stages present.
func BuildInfo(ctx context.Context, p *Pipeline) (*api.GraphicsPipelineBuildInfo, api.StageMask) {
	tr := tlog.SpanFromContext(ctx)

	g := &api.GraphicsPipelineBuildInfo{}
	nodes := UserDataNodes(p.BindGroups)

	var stages api.StageMask

	for _, s := range []struct {
		st api.ShaderStage
		md *api.ShaderModuleData
	}{
		{api.ShaderStageVertex, p.Vertex},
		{api.ShaderStageFragment, p.Fragment},
	} {
		if s.md == nil {
			continue
		}

		stages |= s.st.Mask()

		g.Stages[s.st] = api.PipelineShaderInfo{
			ModuleData:    s.md,
			EntryPoint:    "main",
			UserDataNodes: nodes,
		}
	}

	g.VertexInput = VertexInput(p.Buffers)
	g.IaState, g.RsState = Primitive(p.Primitive)
	g.CbState = ColorBlend(p.Targets)

	if tr.If("webgpu") {
		tr.Printw("webgpu pipeline", "stages", stages, "bind_groups", len(p.BindGroups), "buffers", len(p.Buffers), "targets", len(p.Targets))
	}

	return g, stages
}

// UserDataNodes makes a descriptor table pointer per bind group.
// Entries of unknown binding kind are left out.
func UserDataNodes(groups [][]gputypes.BindGroupLayoutEntry) []api.ResourceMappingNode {
	if len(groups) == 0 {
		return nil
	}

	nodes := make([]api.ResourceMappingNode, len(groups))

	for g, entries := range groups {
		var table []api.ResourceMappingNode
		var off uint32

		for _, e := range entries {
			var tp api.ResourceMappingNodeType
			var size uint32

			switch {
			case e.Buffer != nil:
				tp, size = api.DescriptorBuffer, bufferSize
			case e.Texture != nil:
				tp, size = api.DescriptorResource, imageSize
			case e.Sampler != nil:
				tp, size = api.DescriptorSampler, samplerSize
			default:
				continue
			}

			table = append(table, api.ResourceMappingNode{
				Type:           tp,
				SizeInDwords:   size,
				OffsetInDwords: off,
				SrdRange:       api.SrdRange{Set: uint32(g), Binding: e.Binding},
			})

			off += size
		}

		nodes[g] = api.ResourceMappingNode{
			Type:           api.DescriptorTableVaPtr,
			SizeInDwords:   tablePtrSize,
			OffsetInDwords: uint32(g) * tablePtrSize,
			TablePtr:       table,
		}
	}

	return nodes
}

// VertexInput maps vertex buffer i to binding i.
func VertexInput(bufs []gputypes.VertexBufferLayout) *api.VertexInputState {
	if len(bufs) == 0 {
		return nil
	}

	vi := &api.VertexInputState{}

	for i, b := range bufs {
		rate := api.VertexInputRateVertex
		if b.StepMode == gputypes.VertexStepModeInstance {
			rate = api.VertexInputRateInstance
		}

		vi.Bindings = append(vi.Bindings, api.VertexInputBindingDescription{
			Binding:   uint32(i),
			Stride:    uint32(b.ArrayStride),
			InputRate: rate,
		})

		for _, a := range b.Attributes {
			vi.Attributes = append(vi.Attributes, api.VertexInputAttributeDescription{
				Location: uint32(a.ShaderLocation),
				Binding:  uint32(i),
				Format:   VertexFormat(a.Format),
				Offset:   uint32(a.Offset),
			})
		}
	}

	return vi
}

// VertexFormat returns FormatUndefined for formats with no counterpart.
func VertexFormat(f gputypes.VertexFormat) api.Format {
	for _, e := range vertexFormats {
		if e.f == f {
			return e.vk
		}
	}

	return api.FormatUndefined
}

// TextureFormat returns FormatUndefined for formats with no counterpart.
func TextureFormat(f gputypes.TextureFormat) api.Format {
	for _, e := range textureFormats {
		if e.f == f {
			return e.vk
		}
	}

	return api.FormatUndefined
}

func ColorBlend(targets []gputypes.ColorTargetState) (cb api.ColorBlendState) {
	for i, t := range targets {
		if i == api.MaxColorTargets {
			break
		}

		cb.Target[i] = api.ColorTarget{
			Format:      TextureFormat(t.Format),
			BlendEnable: t.Blend != nil,
		}
	}

	return cb
}

func Primitive(p gputypes.PrimitiveState) (ia api.InputAssemblyState, rs api.RasterizerState) {
	switch p.Topology {
	case gputypes.PrimitiveTopologyPointList:
		ia.Topology = api.PrimitiveTopologyPointList
	case gputypes.PrimitiveTopologyLineList:
		ia.Topology = api.PrimitiveTopologyLineList
	case gputypes.PrimitiveTopologyLineStrip:
		ia.Topology = api.PrimitiveTopologyLineStrip
	case gputypes.PrimitiveTopologyTriangleStrip:
		ia.Topology = api.PrimitiveTopologyTriangleStrip
	default:
		ia.Topology = api.PrimitiveTopologyTriangleList
	}

	switch p.CullMode {
	case gputypes.CullModeFront:
		rs.CullMode = api.CullModeFront
	case gputypes.CullModeBack:
		rs.CullMode = api.CullModeBack
	default:
		rs.CullMode = api.CullModeNone
	}

	if p.FrontFace == gputypes.FrontFaceCW {
		rs.FrontFace = api.FrontFaceClockwise
	} else {
		rs.FrontFace = api.FrontFaceCounterClockwise
	}

	rs.NumSamples = 1

	return ia, rs
}
