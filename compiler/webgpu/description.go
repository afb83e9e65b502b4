package webgpu

import (
	"github.com/gogpu/gputypes"
	"tlog.app/go/errors"

	"github.com/slowlang/pipestate/compiler/api"
)

type (
	// Description is a WebGPU render pipeline in a description file.
	// Enum values use WebGPU strings: "float32x2", "bgra8unorm", "triangle-strip".
	Description struct {
		// Shader files.
		Vertex   string `yaml:"vertex"`
		Fragment string `yaml:"fragment"`

		BindGroups [][]BindingDesc `yaml:"bind_groups"`
		Buffers    []BufferDesc    `yaml:"buffers"`
		Primitive  PrimitiveDesc   `yaml:"primitive"`
		Targets    []TargetDesc    `yaml:"targets"`
	}

	BindingDesc struct {
		Binding uint32 `yaml:"binding"`
		// Type is uniform, storage, read-only-storage, texture or sampler.
		Type string `yaml:"type"`
	}

	BufferDesc struct {
		Stride     uint64          `yaml:"stride"`
		StepMode   string          `yaml:"step_mode"`
		Attributes []AttributeDesc `yaml:"attributes,flow"`
	}

	AttributeDesc struct {
		Location uint32 `yaml:"location"`
		Offset   uint64 `yaml:"offset"`
		Format   string `yaml:"format"`
	}

	PrimitiveDesc struct {
		// Topology defaults to triangle-list.
		Topology  string `yaml:"topology"`
		CullMode  string `yaml:"cull_mode"`
		FrontFace string `yaml:"front_face"`
	}

	TargetDesc struct {
		Format string `yaml:"format"`
		Blend  bool   `yaml:"blend"`
	}
)

// Pipeline resolves names. Shader modules are loaded by the caller.
func (d *Description) Pipeline(vertex, fragment *api.ShaderModuleData) (p *Pipeline, err error) {
	p = &Pipeline{
		Vertex:   vertex,
		Fragment: fragment,
	}

	for g, group := range d.BindGroups {
		entries := make([]gputypes.BindGroupLayoutEntry, len(group))

		for i, b := range group {
			entries[i], err = bindGroupEntry(b)
			if err != nil {
				return nil, errors.Wrap(err, "bind group %d: entry %d", g, i)
			}
		}

		p.BindGroups = append(p.BindGroups, entries)
	}

	for i, b := range d.Buffers {
		l := gputypes.VertexBufferLayout{
			ArrayStride: b.Stride,
		}

		l.StepMode, err = parse(stepModes, "step mode", b.StepMode)
		if err != nil {
			return nil, errors.Wrap(err, "buffer %d", i)
		}

		for _, a := range b.Attributes {
			f, err := ParseVertexFormat(a.Format)
			if err != nil {
				return nil, errors.Wrap(err, "buffer %d: location %d", i, a.Location)
			}

			l.Attributes = append(l.Attributes, gputypes.VertexAttribute{
				Format:         f,
				Offset:         a.Offset,
				ShaderLocation: a.Location,
			})
		}

		p.Buffers = append(p.Buffers, l)
	}

	topology := d.Primitive.Topology
	if topology == "" {
		topology = "triangle-list"
	}

	p.Primitive.Topology, err = parse(topologies, "topology", topology)
	if err != nil {
		return nil, err
	}

	p.Primitive.CullMode, err = parse(cullModes, "cull mode", d.Primitive.CullMode)
	if err != nil {
		return nil, err
	}

	p.Primitive.FrontFace, err = parse(frontFaces, "front face", d.Primitive.FrontFace)
	if err != nil {
		return nil, err
	}

	for i, t := range d.Targets {
		f, err := ParseTextureFormat(t.Format)
		if err != nil {
			return nil, errors.Wrap(err, "target %d", i)
		}

		ct := gputypes.ColorTargetState{
			Format:    f,
			WriteMask: gputypes.ColorWriteMaskAll,
		}

		if t.Blend {
			blend := gputypes.BlendStatePremultiplied()
			ct.Blend = &blend
		}

		p.Targets = append(p.Targets, ct)
	}

	return p, nil
}

func bindGroupEntry(b BindingDesc) (e gputypes.BindGroupLayoutEntry, err error) {
	e.Binding = b.Binding
	e.Visibility = gputypes.ShaderStageVertex | gputypes.ShaderStageFragment

	switch b.Type {
	case "uniform":
		e.Buffer = &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform}
	case "storage":
		e.Buffer = &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeStorage}
	case "read-only-storage":
		e.Buffer = &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeReadOnlyStorage}
	case "texture":
		e.Texture = &gputypes.TextureBindingLayout{
			SampleType:    gputypes.TextureSampleTypeFloat,
			ViewDimension: gputypes.TextureViewDimension2D,
		}
	case "sampler":
		e.Sampler = &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering}
	default:
		return e, errors.New("binding %d: unknown type: %q", b.Binding, b.Type)
	}

	return e, nil
}
