package compiler

import (
	"context"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/slowlang/pipestate/compiler/api"
	"github.com/slowlang/pipestate/compiler/ir"
	"github.com/slowlang/pipestate/compiler/module"
	"github.com/slowlang/pipestate/compiler/pipeline"
	"github.com/slowlang/pipestate/compiler/webgpu"
)

type (
	// Description is a pipeline description file.
	// Exactly one of Graphics, Compute and WebGPU is expected.
	Description struct {
		GfxIP api.GfxIPVersion `yaml:"gfxip"`

		PipelineHash api.Hash128 `yaml:"pipeline_hash,flow"`
		CacheHash    api.Hash128 `yaml:"cache_hash,flow"`

		// Defaults override the caller's defaults key by key.
		Defaults pipeline.Defaults `yaml:"defaults"`

		Stages map[string]Stage `yaml:"stages"`

		Graphics *api.GraphicsPipelineBuildInfo `yaml:"graphics"`
		Compute  *api.ComputePipelineBuildInfo  `yaml:"compute"`

		// WebGPU is translated into Graphics.
		// Stages entries replace the shader info it produces.
		WebGPU *webgpu.Description `yaml:"webgpu"`
	}

	// Stage is shader info with an optional shader file.
	// File is relative to the description and wins over an inline module hash.
	Stage struct {
		File string `yaml:"file"`

		api.PipelineShaderInfo `yaml:",inline"`
	}
)

func AssembleFile(ctx context.Context, name string, defaults pipeline.Defaults) (cfg *ir.Config, err error) {
	c, err := LoadFile(ctx, name, defaults)
	if err != nil {
		return nil, err
	}

	cfg, err = pipeline.Assemble(ctx, c)
	if err != nil {
		return nil, errors.Wrap(err, "assemble")
	}

	return cfg, nil
}

func LoadFile(ctx context.Context, name string, defaults pipeline.Defaults) (*pipeline.Context, error) {
	text, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Wrap(err, "read file")
	}

	tlog.SpanFromContext(ctx).Printw("read file", "size", len(text), "name", name)

	return Load(ctx, filepath.Dir(name), text, defaults)
}

// Load decodes a description. Shader files are looked up in dir.
func Load(ctx context.Context, dir string, text []byte, defaults pipeline.Defaults) (_ *pipeline.Context, err error) {
	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "compiler: load description", "dir", dir)
	defer tr.Finish("err", &err)

	d := Description{
		Defaults: defaults,
	}

	err = yaml.Unmarshal(text, &d)
	if err != nil {
		return nil, errors.Wrap(err, "decode")
	}

	c := &pipeline.Context{
		GfxIP:        d.GfxIP,
		PipelineHash: d.PipelineHash,
		CacheHash:    d.CacheHash,
		Graphics:     d.Graphics,
		Compute:      d.Compute,
		Defaults:     d.Defaults,
	}

	if d.WebGPU != nil {
		if c.Graphics != nil || c.Compute != nil {
			return nil, errors.New("webgpu section with graphics or compute section")
		}

		c.Graphics, c.Stages, err = loadWebGPU(ctx, dir, d.WebGPU)
		if err != nil {
			return nil, errors.Wrap(err, "webgpu")
		}
	}

	if c.Graphics == nil && c.Compute == nil {
		return nil, errors.New("no graphics or compute section")
	}

	for name, st := range d.Stages {
		s, err := api.ParseShaderStage(name)
		if err != nil {
			return nil, err
		}

		if st.File != "" {
			st.ModuleData, err = module.Load(ctx, filepath.Join(dir, st.File))
			if err != nil {
				return nil, errors.Wrap(err, "stage %v", s)
			}
		}

		info := c.ShaderInfo(s)
		if info == nil {
			return nil, errors.New("stage %v: not in a %v pipeline", s, kind(c))
		}

		*info = st.PipelineShaderInfo
		c.Stages |= s.Mask()
	}

	tr.Printw("description", "kind", kind(c), "stages", c.Stages, "gfxip", c.GfxIP)

	return c, nil
}

func loadWebGPU(ctx context.Context, dir string, d *webgpu.Description) (_ *api.GraphicsPipelineBuildInfo, _ api.StageMask, err error) {
	var vs, fs *api.ShaderModuleData

	for _, f := range []struct {
		name string
		md   **api.ShaderModuleData
	}{
		{d.Vertex, &vs},
		{d.Fragment, &fs},
	} {
		if f.name == "" {
			continue
		}

		*f.md, err = module.Load(ctx, filepath.Join(dir, f.name))
		if err != nil {
			return nil, 0, err
		}
	}

	p, err := d.Pipeline(vs, fs)
	if err != nil {
		return nil, 0, err
	}

	g, stages := webgpu.BuildInfo(ctx, p)

	return g, stages, nil
}

func kind(c *pipeline.Context) string {
	if c.IsGraphics() {
		return "graphics"
	}

	return "compute"
}
