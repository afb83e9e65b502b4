// Package pipeline translates a client pipeline description into
// generator configuration through the ir.Pipeline setters.
package pipeline

import (
	"context"

	"tlog.app/go/errors"
	"tlog.app/go/loc"
	"tlog.app/go/tlog"

	"github.com/slowlang/pipestate/compiler/api"
	"github.com/slowlang/pipestate/compiler/format"
	"github.com/slowlang/pipestate/compiler/ir"
	"github.com/slowlang/pipestate/compiler/resource"
	"github.com/slowlang/pipestate/compiler/set"
)

type (
	// Context is one pipeline compile.
	// Exactly one of Graphics and Compute is set.
	Context struct {
		GfxIP api.GfxIPVersion

		PipelineHash api.Hash128
		CacheHash    api.Hash128

		// Stages lists shader stages present in the pipeline.
		Stages api.StageMask

		Graphics *api.GraphicsPipelineBuildInfo
		Compute  *api.ComputePipelineBuildInfo

		Defaults Defaults
	}
)

var stageMap = [api.ShaderStageCount]ir.ShaderStage{
	api.ShaderStageVertex:      ir.ShaderStageVertex,
	api.ShaderStageTessControl: ir.ShaderStageTessControl,
	api.ShaderStageTessEval:    ir.ShaderStageTessEval,
	api.ShaderStageGeometry:    ir.ShaderStageGeometry,
	api.ShaderStageFragment:    ir.ShaderStageFragment,
	api.ShaderStageCompute:     ir.ShaderStageCompute,
}

func (c *Context) IsGraphics() bool { return c.Graphics != nil }

// ShaderInfo returns the stage shader info or nil if the pipeline
// kind has no such stage.
func (c *Context) ShaderInfo(s api.ShaderStage) *api.PipelineShaderInfo {
	switch {
	case c.Graphics != nil && s < api.ShaderStageGfxCount:
		return &c.Graphics.Stages[s]
	case c.Compute != nil && s == api.ShaderStageCompute:
		return &c.Compute.Cs
	}

	return nil
}

// StageMask translates the client stage mask to generator stage bits.
func (c *Context) StageMask() (mask uint32) {
	for s := api.ShaderStageVertex; s < api.ShaderStageCount; s++ {
		if c.Stages.Has(s) {
			mask |= 1 << stageMap[s]
		}
	}

	return mask
}

// Assemble records the pipeline state into a fresh Config.
func Assemble(ctx context.Context, c *Context) (*ir.Config, error) {
	var cfg ir.Config

	err := c.SetPipelineState(ctx, &cfg)
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SetPipelineState feeds the whole pipeline state into p.
// Elements the generator can't take are skipped, not reported.
// Errors are returned only for descriptions that are out of contract.
func (c *Context) SetPipelineState(ctx context.Context, p ir.Pipeline) (err error) {
	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "pipeline: set state", "graphics", c.IsGraphics(), "stages", set.FromMask(uint64(c.Stages)), "gfxip", c.GfxIP)
	defer tr.Finish("err", &err)

	err = c.check()
	if err != nil {
		return err
	}

	p.SetShaderStageMask(c.StageMask())

	p.SetOptions(c.Options())

	for s := api.ShaderStageVertex; s < api.ShaderStageCount; s++ {
		if !c.Stages.Has(s) {
			continue
		}

		p.SetShaderOptions(stageMap[s], c.ShaderOptions(c.ShaderInfo(s)))
	}

	if first := c.Stages.First(); first != api.ShaderStageCount {
		info := c.ShaderInfo(first)

		t := resource.Flatten(ctx, info.UserDataNodes, info.DescriptorRangeValues)

		p.SetUserDataNodes(t.Root)
	}

	if c.Compute != nil {
		p.SetDeviceIndex(c.Compute.DeviceIndex)

		return nil
	}

	p.SetDeviceIndex(c.Graphics.IaState.DeviceIndex)

	p.SetVertexInputDescriptions(c.VertexInputs(ctx))

	formats, cb := c.ColorExport(ctx)
	p.SetColorExportState(formats, cb)

	ia, vp, rs := c.GraphicsState()
	p.SetGraphicsState(ia, vp, rs)

	return nil
}

func (c *Context) check() error {
	if (c.Graphics == nil) == (c.Compute == nil) {
		return errors.New("exactly one of graphics and compute build info expected")
	}

	for s := api.ShaderStageVertex; s < api.ShaderStageCount; s++ {
		if c.Stages.Has(s) && c.ShaderInfo(s) == nil {
			return errors.New("stage %v: no shader info", s)
		}
	}

	if c.Stages>>api.ShaderStageCount != 0 {
		return errors.New("unknown stages in mask: %#x", uint32(c.Stages))
	}

	return nil
}

// ShaderHash returns the client hash if both halves are set,
// the module digest folded to 64 bits otherwise.
func ShaderHash(info *api.PipelineShaderInfo) [2]uint64 {
	h := info.Options.ClientHash

	if h.Lower != 0 && h.Upper != 0 {
		return [2]uint64{h.Lower, h.Upper}
	}

	if info.ModuleData == nil {
		return [2]uint64{}
	}

	return [2]uint64{info.ModuleData.Hash.Compact64(), 0}
}

func (c *Context) Options() (o ir.Options) {
	var opts *api.PipelineOptions

	if c.Graphics != nil {
		opts = &c.Graphics.Options
	} else {
		opts = &c.Compute.Options
	}

	d := &c.Defaults

	o.Hash = [2]uint64{c.PipelineHash.Compact64(), c.CacheHash.Compact64()}

	o.IncludeDisassembly = d.EnablePipelineDump || d.EnableOuts || opts.IncludeDisassembly
	o.ReconfigWorkgroupLayout = opts.ReconfigWorkgroupLayout
	o.IncludeIr = d.IncludeLlvmIr || opts.IncludeIr

	switch opts.ShadowDescriptorTableUsage {
	case api.ShadowDescriptorTableEnable:
		o.ShadowDescriptorTableUsage = ir.ShadowDescriptorTableEnable
	case api.ShadowDescriptorTableDisable:
		o.ShadowDescriptorTableUsage = ir.ShadowDescriptorTableDisable
	default:
		o.ShadowDescriptorTableUsage = ir.ShadowDescriptorTableAuto
	}

	o.ShadowDescriptorTablePtrHigh = opts.ShadowDescriptorTablePtrHigh

	if c.GfxIP.Major >= 10 && c.Graphics != nil {
		c.ngg(&o)
	}

	return o
}

func (c *Context) ngg(o *ir.Options) {
	n := &c.Graphics.NggState

	if !n.EnableNgg {
		o.NggFlags = ir.NggFlagDisable

		return
	}

	flag := func(on bool, f ir.NggFlag) {
		if on {
			o.NggFlags |= f
		}
	}

	flag(n.EnableGsUse, ir.NggFlagEnableGsUse)
	flag(n.ForceNonPassthrough, ir.NggFlagForceNonPassthrough)
	flag(!n.AlwaysUsePrimShaderTable, ir.NggFlagDontAlwaysUsePrimShaderTable)
	flag(n.CompactMode == api.NggCompactSubgroup, ir.NggFlagCompactSubgroup)
	flag(n.EnableFastLaunch, ir.NggFlagEnableFastLaunch)
	flag(n.EnableVertexReuse, ir.NggFlagEnableVertexReuse)
	flag(n.EnableBackfaceCulling, ir.NggFlagEnableBackfaceCulling)
	flag(n.EnableFrustumCulling, ir.NggFlagEnableFrustumCulling)
	flag(n.EnableBoxFilterCulling, ir.NggFlagEnableBoxFilterCulling)
	flag(n.EnableSphereCulling, ir.NggFlagEnableSphereCulling)
	flag(n.EnableSmallPrimFilter, ir.NggFlagEnableSmallPrimFilter)
	flag(n.EnableCullDistanceCulling, ir.NggFlagEnableCullDistanceCulling)

	o.NggBackfaceExponent = n.BackfaceExponent
	o.NggSubgroupSizing = ir.NggSubgroupSizing(n.SubgroupSizing)
	o.NggVertsPerSubgroup = n.VertsPerSubgroup
	o.NggPrimsPerSubgroup = n.PrimsPerSubgroup
}

func (c *Context) ShaderOptions(info *api.PipelineShaderInfo) ir.ShaderOptions {
	d := &c.Defaults
	s := &info.Options

	return ir.ShaderOptions{
		Hash: ShaderHash(info),

		TrapPresent: s.TrapPresent,
		DebugMode:   s.DebugMode,
		AllowReZ:    s.AllowReZ,

		VgprLimit:                     registerLimit(s.VgprLimit, d.VgprLimit),
		SgprLimit:                     registerLimit(s.SgprLimit, d.SgprLimit),
		MaxThreadGroupsPerComputeUnit: nonZero(s.MaxThreadGroupsPerComputeUnit, d.WavesPerEu),

		WaveSize:      s.WaveSize,
		WgpMode:       s.WgpMode,
		SubgroupSize:  subgroupSize(s.AllowVaryWaveSize, d),
		WaveBreakSize: ir.WaveBreak(s.WaveBreakSize),

		LoadScalarizerThreshold: scalarThreshold(s.EnableLoadScalarizer, s.ScalarThreshold, d),

		UseSiScheduler:  d.EnableSiScheduler || s.UseSiScheduler,
		UpdateDescInElf: s.UpdateDescInElf,
		UnrollThreshold: nonZero(s.UnrollThreshold, d.UnrollThreshold),
	}
}

func (c *Context) GraphicsState() (ia ir.InputAssemblyState, vp ir.ViewportState, rs ir.RasterizerState) {
	g := c.Graphics

	ia = ir.InputAssemblyState{
		Topology:           ir.PrimitiveTopology(g.IaState.Topology),
		PatchControlPoints: g.IaState.PatchControlPoints,
		DisableVertexReuse: g.IaState.DisableVertexReuse,
		SwitchWinding:      g.IaState.SwitchWinding,
		EnableMultiView:    g.IaState.EnableMultiView,
	}

	vp = ir.ViewportState{
		DepthClipEnable: g.VpState.DepthClipEnable,
	}

	rs = ir.RasterizerState{
		RasterizerDiscardEnable: g.RsState.RasterizerDiscardEnable,
		InnerCoverage:           g.RsState.InnerCoverage,
		PerSampleShading:        g.RsState.PerSampleShading,
		NumSamples:              g.RsState.NumSamples,
		SamplePatternIdx:        g.RsState.SamplePatternIdx,
		UsrClipPlaneMask:        g.RsState.UsrClipPlaneMask,
		PolygonMode:             ir.PolygonMode(g.RsState.PolygonMode),
		CullMode:                ir.CullModeFlags(g.RsState.CullMode),
		FrontFaceClockwise:      g.RsState.FrontFace != api.FrontFaceCounterClockwise,
		DepthBiasEnable:         g.RsState.DepthBiasEnable,
	}

	return
}

// VertexInputs resolves vertex attributes against their bindings.
// Attributes with a missing binding or a format not usable
// for vertex fetch are dropped.
func (c *Context) VertexInputs(ctx context.Context) (r []ir.VertexInputDescription) {
	vi := c.Graphics.VertexInput
	if vi == nil {
		return nil
	}

	tr, _ := tlog.SpawnFromContextAndWrap(ctx, "pipeline: vertex input", "bindings", len(vi.Bindings), "attributes", len(vi.Attributes), "divisors", len(vi.Divisors))
	defer func() { tr.Finish("emitted", len(r)) }()

	var table []ir.VertexInputDescription
	var assigned set.Bitmap

	for _, b := range vi.Bindings {
		var rate ir.VertexInputRate

		switch b.InputRate {
		case api.VertexInputRateVertex:
			rate = ir.VertexInputRateVertex
		case api.VertexInputRateInstance:
			rate = ir.VertexInputRateInstance
		default:
			skip(tr, "binding", "binding", b.Binding, "input_rate", b.InputRate)
			continue
		}

		table = sliceSet(table, b.Binding, ir.VertexInputDescription{
			Binding:   b.Binding,
			Stride:    b.Stride,
			InputRate: rate,
		})

		assigned.Set(int(b.Binding))
	}

	for _, d := range vi.Divisors {
		if int(d.Binding) >= len(table) {
			skip(tr, "divisor", "binding", d.Binding, "table", len(table))
			continue
		}

		table[d.Binding].InputRate = ir.VertexInputRate(d.Divisor)
	}

	for _, a := range vi.Attributes {
		if int(a.Binding) >= len(table) || !assigned.IsSet(int(a.Binding)) || table[a.Binding].Binding != a.Binding {
			skip(tr, "attribute", "location", a.Location, "binding", a.Binding, "assigned", assigned)
			continue
		}

		dfmt, nfmt := format.Lookup(a.Format, false)
		if dfmt == ir.BufDataFormatInvalid {
			skip(tr, "attribute format", "location", a.Location, "format", a.Format)
			continue
		}

		b := &table[a.Binding]

		r = append(r, ir.VertexInputDescription{
			Location:  a.Location,
			Binding:   a.Binding,
			Offset:    a.Offset,
			Stride:    b.Stride,
			Dfmt:      dfmt,
			Nfmt:      nfmt,
			InputRate: b.InputRate,
		})
	}

	return r
}

// ColorExport resolves color targets.
// The result has an element per target up to the last one used;
// unused or unsupported targets stay zero.
func (c *Context) ColorExport(ctx context.Context) (formats []ir.ColorExportFormat, state ir.ColorExportState) {
	cb := &c.Graphics.CbState
	tr := tlog.SpanFromContext(ctx)

	for i, t := range cb.Target {
		if t.Format == api.FormatUndefined {
			continue
		}

		dfmt, nfmt := format.Lookup(t.Format, true)
		if dfmt == ir.BufDataFormatInvalid {
			skip(tr, "color target", "target", i, "format", t.Format)
			continue
		}

		formats = sliceSet(formats, i, ir.ColorExportFormat{
			Dfmt:                 dfmt,
			Nfmt:                 nfmt,
			BlendEnable:          t.BlendEnable,
			BlendSrcAlphaToColor: t.BlendSrcAlphaToColor,
		})
	}

	state = ir.ColorExportState{
		AlphaToCoverageEnable: cb.AlphaToCoverageEnable,
		DualSourceBlendEnable: cb.DualSourceBlendEnable,
	}

	return formats, state
}

func skip(tr tlog.Span, what string, kvs ...interface{}) {
	if !tr.If("skip") {
		return
	}

	tr.Printw("skip "+what, append(kvs, "at", loc.Caller(1))...)
}
