package ir

type (
	// Pipeline is the generator configuration surface.
	// The state translation layer only ever calls the setters.
	Pipeline interface {
		SetShaderStageMask(mask uint32)
		SetOptions(opts Options)
		SetShaderOptions(stage ShaderStage, opts ShaderOptions)
		SetUserDataNodes(nodes []ResourceNode)
		SetDeviceIndex(idx uint32)
		SetVertexInputDescriptions(descs []VertexInputDescription)
		SetColorExportState(formats []ColorExportFormat, state ColorExportState)
		SetGraphicsState(ia InputAssemblyState, vp ViewportState, rs RasterizerState)
	}

	// Config records everything set through Pipeline.
	Config struct {
		StageMask uint32

		Options       Options
		ShaderOptions [ShaderStageCount]ShaderOptions

		UserDataNodes []ResourceNode

		DeviceIndex uint32

		VertexInputs []VertexInputDescription

		ColorExportFormats []ColorExportFormat
		ColorExportState   ColorExportState

		InputAssembly InputAssemblyState
		Viewport      ViewportState
		Rasterizer    RasterizerState
	}
)

var _ Pipeline = &Config{}

func (c *Config) SetShaderStageMask(mask uint32) { c.StageMask = mask }

func (c *Config) SetOptions(opts Options) { c.Options = opts }

func (c *Config) SetShaderOptions(stage ShaderStage, opts ShaderOptions) {
	c.ShaderOptions[stage] = opts
}

func (c *Config) SetUserDataNodes(nodes []ResourceNode) { c.UserDataNodes = nodes }

func (c *Config) SetDeviceIndex(idx uint32) { c.DeviceIndex = idx }

func (c *Config) SetVertexInputDescriptions(descs []VertexInputDescription) {
	c.VertexInputs = descs
}

func (c *Config) SetColorExportState(formats []ColorExportFormat, state ColorExportState) {
	c.ColorExportFormats = formats
	c.ColorExportState = state
}

func (c *Config) SetGraphicsState(ia InputAssemblyState, vp ViewportState, rs RasterizerState) {
	c.InputAssembly = ia
	c.Viewport = vp
	c.Rasterizer = rs
}

func (c *Config) HasStage(s ShaderStage) bool {
	return c.StageMask&(1<<s) != 0
}
