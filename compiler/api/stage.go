package api

import "tlog.app/go/errors"

type (
	ShaderStage uint32

	// StageMask has bit 1<<stage set for every stage present in a pipeline.
	StageMask uint32
)

const (
	ShaderStageVertex ShaderStage = iota
	ShaderStageTessControl
	ShaderStageTessEval
	ShaderStageGeometry
	ShaderStageFragment
	ShaderStageCompute

	ShaderStageCount

	ShaderStageGfxCount = ShaderStageFragment + 1
)

var stageNames = [ShaderStageCount]string{"vertex", "tess_control", "tess_eval", "geometry", "fragment", "compute"}

func (s ShaderStage) String() string {
	if s < ShaderStageCount {
		return stageNames[s]
	}

	return "invalid"
}

func (s ShaderStage) Mask() StageMask {
	return 1 << s
}

func (m StageMask) Has(s ShaderStage) bool {
	return m&s.Mask() != 0
}

// First returns the lowest stage in the mask or ShaderStageCount if it's empty.
func (m StageMask) First() ShaderStage {
	for s := ShaderStageVertex; s < ShaderStageCount; s++ {
		if m.Has(s) {
			return s
		}
	}

	return ShaderStageCount
}

func ParseShaderStage(s string) (ShaderStage, error) {
	for i, n := range stageNames {
		if n == s {
			return ShaderStage(i), nil
		}
	}

	return ShaderStageCount, errors.New("unknown shader stage: %q", s)
}
