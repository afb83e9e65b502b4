package pipeline

import "math"

type (
	// Defaults are process-wide option values applied when a shader
	// doesn't set its own. They are never global: the caller owns them
	// and passes them in Context.
	Defaults struct {
		VgprLimit  uint32 `yaml:"vgpr_limit"`
		SgprLimit  uint32 `yaml:"sgpr_limit"`
		WavesPerEu uint32 `yaml:"waves_per_eu"`

		EnableScalarLoad bool   `yaml:"enable_scalar_load"`
		ScalarThreshold  uint32 `yaml:"scalar_threshold"`

		EnableSiScheduler bool   `yaml:"enable_si_scheduler"`
		SubgroupSize      uint32 `yaml:"subgroup_size"`
		UnrollThreshold   uint32 `yaml:"unroll_threshold"`

		IncludeLlvmIr      bool `yaml:"include_llvm_ir"`
		EnablePipelineDump bool `yaml:"enable_pipeline_dump"`
		EnableOuts         bool `yaml:"enable_outs"`
	}
)

// MaxScalarThreshold disables the load scalarizer threshold.
const MaxScalarThreshold = math.MaxUint32

func DefaultDefaults() Defaults {
	return Defaults{
		ScalarThreshold: MaxScalarThreshold,
		SubgroupSize:    64,
	}
}

func registerLimit(explicit, def uint32) uint32 {
	if explicit != 0 && explicit != math.MaxUint32 {
		return explicit
	}

	return def
}

func nonZero(explicit, def uint32) uint32 {
	if explicit != 0 {
		return explicit
	}

	return def
}

func subgroupSize(allowVary bool, d *Defaults) uint32 {
	if allowVary {
		return 0
	}

	return d.SubgroupSize
}

func scalarThreshold(enable bool, explicit uint32, d *Defaults) (r uint32) {
	if d.EnableScalarLoad {
		r = d.ScalarThreshold
	}

	if enable {
		r = nonZero(explicit, MaxScalarThreshold)
	}

	return r
}
