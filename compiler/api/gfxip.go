package api

import (
	"strconv"

	"tlog.app/go/tlog/tlwire"
)

type GfxIPVersion struct {
	Major    uint32 `yaml:"major"`
	Minor    uint32 `yaml:"minor"`
	Stepping uint32 `yaml:"stepping"`
}

// First stepping reserved for experimental targets.
const SteppingExperimental = 0xFFFA

// GpuName returns the target name: "gfx" followed by major, minor and
// stepping with no separators, e.g. "gfx1010" for 10.1.0.
// An experimental stepping is a single letter, e.g. "gfx101A" for 10.1.0xFFFA.
func (v GfxIPVersion) GpuName() string {
	b := make([]byte, 0, 8)

	b = append(b, "gfx"...)
	b = strconv.AppendUint(b, uint64(v.Major), 10)
	b = strconv.AppendUint(b, uint64(v.Minor), 10)

	if v.Stepping >= SteppingExperimental {
		b = append(b, byte(v.Stepping-SteppingExperimental+'A'))
	} else {
		b = strconv.AppendUint(b, uint64(v.Stepping), 10)
	}

	return string(b)
}

func (v GfxIPVersion) GpuNameAbbreviation() string {
	switch v.Major {
	case 6:
		return "SI"
	case 7:
		return "CI"
	case 8:
		return "VI"
	case 9:
		return "GFX9"
	case 10:
		return "GFX10"
	default:
		return "UNKNOWN"
	}
}

func (v GfxIPVersion) TlogAppend(b []byte) []byte {
	var e tlwire.Encoder

	b = e.AppendMap(b, 3)
	b = e.AppendKeyInt64(b, "major", int64(v.Major))
	b = e.AppendKeyInt64(b, "minor", int64(v.Minor))
	b = e.AppendKeyInt64(b, "stepping", int64(v.Stepping))

	return b
}
