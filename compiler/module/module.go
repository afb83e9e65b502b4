// Package module computes shader module digests.
//
// Digests are MetroHash-128 over the SPIR-V words. WGSL sources are
// compiled to SPIR-V first so that both spellings of a shader hash the same.
package module

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"

	metro "github.com/dgryski/go-metro"
	"github.com/gogpu/naga"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/slowlang/pipestate/compiler/api"
)

const SpirvMagic = 0x07230203

func Digest(spirv []byte) api.Hash128 {
	l, h := metro.Hash128(spirv, 0)

	return api.Hash128{l, h}
}

// Data returns module data for SPIR-V code.
func Data(spirv []byte) (*api.ShaderModuleData, error) {
	if len(spirv) < 4 || len(spirv)%4 != 0 {
		return nil, errors.New("spirv: bad size: %d", len(spirv))
	}

	if m := binary.LittleEndian.Uint32(spirv); m != SpirvMagic {
		return nil, errors.New("spirv: bad magic: %#x", m)
	}

	return &api.ShaderModuleData{Hash: Digest(spirv)}, nil
}

func CompileWGSL(ctx context.Context, src string) (spirv []byte, err error) {
	tr, _ := tlog.SpawnFromContextAndWrap(ctx, "module: compile wgsl", "src_size", len(src))
	defer tr.Finish("err", &err)

	spirv, err = naga.CompileWithOptions(src, naga.DefaultOptions())
	if err != nil {
		return nil, errors.Wrap(err, "wgsl")
	}

	tr.Printw("compiled", "spirv_size", len(spirv))

	return spirv, nil
}

// Load reads a shader file. Files with .wgsl extension are compiled,
// anything else is taken as SPIR-V binary.
func Load(ctx context.Context, name string) (*api.ShaderModuleData, error) {
	text, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Wrap(err, "read file")
	}

	tlog.SpanFromContext(ctx).Printw("read file", "size", len(text), "name", name)

	if filepath.Ext(name) == ".wgsl" {
		text, err = CompileWGSL(ctx, string(text))
		if err != nil {
			return nil, errors.Wrap(err, "%v", name)
		}
	}

	md, err := Data(text)
	if err != nil {
		return nil, errors.Wrap(err, "%v", name)
	}

	return md, nil
}
