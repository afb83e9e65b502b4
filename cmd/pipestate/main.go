package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
	"nikand.dev/go/cli"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/slowlang/pipestate/compiler"
	"github.com/slowlang/pipestate/compiler/api"
	"github.com/slowlang/pipestate/compiler/dump"
	"github.com/slowlang/pipestate/compiler/format"
	"github.com/slowlang/pipestate/compiler/pipeline"
)

func main() {
	assembleCmd := &cli.Command{
		Name:        "assemble",
		Description: "assemble pipeline descriptions and print generator config",
		Action:      assembleAct,
		Args:        cli.Args{},
		Flags: []*cli.Flag{
			cli.NewFlag("defaults", "", "yaml file with option defaults"),
			cli.NewFlag("vgpr-limit", 0, "default vgpr limit"),
			cli.NewFlag("sgpr-limit", 0, "default sgpr limit"),
			cli.NewFlag("waves-per-eu", 0, "default max thread groups per compute unit"),
			cli.NewFlag("enable-scalar-load", false, "enable load scalarizer by default"),
			cli.NewFlag("scalar-threshold", 0, "default load scalarizer threshold"),
			cli.NewFlag("enable-si-scheduler", false, "use SI scheduler for all shaders"),
			cli.NewFlag("subgroup-size", 0, "subgroup size for shaders with fixed wave size"),
			cli.NewFlag("unroll-threshold", 0, "default loop unroll threshold"),
			cli.NewFlag("include-llvm-ir", false, "include IR in output"),
			cli.NewFlag("enable-pipeline-dump", false, "include disassembly in output"),
			cli.NewFlag("enable-outs", false, "include disassembly in output"),
		},
	}

	formatCmd := &cli.Command{
		Name:        "format",
		Description: "print buffer formats for Vulkan format codes or names",
		Action:      formatAct,
		Args:        cli.Args{},
	}

	targetCmd := &cli.Command{
		Name:        "target",
		Description: "print target names for MAJOR.MINOR.STEPPING versions",
		Action:      targetAct,
		Args:        cli.Args{},
	}

	app := &cli.Command{
		Name:        "pipestate",
		Description: "pipestate translates pipeline state into code generator configuration",
		Commands: []*cli.Command{
			assembleCmd,
			formatCmd,
			targetCmd,
		},
	}

	cli.RunAndExit(app, os.Args, os.Environ())
}

func assembleAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	d, err := defaults(c)
	if err != nil {
		return errors.Wrap(err, "defaults")
	}

	for _, a := range c.Args {
		cfg, err := compiler.AssembleFile(ctx, a, d)
		if err != nil {
			return errors.Wrap(err, "assemble %v", a)
		}

		b, err := dump.Format(ctx, nil, cfg)
		if err != nil {
			return errors.Wrap(err, "dump %v", a)
		}

		fmt.Printf("%s\n%s", a, b)
	}

	return nil
}

func defaults(c *cli.Command) (d pipeline.Defaults, err error) {
	d = pipeline.DefaultDefaults()

	if f := c.String("defaults"); f != "" {
		data, err := os.ReadFile(f)
		if err != nil {
			return d, errors.Wrap(err, "read file")
		}

		err = yaml.Unmarshal(data, &d)
		if err != nil {
			return d, errors.Wrap(err, "decode %v", f)
		}
	}

	set := func(p *uint32, name string) {
		if v := c.Int(name); v != 0 {
			*p = uint32(v)
		}
	}

	set(&d.VgprLimit, "vgpr-limit")
	set(&d.SgprLimit, "sgpr-limit")
	set(&d.WavesPerEu, "waves-per-eu")
	set(&d.ScalarThreshold, "scalar-threshold")
	set(&d.SubgroupSize, "subgroup-size")
	set(&d.UnrollThreshold, "unroll-threshold")

	d.EnableScalarLoad = d.EnableScalarLoad || c.Bool("enable-scalar-load")
	d.EnableSiScheduler = d.EnableSiScheduler || c.Bool("enable-si-scheduler")
	d.IncludeLlvmIr = d.IncludeLlvmIr || c.Bool("include-llvm-ir")
	d.EnablePipelineDump = d.EnablePipelineDump || c.Bool("enable-pipeline-dump")
	d.EnableOuts = d.EnableOuts || c.Bool("enable-outs")

	return d, nil
}

func formatAct(c *cli.Command) (err error) {
	for _, a := range c.Args {
		f, err := api.ParseFormat(a)
		if err != nil {
			return err
		}

		e, ok := format.Get(f)
		if !ok {
			fmt.Printf("%-28v  unknown\n", f)
			continue
		}

		fmt.Printf("%-28v  %-6v  %v/%v\n", f, e.Usage(), e.Dfmt, e.Nfmt)
	}

	return nil
}

func targetAct(c *cli.Command) (err error) {
	for _, a := range c.Args {
		v, err := parseGfxIP(a)
		if err != nil {
			return errors.Wrap(err, "%v", a)
		}

		fmt.Printf("%-12s  %-8s  %s\n", a, v.GpuName(), v.GpuNameAbbreviation())
	}

	return nil
}

func parseGfxIP(s string) (v api.GfxIPVersion, err error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return v, errors.New("want MAJOR.MINOR.STEPPING")
	}

	var x [3]uint64

	for i, p := range parts {
		x[i], err = strconv.ParseUint(p, 0, 32)
		if err != nil {
			return v, errors.Wrap(err, "part %d", i)
		}
	}

	return api.GfxIPVersion{Major: uint32(x[0]), Minor: uint32(x[1]), Stepping: uint32(x[2])}, nil
}
