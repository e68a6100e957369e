package compiler

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/roach88/launchdims/internal/ir"
)

// WarpSize is exposed to HCL manifests as the variable warp.
const WarpSize = 32

// hclLaunch is the HCL layout of a manifest:
//
//	name   = "sgemm"
//	kernel = "sgemm_tiled"
//
//	grid {
//	  x = 64
//	  y = 64
//	}
//
//	block {
//	  x      = warp * 8
//	  static = true
//	}
type hclLaunch struct {
	Name    string    `hcl:"name"`
	Kernel  string    `hcl:"kernel,optional"`
	Grid    *hclLevel `hcl:"grid,block"`
	Cluster *hclLevel `hcl:"cluster,block"`
	Block   *hclLevel `hcl:"block,block"`
}

type hclLevel struct {
	X      uint32  `hcl:"x"`
	Y      *uint32 `hcl:"y,optional"`
	Z      *uint32 `hcl:"z,optional"`
	Static bool    `hcl:"static,optional"`
}

func (l *hclLevel) spec() *ir.LevelSpec {
	if l == nil {
		return nil
	}
	return &ir.LevelSpec{X: ir.U32(l.X), Y: l.Y, Z: l.Z, Static: l.Static}
}

// evalContext returns the variables available to manifest expressions.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"warp": cty.NumberIntVal(WarpSize),
		},
	}
}

// CompileHCL decodes an HCL manifest.
func CompileHCL(data []byte, filename string) (*ir.LaunchSpec, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, formatHCLDiagnostics(diags)
	}

	var raw hclLaunch
	if diags := gohcl.DecodeBody(file.Body, evalContext(), &raw); diags.HasErrors() {
		return nil, formatHCLDiagnostics(diags)
	}

	return &ir.LaunchSpec{
		Name:    raw.Name,
		Kernel:  raw.Kernel,
		Grid:    raw.Grid.spec(),
		Cluster: raw.Cluster.spec(),
		Block:   raw.Block.spec(),
	}, nil
}
