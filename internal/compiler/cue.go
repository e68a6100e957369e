package compiler

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/roach88/launchdims/internal/ir"
)

//go:embed schema.cue
var schemaCUE string

// CompileCUE decodes a CUE manifest. The manifest is unified with the
// embedded #Launch schema, so unknown fields and axis values outside
// uint32 are rejected with a source position.
func CompileCUE(data []byte, filename string) (*ir.LaunchSpec, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compile manifest schema: %w", err)
	}

	v := ctx.CompileBytes(data, cue.Filename(filename))
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	launch := schema.LookupPath(cue.ParsePath("#Launch")).Unify(v)
	if err := launch.Validate(cue.Concrete(true)); err != nil {
		return nil, formatCUEError(err)
	}

	var spec ir.LaunchSpec
	if err := launch.Decode(&spec); err != nil {
		return nil, formatCUEError(err)
	}
	return &spec, nil
}
