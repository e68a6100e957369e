package compiler

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/roach88/launchdims/internal/dims"
	"github.com/roach88/launchdims/internal/ir"
)

// Build validates spec and compiles it into a Launch. Each level goes
// through the runtime factory of that level, so the manifest's source
// form decides which axes are static.
func Build(spec *ir.LaunchSpec) (*ir.Launch, error) {
	if errs := Validate(spec); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	l := &ir.Launch{
		Name:   norm.NFC.String(strings.TrimSpace(spec.Name)),
		Kernel: norm.NFC.String(spec.Kernel),
	}
	if spec.Grid != nil {
		d := dims.Grid(*spec.Grid)
		l.Grid = &d
	}
	if spec.Cluster != nil {
		d := dims.Cluster(*spec.Cluster)
		l.Cluster = &d
	}
	if spec.Block != nil {
		d := dims.Block(*spec.Block)
		l.Block = &d
	}

	hash, err := ir.LaunchHash(l)
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", l.Name, err)
	}
	l.Hash = hash
	return l, nil
}
