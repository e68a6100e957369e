package compiler

import (
	"bytes"
	"errors"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/roach88/launchdims/internal/ir"
)

// CompileYAML decodes a YAML manifest. Unknown fields are rejected.
func CompileYAML(data []byte) (*ir.LaunchSpec, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var spec ir.LaunchSpec
	if err := dec.Decode(&spec); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &CompileError{Field: "yaml", Message: "manifest is empty"}
		}
		return nil, &CompileError{Field: "yaml", Message: err.Error()}
	}
	return &spec, nil
}
