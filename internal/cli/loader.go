package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue/token"

	"github.com/roach88/launchdims/internal/compiler"
	"github.com/roach88/launchdims/internal/ir"
)

// Loader and catalog error codes (E001-E099).
const (
	ErrCodeGeneric        = "E001" // Generic/unknown error
	ErrCodeUnsupported    = "E003" // Unsupported manifest extension
	ErrCodeReadFailed     = "E004" // Manifest could not be read
	ErrCodeNotFound       = "E005" // Path not found
	ErrCodeCompileFailed  = "E006" // Manifest did not decode
	ErrCodeStore          = "E008" // Catalog database error
	ErrCodeLaunchNotFound = "E009" // No launch with that id or name
	ErrCodeAmbiguous      = "E010" // Name matches more than one launch
)

// ManifestFormat is a manifest source language.
type ManifestFormat string

const (
	FormatYAML ManifestFormat = "yaml"
	FormatCUE  ManifestFormat = "cue"
	FormatHCL  ManifestFormat = "hcl"
)

// LoadError represents an error that occurred while loading a manifest or
// reaching the catalog.
type LoadError struct {
	Code    string
	Message string
	Pos     token.Pos // CUE position if available
	Line    int       // YAML/HCL line if available
}

func (e *LoadError) Error() string {
	switch {
	case e.Pos.IsValid():
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	case e.Line > 0:
		return fmt.Sprintf("line %d: %s: %s", e.Line, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// FormatOf picks the manifest format from the file extension.
func FormatOf(path string) (ManifestFormat, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, true
	case ".cue":
		return FormatCUE, true
	case ".hcl":
		return FormatHCL, true
	}
	return "", false
}

// LoadManifest reads and decodes the manifest at path. The result is not
// validated; see compiler.Validate and compiler.Build.
func LoadManifest(path string) (*ir.LaunchSpec, error) {
	format, ok := FormatOf(path)
	if !ok {
		return nil, &LoadError{
			Code:    ErrCodeUnsupported,
			Message: fmt.Sprintf("unsupported manifest %s: want .yaml, .yml, .cue or .hcl", path),
		}
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("manifest not found: %s", path)}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeReadFailed, Message: fmt.Sprintf("reading manifest: %v", err)}
	}

	var spec *ir.LaunchSpec
	switch format {
	case FormatYAML:
		spec, err = compiler.CompileYAML(data)
	case FormatCUE:
		spec, err = compiler.CompileCUE(data, path)
	case FormatHCL:
		spec, err = compiler.CompileHCL(data, path)
	}
	if err != nil {
		return nil, toLoadError(err)
	}
	return spec, nil
}

// toLoadError keeps the source position of compile errors.
func toLoadError(err error) *LoadError {
	var ce *compiler.CompileError
	if errors.As(err, &ce) {
		return &LoadError{
			Code:    ErrCodeCompileFailed,
			Message: fmt.Sprintf("%s: %s", ce.Field, ce.Message),
			Pos:     ce.Pos,
			Line:    ce.Line,
		}
	}
	return &LoadError{Code: ErrCodeCompileFailed, Message: err.Error()}
}

// loadErrorCode returns the E0xx code of err, or ErrCodeGeneric.
func loadErrorCode(err error) string {
	var le *LoadError
	if errors.As(err, &le) {
		return le.Code
	}
	return ErrCodeGeneric
}
