package compiler

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/roach88/launchdims/internal/ir"
)

// Validation error codes (E100-E199)
const (
	ErrNameEmpty     = "E101" // name is required
	ErrNoLevels      = "E102" // at least one level required
	ErrAxisXMissing  = "E103" // every present level needs x
	ErrInvalidName   = "E104" // name has characters outside [A-Za-z0-9._-]
	ErrInvalidKernel = "E105" // kernel has characters outside [A-Za-z0-9._-]
)

// identPattern matches catalog names and kernel names.
var identPattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// ValidationError represents a structural manifest error. Validation runs
// on the decoded document, so errors name a field path instead of a line.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
}

// ValidationErrors is returned by Build when Validate finds problems.
type ValidationErrors []ValidationError

func (errs ValidationErrors) Error() string {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// Validate checks the shape of a manifest and returns every problem found.
//
// Axis values are not judged here: zero or oversized extents are left to
// whatever eventually launches with them.
func Validate(spec *ir.LaunchSpec) []ValidationError {
	var errs []ValidationError

	name := strings.TrimSpace(spec.Name)
	switch {
	case name == "":
		errs = append(errs, ValidationError{
			Field:   "name",
			Message: "name is required and must be non-empty",
			Code:    ErrNameEmpty,
		})
	case !identPattern.MatchString(name):
		errs = append(errs, ValidationError{
			Field:   "name",
			Message: fmt.Sprintf("name %q must match %s", name, identPattern),
			Code:    ErrInvalidName,
		})
	}

	if spec.Kernel != "" && !identPattern.MatchString(spec.Kernel) {
		errs = append(errs, ValidationError{
			Field:   "kernel",
			Message: fmt.Sprintf("kernel %q must match %s", spec.Kernel, identPattern),
			Code:    ErrInvalidKernel,
		})
	}

	levels := spec.Levels()
	if len(levels) == 0 {
		errs = append(errs, ValidationError{
			Field:   "levels",
			Message: "at least one of grid, cluster or block is required",
			Code:    ErrNoLevels,
		})
	}

	for _, l := range levels {
		if l.Spec.X == nil {
			errs = append(errs, ValidationError{
				Field:   l.Level.String() + ".x",
				Message: "x is required",
				Code:    ErrAxisXMissing,
			})
		}
	}

	return errs
}
