package cli

import (
	"errors"
	"fmt"

	"github.com/roach88/launchdims/internal/compiler"
)

// report writes err through f and returns the ExitError the command
// should return. Invalid manifests and unknown launches exit 1; anything
// that stops the command from doing its work exits 2.
func report(f *OutputFormatter, err error) error {
	var verrs compiler.ValidationErrors
	if errors.As(err, &verrs) {
		return outputValidationErrors(f, verrs)
	}

	code := loadErrorCode(err)
	msg := err.Error()
	var le *LoadError
	if errors.As(err, &le) {
		msg = le.Message
		if le.Pos.IsValid() || le.Line > 0 {
			msg = le.Error()
		}
	}

	if outErr := f.Error(code, msg, nil); outErr != nil {
		return outErr
	}

	exit := ExitCommandError
	if code == ErrCodeLaunchNotFound || code == ErrCodeAmbiguous {
		exit = ExitFailure
	}
	return reported(WrapExitError(exit, code, err))
}

func reported(e *ExitError) *ExitError {
	e.Reported = true
	return e
}

// outputValidationErrors prints every validation error and returns an
// ExitFailure.
func outputValidationErrors(f *OutputFormatter, errs []compiler.ValidationError) error {
	summary := fmt.Sprintf("validation failed with %d error(s)", len(errs))

	if f.Format == "json" {
		if err := f.Error(errs[0].Code, summary, errs); err != nil {
			return err
		}
		return reported(NewExitError(ExitFailure, summary))
	}

	fmt.Fprintln(f.Writer, "✗ Validation failed")
	for _, e := range errs {
		fmt.Fprintf(f.Writer, "  %s %s: %s\n", e.Code, e.Field, e.Message)
	}
	return reported(NewExitError(ExitFailure, summary))
}
