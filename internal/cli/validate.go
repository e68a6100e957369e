package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/launchdims/internal/compiler"
)

// ValidateResult is the JSON payload of a passing validate command.
type ValidateResult struct {
	Valid bool   `json:"valid"`
	Name  string `json:"name"`
}

func (ValidateResult) String() string {
	return "✓ manifest valid"
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <manifest>",
		Short: "Check a manifest for structural errors",
		Long: `Decode a manifest and check its structure: a name, at least one of
grid, cluster or block, and an x extent for every level present.

Extent values and the fit between levels are not checked.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)

			spec, err := LoadManifest(args[0])
			if err != nil {
				return report(f, err)
			}
			if errs := compiler.Validate(spec); len(errs) > 0 {
				return outputValidationErrors(f, errs)
			}

			f.VerboseLog("validated %s", args[0])
			return f.Success(ValidateResult{Valid: true, Name: spec.Name})
		},
	}
}
