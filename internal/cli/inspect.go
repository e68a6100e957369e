package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/launchdims/internal/compiler"
	"github.com/roach88/launchdims/internal/ir"
)

// NewInspectCommand creates the inspect command.
func NewInspectCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <manifest>",
		Short: "Show the canonical extents of a manifest",
		Long: `Compile a manifest and print, for each level, its canonical
(x, y, z) extents, which axes are static, and how many units of the next
inner level it holds.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)

			l, err := buildManifest(f, args[0])
			if err != nil {
				return report(f, err)
			}
			return f.Success(newLaunchView(l))
		},
	}
}

// buildManifest loads and compiles the manifest at path.
func buildManifest(f *OutputFormatter, path string) (*ir.Launch, error) {
	spec, err := LoadManifest(path)
	if err != nil {
		return nil, err
	}
	f.VerboseLog("loaded %s", path)

	l, err := compiler.Build(spec)
	if err != nil {
		return nil, err
	}
	f.VerboseLog("built %s (%d levels)", l.Name, len(l.Levels()))
	return l, nil
}
