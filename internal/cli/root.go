package cli

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/roach88/launchdims/internal/store"
)

// EnvDB names the environment variable that overrides the default --db path.
const EnvDB = "LAUNCHDIMS_DB"

// DefaultDBPath is used when neither --db nor LAUNCHDIMS_DB is set.
const DefaultDBPath = "launchdims.db"

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	DBPath  string

	// ids overrides the catalog id generator. Tests use it for stable ids.
	ids store.IDGenerator
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the launchdims CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "launchdims",
		Short: "launchdims - launch dimension manifests",
		Long: "Compile grid, cluster and block dimension manifests (YAML, CUE or HCL)\n" +
			"into canonical launch extents and keep them in a local catalog.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			installLogger(opts.Verbose, cmd.ErrOrStderr())
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.DBPath, "db", defaultDBPath(), "catalog database path (env "+EnvDB+")")

	cmd.AddCommand(NewInspectCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewSaveCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewShowCommand(opts))
	cmd.AddCommand(NewDeleteCommand(opts))

	return cmd
}

func defaultDBPath() string {
	if p := os.Getenv(EnvDB); p != "" {
		return p
	}
	return DefaultDBPath
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}

// formatter builds the OutputFormatter for cmd from the global options.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
	}
}

// openStore opens the catalog named by --db.
func (o *RootOptions) openStore() (*store.Store, error) {
	var opts []store.Option
	if o.ids != nil {
		opts = append(opts, store.WithIDGenerator(o.ids))
	}
	st, err := store.Open(o.DBPath, opts...)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeStore, Message: fmt.Sprintf("open catalog %s: %v", o.DBPath, err)}
	}
	return st, nil
}
