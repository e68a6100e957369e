package cli

import (
	"github.com/spf13/cobra"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored launches, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)

			st, err := rootOpts.openStore()
			if err != nil {
				return report(f, err)
			}
			defer st.Close()

			ls, err := st.ListLaunches(cmd.Context())
			if err != nil {
				return report(f, &LoadError{Code: ErrCodeStore, Message: err.Error()})
			}
			return f.Success(newLaunchList(ls))
		},
	}
}
