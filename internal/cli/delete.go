package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/launchdims/internal/store"
)

// DeleteResult is the result of the delete command.
type DeleteResult struct {
	ID string `json:"id"`
}

func (r DeleteResult) writeText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "deleted %s\n", r.ID)
	return err
}

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a stored launch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)

			st, err := rootOpts.openStore()
			if err != nil {
				return report(f, err)
			}
			defer st.Close()

			err = st.DeleteLaunch(cmd.Context(), args[0])
			if errors.Is(err, store.ErrNotFound) {
				return report(f, &LoadError{Code: ErrCodeLaunchNotFound, Message: fmt.Sprintf("no launch with id %q", args[0])})
			}
			if err != nil {
				return report(f, &LoadError{Code: ErrCodeStore, Message: err.Error()})
			}
			return f.Success(DeleteResult{ID: args[0]})
		},
	}
}
