package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/launchdims/internal/ir"
	"github.com/roach88/launchdims/internal/store"
)

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id|name>",
		Short: "Show a stored launch",
		Long: `Show a stored launch by id. If no launch has that id, the argument
is looked up as a name; a name shared by several launches is an error.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)

			st, err := rootOpts.openStore()
			if err != nil {
				return report(f, err)
			}
			defer st.Close()

			l, err := resolveLaunch(cmd.Context(), st, args[0])
			if err != nil {
				return report(f, err)
			}
			return f.Success(newLaunchView(l))
		},
	}
}

// resolveLaunch finds a launch by id, then by name.
func resolveLaunch(ctx context.Context, st *store.Store, ref string) (*ir.Launch, error) {
	l, err := st.GetLaunch(ctx, ref)
	if err == nil {
		return l, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, &LoadError{Code: ErrCodeStore, Message: err.Error()}
	}

	matches, err := st.FindByName(ctx, ref)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeStore, Message: err.Error()}
	}
	switch len(matches) {
	case 0:
		return nil, &LoadError{Code: ErrCodeLaunchNotFound, Message: fmt.Sprintf("no launch with id or name %q", ref)}
	case 1:
		return matches[0], nil
	}
	return nil, &LoadError{
		Code:    ErrCodeAmbiguous,
		Message: fmt.Sprintf("name %q matches %d launches, use an id", ref, len(matches)),
	}
}
