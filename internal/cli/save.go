package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// SaveResult is the result of the save command.
type SaveResult struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Hash    string `json:"hash"`
	Created bool   `json:"created"`
}

func (r SaveResult) writeText(w io.Writer) error {
	verb := "saved"
	if !r.Created {
		verb = "unchanged"
	}
	_, err := fmt.Fprintf(w, "%s %s %s\n", verb, r.ID, r.Name)
	return err
}

// NewSaveCommand creates the save command.
func NewSaveCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "save <manifest>",
		Short: "Compile a manifest and store it in the catalog",
		Long: `Compile a manifest and store the launch in the catalog.

Saving the same launch twice keeps the first id.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)

			l, err := buildManifest(f, args[0])
			if err != nil {
				return report(f, err)
			}

			st, err := rootOpts.openStore()
			if err != nil {
				return report(f, err)
			}
			defer st.Close()

			id, created, err := st.SaveLaunch(cmd.Context(), l)
			if err != nil {
				return report(f, &LoadError{Code: ErrCodeStore, Message: err.Error()})
			}

			return f.Success(SaveResult{ID: id, Name: l.Name, Hash: l.Hash, Created: created})
		},
	}
}
