package cmd

import (
	"fmt"

	mcobra "github.com/muesli/mango-cobra"
	"github.com/muesli/roff"
	"github.com/spf13/cobra"
)

// NewManCommand returns a hidden command printing the man page of the root
// command.
func NewManCommand(programName string) *cobra.Command {
	return &cobra.Command{
		Use:    "man",
		Short:  "generate the man page of " + programName,
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			manPage, err := mcobra.NewManPage(1, cmd.Root())
			if err != nil {
				return fmt.Errorf("failed to build man page: %w", err)
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), manPage.Build(roff.NewDocument()))
			return err
		},
	}
}
