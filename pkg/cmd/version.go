package cmd

import (
	"fmt"

	"github.com/jzelinskie/cobrautil/v2"
	"github.com/spf13/cobra"

	"github.com/variantcompare/variantcompare/pkg/releases"
)

func RegisterVersionFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("include-deps", false, "include dependencies' versions")
}

func NewVersionCommand(programName string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "displays the version of " + programName,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), releases.UsageVersion(programName, cobrautil.MustGetBool(cmd, "include-deps")))
			return err
		},
	}
}
