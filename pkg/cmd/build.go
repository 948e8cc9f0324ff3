package cmd

import (
	"context"
	"io"

	"github.com/spf13/cobra"
)

// BuildRootCommand assembles the comparison command with its flags and
// subcommands.
func BuildRootCommand(programName string) (*cobra.Command, error) {
	var config CompareConfig
	rootCmd := NewRootCommand(programName, &config)
	RegisterRootFlags(rootCmd)
	if err := RegisterCompareFlags(rootCmd, &config); err != nil {
		return nil, err
	}

	versionCmd := NewVersionCommand(programName)
	RegisterVersionFlags(versionCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(NewManCommand(programName))

	return rootCmd, nil
}

// Run executes the program with the given arguments, excluding the program
// name, and returns its exit status. Without arguments the usage is printed
// and the status is non-zero.
func Run(ctx context.Context, programName string, args []string, stdout, stderr io.Writer) int {
	rootCmd, err := BuildRootCommand(programName)
	if err != nil {
		PrintError(stderr, err)
		return 1
	}

	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if len(args) == 0 {
		_, _ = io.WriteString(stderr, rootCmd.UsageString())
		return 1
	}

	rootCmd.SetArgs(NormalizeArgs(rootCmd, args))
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		PrintError(stderr, err)
		return 1
	}
	return 0
}
