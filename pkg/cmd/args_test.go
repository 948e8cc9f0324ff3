package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     string
		expected string
	}{
		{"empty", "", ""},
		{"single values", "-i a.vcf -s u[i0]", "-i a.vcf -s u[i0]"},
		{"several values after short flag", "-i a.vcf b.vcf -s u[i0:i1]", "-i a.vcf --input b.vcf -s u[i0:i1]"},
		{"several values after long flag", "--set-operation u[a] i[s0]", "--set-operation u[a] --set-operation i[s0]"},
		{"inline long value", "--input=a.vcf b.vcf", "--input=a.vcf --input b.vcf"},
		{"inline short value", "-ia.vcf b.vcf", "-ia.vcf --input b.vcf"},
		{"grouped shorthands", "-Ii a.vcf b.vcf", "-Ii a.vcf --input b.vcf"},
		{"bool flag ends the list", "-i a.vcf -I b.vcf", "-i a.vcf -I b.vcf"},
		{"value flag ends the list", "-p root -o out.vcf extra", "-p root -o out.vcf extra"},
		{"persistent flag ends the list", "-s u[a] --log-level debug u[b]", "-s u[a] --log-level debug u[b]"},
		{"list after persistent flag", "--log-level debug -s u[a] u[b]", "--log-level debug -s u[a] --set-operation u[b]"},
		{"terminator", "-s u[a] -- u[b]", "-s u[a] -- u[b]"},
		{"unknown flag", "-i a.vcf --unknown b.vcf", "-i a.vcf --unknown b.vcf"},
		{"subcommand", "version --include-deps", "version --include-deps"},
		{"trailing list flag", "-b", "-b"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rootCmd, err := BuildRootCommand("variantcompare")
			require.NoError(t, err)

			require.Equal(t, strings.Fields(test.expected), NormalizeArgs(rootCmd, strings.Fields(test.args)))
		})
	}
}
