package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/go-logr/zerologr"
	"github.com/jzelinskie/cobrautil/v2"
	"github.com/jzelinskie/cobrautil/v2/cobraotel"
	"github.com/jzelinskie/cobrautil/v2/cobrazerolog"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/variantcompare/variantcompare/internal/logging"
)

// RegisterRootFlags registers the logging and tracing flags shared by every
// command.
func RegisterRootFlags(cmd *cobra.Command) {
	cobrazerolog.New().RegisterFlags(cmd.PersistentFlags())
	cobraotel.New(cmd.Use).RegisterFlags(cmd.PersistentFlags())
}

// DefaultPreRunE sets up viper, zerolog, and OpenTelemetry flag handling for a
// command.
func DefaultPreRunE(programName string) cobrautil.CobraRunFunc {
	return cobrautil.CommandStack(
		cobrautil.SyncViperDotEnvPreRunE(programName, programName+".env", zerologr.New(&logging.Logger)),
		cobrazerolog.New(
			cobrazerolog.WithTarget(func(logger zerolog.Logger) {
				logging.SetGlobalLogger(logger)
			}),
		).RunE(),
		cobraotel.New(programName,
			cobraotel.WithLogger(zerologr.New(&logging.Logger)),
		).RunE(),
	)
}

const expressionHelp = `Set operations are written as

	[id=]op[operand(:operand)*]

where op is u (union), i (intersection) or c (complement, the variants of the
first operand absent from the others), in either case. Each operand names an
input or an earlier set operation, optionally followed by the samples to keep:

	operand[sample1,sample2]

Inputs are given as [id=]file. Unnamed VCF, PLINK and binary PLINK inputs are
called i0, i1, ..., p0, p1, ... and b0, b1, ...; unnamed set operations are
called s0, s1, .... Every flag may also be set through a %[1]s_<FLAG>
environment variable or a %[2]s.env file.`

// CompareExample returns the usage examples of the comparison command.
func CompareExample(programName string) string {
	return fmt.Sprintf(`	%[1]s:
		%[3]s -i fId1=a.vcf fId2=b.vcf -s 'out1=u[fId1:fId2]'

	%[2]s:
		%[3]s -i fId1=a.vcf fId2=b.vcf fId3=c.vcf fId4=d.vcf \
			-s 'out1=u[fId1[sId1,sId2]:fId2[sId3]]' 'out2=u[fId3[sId4,sId5]:fId4[sId6]]' 'out3=i[out1:out2]' \
			-I -o shared.vcf
`,
		color.YellowString("Union of two files"),
		color.GreenString("Intersection of per-sample unions, keeping intermediates"),
		programName,
	)
}

// NewRootCommand returns the comparison command, which is the root of the
// program.
func NewRootCommand(programName string, config *CompareConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:           programName,
		Short:         "Compare genetic-variant datasets through set operations",
		Long:          "Combine VCF and PLINK datasets, and the results of earlier operations, through unions, intersections and complements over per-sample subsets of their variants.\n\n" + fmt.Sprintf(expressionHelp, envPrefix(programName), programName),
		Example:       CompareExample(programName),
		Args:          cobra.NoArgs,
		PreRunE:       DefaultPreRunE(programName),
		RunE:          NewCompareRunE(programName, config),
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return NewUsageErr(err)
	})
	return cmd
}

// envPrefix is the prefix of the environment variables read for the program's
// flags.
func envPrefix(programName string) string {
	return strings.ToUpper(strings.ReplaceAll(programName, "-", "_"))
}
