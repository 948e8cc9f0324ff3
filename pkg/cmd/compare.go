package cmd

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/jzelinskie/cobrautil/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/variantcompare/variantcompare/internal/logging"
	"github.com/variantcompare/variantcompare/pkg/plan"
	"github.com/variantcompare/variantcompare/pkg/varianterrors"
)

// CompareConfig is the configuration of a comparison.
type CompareConfig struct {
	VCFInputs         []string
	PLINKInputs       []string
	BinaryPLINKInputs []string
	SetOperations     []string

	// AssociationFile is a phenotype file for an association study.
	AssociationFile string

	OutputFile        string
	IntermediateFiles bool
	KeepHomozygotes   bool
	PlanFormat        plan.Format
}

// Complete declares the inputs and set operations and validates them into a
// plan.
func (c *CompareConfig) Complete(ctx context.Context) (*plan.Plan, error) {
	return plan.Build(ctx, plan.Options{
		VCFInputs:         c.VCFInputs,
		PLINKInputs:       c.PLINKInputs,
		BinaryPLINKInputs: c.BinaryPLINKInputs,
		SetOperations:     c.SetOperations,
		AssociationFile:   c.AssociationFile,
		OutputFile:        c.OutputFile,
		IntermediateFiles: c.IntermediateFiles,
		KeepHomozygotes:   c.KeepHomozygotes,
	})
}

// RegisterCompareFlags registers the comparison flags on the command.
func RegisterCompareFlags(cmd *cobra.Command, config *CompareConfig) error {
	config.PlanFormat = plan.FormatText

	flags := cmd.Flags()
	flags.VarP(newInputValue(&config.VCFInputs), "input", "i", "VCF input file, optionally named as id=file; repeatable and accepts several values")
	flags.VarP(newInputValue(&config.PLINKInputs), "pinput", "p", "PLINK root name (.ped and .map), optionally named as id=root; repeatable and accepts several values")
	flags.VarP(newInputValue(&config.BinaryPLINKInputs), "binput", "b", "binary PLINK root name (.bed, .bim and .fam), optionally named as id=root; repeatable and accepts several values")
	flags.VarP(newExpressionValue(&config.SetOperations), "set-operation", "s", "set operation of the form [id=]op[operand(:operand)*]; repeatable and accepts several values")
	flags.StringVarP(&config.AssociationFile, "association", "a", "", "phenotype file for an association study (not implemented)")
	flags.StringVarP(&config.OutputFile, "outfile", "o", plan.DefaultOutputFile, "name of the final output file")
	flags.BoolVarP(&config.IntermediateFiles, "intermediate-files", "I", false, "write the result of every set operation to <id>"+plan.IntermediateExtension)
	flags.BoolVarP(&config.KeepHomozygotes, "keep-homozygotes", "k", false, "list homozygotes when a variant is mixed across samples")
	flags.Var(&formatValue{&config.PlanFormat}, "plan-format", fmt.Sprintf("format of the printed plan (%s, %s)", plan.FormatText, plan.FormatYAML))

	cmd.MarkFlagsMutuallyExclusive("association", "set-operation")
	return nil
}

// NewCompareRunE builds and prints the comparison plan.
func NewCompareRunE(programName string, config *CompareConfig) cobrautil.CobraRunFunc {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		p, err := config.Complete(ctx)
		if err != nil {
			details := zerolog.Dict()
			metadata := varianterrors.CombineMetadata(err)
			for _, key := range slices.Sorted(maps.Keys(metadata)) {
				details = details.Str(key, metadata[key])
			}

			logging.EmbedError(logging.Ctx(ctx).Debug(), err).Dict("details", details).Msg("comparison rejected")
			return err
		}

		logging.Ctx(ctx).Debug().
			Int("inputs", len(p.Inputs)).
			Int("operations", len(p.Operations)).
			Str("outfile", p.OutputFile).
			Str("format", string(config.PlanFormat)).
			Msg("comparison planned")
		return plan.Render(cmd.OutOrStdout(), p, config.PlanFormat, programName)
	}
}
