// Package plan turns the raw command-line values of one comparison into a
// validated plan: the declared inputs, the ordered set operations and the
// output options.
package plan

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/variantcompare/variantcompare/internal/logging"
	"github.com/variantcompare/variantcompare/pkg/catalog"
	"github.com/variantcompare/variantcompare/pkg/setop"
	"github.com/variantcompare/variantcompare/pkg/setopdsl/generator"
)

var tracer = otel.Tracer("variantcompare/pkg/plan")

const (
	attrInputCount     = "variantcompare.inputs"
	attrOperationCount = "variantcompare.operations"
	attrInputFamily    = "variantcompare.input_family"
)

// DefaultOutputFile is the final output name used when none is given.
const DefaultOutputFile = "variant_list.vcf"

// IntermediateExtension is appended to an operation's identifier to name its
// intermediate output.
const IntermediateExtension = ".vcf"

// ErrAssociationNotImplemented is returned when an association study is
// requested instead of set operations.
var ErrAssociationNotImplemented = errors.New("association studies are not implemented; use set operations (-s) instead")

// ErrNothingToCompare is returned when neither set operations nor an
// association study are requested.
var ErrNothingToCompare = errors.New("at least one set operation (-s) is required")

// Options are the raw values of one invocation.
type Options struct {
	VCFInputs         []string
	PLINKInputs       []string
	BinaryPLINKInputs []string
	SetOperations     []string
	AssociationFile   string
	OutputFile        string
	IntermediateFiles bool
	KeepHomozygotes   bool
}

// Plan is a validated comparison.
type Plan struct {
	Inputs            []setop.InputFile
	Operations        []*setop.SetOperation
	Identifiers       []setop.Identifier
	OutputFile        string
	IntermediateFiles bool
	KeepHomozygotes   bool
}

// Build declares every input, parses and appends every set operation, then
// validates the resulting catalog. All inputs are declared before any
// operation, VCF first, then PLINK, then binary PLINK.
func Build(ctx context.Context, opts Options) (*Plan, error) {
	ctx, span := tracer.Start(ctx, "BuildPlan")
	defer span.End()

	p, err := build(ctx, opts)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.Int(attrInputCount, len(p.Inputs)),
		attribute.Int(attrOperationCount, len(p.Operations)),
	)
	return p, nil
}

func build(ctx context.Context, opts Options) (*Plan, error) {
	if opts.AssociationFile != "" {
		if len(opts.SetOperations) > 0 {
			return nil, errors.New("set operations (-s) and an association study (-a) are mutually exclusive")
		}
		return nil, ErrAssociationNotImplemented
	}

	if len(opts.SetOperations) == 0 {
		return nil, ErrNothingToCompare
	}

	reg := catalog.NewRegistry()
	if err := declareInputs(ctx, reg, opts); err != nil {
		return nil, err
	}

	cat := catalog.NewCatalog(reg)
	if err := appendOperations(ctx, cat, opts.SetOperations); err != nil {
		return nil, err
	}

	if err := validate(ctx, cat, reg); err != nil {
		return nil, err
	}

	outputFile := opts.OutputFile
	if outputFile == "" {
		outputFile = DefaultOutputFile
	}

	return &Plan{
		Inputs:            reg.Inputs(),
		Operations:        cat.Operations(),
		Identifiers:       reg.Identifiers(),
		OutputFile:        outputFile,
		IntermediateFiles: opts.IntermediateFiles,
		KeepHomozygotes:   opts.KeepHomozygotes,
	}, nil
}

func declareInputs(ctx context.Context, reg *catalog.Registry, opts Options) error {
	_, span := tracer.Start(ctx, "DeclareInputs")
	defer span.End()

	families := []struct {
		family setop.InputFamily
		values []string
	}{
		{setop.VCF, opts.VCFInputs},
		{setop.PLINK, opts.PLINKInputs},
		{setop.BinaryPLINK, opts.BinaryPLINKInputs},
	}

	for _, f := range families {
		for _, raw := range f.values {
			if _, err := reg.DeclareInput(f.family, raw); err != nil {
				span.SetAttributes(attribute.String(attrInputFamily, f.family.String()))
				span.RecordError(err)
				return fmt.Errorf("invalid %s input: %w", f.family, err)
			}
		}
	}

	span.SetAttributes(attribute.Int(attrInputCount, reg.Len()))
	return nil
}

func appendOperations(ctx context.Context, cat *catalog.Catalog, expressions []string) error {
	_, span := tracer.Start(ctx, "AppendOperations", trace.WithAttributes(
		attribute.Int(attrOperationCount, len(expressions)),
	))
	defer span.End()

	for _, expression := range expressions {
		if _, err := cat.AppendExpression(expression); err != nil {
			span.RecordError(err)
			return err
		}
	}
	return nil
}

func validate(ctx context.Context, cat *catalog.Catalog, reg *catalog.Registry) error {
	_, span := tracer.Start(ctx, "ValidateOperations")
	defer span.End()

	if err := catalog.Validate(cat, reg); err != nil {
		span.RecordError(err)
		return err
	}

	logging.Ctx(ctx).Debug().Int("operations", cat.Len()).Msg("plan validated")
	return nil
}

// IntermediateFile returns the name of the intermediate output of the
// operation.
func IntermediateFile(op *setop.SetOperation) string {
	return string(op.ID()) + IntermediateExtension
}

// IntermediateFileNames returns the intermediate output names, one per operation
// in order, or nil when intermediate files are disabled.
func (p *Plan) IntermediateFileNames() []string {
	if !p.IntermediateFiles {
		return nil
	}

	names := make([]string, 0, len(p.Operations))
	for _, op := range p.Operations {
		names = append(names, IntermediateFile(op))
	}
	return names
}

// Invocation returns the canonical invocation equivalent to the plan.
func (p *Plan) Invocation() generator.Invocation {
	return generator.Invocation{
		Inputs:            p.Inputs,
		Operations:        p.Operations,
		OutputFile:        p.OutputFile,
		IntermediateFiles: p.IntermediateFiles,
		KeepHomozygotes:   p.KeepHomozygotes,
	}
}
