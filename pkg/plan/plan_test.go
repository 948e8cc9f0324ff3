package plan

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/variantcompare/variantcompare/pkg/catalog"
	"github.com/variantcompare/variantcompare/pkg/setop"
)

func TestBuild(t *testing.T) {
	p, err := Build(context.Background(), Options{
		VCFInputs:         []string{"f1=a.vcf", "b.vcf"},
		PLINKInputs:       []string{"cohort"},
		BinaryPLINKInputs: []string{"bin=cohort2"},
		SetOperations:     []string{"u[f1:i0]", "out=c[s0:p0[x]:bin]"},
	})
	require.NoError(t, err)

	require.Equal(t, []setop.Identifier{"f1", "i0", "p0", "bin", "s0", "out"}, p.Identifiers)
	require.Len(t, p.Inputs, 4)
	require.Len(t, p.Operations, 2)
	require.Equal(t, DefaultOutputFile, p.OutputFile)
	require.Nil(t, p.IntermediateFileNames())
}

func TestBuildIntermediateFiles(t *testing.T) {
	p, err := Build(context.Background(), Options{
		VCFInputs:         []string{"f1=a.vcf", "f2=b.vcf"},
		SetOperations:     []string{"s0=u[f1:f2]", "s1=i[s0:f1]"},
		OutputFile:        "final.vcf",
		IntermediateFiles: true,
	})
	require.NoError(t, err)
	require.Equal(t, "final.vcf", p.OutputFile)
	require.Equal(t, []string{"s0.vcf", "s1.vcf"}, p.IntermediateFileNames())
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		checkFn func(t *testing.T, err error)
	}{
		{
			"association only",
			Options{VCFInputs: []string{"a.vcf"}, AssociationFile: "pheno.txt"},
			func(t *testing.T, err error) {
				require.ErrorIs(t, err, ErrAssociationNotImplemented)
			},
		},
		{
			"association with set operations",
			Options{AssociationFile: "pheno.txt", SetOperations: []string{"u[a]"}},
			func(t *testing.T, err error) {
				require.ErrorContains(t, err, "mutually exclusive")
			},
		},
		{
			"no set operations",
			Options{VCFInputs: []string{"a.vcf"}},
			func(t *testing.T, err error) {
				require.ErrorIs(t, err, ErrNothingToCompare)
			},
		},
		{
			"malformed input",
			Options{PLINKInputs: []string{"a=b=c"}, SetOperations: []string{"u[a]"}},
			func(t *testing.T, err error) {
				var malformed setop.MalformedExpressionError
				require.True(t, errors.As(err, &malformed))
				require.Equal(t, setop.KindInput, malformed.Kind())
				require.ErrorContains(t, err, "invalid plink input")
			},
		},
		{
			"duplicate across families",
			Options{VCFInputs: []string{"x=a.vcf"}, BinaryPLINKInputs: []string{"x=b"}, SetOperations: []string{"u[x]"}},
			func(t *testing.T, err error) {
				var dup catalog.DuplicateIdentifierError
				require.True(t, errors.As(err, &dup))
			},
		},
		{
			"self reference",
			Options{VCFInputs: []string{"f1=a.vcf"}, SetOperations: []string{"out3=c[f1:out3]"}},
			func(t *testing.T, err error) {
				var selfRef catalog.SelfReferenceError
				require.True(t, errors.As(err, &selfRef))
			},
		},
		{
			"unresolved",
			Options{VCFInputs: []string{"f1=a.vcf"}, SetOperations: []string{"out3=c[f2]"}},
			func(t *testing.T, err error) {
				var unresolved catalog.UnresolvedReferenceError
				require.True(t, errors.As(err, &unresolved))
				require.Equal(t, []setop.Identifier{"f2"}, unresolved.Identifiers())
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p, err := Build(context.Background(), test.opts)
			require.Error(t, err)
			require.Nil(t, p)
			test.checkFn(t, err)
		})
	}
}

func examplePlan(t *testing.T) *Plan {
	p, err := Build(context.Background(), Options{
		VCFInputs:         []string{"f1=a.vcf"},
		PLINKInputs:       []string{"cohort"},
		SetOperations:     []string{"u[f1:p0[x,y]]"},
		IntermediateFiles: true,
	})
	require.NoError(t, err)
	return p
}

func TestRenderText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, examplePlan(t), FormatText, "variantcompare"))

	require.Equal(t, `Inputs:
	f1 (vcf): a.vcf
	p0 (plink): cohort.ped, cohort.map
Set operations:
	s0=u[f1:p0[x,y]]
Output file: variant_list.vcf
Intermediate files: s0.vcf
Keep homozygotes: false

Equivalent invocation:
variantcompare \
	-i f1=a.vcf \
	-p p0=cohort \
	-s 's0=u[f1:p0[x,y]]' \
	-o variant_list.vcf \
	-I
`, buf.String())
}

func TestRenderYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, examplePlan(t), FormatYAML, "variantcompare"))

	var decoded yamlPlan
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, yamlPlan{
		Inputs: []yamlInput{
			{ID: "f1", Family: "vcf", File: "a.vcf", Paths: []string{"a.vcf"}},
			{ID: "p0", Family: "plink", File: "cohort", Paths: []string{"cohort.ped", "cohort.map"}},
		},
		Operations: []yamlOperation{
			{
				ID:         "s0",
				Operator:   "union",
				Expression: "s0=u[f1:p0[x,y]]",
				Operands: []yamlOperand{
					{ID: "f1"},
					{ID: "p0", Samples: []string{"x", "y"}},
				},
				Intermediate: "s0.vcf",
			},
		},
		Output: yamlOutput{File: "variant_list.vcf", IntermediateFiles: true},
	}, decoded)
}

func TestParseFormat(t *testing.T) {
	format, err := ParseFormat("YAML")
	require.NoError(t, err)
	require.Equal(t, FormatYAML, format)

	_, err = ParseFormat("json")
	require.EqualError(t, err, "unknown plan format `json`: expected one of text, yaml")

	require.Error(t, Render(&bytes.Buffer{}, examplePlan(t), Format("json"), "variantcompare"))
}
