package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/variantcompare/variantcompare/pkg/setop"
	"github.com/variantcompare/variantcompare/pkg/setopdsl/parser"
	"github.com/variantcompare/variantcompare/pkg/testutil"
)

func TestGenerateExpressions(t *testing.T) {
	ops := []*setop.SetOperation{
		setop.NewSetOperation("s0", setop.Union, setop.Operand{ID: "f1"}, setop.Operand{ID: "f2", Samples: setop.Samples("a", "b")}),
		setop.NewSetOperation("out", setop.Complement, setop.Operand{ID: "s0"}, setop.Operand{ID: "f1"}),
	}

	require.Equal(t, "s0=u[f1:f2[a,b]]\nout=c[s0:f1]\n", GenerateExpressions(ops))
	require.Empty(t, GenerateExpressions(nil))
}

func TestGenerateInvocation(t *testing.T) {
	tests := []struct {
		name       string
		invocation Invocation
		expected   string
	}{
		{
			"empty",
			Invocation{},
			"variantcompare\n",
		},
		{
			"full",
			Invocation{
				Inputs: []setop.InputFile{
					{ID: "f1", Family: setop.VCF, FileName: "a.vcf"},
					{ID: "p0", Family: setop.PLINK, FileName: "cohort"},
					{ID: "b0", Family: setop.BinaryPLINK, FileName: "my data"},
				},
				Operations: []*setop.SetOperation{
					setop.NewSetOperation("s0", setop.Intersect, setop.Operand{ID: "f1", Samples: setop.Samples("x")}, setop.Operand{ID: "p0"}),
				},
				OutputFile:        "variant_list.vcf",
				IntermediateFiles: true,
				KeepHomozygotes:   true,
			},
			`variantcompare \
	-i f1=a.vcf \
	-p p0=cohort \
	-b 'b0=my data' \
	-s 's0=i[f1[x]:p0]' \
	-o variant_list.vcf \
	-I \
	-k
`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			generated, err := GenerateInvocation("variantcompare", test.invocation)
			require.NoError(t, err)
			require.Equal(t, test.expected, generated)
		})
	}
}

func TestGenerateInvocationUnknownFamily(t *testing.T) {
	require.Panics(t, func() {
		_, _ = GenerateInvocation("variantcompare", Invocation{
			Inputs: []setop.InputFile{{ID: "x", Family: setop.InputFamily(42), FileName: "x"}},
		})
	})
}

func TestQuote(t *testing.T) {
	require.Equal(t, "plain.vcf", quote("plain.vcf"))
	require.Equal(t, "''", quote(""))
	require.Equal(t, `'o'\''brien.vcf'`, quote("o'brien.vcf"))
	require.Equal(t, "'(x).vcf'", quote("(x).vcf"))
}

func TestGeneratedExpressionsReparse(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ops := rapid.SliceOfN(testutil.SetOperationGenerator(), 0, 6).Draw(t, "operations")

		lines := strings.Split(strings.TrimSuffix(GenerateExpressions(ops), "\n"), "\n")
		if len(ops) == 0 {
			require.Equal(t, []string{""}, lines)
			return
		}

		require.Len(t, lines, len(ops))
		for i, line := range lines {
			parsed, err := parser.Parse(line)
			require.NoError(t, err)
			require.True(t, ops[i].Equal(parsed))
		}
	})
}
