package catalog

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/variantcompare/variantcompare/pkg/setop"
)

func TestDeclareInput(t *testing.T) {
	reg := NewRegistry()

	in, err := reg.DeclareInput(setop.VCF, "a.vcf")
	require.NoError(t, err)
	require.Equal(t, setop.InputFile{ID: "i0", Family: setop.VCF, FileName: "a.vcf"}, in)

	in, err = reg.DeclareInput(setop.VCF, "f1=b.vcf")
	require.NoError(t, err)
	require.Equal(t, setop.Identifier("f1"), in.ID)

	in, err = reg.DeclareInput(setop.VCF, "c.vcf")
	require.NoError(t, err)
	require.Equal(t, setop.Identifier("i1"), in.ID)

	in, err = reg.DeclareInput(setop.PLINK, "cohort")
	require.NoError(t, err)
	require.Equal(t, setop.Identifier("p0"), in.ID)
	require.Equal(t, []string{"cohort.ped", "cohort.map"}, in.Paths())

	in, err = reg.DeclareInput(setop.BinaryPLINK, "cohort")
	require.NoError(t, err)
	require.Equal(t, setop.Identifier("b0"), in.ID)

	require.Equal(t, []setop.Identifier{"i0", "f1", "i1", "p0", "b0"}, reg.Identifiers())
	require.Len(t, reg.Inputs(), 5)
	require.Equal(t, 2, reg.Index("i1"))
	require.Equal(t, -1, reg.Index("missing"))
	require.True(t, reg.Has("p0"))
	require.False(t, reg.Has("p1"))

	declaration, ok := reg.Lookup("b0")
	require.True(t, ok)
	require.Equal(t, Declaration{ID: "b0", Kind: DeclaredInput, Index: 4, Family: setop.BinaryPLINK}, declaration)
}

func TestDeclareInputMalformed(t *testing.T) {
	reg := NewRegistry()

	_, err := reg.DeclareInput(setop.VCF, "a=b=c")
	var malformed setop.MalformedExpressionError
	require.True(t, errors.As(err, &malformed))
	require.Equal(t, 0, reg.Len())

	// A rejected value does not consume a synthesized name.
	in, err := reg.DeclareInput(setop.VCF, "a.vcf")
	require.NoError(t, err)
	require.Equal(t, setop.Identifier("i0"), in.ID)
}

func TestDuplicateIdentifier(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.DeclareInput(setop.VCF, "f1=a.vcf")
	require.NoError(t, err)

	_, err = reg.DeclareInput(setop.PLINK, "f1=cohort")
	require.EqualError(t, err, "identifier `f1` is already declared as a vcf input")

	var dup DuplicateIdentifierError
	require.True(t, errors.As(err, &dup))
	require.Equal(t, setop.Identifier("f1"), dup.Identifier())
	require.Equal(t, DeclaredInput, dup.Existing().Kind)
	require.Equal(t, map[string]string{"identifier": "f1", "existing_kind": "input"}, dup.DetailsMetadata())

	// A synthesized name colliding with a user-chosen one is rejected too.
	_, err = reg.DeclareInput(setop.VCF, "i0=b.vcf")
	require.NoError(t, err)
	_, err = reg.DeclareInput(setop.VCF, "c.vcf")
	require.True(t, errors.As(err, &dup))
	require.Equal(t, setop.Identifier("i0"), dup.Identifier())

	require.ErrorAs(t, reg.Register("f1", DeclaredOperation), &dup)
	require.Equal(t, []setop.Identifier{"f1", "i0"}, reg.Identifiers())
}

func TestRegistriesDoNotShareCounters(t *testing.T) {
	first := NewRegistry()
	_, err := first.DeclareInput(setop.VCF, "a.vcf")
	require.NoError(t, err)

	second := NewRegistry()
	in, err := second.DeclareInput(setop.VCF, "a.vcf")
	require.NoError(t, err)
	require.Equal(t, setop.Identifier("i0"), in.ID)
}

func TestUnnamedInputNaming(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		reg := NewRegistry()
		unnamed := make(map[setop.InputFamily]int)

		count := rapid.IntRange(0, 20).Draw(t, "count")
		for i := range count {
			family := rapid.SampledFrom(setop.InputFamilies).Draw(t, "family")
			named := rapid.Bool().Draw(t, "named")

			raw := "data.file"
			if named {
				raw = fmt.Sprintf("named_%d=%s", i, raw)
			}

			in, err := reg.DeclareInput(family, raw)
			require.NoError(t, err)

			if named {
				require.Equal(t, setop.Identifier(fmt.Sprintf("named_%d", i)), in.ID)
				continue
			}

			require.Equal(t, setop.DefaultIdentifier(family.Prefix(), unnamed[family]), in.ID)
			unnamed[family]++
		}

		require.Equal(t, count, reg.Len())
	})
}
