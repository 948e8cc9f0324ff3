package testutil

import (
	"pgregory.net/rapid"

	"github.com/variantcompare/variantcompare/pkg/setop"
)

// IdentifierGenerator draws identifiers made of word characters.
func IdentifierGenerator() *rapid.Generator[setop.Identifier] {
	return rapid.Custom(func(t *rapid.T) setop.Identifier {
		return setop.Identifier(rapid.StringMatching(`[A-Za-z0-9_]{1,12}`).Draw(t, "identifier"))
	})
}

// OperandGenerator draws operands whose sample filter is either every sample
// or a short list of sample ids.
func OperandGenerator() *rapid.Generator[setop.Operand] {
	return rapid.Custom(func(t *rapid.T) setop.Operand {
		id := IdentifierGenerator().Draw(t, "operand")
		samples := rapid.SliceOfN(rapid.StringMatching(`[A-Za-z0-9_]{1,8}`), 0, 4).Draw(t, "samples")
		return setop.Operand{ID: id, Samples: setop.Samples(samples...)}
	})
}

// SetOperationGenerator draws operations, named or not, with one to five
// operands.
func SetOperationGenerator() *rapid.Generator[*setop.SetOperation] {
	return rapid.Custom(func(t *rapid.T) *setop.SetOperation {
		var id setop.Identifier
		if rapid.Bool().Draw(t, "named") {
			id = IdentifierGenerator().Draw(t, "id")
		}

		operator := rapid.SampledFrom([]setop.OperatorKind{setop.Union, setop.Intersect, setop.Complement}).Draw(t, "operator")
		operands := rapid.SliceOfN(OperandGenerator(), 1, 5).Draw(t, "operands")
		return setop.NewSetOperation(id, operator, operands...)
	})
}
