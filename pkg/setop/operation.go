package setop

import (
	"slices"
	"strings"
)

// OperatorKind is the set operation applied to an operation's operands.
type OperatorKind int

const (
	// Union keeps variants found in any operand.
	Union OperatorKind = iota

	// Intersect keeps variants found in every operand.
	Intersect

	// Complement keeps variants of the first operand absent from the others.
	Complement
)

var operatorCodes = map[string]OperatorKind{
	"u": Union,
	"i": Intersect,
	"c": Complement,
}

// OperatorFromCode returns the operator selected by a single-letter code,
// case-insensitively.
func OperatorFromCode(code string) (OperatorKind, bool) {
	kind, ok := operatorCodes[strings.ToLower(code)]
	return kind, ok
}

// Code returns the canonical lowercase single-letter code of the operator.
func (k OperatorKind) Code() string {
	switch k {
	case Union:
		return "u"
	case Intersect:
		return "i"
	case Complement:
		return "c"
	default:
		return "?"
	}
}

func (k OperatorKind) String() string {
	switch k {
	case Union:
		return "union"
	case Intersect:
		return "intersect"
	case Complement:
		return "complement"
	default:
		return "unknown"
	}
}

// SampleFilter selects the samples of an operand: either every sample of the
// referenced dataset, or an ordered list of sample ids.
type SampleFilter struct {
	samples []string
}

// AllSamples returns the filter selecting every sample.
func AllSamples() SampleFilter {
	return SampleFilter{}
}

// Samples returns a filter selecting the given sample ids, in order. With no
// ids it is equivalent to AllSamples.
func Samples(ids ...string) SampleFilter {
	if len(ids) == 0 {
		return SampleFilter{}
	}
	return SampleFilter{samples: slices.Clone(ids)}
}

// IsAll returns true if the filter selects every sample.
func (f SampleFilter) IsAll() bool {
	return len(f.samples) == 0
}

// SampleIDs returns a copy of the selected sample ids, or nil for AllSamples.
func (f SampleFilter) SampleIDs() []string {
	return slices.Clone(f.samples)
}

// Equal returns true if both filters select the same ids in the same order.
func (f SampleFilter) Equal(other SampleFilter) bool {
	return slices.Equal(f.samples, other.samples)
}

// String renders the filter as it appears after an operand name: empty for
// all samples, `[id1,id2]` otherwise.
func (f SampleFilter) String() string {
	if f.IsAll() {
		return ""
	}
	return "[" + strings.Join(f.samples, ",") + "]"
}

// Operand is one referenced dataset or operation together with its sample
// filter.
type Operand struct {
	ID      Identifier
	Samples SampleFilter
}

// Equal returns true if both operands reference the same identifier with the
// same sample filter.
func (o Operand) Equal(other Operand) bool {
	return o.ID == other.ID && o.Samples.Equal(other.Samples)
}

func (o Operand) String() string {
	return string(o.ID) + o.Samples.String()
}

// SetOperation is a named operator applied to an ordered list of operands.
// Values are immutable; WithID returns a renamed copy.
type SetOperation struct {
	id       Identifier
	operator OperatorKind
	operands []Operand
}

// NewSetOperation builds an operation. An empty id marks the operation as
// unnamed until a catalog assigns its default identifier.
func NewSetOperation(id Identifier, operator OperatorKind, operands ...Operand) *SetOperation {
	return &SetOperation{
		id:       id,
		operator: operator,
		operands: slices.Clone(operands),
	}
}

// ID returns the operation's own identifier, empty if unnamed.
func (op *SetOperation) ID() Identifier {
	return op.id
}

// IsNamed returns true if the operation has an identifier.
func (op *SetOperation) IsNamed() bool {
	return op.id != ""
}

// Operator returns the operation's operator.
func (op *SetOperation) Operator() OperatorKind {
	return op.operator
}

// Operands returns a copy of the operands, in expression order.
func (op *SetOperation) Operands() []Operand {
	return slices.Clone(op.operands)
}

// References returns the identifiers referenced by the operands, in
// expression order and including repeats.
func (op *SetOperation) References() []Identifier {
	refs := make([]Identifier, 0, len(op.operands))
	for _, operand := range op.operands {
		refs = append(refs, operand.ID)
	}
	return refs
}

// ReferencesSelf returns true if any operand names the operation itself.
func (op *SetOperation) ReferencesSelf() bool {
	if op.id == "" {
		return false
	}
	return slices.Contains(op.References(), op.id)
}

// WithID returns a copy of the operation carrying the given identifier.
func (op *SetOperation) WithID(id Identifier) *SetOperation {
	return NewSetOperation(id, op.operator, op.operands...)
}

// Equal returns true if both operations are identical.
func (op *SetOperation) Equal(other *SetOperation) bool {
	if op == nil || other == nil {
		return op == other
	}
	return op.id == other.id &&
		op.operator == other.operator &&
		slices.EqualFunc(op.operands, other.operands, Operand.Equal)
}

// String renders the operation in expression syntax: `[id=]op[operand:...]`.
func (op *SetOperation) String() string {
	var sb strings.Builder
	if op.id != "" {
		sb.WriteString(string(op.id))
		sb.WriteString("=")
	}

	sb.WriteString(op.operator.Code())
	sb.WriteString("[")
	for i, operand := range op.operands {
		if i > 0 {
			sb.WriteString(":")
		}
		sb.WriteString(operand.String())
	}
	sb.WriteString("]")
	return sb.String()
}
