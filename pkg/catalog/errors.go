package catalog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/rs/zerolog"

	"github.com/variantcompare/variantcompare/pkg/setop"
)

// maxSuggestionDistance is the largest edit distance at which a declared
// identifier is offered as a replacement for an unresolved one.
const maxSuggestionDistance = 2

// SelfReferenceError occurs when an operation names itself as an operand.
type SelfReferenceError struct {
	error
	operationID setop.Identifier
	expression  string
}

// OperationID returns the identifier of the self-referencing operation.
func (err SelfReferenceError) OperationID() setop.Identifier {
	return err.operationID
}

// Expression returns the canonical form of the offending operation.
func (err SelfReferenceError) Expression() string {
	return err.expression
}

// MarshalZerologObject implements zerolog object marshalling.
func (err SelfReferenceError) MarshalZerologObject(e *zerolog.Event) {
	e.Err(err.error).Str("operation", string(err.operationID)).Str("expression", err.expression)
}

// DetailsMetadata returns the metadata for details for this error.
func (err SelfReferenceError) DetailsMetadata() map[string]string {
	return map[string]string{
		"operation_id": string(err.operationID),
		"expression":   err.expression,
	}
}

// NewSelfReferenceErr constructs a new SelfReferenceError.
func NewSelfReferenceErr(op *setop.SetOperation) error {
	return SelfReferenceError{
		error:       fmt.Errorf("set operation `%s` references itself in `%s`", op.ID(), op),
		operationID: op.ID(),
		expression:  op.String(),
	}
}

// UnresolvedReferenceError occurs when operands name identifiers that were
// not declared before the operations using them.
type UnresolvedReferenceError struct {
	error
	identifiers []setop.Identifier
	suggestions map[setop.Identifier]setop.Identifier
}

// Identifiers returns the unresolved identifiers, sorted and de-duplicated.
func (err UnresolvedReferenceError) Identifiers() []setop.Identifier {
	return slices.Clone(err.identifiers)
}

// Suggestion returns the closest declared identifier to the given unresolved
// one, if any is close enough.
func (err UnresolvedReferenceError) Suggestion(id setop.Identifier) (setop.Identifier, bool) {
	suggestion, ok := err.suggestions[id]
	return suggestion, ok
}

// MarshalZerologObject implements zerolog object marshalling.
func (err UnresolvedReferenceError) MarshalZerologObject(e *zerolog.Event) {
	e.Err(err.error).Strs("identifiers", identifierStrings(err.identifiers))
}

// DetailsMetadata returns the metadata for details for this error.
func (err UnresolvedReferenceError) DetailsMetadata() map[string]string {
	return map[string]string{
		"unresolved_identifiers": strings.Join(identifierStrings(err.identifiers), ","),
	}
}

// NewUnresolvedReferenceErr constructs a new UnresolvedReferenceError. The
// identifiers are sorted and de-duplicated; each one that is not declared at
// all is matched against the declared identifiers for a "did you mean" hint.
func NewUnresolvedReferenceErr(unresolved []setop.Identifier, declared []setop.Identifier) error {
	sorted := slices.Clone(unresolved)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	suggestions := make(map[setop.Identifier]setop.Identifier, len(sorted))
	hints := make([]string, 0, len(sorted))
	for _, id := range sorted {
		if slices.Contains(declared, id) {
			hints = append(hints, fmt.Sprintf("`%s` (declared after its first use)", id))
			continue
		}

		if suggestion, ok := closestIdentifier(id, declared); ok {
			suggestions[id] = suggestion
			hints = append(hints, fmt.Sprintf("`%s` (did you mean `%s`?)", id, suggestion))
			continue
		}
		hints = append(hints, fmt.Sprintf("`%s`", id))
	}

	return UnresolvedReferenceError{
		error:       fmt.Errorf("set operations reference undefined identifiers: %s", strings.Join(hints, ", ")),
		identifiers: sorted,
		suggestions: suggestions,
	}
}

// closestIdentifier returns the declared identifier with the smallest edit
// distance to id, preferring the earliest declared on ties.
func closestIdentifier(id setop.Identifier, declared []setop.Identifier) (setop.Identifier, bool) {
	var best setop.Identifier
	bestDistance := maxSuggestionDistance + 1
	for _, candidate := range declared {
		distance := fuzzy.LevenshteinDistance(string(id), string(candidate))
		if distance < bestDistance {
			best, bestDistance = candidate, distance
		}
	}
	return best, bestDistance <= maxSuggestionDistance
}

// DuplicateIdentifierError occurs when an identifier is declared twice.
type DuplicateIdentifierError struct {
	error
	identifier setop.Identifier
	existing   Declaration
}

// Identifier returns the identifier declared twice.
func (err DuplicateIdentifierError) Identifier() setop.Identifier {
	return err.identifier
}

// Existing returns the first declaration of the identifier.
func (err DuplicateIdentifierError) Existing() Declaration {
	return err.existing
}

// MarshalZerologObject implements zerolog object marshalling.
func (err DuplicateIdentifierError) MarshalZerologObject(e *zerolog.Event) {
	e.Err(err.error).Str("identifier", string(err.identifier)).Stringer("existing", err.existing.Kind)
}

// DetailsMetadata returns the metadata for details for this error.
func (err DuplicateIdentifierError) DetailsMetadata() map[string]string {
	return map[string]string{
		"identifier":    string(err.identifier),
		"existing_kind": err.existing.Kind.String(),
	}
}

// NewDuplicateIdentifierErr constructs a new DuplicateIdentifierError.
func NewDuplicateIdentifierErr(id setop.Identifier, existing Declaration) error {
	return DuplicateIdentifierError{
		error:      fmt.Errorf("identifier `%s` is already declared as %s", id, existing.Describe()),
		identifier: id,
		existing:   existing,
	}
}

func identifierStrings(ids []setop.Identifier) []string {
	strs := make([]string, 0, len(ids))
	for _, id := range ids {
		strs = append(strs, string(id))
	}
	return strs
}
