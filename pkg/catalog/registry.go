package catalog

import (
	"fmt"
	"slices"

	"github.com/variantcompare/variantcompare/internal/logging"
	"github.com/variantcompare/variantcompare/pkg/setop"
)

// DeclarationKind is what declared an identifier.
type DeclarationKind int

const (
	// DeclaredInput is an input dataset.
	DeclaredInput DeclarationKind = iota

	// DeclaredOperation is a set operation.
	DeclaredOperation
)

func (k DeclarationKind) String() string {
	switch k {
	case DeclaredInput:
		return "input"
	case DeclaredOperation:
		return "set operation"
	default:
		return "unknown"
	}
}

// Declaration records a registered identifier.
type Declaration struct {
	ID    setop.Identifier
	Kind  DeclarationKind
	Index int // position in declaration order, 0-based

	// Family is set for inputs only.
	Family setop.InputFamily
}

// Describe renders the declaration for error messages.
func (d Declaration) Describe() string {
	if d.Kind == DeclaredInput {
		return fmt.Sprintf("a %s input", d.Family)
	}
	return "a set operation"
}

// Registry is the ordered set of valid identifiers shared by inputs and set
// operations. The zero value is not usable; call NewRegistry.
type Registry struct {
	declarations []Declaration
	byID         map[setop.Identifier]int
	inputs       []setop.InputFile

	// unnamedInputs counts the inputs of each family that were given a
	// synthesized identifier.
	unnamedInputs map[setop.InputFamily]int
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:          make(map[setop.Identifier]int),
		unnamedInputs: make(map[setop.InputFamily]int),
	}
}

// DeclareInput parses an `[id=]filename` value and registers the input. An
// unnamed input is called `<prefix><n>`, where n counts the earlier unnamed
// inputs of the same family.
func (r *Registry) DeclareInput(family setop.InputFamily, raw string) (setop.InputFile, error) {
	id, fileName, err := setop.ParseInputValue(raw)
	if err != nil {
		return setop.InputFile{}, err
	}

	named := id != ""
	if !named {
		id = setop.DefaultIdentifier(family.Prefix(), r.unnamedInputs[family])
	}

	if err := r.register(id, DeclaredInput, family); err != nil {
		return setop.InputFile{}, err
	}

	if !named {
		r.unnamedInputs[family]++
	}

	in := setop.InputFile{ID: id, Family: family, FileName: fileName}
	r.inputs = append(r.inputs, in)

	logging.Debug().Str("id", string(id)).Stringer("family", family).Str("file", fileName).Msg("declared input")
	return in, nil
}

// Register adds an identifier of the given kind. Inputs should be declared
// through DeclareInput so that their file is recorded.
func (r *Registry) Register(id setop.Identifier, kind DeclarationKind) error {
	return r.register(id, kind, setop.VCF)
}

func (r *Registry) register(id setop.Identifier, kind DeclarationKind, family setop.InputFamily) error {
	if existing, ok := r.Lookup(id); ok {
		return NewDuplicateIdentifierErr(id, existing)
	}

	declaration := Declaration{ID: id, Kind: kind, Index: len(r.declarations)}
	if kind == DeclaredInput {
		declaration.Family = family
	}

	r.byID[id] = declaration.Index
	r.declarations = append(r.declarations, declaration)
	return nil
}

// Has returns true if the identifier is declared.
func (r *Registry) Has(id setop.Identifier) bool {
	_, ok := r.byID[id]
	return ok
}

// Index returns the declaration-order position of the identifier, or -1 if it
// is not declared.
func (r *Registry) Index(id setop.Identifier) int {
	index, ok := r.byID[id]
	if !ok {
		return -1
	}
	return index
}

// Lookup returns the declaration of the identifier.
func (r *Registry) Lookup(id setop.Identifier) (Declaration, bool) {
	index, ok := r.byID[id]
	if !ok {
		return Declaration{}, false
	}
	return r.declarations[index], true
}

// Identifiers returns every declared identifier in declaration order.
func (r *Registry) Identifiers() []setop.Identifier {
	ids := make([]setop.Identifier, 0, len(r.declarations))
	for _, declaration := range r.declarations {
		ids = append(ids, declaration.ID)
	}
	return ids
}

// Inputs returns the declared inputs in declaration order.
func (r *Registry) Inputs() []setop.InputFile {
	return slices.Clone(r.inputs)
}

// Len returns the number of declared identifiers.
func (r *Registry) Len() int {
	return len(r.declarations)
}
