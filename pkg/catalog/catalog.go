// Package catalog holds the identifiers declared on a command line and the
// set operations built from them, and checks that every operation only
// references identifiers declared before it.
package catalog

import (
	"slices"

	"github.com/variantcompare/variantcompare/internal/logging"
	"github.com/variantcompare/variantcompare/pkg/setop"
	"github.com/variantcompare/variantcompare/pkg/setopdsl/parser"
)

// Catalog is the ordered collection of set operations of one invocation.
// Each appended operation is registered into the catalog's registry.
type Catalog struct {
	registry   *Registry
	operations []*setop.SetOperation

	// unnamed counts the operations that were given a synthesized identifier.
	unnamed int
}

// NewCatalog returns an empty catalog registering into the given registry.
func NewCatalog(registry *Registry) *Catalog {
	return &Catalog{registry: registry}
}

// Registry returns the registry the catalog registers into.
func (c *Catalog) Registry() *Registry {
	return c.registry
}

// AppendExpression parses the expression and appends the resulting operation.
func (c *Catalog) AppendExpression(expression string) (*setop.SetOperation, error) {
	op, err := parser.Parse(expression)
	if err != nil {
		return nil, err
	}
	return c.Append(op)
}

// Append names the operation if it is unnamed, rejects it if it references
// itself or its name is taken, registers its identifier and stores it. The stored operation is
// returned.
func (c *Catalog) Append(op *setop.SetOperation) (*setop.SetOperation, error) {
	named := op.IsNamed()
	if !named {
		op = op.WithID(setop.DefaultIdentifier(setop.OperationPrefix, c.unnamed))

		// A synthesized name taken by an earlier declaration is a collision,
		// even when the operation references that declaration.
		if existing, ok := c.registry.Lookup(op.ID()); ok {
			return nil, NewDuplicateIdentifierErr(op.ID(), existing)
		}
	}

	if op.ReferencesSelf() {
		return nil, NewSelfReferenceErr(op)
	}

	if err := c.registry.Register(op.ID(), DeclaredOperation); err != nil {
		return nil, err
	}

	if !named {
		c.unnamed++
	}
	c.operations = append(c.operations, op)

	logging.Debug().Str("id", string(op.ID())).Stringer("operator", op.Operator()).Str("expression", op.String()).Msg("appended set operation")
	return op, nil
}

// Operations returns the operations in the order they were appended.
func (c *Catalog) Operations() []*setop.SetOperation {
	return slices.Clone(c.operations)
}

// Len returns the number of operations.
func (c *Catalog) Len() int {
	return len(c.operations)
}
