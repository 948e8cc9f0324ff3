package catalog

import (
	"golang.org/x/exp/maps"

	"github.com/variantcompare/variantcompare/internal/logging"
	"github.com/variantcompare/variantcompare/pkg/setop"
)

// Validate checks every operation of the catalog against the registry.
//
// The first self-referencing operation fails validation immediately with a
// SelfReferenceError. Otherwise every operand must name an identifier declared
// before the operation using it; all offending names across the catalog are
// reported together in one UnresolvedReferenceError.
func Validate(cat *Catalog, reg *Registry) error {
	unresolved := make(map[setop.Identifier]struct{})
	for _, op := range cat.operations {
		if op.ReferencesSelf() {
			return NewSelfReferenceErr(op)
		}

		// An operation never registered in this registry sees every
		// declaration as earlier.
		opIndex := reg.Index(op.ID())
		if opIndex < 0 {
			opIndex = reg.Len()
		}

		for _, ref := range op.References() {
			refIndex := reg.Index(ref)
			if refIndex < 0 || refIndex >= opIndex {
				unresolved[ref] = struct{}{}
			}
		}
	}

	if len(unresolved) > 0 {
		err := NewUnresolvedReferenceErr(maps.Keys(unresolved), reg.Identifiers())
		logging.Debug().Err(err).Msg("set operations failed validation")
		return err
	}

	logging.Debug().Int("operations", len(cat.operations)).Int("identifiers", reg.Len()).Msg("set operations validated")
	return nil
}
