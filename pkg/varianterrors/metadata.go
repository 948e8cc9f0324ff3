package varianterrors

import (
	"errors"
)

// HasMetadata indicates that the error has metadata defined.
type HasMetadata interface {
	// DetailsMetadata returns the metadata for details for this error.
	DetailsMetadata() map[string]string
}

// CombineMetadata walks the chain of wrapped errors and merges the metadata of
// every error implementing HasMetadata. Outer errors win on key collisions.
func CombineMetadata(err error) map[string]string {
	combined := make(map[string]string)
	for current := err; current != nil; current = errors.Unwrap(current) {
		withMetadata, ok := current.(HasMetadata)
		if !ok {
			continue
		}

		for key, value := range withMetadata.DetailsMetadata() {
			if _, exists := combined[key]; !exists {
				combined[key] = value
			}
		}
	}
	return combined
}
