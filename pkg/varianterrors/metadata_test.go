package varianterrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type metadataErr struct {
	error
	metadata map[string]string
}

func (err metadataErr) DetailsMetadata() map[string]string {
	return err.metadata
}

func (err metadataErr) Unwrap() error {
	return err.error
}

func TestCombineMetadata(t *testing.T) {
	inner := metadataErr{errors.New("inner"), map[string]string{"name": "inner", "column": "3"}}
	outer := metadataErr{fmt.Errorf("outer: %w", inner), map[string]string{"name": "outer"}}

	require.Equal(t, map[string]string{"name": "outer", "column": "3"}, CombineMetadata(outer))
	require.Empty(t, CombineMetadata(errors.New("plain")))
	require.Empty(t, CombineMetadata(nil))
}
