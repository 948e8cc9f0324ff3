// Package testutil implements various utilities to reduce boilerplate in unit
// tests a la testify.
package testutil

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/variantcompare/variantcompare/pkg/setop"
)

// RequireOperationsEqual asserts that both operation lists hold equal
// operations in the same order, printing a structural diff otherwise. Nil and
// empty lists are considered equal.
func RequireOperationsEqual(t require.TestingT, expected, actual []*setop.SetOperation, msgAndArgs ...interface{}) {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}

	opts := []cmp.Option{cmpopts.EquateEmpty()}
	msgAndArgs = append(msgAndArgs, cmp.Diff(expected, actual, opts...))
	require.Truef(t, cmp.Equal(expected, actual, opts...), "Should be equal", msgAndArgs...)
}
