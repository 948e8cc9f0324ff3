// Package setop defines the values produced by parsing variantcompare's
// command-line inputs and set-operation expressions: identifiers, sample
// filters, operands, operations and declared input files.
package setop
