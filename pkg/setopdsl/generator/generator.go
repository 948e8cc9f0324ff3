// Package generator renders set operations and whole invocations back into
// their canonical textual form.
package generator

import (
	"strings"

	"github.com/variantcompare/variantcompare/pkg/setop"
	"github.com/variantcompare/variantcompare/pkg/varianterrors"
)

// Invocation is a fully resolved command line.
type Invocation struct {
	Inputs            []setop.InputFile
	Operations        []*setop.SetOperation
	OutputFile        string
	IntermediateFiles bool
	KeepHomozygotes   bool
}

// GenerateExpressions renders each operation in canonical expression syntax,
// one per line, in order.
func GenerateExpressions(operations []*setop.SetOperation) string {
	sg := &sourceGenerator{hasNewline: true}
	for _, op := range operations {
		sg.append(op.String())
		sg.appendLine()
	}
	return sg.buf.String()
}

// GenerateInvocation renders a shell command line equivalent to the
// invocation, with every input and operation explicitly named and one flag per
// line.
func GenerateInvocation(program string, invocation Invocation) (string, error) {
	sg := &sourceGenerator{hasNewline: true}
	sg.append(program)

	sg.indent()
	for _, in := range invocation.Inputs {
		flag, ok := inputFlags[in.Family]
		if !ok {
			return "", varianterrors.MustBugf("unknown input family %d for input `%s`", in.Family, in.ID)
		}

		sg.appendContinuation()
		sg.append(flag)
		sg.append(" ")
		sg.append(quote(string(in.ID) + "=" + in.FileName))
	}

	for _, op := range invocation.Operations {
		sg.appendContinuation()
		sg.append("-s ")
		sg.append(quote(op.String()))
	}

	if invocation.OutputFile != "" {
		sg.appendContinuation()
		sg.append("-o ")
		sg.append(quote(invocation.OutputFile))
	}

	if invocation.IntermediateFiles {
		sg.appendContinuation()
		sg.append("-I")
	}

	if invocation.KeepHomozygotes {
		sg.appendContinuation()
		sg.append("-k")
	}
	sg.dedent()

	sg.appendLine()
	return sg.buf.String(), nil
}

var inputFlags = map[setop.InputFamily]string{
	setop.VCF:         "-i",
	setop.PLINK:       "-p",
	setop.BinaryPLINK: "-b",
}

// quote single-quotes the value for a POSIX shell when it holds characters
// the shell would interpret.
func quote(value string) string {
	if value != "" && strings.IndexFunc(value, needsQuoting) < 0 {
		return value
	}
	return "'" + strings.ReplaceAll(value, "'", `'\''`) + "'"
}

func needsQuoting(r rune) bool {
	switch {
	case r == '_' || r == '-' || r == '.' || r == '/' || r == '=' || r == ',':
		return false
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return false
	default:
		return true
	}
}
