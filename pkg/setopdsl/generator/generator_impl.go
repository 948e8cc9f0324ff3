package generator

import (
	"bytes"
	"strings"
)

type sourceGenerator struct {
	buf              bytes.Buffer // The buffer for the generated text.
	indentationLevel int          // The current indentation level.
	hasNewline       bool         // Whether there is a newline at the end of the buffer.
}

// indent increases the current indentation.
func (sg *sourceGenerator) indent() {
	sg.indentationLevel++
}

// dedent decreases the current indentation.
func (sg *sourceGenerator) dedent() {
	sg.indentationLevel--
}

// append adds the given value to the buffer, indenting as necessary.
func (sg *sourceGenerator) append(value string) {
	for _, currentRune := range value {
		if currentRune == '\n' {
			sg.buf.WriteRune('\n')
			sg.hasNewline = true
			continue
		}

		if sg.hasNewline {
			sg.buf.WriteString(strings.Repeat("\t", sg.indentationLevel))
			sg.hasNewline = false
		}

		sg.buf.WriteRune(currentRune)
	}
}

// appendLine adds a newline.
func (sg *sourceGenerator) appendLine() {
	sg.append("\n")
}

// appendContinuation ends the current shell line with a continuation marker.
func (sg *sourceGenerator) appendContinuation() {
	sg.append(" \\")
	sg.appendLine()
}
