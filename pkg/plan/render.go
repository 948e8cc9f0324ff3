package plan

import (
	"fmt"
	"io"
	"strings"

	"github.com/jzelinskie/stringz"
	"gopkg.in/yaml.v3"

	"github.com/variantcompare/variantcompare/pkg/setopdsl/generator"
)

// Format is an output format for a rendered plan.
type Format string

const (
	// FormatText renders a human-readable summary and the canonical
	// invocation.
	FormatText Format = "text"

	// FormatYAML renders the plan as a YAML document.
	FormatYAML Format = "yaml"
)

// Formats lists the supported formats.
var Formats = []Format{FormatText, FormatYAML}

// ParseFormat returns the format with the given name.
func ParseFormat(name string) (Format, error) {
	for _, format := range Formats {
		if string(format) == strings.ToLower(name) {
			return format, nil
		}
	}
	return "", fmt.Errorf("unknown plan format `%s`: expected one of %s", name, formatNames())
}

func formatNames() string {
	names := make([]string, 0, len(Formats))
	for _, format := range Formats {
		names = append(names, string(format))
	}
	return strings.Join(names, ", ")
}

// Render writes the plan to w in the given format. program names the binary
// in the canonical invocation of the text format.
func Render(w io.Writer, p *Plan, format Format, program string) error {
	switch format {
	case FormatText:
		return renderText(w, p, program)
	case FormatYAML:
		return renderYAML(w, p)
	default:
		return fmt.Errorf("unknown plan format `%s`", format)
	}
}

func renderText(w io.Writer, p *Plan, program string) error {
	var sb strings.Builder

	sb.WriteString("Inputs:\n")
	for _, in := range p.Inputs {
		fmt.Fprintf(&sb, "\t%s (%s): %s\n", in.ID, in.Family, strings.Join(in.Paths(), ", "))
	}

	sb.WriteString("Set operations:\n")
	for _, line := range strings.SplitAfter(generator.GenerateExpressions(p.Operations), "\n") {
		if line != "" {
			sb.WriteString("\t" + line)
		}
	}

	fmt.Fprintf(&sb, "Output file: %s\n", p.OutputFile)
	fmt.Fprintf(&sb, "Intermediate files: %s\n", stringz.DefaultEmpty(strings.Join(p.IntermediateFileNames(), ", "), "none"))
	fmt.Fprintf(&sb, "Keep homozygotes: %t\n", p.KeepHomozygotes)

	invocation, err := generator.GenerateInvocation(program, p.Invocation())
	if err != nil {
		return err
	}
	sb.WriteString("\nEquivalent invocation:\n")
	sb.WriteString(invocation)

	_, err = io.WriteString(w, sb.String())
	return err
}

type yamlPlan struct {
	Inputs     []yamlInput     `yaml:"inputs"`
	Operations []yamlOperation `yaml:"operations"`
	Output     yamlOutput      `yaml:"output"`
}

type yamlInput struct {
	ID     string   `yaml:"id"`
	Family string   `yaml:"family"`
	File   string   `yaml:"file"`
	Paths  []string `yaml:"paths"`
}

type yamlOperation struct {
	ID           string        `yaml:"id"`
	Operator     string        `yaml:"operator"`
	Expression   string        `yaml:"expression"`
	Operands     []yamlOperand `yaml:"operands"`
	Intermediate string        `yaml:"intermediate,omitempty"`
}

type yamlOperand struct {
	ID      string   `yaml:"id"`
	Samples []string `yaml:"samples,omitempty"`
}

type yamlOutput struct {
	File              string `yaml:"file"`
	IntermediateFiles bool   `yaml:"intermediate_files"`
	KeepHomozygotes   bool   `yaml:"keep_homozygotes"`
}

func renderYAML(w io.Writer, p *Plan) error {
	doc := yamlPlan{
		Inputs:     make([]yamlInput, 0, len(p.Inputs)),
		Operations: make([]yamlOperation, 0, len(p.Operations)),
		Output: yamlOutput{
			File:              p.OutputFile,
			IntermediateFiles: p.IntermediateFiles,
			KeepHomozygotes:   p.KeepHomozygotes,
		},
	}

	for _, in := range p.Inputs {
		doc.Inputs = append(doc.Inputs, yamlInput{
			ID:     string(in.ID),
			Family: in.Family.String(),
			File:   in.FileName,
			Paths:  in.Paths(),
		})
	}

	for _, op := range p.Operations {
		operation := yamlOperation{
			ID:         string(op.ID()),
			Operator:   op.Operator().String(),
			Expression: op.String(),
		}
		for _, operand := range op.Operands() {
			operation.Operands = append(operation.Operands, yamlOperand{
				ID:      string(operand.ID),
				Samples: operand.Samples.SampleIDs(),
			})
		}
		if p.IntermediateFiles {
			operation.Intermediate = IntermediateFile(op)
		}
		doc.Operations = append(doc.Operations, operation)
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode plan: %w", err)
	}
	return encoder.Close()
}
