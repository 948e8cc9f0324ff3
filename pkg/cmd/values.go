package cmd

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/variantcompare/variantcompare/pkg/plan"
	"github.com/variantcompare/variantcompare/pkg/setop"
	"github.com/variantcompare/variantcompare/pkg/setopdsl/parser"
)

// listValue is a repeatable flag whose every value is checked by validate
// before it is accepted. Values are never split on commas.
type listValue struct {
	values   *[]string
	typeName string
	validate func(string) error
}

var (
	_ pflag.Value      = (*listValue)(nil)
	_ pflag.SliceValue = (*listValue)(nil)
)

func newInputValue(values *[]string) *listValue {
	return &listValue{
		values:   values,
		typeName: "[id=]file",
		validate: func(value string) error {
			_, _, err := setop.ParseInputValue(value)
			return err
		},
	}
}

func newExpressionValue(values *[]string) *listValue {
	return &listValue{
		values:   values,
		typeName: "expression",
		validate: parser.ValidateSyntax,
	}
}

func (v *listValue) Set(value string) error {
	if err := v.validate(value); err != nil {
		return err
	}
	*v.values = append(*v.values, value)
	return nil
}

func (v *listValue) Type() string {
	return v.typeName
}

func (v *listValue) String() string {
	return "[" + strings.Join(*v.values, ",") + "]"
}

func (v *listValue) Append(value string) error {
	return v.Set(value)
}

func (v *listValue) Replace(values []string) error {
	for _, value := range values {
		if err := v.validate(value); err != nil {
			return err
		}
	}
	*v.values = append((*v.values)[:0], values...)
	return nil
}

func (v *listValue) GetSlice() []string {
	return append([]string(nil), *v.values...)
}

// formatValue selects the plan output format.
type formatValue struct {
	format *plan.Format
}

var _ pflag.Value = (*formatValue)(nil)

func (v *formatValue) Set(value string) error {
	format, err := plan.ParseFormat(value)
	if err != nil {
		return err
	}
	*v.format = format
	return nil
}

func (v *formatValue) Type() string {
	return "format"
}

func (v *formatValue) String() string {
	return string(*v.format)
}
