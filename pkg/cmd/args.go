package cmd

import (
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// multiValueFlags accept several values after a single occurrence.
var multiValueFlags = map[string]bool{
	"input":         true,
	"pinput":        true,
	"binput":        true,
	"set-operation": true,
}

// NormalizeArgs rewrites the arguments so that every word following one of
// the multi-value flags, up to the next flag, is passed as a further value of
// that flag: `-i a.vcf b.vcf` becomes `--input a.vcf --input b.vcf`. Words
// after `--` are left untouched.
func NormalizeArgs(cmd *cobra.Command, args []string) []string {
	flags := pflag.NewFlagSet(cmd.Name(), pflag.ContinueOnError)
	flags.AddFlagSet(cmd.PersistentFlags())
	flags.AddFlagSet(cmd.Flags())

	normalized := make([]string, 0, len(args))
	current := ""
	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch {
		case arg == "--":
			return append(normalized, args[i:]...)

		case strings.HasPrefix(arg, "--"):
			name, _, hasValue := strings.Cut(arg[2:], "=")
			normalized = append(normalized, arg)
			current = ""

			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if !hasValue && takesValue(flag) && i+1 < len(args) {
				i++
				normalized = append(normalized, args[i])
			}
			if multiValueFlags[flag.Name] {
				current = flag.Name
			}

		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			normalized = append(normalized, arg)
			current = ""

			flag, inlineValue := lastShorthand(flags, arg[1:])
			if flag == nil {
				continue
			}
			if !inlineValue && takesValue(flag) && i+1 < len(args) {
				i++
				normalized = append(normalized, args[i])
			}
			if multiValueFlags[flag.Name] {
				current = flag.Name
			}

		case current != "":
			normalized = append(normalized, "--"+current, arg)

		default:
			normalized = append(normalized, arg)
		}
	}
	return normalized
}

// lastShorthand walks a group of shorthands such as `Ik` or `ia.vcf` and
// returns the flag that consumes the value, or the last flag of the group.
// inlineValue reports whether that value is part of the group itself.
func lastShorthand(flags *pflag.FlagSet, group string) (*pflag.Flag, bool) {
	var last *pflag.Flag
	for i, r := range group {
		if r >= utf8.RuneSelf {
			return last, false
		}

		flag := flags.ShorthandLookup(string(r))
		if flag == nil {
			return last, false
		}
		last = flag

		if takesValue(flag) {
			rest := group[i+1:]
			return flag, rest != ""
		}
	}
	return last, false
}

func takesValue(flag *pflag.Flag) bool {
	return flag.NoOptDefVal == ""
}
