package setop

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jzelinskie/stringz"
)

// InputFamily identifies the kind of variant input a file declares.
type InputFamily int

const (
	// VCF is a Variant Call Format file.
	VCF InputFamily = iota

	// PLINK is a text PLINK root name, expanding to `.ped` and `.map` files.
	PLINK

	// BinaryPLINK is a binary PLINK root name, expanding to `.bed`, `.bim` and
	// `.fam` files.
	BinaryPLINK
)

// InputFamilies lists every family in flag declaration order.
var InputFamilies = []InputFamily{VCF, PLINK, BinaryPLINK}

// OperationPrefix is the prefix of synthesized set operation identifiers.
const OperationPrefix = "s"

// Prefix returns the prefix of synthesized identifiers for unnamed inputs of
// this family.
func (f InputFamily) Prefix() string {
	switch f {
	case VCF:
		return "i"
	case PLINK:
		return "p"
	case BinaryPLINK:
		return "b"
	default:
		return "x"
	}
}

// Extensions returns the file extensions appended to a root name, or nil when
// the declared name is itself the file.
func (f InputFamily) Extensions() []string {
	switch f {
	case PLINK:
		return []string{".ped", ".map"}
	case BinaryPLINK:
		return []string{".bed", ".bim", ".fam"}
	default:
		return nil
	}
}

func (f InputFamily) String() string {
	switch f {
	case VCF:
		return "vcf"
	case PLINK:
		return "plink"
	case BinaryPLINK:
		return "binary-plink"
	default:
		return "unknown"
	}
}

// InputFile is a declared input dataset.
type InputFile struct {
	ID       Identifier
	Family   InputFamily
	FileName string
}

// Paths returns the file names backing the input. Nothing is read from disk.
func (in InputFile) Paths() []string {
	extensions := in.Family.Extensions()
	if len(extensions) == 0 {
		return []string{in.FileName}
	}

	paths := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		paths = append(paths, in.FileName+ext)
	}
	return paths
}

func (in InputFile) String() string {
	return string(in.ID) + "=" + in.FileName
}

var fileNamePattern = regexp.MustCompile(`^[\pL\pN,.'()_/\s-]+$`)

// ParseInputValue parses an `[id=]filename` input value. The returned
// identifier is empty when the value does not name the input.
func ParseInputValue(value string) (Identifier, string, error) {
	if !strings.Contains(value, "=") {
		if err := checkFileName(value, value, 1); err != nil {
			return "", "", err
		}
		return "", value, nil
	}

	var id, fileName string
	if err := stringz.SplitExact(value, "=", &id, &fileName); err != nil {
		first := strings.Index(value, "=")
		second := first + 1 + strings.Index(value[first+1:], "=")
		return "", "", NewMalformedExpressionErr(KindInput, value, utf8.RuneCountInString(value[:second])+1, "input values may contain at most one `=`")
	}

	if !IsValidIdentifier(id) {
		return "", "", NewMalformedExpressionErr(KindInput, value, 1, fmt.Sprintf("invalid input name `%s`: names may only contain letters, digits and underscores", id))
	}

	if err := checkFileName(value, fileName, utf8.RuneCountInString(id)+2); err != nil {
		return "", "", err
	}
	return Identifier(id), fileName, nil
}

func checkFileName(value, fileName string, column int) error {
	if strings.TrimSpace(fileName) == "" {
		return NewMalformedExpressionErr(KindInput, value, column, "missing file name")
	}

	if !fileNamePattern.MatchString(fileName) {
		return NewMalformedExpressionErr(KindInput, value, column, fmt.Sprintf("invalid file name `%s`", fileName))
	}
	return nil
}
