package setop

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseInputValue(t *testing.T) {
	tcs := []struct {
		name             string
		value            string
		expectedID       Identifier
		expectedFileName string
		expectedError    string
	}{
		{"named file with extension", "f1=File.txt", "f1", "File.txt", ""},
		{"named file without extension", "f1=File", "f1", "File", ""},
		{"named file with parentheses", "f1=FileNo(2).txt", "f1", "FileNo(2).txt", ""},
		{"named file with multiple periods", "f1=FileNo.2a.txt", "f1", "FileNo.2a.txt", ""},
		{"named file with comma", "f1=FileNo,2a.txt", "f1", "FileNo,2a.txt", ""},
		{"named file with everything", "f1=FileNo(2a.).txt", "f1", "FileNo(2a.).txt", ""},
		{"named file in directory", "f1=data/run-1/a.vcf", "f1", "data/run-1/a.vcf", ""},
		{"unnamed file", "File.txt", "", "File.txt", ""},
		{"unnamed file without extension", "File", "", "File", ""},
		{"no file", "out=", "", "", "malformed input `out=` at column 5: missing file name"},
		{"no name", "=a.vcf", "", "", "malformed input `=a.vcf` at column 1: invalid input name ``: names may only contain letters, digits and underscores"},
		{"two equals", "a=b=c", "", "", "malformed input `a=b=c` at column 4: input values may contain at most one `=`"},
		{"bad name", "f-1=a.vcf", "", "", "malformed input `f-1=a.vcf` at column 1: invalid input name `f-1`: names may only contain letters, digits and underscores"},
		{"bad file name", "f1=a;b.vcf", "", "", "malformed input `f1=a;b.vcf` at column 4: invalid file name `a;b.vcf`"},
		{"two equals after accented name", "éé=a=b", "", "", "malformed input `éé=a=b` at column 5: input values may contain at most one `=`"},
		{"bad file name after accented name", "éé=a;b", "", "", "malformed input `éé=a;b` at column 4: invalid file name `a;b`"},
		{"empty value", "", "", "", "malformed input `` at column 1: missing file name"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			id, fileName, err := ParseInputValue(tc.value)
			if tc.expectedError != "" {
				require.EqualError(t, err, tc.expectedError)

				var malformed MalformedExpressionError
				require.True(t, errors.As(err, &malformed))
				require.Equal(t, KindInput, malformed.Kind())
				require.Equal(t, tc.value, malformed.Expression())
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.expectedID, id)
			require.Equal(t, tc.expectedFileName, fileName)
		})
	}
}

func TestInputFilePaths(t *testing.T) {
	require.Equal(t, []string{"a.vcf"}, InputFile{ID: "f1", Family: VCF, FileName: "a.vcf"}.Paths())
	require.Equal(t, []string{"myplink.ped", "myplink.map"}, InputFile{ID: "p0", Family: PLINK, FileName: "myplink"}.Paths())
	require.Equal(t, []string{"myplink.bed", "myplink.bim", "myplink.fam"}, InputFile{ID: "b0", Family: BinaryPLINK, FileName: "myplink"}.Paths())
	require.Equal(t, "f1=a.vcf", InputFile{ID: "f1", Family: VCF, FileName: "a.vcf"}.String())
}
