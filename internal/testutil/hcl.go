package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// ExtractDocument returns the text printed between the "// BEGIN <format>"
// and "// END <format>" markers of a round-trip check.
func ExtractDocument(t *testing.T, output, format string) string {
	t.Helper()

	begin := "// BEGIN " + format + "\n"
	end := "// END " + format
	start := strings.Index(output, begin)
	require.NotEqual(t, -1, start, "begin marker %q not found in output:\n%s", begin, output)
	rest := output[start+len(begin):]
	stop := strings.Index(rest, end)
	require.NotEqual(t, -1, stop, "end marker %q not found in output:\n%s", end, output)
	return rest[:stop]
}
