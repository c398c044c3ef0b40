package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertOperationOutput checks that the run printed exactly the given steps
// followed by the final "<done> done!" line.
func AssertOperationOutput(t *testing.T, result *HarnessResult, steps []int32, done int32) {
	t.Helper()

	var b strings.Builder
	for _, s := range steps {
		fmt.Fprintf(&b, "%d..", s)
	}
	fmt.Fprintf(&b, "%d done!\n", done)

	require.True(t,
		strings.HasSuffix(result.Stdout, "\n"+b.String()),
		"expected output to end with %q, got:\n%s", b.String(), result.Stdout,
	)
}
