package integration_tests

import (
	"math/bits"
	"strconv"
	"testing"

	"github.com/specialistvlad/tallygo/internal/testutil"
)

func TestIncrement_EmitsExactlyN(t *testing.T) {
	t.Parallel()

	for n := int32(0); n <= 12; n++ {
		result := testutil.RunCLI(t, []string{"-v", "increment", strconv.Itoa(int(n))})
		if result.Err != nil {
			t.Fatalf("increment %d: unexpected error: %v", n, result.Err)
		}

		steps := make([]int32, 0, n)
		for i := int32(0); i < n; i++ {
			steps = append(steps, i)
		}
		testutil.AssertOperationOutput(t, result, steps, n)
	}
}

func TestDecrement_EmitsExactlyN(t *testing.T) {
	t.Parallel()

	for n := int32(0); n <= 12; n++ {
		result := testutil.RunCLI(t, []string{"-v", "decrement", strconv.Itoa(int(n))})
		if result.Err != nil {
			t.Fatalf("decrement %d: unexpected error: %v", n, result.Err)
		}

		steps := make([]int32, 0, n)
		for i := n; i >= 1; i-- {
			steps = append(steps, i)
		}
		testutil.AssertOperationOutput(t, result, steps, 0)
	}
}

func TestSplit_EmitsBitLengthValues(t *testing.T) {
	t.Parallel()

	for _, n := range []int32{-3, 0, 1, 2, 3, 10, 64, 1000, 2147483647} {
		result := testutil.RunCLI(t, []string{"-v", "split", "--", strconv.Itoa(int(n))})
		if result.Err != nil {
			t.Fatalf("split %d: unexpected error: %v", n, result.Err)
		}

		var steps []int32
		for v := n; v > 0; v /= 2 {
			steps = append(steps, v)
		}
		if n > 0 && len(steps) != bits.Len32(uint32(n)) {
			t.Fatalf("split %d: expected floor(log2(n))+1 = %d steps, built %d", n, bits.Len32(uint32(n)), len(steps))
		}
		testutil.AssertOperationOutput(t, result, steps, 0)
	}
}
