package integration_tests

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/tallygo/internal/app"
	"github.com/specialistvlad/tallygo/internal/cli"
	"github.com/specialistvlad/tallygo/internal/hcl"
	"github.com/specialistvlad/tallygo/internal/model"
	"github.com/specialistvlad/tallygo/internal/testutil"
	"github.com/stretchr/testify/require"
)

// Test for: the flag prints the config and the printed document parses back
func TestRoundTrip_FlagPrintsDecodableDocument(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	args := []string{"-v", "--flag", "--args", "['a','b c']", "split", "10"}
	expected := &model.Config{
		Verbosity: 1,
		Flag:      true,
		Args:      []string{"a", "b c"},
		LogFormat: model.LogFormatText,
		Operation: &model.Operation{Kind: model.OpSplit, Number: 10},
	}

	// --- Act ---
	result := testutil.RunCLI(t, args)

	// --- Assert ---
	require.NoError(t, result.Err)
	require.Contains(t, result.Stdout, "HCL flag enabled\n")
	testutil.AssertOperationOutput(t, result, []int32{10, 5, 2, 1}, 0)

	doc := testutil.ExtractDocument(t, result.Stdout, "HCL")
	decoded, err := hcl.NewCodec().Decode([]byte(doc))
	require.NoError(t, err)
	if diff := cmp.Diff(expected, decoded); diff != "" {
		t.Errorf("printed document does not match the parsed flags (-want +got):\n%s", diff)
	}
}

// Test for: args typed in decomposed Unicode still pass the self-check
func TestRoundTrip_NonNFCArgsAreNormalizedAtParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		token    string
		expected []string
	}{
		{name: "precomposed", token: "['\u00e9']", expected: []string{"\u00e9"}},
		{name: "combining acute", token: "['e\u0301']", expected: []string{"\u00e9"}},
		{name: "angstrom sign", token: "['\u212b']", expected: []string{"\u00c5"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			result := testutil.RunCLI(t, []string{"--flag", "--args", tc.token})

			require.NoError(t, result.Err)
			require.Equal(t, 0, result.ExitCode)
			require.Contains(t, result.Stdout, "NOP\n")

			decoded, err := hcl.NewCodec().Decode([]byte(testutil.ExtractDocument(t, result.Stdout, "HCL")))
			require.NoError(t, err)
			require.Equal(t, tc.expected, decoded.Args)
		})
	}
}

// brokenCodec reports a different verbosity than it was given.
type brokenCodec struct{ *hcl.Codec }

func (c brokenCodec) Decode(src []byte) (*model.Config, error) {
	cfg, err := c.Codec.Decode(src)
	if err != nil {
		return nil, err
	}
	cfg.Verbosity++
	return cfg, nil
}

// Test for: a codec that loses information aborts the run
func TestRoundTrip_MismatchIsAnInternalFailure(t *testing.T) {
	t.Parallel()

	// --- Act ---
	result := testutil.RunCLI(t, []string{"--flag", "increment", "3"}, app.WithCodec(brokenCodec{hcl.NewCodec()}))

	// --- Assert ---
	require.Error(t, result.Err)
	require.Equal(t, cli.ExitInternal, result.ExitCode)
	require.Contains(t, result.Err.Error(), "internal consistency check failed")
	require.Contains(t, result.Err.Error(), "Verbosity")
	require.NotContains(t, result.Stdout, "done!", "no operation may run after a failed self-check")
}

// Test for: without the flag, the codec is never consulted
func TestRoundTrip_SkippedWithoutFlag(t *testing.T) {
	t.Parallel()

	result := testutil.RunCLI(t, []string{"increment", "3"}, app.WithCodec(brokenCodec{hcl.NewCodec()}))

	require.NoError(t, result.Err)
	require.NotContains(t, result.Stdout, "BEGIN")
	testutil.AssertOperationOutput(t, result, nil, 3)
}
