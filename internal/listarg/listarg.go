package listarg

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/unicode/norm"
)

// Prefix is injected in front of a token that does not already carry it, so
// that the token decodes as a one-key TOML document.
const Prefix = "args="

// FormatHint is appended to every parse error.
const FormatHint = "Expected format: ['arg0', 'arg1', ... ]"

type document struct {
	Args []string `toml:"args"`
}

// Parse decodes token into its list of strings. The returned slice is never
// nil on success, so an explicit "[]" stays distinguishable from no --args.
// Every element is returned in Unicode NFC form.
func Parse(token string) ([]string, error) {
	src := token
	if !strings.HasPrefix(src, Prefix) {
		src = Prefix + src
	}

	var doc document
	meta, err := toml.Decode(src, &doc)
	if err != nil {
		return nil, fmt.Errorf("%w\n  %s", err, FormatHint)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unexpected key %q in list literal\n  %s", undecoded[0].String(), FormatHint)
	}
	if !meta.IsDefined("args") {
		return nil, fmt.Errorf("missing list literal\n  %s", FormatHint)
	}

	out := make([]string, len(doc.Args))
	for i, arg := range doc.Args {
		out[i] = norm.NFC.String(arg)
	}
	return out, nil
}
