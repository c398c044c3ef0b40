package cli

import (
	"fmt"

	"github.com/specialistvlad/tallygo/internal/listarg"
	"github.com/spf13/pflag"
)

var _ pflag.Value = (*listValue)(nil)

// listValue is a pflag.Value for --args. It always consumes exactly one
// token and parses it as a list literal, so the flag never turns into a
// repeatable multi-value option.
type listValue struct {
	target *[]string
}

func newListValue(target *[]string) *listValue {
	return &listValue{target: target}
}

func (v *listValue) Set(s string) error {
	parsed, err := listarg.Parse(s)
	if err != nil {
		return err
	}
	*v.target = parsed
	return nil
}

func (v *listValue) String() string {
	if v.target == nil || *v.target == nil {
		return ""
	}
	return fmt.Sprintf("%q", *v.target)
}

func (v *listValue) Type() string {
	return "ARGS"
}
