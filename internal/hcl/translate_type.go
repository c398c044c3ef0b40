package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

var stringList = cty.List(cty.String)

// stringsToCty converts a non-nil slice into a cty list of strings.
func stringsToCty(values []string) cty.Value {
	if len(values) == 0 {
		return cty.ListValEmpty(cty.String)
	}
	elems := make([]cty.Value, len(values))
	for i, v := range values {
		elems[i] = cty.StringVal(v)
	}
	return cty.ListVal(elems)
}

// argsFromExpr evaluates the `args` attribute. A missing attribute evaluates
// to null and yields a nil slice; any list, including an empty one, yields a
// non-nil slice.
func argsFromExpr(expr hcl.Expression) ([]string, error) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid args attribute: %w", diags)
	}
	if val.IsNull() {
		return nil, nil
	}

	converted, err := convert.Convert(val, stringList)
	if err != nil {
		return nil, fmt.Errorf("cannot convert args of type %s to %s: %w", val.Type().FriendlyName(), stringList.FriendlyName(), err)
	}
	if !converted.IsWhollyKnown() {
		return nil, fmt.Errorf("args must be fully known")
	}

	out := make([]string, 0, converted.LengthInt())
	for it := converted.ElementIterator(); it.Next(); {
		_, elem := it.Element()
		if elem.IsNull() {
			return nil, fmt.Errorf("args must not contain null elements")
		}
		out = append(out, elem.AsString())
	}
	return out, nil
}
