// Package schema holds the HCL-tagged structs that describe the on-disk shape
// of a serialized config document. They are decoded with gohcl and then
// translated into the format-agnostic model by the hcl package.
package schema
