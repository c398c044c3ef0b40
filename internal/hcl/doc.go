// Package hcl provides the concrete HCL implementation of the config.Codec
// interface. Encoding builds the document with hclwrite and cty values;
// decoding parses it with hclparse, binds it to the schema structs with
// gohcl, and translates the result back into the model.
package hcl
