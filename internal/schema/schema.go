package schema

import "github.com/hashicorp/hcl/v2"

// Operation represents the optional `operation "<kind>" { ... }` block.
type Operation struct {
	Kind   string `hcl:"kind,label"`
	Number int32  `hcl:"number"`
}

// ConfigFile represents the top-level structure of a serialized config
// document. Args is kept as a raw expression so that a missing attribute
// (which gohcl turns into a null value) can be told apart from an empty list.
type ConfigFile struct {
	Verbosity int            `hcl:"verbosity"`
	Flag      bool           `hcl:"flag"`
	LogFormat string         `hcl:"log_format"`
	Args      hcl.Expression `hcl:"args,optional"`
	Operation *Operation     `hcl:"operation,block"`
}
