package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/specialistvlad/tallygo/internal/model"
	"github.com/specialistvlad/tallygo/internal/schema"
	"github.com/zclconf/go-cty/cty"
)

// documentName is used as the filename in HCL diagnostics.
const documentName = "config.hcl"

// Codec is the HCL implementation of the config.Codec interface.
type Codec struct{}

// NewCodec creates a new HCL codec.
func NewCodec() *Codec {
	return &Codec{}
}

// Name implements config.Codec.
func (c *Codec) Name() string {
	return "HCL"
}

// Encode implements config.Codec.
func (c *Codec) Encode(cfg *model.Config) ([]byte, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("refusing to encode invalid config: %w", err)
	}

	file := hclwrite.NewEmptyFile()
	body := file.Body()

	body.SetAttributeValue("verbosity", cty.NumberIntVal(int64(cfg.Verbosity)))
	body.SetAttributeValue("flag", cty.BoolVal(cfg.Flag))
	body.SetAttributeValue("log_format", cty.StringVal(cfg.LogFormat))
	if cfg.Args != nil {
		body.SetAttributeValue("args", stringsToCty(cfg.Args))
	}

	if cfg.Operation != nil {
		body.AppendNewline()
		body.AppendBlock(gohcl.EncodeAsBlock(fromModelOperation(cfg.Operation), "operation"))
	}

	return file.Bytes(), nil
}

// Decode implements config.Codec.
func (c *Codec) Decode(src []byte) (*model.Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, documentName)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL config: %w", diags)
	}

	var parsed schema.ConfigFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL config: %w", diags)
	}

	cfg, err := translateConfig(&parsed)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("decoded config is invalid: %w", err)
	}
	return cfg, nil
}
