// This file translates between the HCL schema structs and the
// format-agnostic model.

package hcl

import (
	"fmt"

	"github.com/specialistvlad/tallygo/internal/model"
	"github.com/specialistvlad/tallygo/internal/schema"
)

// translateConfig converts the decoded HCL schema into the model.
func translateConfig(s *schema.ConfigFile) (*model.Config, error) {
	args, err := argsFromExpr(s.Args)
	if err != nil {
		return nil, err
	}

	cfg := &model.Config{
		Verbosity: s.Verbosity,
		Flag:      s.Flag,
		Args:      args,
		LogFormat: s.LogFormat,
	}

	if s.Operation != nil {
		kind, err := model.ParseOpKind(s.Operation.Kind)
		if err != nil {
			return nil, fmt.Errorf("invalid operation block: %w", err)
		}
		cfg.Operation = &model.Operation{Kind: kind, Number: s.Operation.Number}
	}
	return cfg, nil
}

// fromModelOperation is the inverse of the operation part of translateConfig.
func fromModelOperation(op *model.Operation) *schema.Operation {
	return &schema.Operation{Kind: op.Kind.String(), Number: op.Number}
}
