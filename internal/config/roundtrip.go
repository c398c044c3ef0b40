package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/tallygo/internal/ctxlog"
	"github.com/specialistvlad/tallygo/internal/model"
)

// ErrRoundTrip matches, via errors.Is, every error returned by RoundTrip.
var ErrRoundTrip = errors.New("config round trip failed")

// MismatchError reports that decoding an encoded config did not reproduce
// the original. It always points at a defect in the Codec, never at user input.
type MismatchError struct {
	Format string
	Diff   string
}

// Error implements the error interface for MismatchError.
func (e *MismatchError) Error() string {
	return fmt.Sprintf("reparsed %s config is not equal to the original (-original +reparsed):\n%s", e.Format, e.Diff)
}

// Is reports MismatchError as an ErrRoundTrip.
func (e *MismatchError) Is(target error) bool {
	return target == ErrRoundTrip
}

// RoundTrip encodes cfg with codec, decodes the result and checks that the
// two configs are structurally equal. The encoded document is returned even
// when the check fails so callers can show it.
func RoundTrip(ctx context.Context, codec Codec, cfg *model.Config) ([]byte, error) {
	logger := ctxlog.FromContext(ctx)

	doc, err := codec.Encode(cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to serialize the config using %s: %w", ErrRoundTrip, codec.Name(), err)
	}
	logger.Debug("Config serialized.", "format", codec.Name(), "bytes", len(doc))

	reparsed, err := codec.Decode(doc)
	if err != nil {
		return doc, fmt.Errorf("%w: unable to deserialize the config using %s: %w", ErrRoundTrip, codec.Name(), err)
	}

	if !cmp.Equal(cfg, reparsed) {
		return doc, &MismatchError{Format: codec.Name(), Diff: cmp.Diff(cfg, reparsed)}
	}
	logger.Debug("Config round trip matched.", "format", codec.Name())
	return doc, nil
}
