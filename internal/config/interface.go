package config

import "github.com/specialistvlad/tallygo/internal/model"

// Codec is the interface for a format-specific serialization of model.Config.
// A correct Codec satisfies Decode(Encode(c)) == c for every valid config.
type Codec interface {
	// Name is the short format name used in banners, e.g. "HCL".
	Name() string

	// Encode renders the config as a textual document.
	Encode(cfg *model.Config) ([]byte, error)

	// Decode parses a document produced by Encode back into a config.
	Decode(src []byte) (*model.Config, error)
}
