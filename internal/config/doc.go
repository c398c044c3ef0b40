// Package config defines the Codec interface through which a model.Config is
// serialized to and from text. Concrete implementations, such as HCL, are
// provided in separate packages so the app only depends on the interface.
package config
