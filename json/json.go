// Package json is the JSON codec used for pattern documents. It wraps
// bytedance/sonic with the standard-library compatible configuration.
package json

import (
	"github.com/bytedance/sonic"
)

var api = sonic.ConfigStd

// Marshal encodes a Go value as JSON using the current API config.
func Marshal(v any) ([]byte, error) {
	return api.Marshal(v)
}

// Unmarshal decodes a JSON payload into the provided destination using the current API config.
func Unmarshal(data []byte, v any) error {
	return api.Unmarshal(data, v)
}

// MarshalIndent encodes a Go value as indented JSON using the current API config.
func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return api.MarshalIndent(v, prefix, indent)
}

// Valid reports whether data is a valid JSON encoding.
func Valid(data []byte) bool {
	return api.Valid(data)
}

// SetConfig sets the configuration for the JSON package.
func SetConfig(config *sonic.Config) {
	api = config.Froze()
}
