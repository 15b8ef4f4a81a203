// Package json encodes and decodes the JSON documents exchanged with the
// builder: scope option documents and match results.
//
// It wraps [sonic]. Integers decode as int64 rather than float64 so that
// repetition counts keep their exact value.
package json

import (
	"github.com/bytedance/sonic"
)

var defaultConfig = sonic.Config{
	EscapeHTML:       true,
	SortMapKeys:      true,
	CompactMarshaler: true,
	CopyString:       true,
	ValidateString:   true,
	UseInt64:         true,
}

var api = defaultConfig.Froze()

// Marshal encodes a Go value as JSON using the current API config.
func Marshal(v any) ([]byte, error) {
	return api.Marshal(v)
}

// Unmarshal decodes a JSON payload into the provided destination using the current API config.
func Unmarshal(data []byte, v any) error {
	return api.Unmarshal(data, v)
}

// UnmarshalObject decodes a JSON object into a generic map. A JSON null
// yields a nil map and no error.
func UnmarshalObject(data []byte) (map[string]any, error) {
	var m map[string]any
	if err := api.Unmarshal(data, &m); err != nil {
		return nil, err
	}

	return m, nil
}

// SetConfig sets the configuration for the JSON package.
func SetConfig(config *sonic.Config) {
	api = config.Froze()
}
