package util

import (
	"encoding/json"
	"strings"

	"github.com/nwidger/jsoncolor"
	"go.mongodb.org/mongo-driver/bson"
	"gopkg.in/yaml.v3"
)

type Marshaler func(any) ([]byte, error)

const (
	FormatJSON      = "json"
	FormatJSONColor = "jsoncolor"
	FormatYAML      = "yaml"
	FormatBSON      = "bson"
)

// GetMarshaler returns nil for unsupported formats.
func GetMarshaler(format string) Marshaler {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatBSON:
		return bson.Marshal
	case FormatJSON:
		return func(in any) ([]byte, error) { return json.MarshalIndent(in, "", "  ") }
	case FormatJSONColor:
		return func(in any) ([]byte, error) { return jsoncolor.MarshalIndent(in, "", "  ") }
	case FormatYAML, "yml":
		return yaml.Marshal
	default:
		return nil
	}
}
