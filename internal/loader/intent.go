// Package loader reads transaction intents from JSON or YAML documents.
package loader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hance08/numscribe/internal/model"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// StdinPath makes LoadIntent read from standard input.
const StdinPath = "-"

// FormatForPath picks the decoder from the file extension. Anything that is
// not .yaml or .yml is treated as JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// LoadIntent reads and decodes the intent stored at path.
func LoadIntent(path string) (*model.Intent, error) {
	var (
		data []byte
		err  error
	)

	if path == StdinPath {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read intent file %s: %w", path, err)
	}

	intent, err := ParseIntent(data, FormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("failed to decode intent file %s: %w", path, err)
	}
	return intent, nil
}

// ParseIntent decodes an intent document. Unknown fields are rejected.
func ParseIntent(data []byte, format Format) (*model.Intent, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("intent document is empty")
	}

	intent := &model.Intent{}

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(intent); err != nil {
			return nil, err
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(intent); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported intent format %q", format)
	}

	return intent, nil
}

// MarshalIntent encodes an intent as indented JSON or YAML.
func MarshalIntent(intent *model.Intent, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(intent)
	case FormatJSON:
		return json.MarshalIndent(intent, "", "  ")
	default:
		return nil, fmt.Errorf("unsupported intent format %q", format)
	}
}
