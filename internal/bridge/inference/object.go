package inference

import (
	"bytes"
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// HierarchicalObject infers a schema from JSON: the first-level keys of the
// top-level object, or of the first record when the top level is an array.
//
// The decoder is walked as a token stream so keys come back in serialized
// order, which map-based unmarshaling would lose. Nested objects are not
// flattened; only first-level keys count as fields.
type HierarchicalObject struct{}

func (HierarchicalObject) ExtractFields(data []byte) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		// Top-level scalar: valid JSON, no fields.
		return nil, nil
	}

	switch delim {
	case '{':
		return objectKeys(dec)
	case '[':
		if !dec.More() {
			return nil, nil
		}
		tok, err = dec.Token()
		if err != nil {
			return nil, err
		}
		if d, ok := tok.(json.Delim); ok && d == '{' {
			return objectKeys(dec)
		}
		// Array of scalars or nested arrays: no record keys to read.
		return nil, nil
	}

	return nil, nil
}

// objectKeys collects the keys of the object whose opening brace was just
// consumed, skipping every value so nesting depth never matters.
func objectKeys(dec *json.Decoder) ([]string, error) {
	var fields []string

	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		if d, ok := tok.(json.Delim); ok && d == '}' {
			return fields, nil
		}

		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", tok)
		}
		fields = append(fields, key)

		if err := skipValue(dec); err != nil {
			return nil, err
		}
	}
}

func skipValue(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}

	d, ok := tok.(json.Delim)
	if !ok || (d != '{' && d != '[') {
		return nil
	}

	depth := 1
	for depth > 0 {
		tok, err = dec.Token()
		if err != nil {
			return err
		}
		if d, ok := tok.(json.Delim); ok {
			switch d {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			}
		}
	}

	return nil
}

// YAMLObject applies the hierarchical-object rules to YAML documents. The
// node tree keeps mapping keys in document order, so the same
// first-record/first-level-keys contract holds.
type YAMLObject struct{}

func (YAMLObject) ExtractFields(data []byte) ([]string, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	if root.Kind == yaml.SequenceNode {
		if len(root.Content) == 0 {
			return nil, nil
		}
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, nil
	}

	fields := make([]string, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		fields = append(fields, root.Content[i].Value)
	}

	return fields, nil
}
