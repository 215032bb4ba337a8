package inference

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
)

// MarkupTree infers a schema from XML: the distinct tag names of the root
// element's direct children, in first-seen order. Attributes and text content
// do not contribute fields.
type MarkupTree struct{}

func (MarkupTree) ExtractFields(data []byte) ([]string, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	var fields []string
	rootSeen := false

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		if !rootSeen {
			rootSeen = true
			continue
		}

		// Direct child of the root; skip its subtree so grandchildren
		// never register as fields.
		fields = append(fields, start.Name.Local)
		if err := dec.Skip(); err != nil {
			return nil, err
		}
	}

	if !rootSeen && len(bytes.TrimSpace(data)) > 0 {
		return nil, errors.New("no root element")
	}

	return fields, nil
}
