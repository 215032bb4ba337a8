package inference

import (
	"bytes"
	"encoding/csv"
	"io"
	"strings"
)

// DelimitedText infers a schema from the header line of comma-delimited text.
//
// Only the first line is read; arity of later lines is deliberately not
// validated since the goal is schema, not data validation.
type DelimitedText struct{}

func (DelimitedText) ExtractFields(data []byte) ([]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	fields := make([]string, 0, len(header))
	for _, token := range header {
		fields = append(fields, strings.TrimSpace(token))
	}

	return fields, nil
}
