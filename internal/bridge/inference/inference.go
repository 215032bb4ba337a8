// Package inference derives the schema implied by an uploaded file: the
// ordered, deduplicated list of field names, regardless of container format.
//
// One Strategy exists per supported format. The dispatcher selects a strategy
// from the file name's extension; the distinction between "valid file, no
// fields" (empty Schema) and "we cannot read this" (error) is part of the
// contract, because callers treat those as different failure classes.
package inference

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aashish-bhongade98/IntelliDataOps-GovDataBridge/internal/bridge/entity"
)

var (
	// ErrUnsupportedFormat reports a file name extension outside the
	// recognized set. Never defaulted silently.
	ErrUnsupportedFormat = errors.New("unsupported file extension")

	// ErrUnparsableContent reports bytes that cannot be decoded under the
	// grammar of the format selected for them.
	ErrUnparsableContent = errors.New("unparsable content")
)

// Strategy extracts raw field names from the bytes of one supported format.
// Implementations return the names in encounter order and may include blanks
// and duplicates; the Inferrer cleans those up.
type Strategy interface {
	ExtractFields(data []byte) ([]string, error)
}

// Inferrer dispatches schema inference by file format.
type Inferrer struct {
	strategies map[entity.FileFormat]Strategy
}

// NewInferrer builds an Inferrer covering every supported format.
func NewInferrer() *Inferrer {
	return &Inferrer{
		strategies: map[entity.FileFormat]Strategy{
			entity.FormatCSV:  DelimitedText{},
			entity.FormatJSON: HierarchicalObject{},
			entity.FormatYAML: YAMLObject{},
			entity.FormatXLSX: TabularSpreadsheet{},
			entity.FormatXML:  MarkupTree{},
		},
	}
}

// FormatForFile resolves the parsing strategy from the file name's extension,
// case-insensitively.
func FormatForFile(name string) (entity.FileFormat, error) {
	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case ".csv":
		return entity.FormatCSV, nil
	case ".json":
		return entity.FormatJSON, nil
	case ".yaml", ".yml":
		return entity.FormatYAML, nil
	case ".xlsx":
		return entity.FormatXLSX, nil
	case ".xml":
		return entity.FormatXML, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnsupportedFormat, ext)
	}
}

// Extensions lists the recognized file extensions in display order.
func (i *Inferrer) Extensions() []string {
	return []string{".csv", ".json", ".yaml", ".yml", ".xlsx", ".xml"}
}

// Infer parses just enough of the upload to extract its schema.
//
// Empty content yields an empty Schema for every recognized format; only
// bytes the selected strategy cannot decode at all produce an error.
func (i *Inferrer) Infer(upload entity.RawUpload) (entity.Schema, error) {
	format, err := FormatForFile(upload.FileName)
	if err != nil {
		return nil, err
	}

	if len(upload.Content) == 0 {
		return entity.Schema{}, nil
	}

	fields, err := i.strategies[format].ExtractFields(upload.Content)
	if err != nil {
		return nil, fmt.Errorf("%w: not readable as %s: %w", ErrUnparsableContent, strings.ToLower(string(format)), err)
	}

	return Dedupe(fields), nil
}

// Dedupe keeps each non-blank field name once, in first-seen order.
func Dedupe(fields []string) entity.Schema {
	seen := make(map[string]struct{}, len(fields))
	schema := make(entity.Schema, 0, len(fields))

	for _, field := range fields {
		if field == "" {
			continue
		}
		if _, ok := seen[field]; ok {
			continue
		}
		seen[field] = struct{}{}
		schema = append(schema, field)
	}

	return schema
}
