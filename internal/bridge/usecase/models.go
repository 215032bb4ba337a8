package usecase

import (
	"strings"

	"github.com/aashish-bhongade98/IntelliDataOps-GovDataBridge/internal/bridge/entity"
	"github.com/aashish-bhongade98/IntelliDataOps-GovDataBridge/internal/bridge/inference"
)

// FileInput is one decoded upload as received from the boundary.
type FileInput struct {
	FileName string
	Content  []byte
}

// FormatsResult lists the file extensions the service can infer schemas from.
type FormatsResult struct {
	Extensions []string
}

// tokenizeSchema turns an inline comma-separated schema string into a Schema
// using the delimited-text rules: split, trim, drop blanks, dedupe. No other
// normalization happens; matching stays exact and case-sensitive.
func tokenizeSchema(raw string) entity.Schema {
	parts := strings.Split(raw, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return inference.Dedupe(parts)
}
