package inbound

import (
	"github.com/aashish-bhongade98/IntelliDataOps-GovDataBridge/internal/bridge/entity"
)

// FilePayload is one uploaded file as carried in a request body. Content is
// base64 in the wire JSON; []byte decoding handles it transparently.
type FilePayload struct {
	FileName string `json:"file_name"`
	Content  []byte `json:"content"`
}

type ComparisonRequest struct {
	FileA FilePayload `json:"file_a"`
	FileB FilePayload `json:"file_b"`
}

type SchemaMatchRequest struct {
	SchemaA string `json:"schema_a"`
	SchemaB string `json:"schema_b"`
}

// MatchResponse is the boundary shape of a match result. Pair and residual
// ordering follow the inference order of each schema; callers may rely on it.
type MatchResponse struct {
	Matches    [][2]string `json:"matches"`
	UnmatchedA []string    `json:"unmatched_a"`
	UnmatchedB []string    `json:"unmatched_b"`
}

func (MatchResponse) Message() string {
	return "schemas compared"
}

type FormatsResponse struct {
	Extensions []string `json:"extensions"`
}

type StatsResponse struct {
	Comparisons     int64            `json:"comparisons"`
	MatchedFields   int64            `json:"matched_fields"`
	UnmatchedFields int64            `json:"unmatched_fields"`
	FilesByFormat   map[string]int64 `json:"files_by_format"`
}

func toMatchResponse(result entity.MatchResult) MatchResponse {
	matches := make([][2]string, 0, len(result.Matches))
	for _, pair := range result.Matches {
		matches = append(matches, [2]string{pair.FieldA, pair.FieldB})
	}

	return MatchResponse{
		Matches:    matches,
		UnmatchedA: result.UnmatchedA,
		UnmatchedB: result.UnmatchedB,
	}
}

func toStatsResponse(stats entity.ComparisonStats) StatsResponse {
	byFormat := make(map[string]int64, len(stats.FilesByFormat))
	for format, count := range stats.FilesByFormat {
		byFormat[string(format)] = count
	}

	return StatsResponse{
		Comparisons:     stats.Comparisons,
		MatchedFields:   stats.MatchedFields,
		UnmatchedFields: stats.UnmatchedFields,
		FilesByFormat:   byFormat,
	}
}
