package usecase

import (
	"github.com/aashish-bhongade98/IntelliDataOps-GovDataBridge/internal/bridge/entity"
)

// matchSchemas partitions two schemas by exact, case-sensitive name equality.
//
// Pairs come out in schemaA's first-seen order; each residual list keeps its
// own schema's original order. Schemas arrive deduplicated, so a name can
// never be claimed by two pairs. Collections are allocated non-nil so they
// serialize as [] rather than null.
func matchSchemas(schemaA, schemaB entity.Schema) entity.MatchResult {
	inB := make(map[string]struct{}, len(schemaB))
	for _, field := range schemaB {
		inB[field] = struct{}{}
	}

	result := entity.MatchResult{
		Matches:    []entity.MatchPair{},
		UnmatchedA: []string{},
		UnmatchedB: []string{},
	}

	matched := make(map[string]struct{})
	for _, field := range schemaA {
		if _, ok := inB[field]; ok {
			result.Matches = append(result.Matches, entity.MatchPair{FieldA: field, FieldB: field})
			matched[field] = struct{}{}
			continue
		}
		result.UnmatchedA = append(result.UnmatchedA, field)
	}

	for _, field := range schemaB {
		if _, ok := matched[field]; !ok {
			result.UnmatchedB = append(result.UnmatchedB, field)
		}
	}

	return result
}
