package inbound

import (
	"context"

	"github.com/aashish-bhongade98/IntelliDataOps-GovDataBridge/internal/bridge/entity"
	"github.com/aashish-bhongade98/IntelliDataOps-GovDataBridge/internal/bridge/usecase"
	"github.com/aashish-bhongade98/IntelliDataOps-GovDataBridge/internal/pkg/pkgrouter"
)

type uc interface {
	Compare(ctx context.Context, fileA, fileB usecase.FileInput) (entity.MatchResult, error)
	MatchFields(ctx context.Context, schemaA, schemaB string) (entity.MatchResult, error)
	Stats(ctx context.Context) (entity.ComparisonStats, error)
	Formats(ctx context.Context) (usecase.FormatsResult, error)
}

func RegisterHTTPEndpoint(r *pkgrouter.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/comparisons", end.Comparisons)
	r.POST("/schemas/match", end.SchemasMatch)

	r.GET("/formats", end.Formats)
	r.GET("/stats", end.Stats)
}
