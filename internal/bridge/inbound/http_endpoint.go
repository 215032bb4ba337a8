package inbound

import (
	"context"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/aashish-bhongade98/IntelliDataOps-GovDataBridge/internal/bridge/usecase"
	"github.com/aashish-bhongade98/IntelliDataOps-GovDataBridge/internal/pkg/pkgerror"
)

type HTTPEndpoint struct {
	uc uc
}

func (h *HTTPEndpoint) Comparisons(ctx context.Context, r *http.Request) (any, error) {
	var req ComparisonRequest
	if err := decodeBody(r, &req); err != nil {
		return nil, err
	}

	result, err := h.uc.Compare(ctx,
		usecase.FileInput{FileName: req.FileA.FileName, Content: req.FileA.Content},
		usecase.FileInput{FileName: req.FileB.FileName, Content: req.FileB.Content},
	)
	if err != nil {
		return nil, err
	}

	return toMatchResponse(result), nil
}

func (h *HTTPEndpoint) SchemasMatch(ctx context.Context, r *http.Request) (any, error) {
	var req SchemaMatchRequest
	if err := decodeBody(r, &req); err != nil {
		return nil, err
	}

	result, err := h.uc.MatchFields(ctx, req.SchemaA, req.SchemaB)
	if err != nil {
		return nil, err
	}

	return toMatchResponse(result), nil
}

func (h *HTTPEndpoint) Formats(ctx context.Context, r *http.Request) (any, error) {
	result, err := h.uc.Formats(ctx)
	if err != nil {
		return nil, err
	}

	return FormatsResponse{Extensions: result.Extensions}, nil
}

func (h *HTTPEndpoint) Stats(ctx context.Context, r *http.Request) (any, error) {
	stats, err := h.uc.Stats(ctx)
	if err != nil {
		return nil, err
	}

	return toStatsResponse(stats), nil
}

// decodeBody parses a JSON request body. Malformed JSON (including invalid
// base64 in file content) is a format error, not a server error.
func decodeBody(r *http.Request, dst any) error {
	if r.Body == nil {
		return pkgerror.NewInvalidFormat()
	}

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return pkgerror.NewInvalidFormat()
	}

	return nil
}
