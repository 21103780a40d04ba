package service

import (
	"context"
	"net/http"

	"github.com/finsight-app/finsight/domain"
)

// AnalysisClient implements domain.AnalysisService. The public variant of
// GetAnalysis hits the token-less share endpoint; both paths return the
// same shape so the renderer never knows which one was used.
//
// Callers that replace an in-flight fetch should cancel its context; a
// canceled request surfaces as a network error and its response is never
// decoded, so a stale fetch cannot overwrite a newer one.
type AnalysisClient struct {
	api *APIClient
}

// NewAnalysisClient creates an analysis client sharing the API plumbing
func NewAnalysisClient(api *APIClient) *AnalysisClient {
	return &AnalysisClient{api: api}
}

// GetAnalysis fetches one analysis by id. With public set, no Authorization
// header is attached and the public endpoint path is used.
func (c *AnalysisClient) GetAnalysis(ctx context.Context, id string, public bool) (*domain.Analysis, error) {
	if id == "" {
		return nil, domain.NewValidationError("analysis id is required")
	}

	path := "/api/analyses/" + id
	if public {
		path = "/api/public/analyses/" + id
	}

	var analysis domain.Analysis
	if err := c.api.do(ctx, http.MethodGet, path, nil, !public, &analysis); err != nil {
		return nil, err
	}
	return &analysis, nil
}

// ListAnalyses returns the caller's analyses, newest first (server order)
func (c *AnalysisClient) ListAnalyses(ctx context.Context) ([]domain.Analysis, error) {
	var analyses []domain.Analysis
	if err := c.api.do(ctx, http.MethodGet, "/api/analyses", nil, true, &analyses); err != nil {
		return nil, err
	}
	return analyses, nil
}

// DeleteAnalysis permanently removes an analysis. Deletion is terminal:
// the share link for the id stops resolving.
func (c *AnalysisClient) DeleteAnalysis(ctx context.Context, id string) error {
	if id == "" {
		return domain.NewValidationError("analysis id is required")
	}
	return c.api.do(ctx, http.MethodDelete, "/api/analyses/"+id, nil, true, nil)
}
