package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/finsight-app/finsight/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAnalysisClient(t *testing.T, handler http.Handler) (*AnalysisClient, *FileSessionStore) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	store := newTestStore(t)
	return NewAnalysisClient(NewAPIClient(server.URL, store)), store
}

func analysisJSON() map[string]any {
	return map[string]any{
		"analysis_id": "a-1",
		"filename":    "tata-fy25.pdf",
		"file_type":   "pdf",
		"status":      "completed",
		"created_at":  "2026-08-12T10:30:00.123456",
		"result": map[string]any{
			"company_name": "Tata Motors",
			"health_score": 82,
		},
	}
}

func TestGetAnalysisAuthenticated(t *testing.T) {
	client, store := newAnalysisClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/analyses/a-1", r.URL.Path)
		require.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(analysisJSON())
	}))
	require.NoError(t, store.Save(&domain.Session{Token: "tok-1"}))

	a, err := client.GetAnalysis(context.Background(), "a-1", false)
	require.NoError(t, err)
	assert.Equal(t, "a-1", a.AnalysisID)
	assert.True(t, a.Status.Completed())
	require.NotNil(t, a.Result)
	assert.Equal(t, 82, a.Result.HealthScore)
	assert.Equal(t, 2026, a.CreatedAt.Year())
}

func TestGetAnalysisPublicSkipsAuth(t *testing.T) {
	client, _ := newAnalysisClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/public/analyses/a-1", r.URL.Path)
		require.Empty(t, r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(analysisJSON())
	}))

	// no session saved: the public path must still work
	a, err := client.GetAnalysis(context.Background(), "a-1", true)
	require.NoError(t, err)
	assert.Equal(t, "Tata Motors", a.Result.CompanyName.String())
}

func TestGetAnalysisNotFound(t *testing.T) {
	client, store := newAnalysisClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Analysis not found"})
	}))
	require.NoError(t, store.Save(&domain.Session{Token: "tok-1"}))

	_, err := client.GetAnalysis(context.Background(), "gone", false)
	require.Error(t, err)
	assert.True(t, domain.IsNotFoundError(err))
	assert.Contains(t, err.Error(), "Analysis not found")
}

func TestGetAnalysisEmptyID(t *testing.T) {
	client, _ := newAnalysisClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	}))

	_, err := client.GetAnalysis(context.Background(), "", false)
	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))
}

func TestGetAnalysisCanceledContext(t *testing.T) {
	client, _ := newAnalysisClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(analysisJSON())
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.GetAnalysis(ctx, "a-1", true)
	require.Error(t, err)
	assert.True(t, domain.IsNetworkError(err))
}

func TestListAnalyses(t *testing.T) {
	client, store := newAnalysisClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/analyses", r.URL.Path)
		json.NewEncoder(w).Encode([]map[string]any{
			analysisJSON(),
			{"analysis_id": "a-2", "filename": "infy-q1.pdf", "status": "processing"},
		})
	}))
	require.NoError(t, store.Save(&domain.Session{Token: "tok-1"}))

	list, err := client.ListAnalyses(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a-1", list[0].AnalysisID)
	assert.Equal(t, domain.StatusProcessing, list[1].Status)
	assert.Nil(t, list[1].Result)
}

func TestDeleteAnalysis(t *testing.T) {
	deleted := false
	client, store := newAnalysisClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/api/analyses/a-1", r.URL.Path)
		deleted = true
		w.WriteHeader(http.StatusNoContent)
	}))
	require.NoError(t, store.Save(&domain.Session{Token: "tok-1"}))

	require.NoError(t, client.DeleteAnalysis(context.Background(), "a-1"))
	assert.True(t, deleted)
}

func TestNetworkFailureMapsToNetworkError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	store := newTestStore(t)
	client := NewAnalysisClient(NewAPIClient(server.URL, store))
	server.Close() // refuse connections

	_, err := client.GetAnalysis(context.Background(), "a-1", true)
	require.Error(t, err)
	assert.True(t, domain.IsNetworkError(err))
	assert.Contains(t, err.Error(), "network error, please try again")
}
