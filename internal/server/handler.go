package server

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/finsight-app/finsight/domain"
	"github.com/finsight-app/finsight/service"
)

type shareHandler struct {
	analyses  domain.AnalysisService
	share     domain.ShareBuilder
	formatter *service.HTMLFormatter
}

// Health is the liveness probe
func (h *shareHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, `{"status":"ok"}`)
}

// ViewShared renders a shared analysis as HTML. The fetch goes through the
// public endpoint, so no credentials are involved on either side.
func (h *shareHandler) ViewShared(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	logger := zerolog.Ctx(r.Context())

	analysis, err := h.analyses.GetAnalysis(r.Context(), id, true)
	if err != nil {
		switch {
		case domain.IsNotFoundError(err) || domain.IsValidationError(err):
			h.errorPage(w, http.StatusNotFound, "Analysis not found",
				"This analysis does not exist or has been deleted by its owner.")
		case domain.IsNetworkError(err):
			logger.Error().Err(err).Str("analysis_id", id).Msg("backend unreachable")
			h.errorPage(w, http.StatusBadGateway, "Temporarily unavailable",
				"The analysis backend is not responding. Please try again shortly.")
		default:
			logger.Error().Err(err).Str("analysis_id", id).Msg("share view failed")
			h.errorPage(w, http.StatusInternalServerError, "Something went wrong",
				"The report could not be rendered.")
		}
		return
	}

	if analysis.Result == nil {
		h.errorPage(w, http.StatusNotFound, "Analysis not ready",
			"This analysis has no report yet. Ask the owner to share it once processing finishes.")
		return
	}

	opts := domain.DefaultRenderOptions()
	if r.URL.Query().Get("theme") == string(domain.ThemeDark) {
		opts.Theme = domain.ThemeDark
	}

	page, err := h.formatter.FormatShared(analysis, opts, h.share.ShareURL(analysis.AnalysisID), true)
	if err != nil {
		logger.Error().Err(err).Str("analysis_id", id).Msg("render failed")
		h.errorPage(w, http.StatusInternalServerError, "Something went wrong",
			"The report could not be rendered.")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, page)
}

func (h *shareHandler) errorPage(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	fmt.Fprintf(w, errorPageTemplate, title, title, detail)
}

const errorPageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>FinSight - %s</title>
<style>
body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif; background: #F0F4FF; color: #0A0E1A; display: flex; align-items: center; justify-content: center; min-height: 100vh; margin: 0; }
.box { background: #FFFFFF; border-radius: 16px; padding: 40px; max-width: 420px; text-align: center; box-shadow: 0 2px 8px rgba(0,0,0,0.06); }
h1 { font-size: 1.3em; }
p { color: #6B7280; }
</style>
</head>
<body>
<div class="box">
<h1>%s</h1>
<p>%s</p>
</div>
</body>
</html>
`
