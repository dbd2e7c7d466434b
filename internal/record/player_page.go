package record

import (
	"encoding/json"
	"html/template"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/recview/recview/internal/httputil"
	"github.com/recview/recview/internal/playback"
)

type playerPageData struct {
	Title           string
	Nonce           string
	PlanJSON        template.JS
	TrackLabelsJSON template.JS
	ShowTitle       bool
	WrapperClass    string
}

type notFoundPageData struct {
	Nonce string
}

var playerPageTemplate = template.Must(template.New("player").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>{{.Title}}</title>
    <style nonce="{{.Nonce}}">
        * { margin: 0; padding: 0; box-sizing: border-box; }
        html, body { width: 100%; height: 100%; background: #0f172a; }
        body {
            font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
            display: flex;
            align-items: center;
            justify-content: center;
            padding: 24px;
        }
        .page { width: 100%; max-width: 960px; }` + playerCSS + `
    </style>
</head>
<body>
    <div class="page">
        <div class="{{.WrapperClass}}">
            <video id="player" playsinline webkit-playsinline crossorigin="anonymous"></video>
{{- if .ShowTitle}}
            <div class="player-title-overlay">{{.Title}}</div>
{{- end}}
        </div>
    </div>
    <script nonce="{{.Nonce}}">
        var plan = {{.PlanJSON}};
        var trackLabels = {{.TrackLabelsJSON}};` + playerRuntimeJS + `
    </script>
</body>
</html>`))

var notFoundPageTemplate = template.Must(template.New("not-found").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>Not Found</title>
    <style nonce="{{.Nonce}}">
        * { margin: 0; padding: 0; box-sizing: border-box; }
        html, body { width: 100%; height: 100%; background: #0f172a; }
        body {
            color: #e2e8f0;
            font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
            display: flex;
            align-items: center;
            justify-content: center;
        }
        .container { text-align: center; padding: 2rem; }
        h1 { font-size: 1.25rem; margin-bottom: 0.5rem; }
        p { color: #94a3b8; font-size: 0.875rem; }
    </style>
</head>
<body>
    <div class="container">
        <h1>Record not found</h1>
        <p>This record does not exist or is no longer available.</p>
    </div>
</body>
</html>`))

func (h *Handler) renderNotFound(w http.ResponseWriter, r *http.Request) {
	nonce := httputil.NonceFromContext(r.Context())
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	if err := notFoundPageTemplate.Execute(w, notFoundPageData{Nonce: nonce}); err != nil {
		log.Printf("failed to render not found page: %v", err)
	}
}

func (h *Handler) PlayerPage(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	info, err := h.loadRecord(r.Context(), token)
	if err != nil {
		h.renderNotFound(w, r)
		return
	}

	cfg := parseEmbedConfig(r.URL.Query())
	reportURL := h.baseURL + "/api/records/" + token + "/view"
	plan := playback.BuildPlan(info.Media, cfg, h.policy, "", reportURL)

	planJSON, err := json.Marshal(plan)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	labelsJSON, err := json.Marshal(subtitleTrackLabels(plan))
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	nonce := httputil.NonceFromContext(r.Context())
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := playerPageTemplate.Execute(w, playerPageData{
		Title:           info.Title,
		Nonce:           nonce,
		PlanJSON:        template.JS(planJSON),
		TrackLabelsJSON: template.JS(labelsJSON),
		ShowTitle:       plan.ShowTitle,
		WrapperClass:    wrapperClass(plan),
	}); err != nil {
		log.Printf("failed to render player page: %v", err)
	}
}

func wrapperClass(plan playback.Plan) string {
	switch {
	case plan.Fluid:
		return "player-wrapper fluid"
	case plan.Responsive:
		return "player-wrapper responsive"
	}
	return "player-wrapper"
}
