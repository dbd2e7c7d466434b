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

type embedPageData struct {
	Title           string
	Nonce           string
	PlanJSON        template.JS
	TrackLabelsJSON template.JS
	ShowTitle       bool
	BaseURL         string
	Token           string
}

var embedPageTemplate = template.Must(template.New("embed").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>{{.Title}}</title>
    <style nonce="{{.Nonce}}">
        * { margin: 0; padding: 0; box-sizing: border-box; }
        html, body { width: 100%; height: 100%; overflow: hidden; background: #0f172a; }
        .container {
            display: flex;
            flex-direction: column;
            width: 100%;
            height: 100%;
        }
        .video-area {
            flex: 1;
            min-height: 0;
        }
        .footer {
            display: flex;
            align-items: center;
            justify-content: space-between;
            padding: 8px 12px;
            background: #1e293b;
            color: #e2e8f0;
            font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
            font-size: 13px;
        }
        .footer-title {
            white-space: nowrap;
            overflow: hidden;
            text-overflow: ellipsis;
            margin-right: 12px;
        }
        .footer a {
            color: #94a3b8;
            text-decoration: none;
            white-space: nowrap;
            font-size: 12px;
        }
        .footer a:hover { color: #e2e8f0; }` + playerCSS + `
        .video-area .player-wrapper { height: 100%; }
    </style>
</head>
<body>
    <div class="container">
        <div class="video-area">
            <div class="player-wrapper fluid">
                <video id="player" playsinline webkit-playsinline crossorigin="anonymous"></video>
{{- if .ShowTitle}}
                <div class="player-title-overlay">{{.Title}}</div>
{{- end}}
            </div>
        </div>
        <div class="footer">
            <span class="footer-title">{{.Title}}</span>
            <a href="{{.BaseURL}}/record/{{.Token}}/player" target="_blank" rel="noopener">Watch on RecView</a>
        </div>
    </div>
    <script nonce="{{.Nonce}}">
        var plan = {{.PlanJSON}};
        var trackLabels = {{.TrackLabelsJSON}};` + playerRuntimeJS + `
    </script>
</body>
</html>`))

func (h *Handler) EmbedPage(w http.ResponseWriter, r *http.Request) {
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
	if err := embedPageTemplate.Execute(w, embedPageData{
		Title:           info.Title,
		Nonce:           nonce,
		PlanJSON:        template.JS(planJSON),
		TrackLabelsJSON: template.JS(labelsJSON),
		ShowTitle:       plan.ShowTitle,
		BaseURL:         h.baseURL,
		Token:           token,
	}); err != nil {
		log.Printf("failed to render embed page: %v", err)
	}
}
