package record

import (
	"context"
	"crypto/sha256"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mssola/useragent"

	"github.com/recview/recview/internal/database"
	"github.com/recview/recview/internal/playback"
)

// ObjectStorage presigns read access to record assets.
type ObjectStorage interface {
	AssetURL(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// GeoResolver maps a client IP to a coarse location.
type GeoResolver interface {
	Lookup(ip string) (country, city string)
}

type Handler struct {
	db          database.DBTX
	storage     ObjectStorage
	geoResolver GeoResolver
	baseURL     string
	policy      playback.PlayerPolicy
}

func NewHandler(db database.DBTX, s ObjectStorage, baseURL string, policy playback.PlayerPolicy) *Handler {
	return &Handler{
		db:      db,
		storage: s,
		baseURL: baseURL,
		policy:  policy,
	}
}

func (h *Handler) SetGeoResolver(g GeoResolver) {
	h.geoResolver = g
}

func viewerHash(ip, userAgent string) string {
	h := sha256.Sum256([]byte(ip + "|" + userAgent))
	return fmt.Sprintf("%x", h[:8])
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		if first, _, ok := strings.Cut(forwarded, ","); ok {
			return strings.TrimSpace(first)
		}
		return strings.TrimSpace(forwarded)
	}
	return r.RemoteAddr
}

func categorizeReferrer(referer string) string {
	if referer == "" {
		return "Direct"
	}
	u, err := url.Parse(referer)
	if err != nil || u.Host == "" {
		return "Other"
	}
	host := strings.TrimPrefix(strings.ToLower(u.Host), "www.")
	switch host {
	case "mail.google.com", "outlook.live.com", "outlook.office.com", "mail.proton.me", "mail.yahoo.com":
		return "Email"
	case "app.slack.com", "slack.com":
		return "Slack"
	case "twitter.com", "x.com":
		return "Twitter"
	case "linkedin.com", "lnkd.in":
		return "LinkedIn"
	case "facebook.com", "fb.com":
		return "Facebook"
	}
	return "Other"
}

func parseBrowser(uaString string) string {
	if uaString == "" {
		return "Other"
	}
	ua := useragent.New(uaString)
	name, _ := ua.Browser()
	if name == "" {
		return "Other"
	}
	return name
}

func parseDevice(uaString string) string {
	if uaString == "" {
		return "Desktop"
	}
	ua := useragent.New(uaString)
	lower := strings.ToLower(uaString)
	isTablet := strings.Contains(lower, "ipad") ||
		(strings.Contains(lower, "android") && !strings.Contains(lower, "mobile"))
	switch {
	case isTablet:
		return "Tablet"
	case ua.Mobile():
		return "Mobile"
	default:
		return "Desktop"
	}
}
