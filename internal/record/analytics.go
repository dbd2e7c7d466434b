package record

import (
	"fmt"
	"math"
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/recview/recview/internal/auth"
	"github.com/recview/recview/internal/httputil"
)

type analyticsSummary struct {
	TotalViews        int64   `json:"totalViews"`
	UniqueViews       int64   `json:"uniqueViews"`
	ViewsToday        int64   `json:"viewsToday"`
	AverageDailyViews float64 `json:"averageDailyViews"`
	PeakDay           string  `json:"peakDay"`
	PeakDayViews      int64   `json:"peakDayViews"`
}

type dailyViews struct {
	Date        string `json:"date"`
	Views       int64  `json:"views"`
	UniqueViews int64  `json:"uniqueViews"`
}

type breakdownItem struct {
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
}

type referrerData struct {
	Source     string  `json:"source"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

type analyticsResponse struct {
	Summary   analyticsSummary `json:"summary"`
	Daily     []dailyViews     `json:"daily"`
	Referrers []referrerData   `json:"referrers"`
	Browsers  []breakdownItem  `json:"browsers"`
	Devices   []breakdownItem  `json:"devices"`
}

func rangeDays(rangeParam string) (int, bool) {
	switch rangeParam {
	case "", "7d":
		return 7, true
	case "30d":
		return 30, true
	case "90d":
		return 90, true
	case "all":
		return 0, true
	}
	return 0, false
}

func rangeSince(now time.Time, days int) time.Time {
	if days > 0 {
		return now.AddDate(0, 0, -(days - 1))
	}
	return time.Time{}
}

func (h *Handler) ownedRecordID(r *http.Request) (string, error) {
	userID := auth.UserIDFromContext(r.Context())
	recordID := chi.URLParam(r, "id")

	var id string
	err := h.db.QueryRow(r.Context(),
		`SELECT id FROM records WHERE id = $1 AND user_id = $2 AND status != 'deleted'`,
		recordID, userID,
	).Scan(&id)
	return id, err
}

func (h *Handler) Analytics(w http.ResponseWriter, r *http.Request) {
	recordID, err := h.ownedRecordID(r)
	if err != nil {
		httputil.WriteError(w, http.StatusNotFound, "record not found")
		return
	}

	days, ok := rangeDays(r.URL.Query().Get("range"))
	if !ok {
		httputil.WriteError(w, http.StatusBadRequest, "invalid range: must be 7d, 30d, 90d, or all")
		return
	}
	now := time.Now().UTC().Truncate(24 * time.Hour)
	since := rangeSince(now, days)

	rows, err := h.db.Query(r.Context(),
		`SELECT date_trunc('day', created_at) AS day, COUNT(*) AS views, COUNT(DISTINCT viewer_hash) AS unique_views
		 FROM record_views WHERE record_id = $1 AND created_at >= $2
		 GROUP BY day ORDER BY day`,
		recordID, since,
	)
	if err != nil {
		httputil.WriteError(w, http.StatusInternalServerError, "failed to query analytics")
		return
	}
	defer rows.Close()

	dataByDate := make(map[string]dailyViews)
	for rows.Next() {
		var day time.Time
		var views, uniqueViews int64
		if err := rows.Scan(&day, &views, &uniqueViews); err != nil {
			httputil.WriteError(w, http.StatusInternalServerError, "failed to scan analytics")
			return
		}
		dateStr := day.Format("2006-01-02")
		dataByDate[dateStr] = dailyViews{Date: dateStr, Views: views, UniqueViews: uniqueViews}
	}
	if err := rows.Err(); err != nil {
		httputil.WriteError(w, http.StatusInternalServerError, "failed to read analytics")
		return
	}

	daily := make([]dailyViews, 0)
	if days > 0 {
		for i := days - 1; i >= 0; i-- {
			dateStr := now.AddDate(0, 0, -i).Format("2006-01-02")
			if entry, ok := dataByDate[dateStr]; ok {
				daily = append(daily, entry)
			} else {
				daily = append(daily, dailyViews{Date: dateStr})
			}
		}
	} else {
		for _, entry := range dataByDate {
			daily = append(daily, entry)
		}
		sort.Slice(daily, func(i, j int) bool { return daily[i].Date < daily[j].Date })
	}

	resp := analyticsResponse{
		Summary:   computeSummary(daily, now.Format("2006-01-02")),
		Daily:     daily,
		Referrers: h.queryReferrers(r, recordID, since),
		Browsers:  h.queryBreakdown(r, recordID, since, "browser"),
		Devices:   h.queryBreakdown(r, recordID, since, "device"),
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) queryReferrers(r *http.Request, recordID string, since time.Time) []referrerData {
	referrers := make([]referrerData, 0)
	rows, err := h.db.Query(r.Context(),
		`SELECT referrer, COUNT(*) AS cnt
		 FROM record_views WHERE record_id = $1 AND created_at >= $2
		 GROUP BY referrer ORDER BY cnt DESC`,
		recordID, since,
	)
	if err != nil {
		return referrers
	}
	defer rows.Close()
	for rows.Next() {
		var rd referrerData
		if err := rows.Scan(&rd.Source, &rd.Count); err == nil {
			referrers = append(referrers, rd)
		}
	}
	var total int64
	for _, rd := range referrers {
		total += rd.Count
	}
	if total > 0 {
		for i := range referrers {
			referrers[i].Percentage = math.Round(float64(referrers[i].Count)/float64(total)*1000) / 10
		}
	}
	return referrers
}

func (h *Handler) queryBreakdown(r *http.Request, recordID string, since time.Time, column string) []breakdownItem {
	items := make([]breakdownItem, 0)
	rows, err := h.db.Query(r.Context(),
		`SELECT `+column+`, COUNT(*) AS cnt
		 FROM record_views WHERE record_id = $1 AND created_at >= $2
		 GROUP BY `+column+` ORDER BY cnt DESC`,
		recordID, since,
	)
	if err != nil {
		return items
	}
	defer rows.Close()
	type countedItem struct {
		name  string
		count int64
	}
	var counts []countedItem
	var total int64
	for rows.Next() {
		var name string
		var count int64
		if err := rows.Scan(&name, &count); err == nil {
			counts = append(counts, countedItem{name, count})
			total += count
		}
	}
	if total > 0 {
		for _, c := range counts {
			items = append(items, breakdownItem{
				Name:       c.name,
				Percentage: math.Round(float64(c.count)/float64(total)*1000) / 10,
			})
		}
	}
	return items
}

func computeSummary(daily []dailyViews, todayStr string) analyticsSummary {
	var summary analyticsSummary
	for _, d := range daily {
		summary.TotalViews += d.Views
		summary.UniqueViews += d.UniqueViews
		if d.Date == todayStr {
			summary.ViewsToday = d.Views
		}
		if d.Views > summary.PeakDayViews {
			summary.PeakDayViews = d.Views
			summary.PeakDay = d.Date
		}
	}
	if len(daily) > 0 && summary.TotalViews > 0 {
		avg := float64(summary.TotalViews) / float64(len(daily))
		summary.AverageDailyViews = math.Round(avg*10) / 10
	}
	return summary
}

func (h *Handler) AnalyticsExport(w http.ResponseWriter, r *http.Request) {
	recordID, err := h.ownedRecordID(r)
	if err != nil {
		httputil.WriteError(w, http.StatusNotFound, "record not found")
		return
	}

	days, ok := rangeDays(r.URL.Query().Get("range"))
	if !ok {
		httputil.WriteError(w, http.StatusBadRequest, "invalid range")
		return
	}
	now := time.Now().UTC().Truncate(24 * time.Hour)
	since := rangeSince(now, days)

	rows, err := h.db.Query(r.Context(),
		`SELECT date_trunc('day', created_at)::date AS day, COUNT(*) AS views, COUNT(DISTINCT viewer_hash) AS unique_views
		 FROM record_views WHERE record_id = $1 AND created_at >= $2
		 GROUP BY day ORDER BY day`,
		recordID, since,
	)
	if err != nil {
		httputil.WriteError(w, http.StatusInternalServerError, "failed to query")
		return
	}
	defer rows.Close()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=analytics.csv")
	fmt.Fprintln(w, "Date,Views,Unique Views")
	for rows.Next() {
		var day time.Time
		var views, uv int64
		if err := rows.Scan(&day, &views, &uv); err == nil {
			fmt.Fprintf(w, "%s,%d,%d\n", day.Format("2006-01-02"), views, uv)
		}
	}
}
