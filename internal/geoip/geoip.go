// Package geoip resolves viewer IPs to coarse locations for view analytics.
// A missing or unreadable MaxMind database disables resolution instead of
// failing startup.
package geoip

import (
	"log/slog"
	"net"

	"github.com/oschwald/maxminddb-golang"
)

type Resolver struct {
	reader *maxminddb.Reader
}

type lookupRecord struct {
	Country struct {
		ISOCode string `maxminddb:"iso_code"`
	} `maxminddb:"country"`
	City struct {
		Names map[string]string `maxminddb:"names"`
	} `maxminddb:"city"`
}

// Open loads the MaxMind database at path. An empty path or an open failure
// yields a resolver that returns empty results.
func Open(path string) (*Resolver, error) {
	if path == "" {
		return &Resolver{}, nil
	}
	reader, err := maxminddb.Open(path)
	if err != nil {
		slog.Warn("geoip: could not open database, location lookup disabled", "path", path, "error", err)
		return &Resolver{}, nil
	}
	slog.Info("geoip: database loaded", "path", path)
	return &Resolver{reader: reader}, nil
}

// Lookup returns the ISO country code and English city name for an IP, or
// empty strings when resolution is unavailable.
func (r *Resolver) Lookup(ipStr string) (country, city string) {
	if r == nil || r.reader == nil || ipStr == "" {
		return "", ""
	}
	ip := net.ParseIP(ipStr)
	if ip == nil {
		return "", ""
	}
	var rec lookupRecord
	if err := r.reader.Lookup(ip, &rec); err != nil {
		return "", ""
	}
	return rec.Country.ISOCode, rec.City.Names["en"]
}

func (r *Resolver) Close() error {
	if r.reader != nil {
		return r.reader.Close()
	}
	return nil
}
