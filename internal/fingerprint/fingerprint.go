// Package fingerprint infers a technology stack from static HTML markers.
package fingerprint

import (
	"strings"

	"domainwatch/internal/domain"
)

// Detection is one inferred technology. Version is domain.VersionUnknown when
// no version pattern matched, never empty.
type Detection struct {
	Name    string
	Version string
}

// Fingerprinter evaluates signature sets independently and concatenates their
// detections.
type Fingerprinter struct {
	Sets [][]Signature
}

// New returns a fingerprinter over the frontend and backend tables.
func New() *Fingerprinter {
	return &Fingerprinter{Sets: [][]Signature{Frontend, Backend}}
}

// Detect may return the same name twice if two sets share it; callers dedupe.
func (f *Fingerprinter) Detect(html string) []Detection {
	var out []Detection
	for _, set := range f.Sets {
		out = append(out, detect(set, html)...)
	}
	return out
}

func detect(set []Signature, html string) []Detection {
	var out []Detection
	for _, sig := range set {
		if !containsAny(html, sig.Markers) {
			continue
		}
		out = append(out, Detection{Name: sig.Name, Version: version(sig, html)})
	}
	return out
}

func version(sig Signature, html string) string {
	if sig.Version == nil {
		return domain.VersionUnknown
	}
	m := sig.Version.FindStringSubmatch(html)
	if len(m) < 2 || m[1] == "" {
		return domain.VersionUnknown
	}
	return m[1]
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
