package middleware

import (
	"net/http"
	"strings"

	"github.com/esatto/customer-records-api/internal/handlers"
)

type PolicyMode string

const (
	// ModeOrigin compares the Origin header against one allowed origin.
	ModeOrigin PolicyMode = "origin"
	// ModeSameOrigin requires the Sec-Fetch-Site header to be "same-origin".
	ModeSameOrigin PolicyMode = "same-origin"
)

// AccessPolicy is the single configurable access-restriction rule applied
// in front of the API routes.
type AccessPolicy struct {
	Mode          PolicyMode
	AllowedOrigin string
}

func (p AccessPolicy) allows(r *http.Request) bool {
	switch p.Mode {
	case ModeSameOrigin:
		return r.Header.Get("Sec-Fetch-Site") == "same-origin"
	default:
		// Browsers report localhost and 127.0.0.1 interchangeably.
		origin := strings.Replace(r.Header.Get("Origin"), "localhost", "127.0.0.1", 1)
		return origin == p.AllowedOrigin
	}
}

func (p AccessPolicy) Restrict(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !p.allows(r) {
			handlers.RespondWithError(w, http.StatusForbidden, "Access denied")
			return
		}
		next.ServeHTTP(w, r)
	})
}
