package auth

import (
	"net/http"
	"strings"
)

// ExtractToken returns the bearer token from the Authorization header, or
// the named query parameter when the header is absent. Browsers cannot set
// headers on websocket upgrades, hence the query fallback.
func ExtractToken(r *http.Request, queryParam string) string {
	if r == nil {
		return ""
	}

	if token := bearer(r.Header.Get("Authorization")); token != "" {
		return token
	}

	if queryParam == "" {
		queryParam = "token"
	}
	return strings.TrimSpace(r.URL.Query().Get(queryParam))
}

func bearer(header string) string {
	header = strings.TrimSpace(header)

	const prefix = "bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}

	return ""
}
