package httpx

import (
	"net/http"
	"strings"
)

// BearerMiddleware extracts an RFC 6750 bearer token from the Authorization
// header into the request context. Requests without one are rejected with
// 401; validating the token is left to the handler's service.
func BearerMiddleware() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := ParseBearer(r.Header.Get("Authorization"))
			if !ok {
				WriteBearerError(w, "missing bearer token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithBearerToken(r.Context(), raw)))
		})
	}
}

// ParseBearer returns the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearer(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}
	return token, true
}

// WriteBearerError writes an RFC 6750-compliant 401 response.
func WriteBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteError(w, http.StatusUnauthorized, "unauthorized", desc)
}
