package client

import (
	"context"
	"net"
	"net/http"
)

const (
	CLIENT_ID_HEADER   = "X-Client-ID"
	CLIENT_KEY_MAX_LEN = 128
	contextClientKey   = contextKey("clientKey")
)

type contextKey string

// ParseKey identifies the caller for rate limiting: the X-Client-ID header
// when present, the remote host otherwise.
func ParseKey(r *http.Request) string {
	key := r.Header.Get(CLIENT_ID_HEADER)
	if key != "" && len(key) <= CLIENT_KEY_MAX_LEN {
		return key
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func SetClientKeyToContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), contextClientKey, ParseKey(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func KeyFromContext(ctx context.Context) string {
	key, _ := ctx.Value(contextClientKey).(string)
	return key
}
