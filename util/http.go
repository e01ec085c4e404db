// Package util contains HTTP helpers.
package util

import (
	"net/http"
	"strings"
)

type prefixedResponseWriter struct {
	http.ResponseWriter
	prefix string // without trailing slash
}

// WriteHeader shadows and calls http.ResponseWriter.WriteHeader.
func (w prefixedResponseWriter) WriteHeader(statusCode int) {
	// modify Location header, absolute locations only
	if w.prefix != "" {
		if location := w.Header().Get("Location"); len(location) > 0 && location[0] == '/' && !strings.HasPrefix(location, "//") {
			w.Header().Set("Location", w.prefix+location)
		}
	}
	w.ResponseWriter.WriteHeader(statusCode)
}

// StripPrefix serves requests below prefix with handler, after removing prefix from the request path.
// The prefix is prepended to the Location header of redirects. Requests outside of prefix get a 404.
//
// Your reverse proxy must not strip the prefix. So if you're using nginx, the "proxy_pass" value should not end with a slash.
func StripPrefix(prefix string, handler http.Handler) http.Handler {
	prefix = strings.TrimSuffix(prefix, "/")
	if prefix == "" {
		return handler
	}
	var stripped = http.StripPrefix(
		prefix,
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				handler.ServeHTTP(prefixedResponseWriter{w, prefix}, r)
			},
		),
	)
	var mux = http.NewServeMux()
	mux.Handle(prefix+"/", stripped) // http mux needs trailing slash
	return mux
}
