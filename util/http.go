package util

import (
	"net/http"
	"net/url"
)

const maxLoggedValueLength = 128

// GetLogSafeQueryString shortens oversized values so QR payloads don't flood the logs.
func GetLogSafeQueryString(r *http.Request) string {
	qs := r.URL.Query()
	for k, values := range qs {
		for i, v := range values {
			if len(v) > maxLoggedValueLength {
				values[i] = v[:maxLoggedValueLength] + "..."
			}
		}
		qs[k] = values
	}
	return qs.Encode()
}

func GetLogSafeUrl(r *http.Request) string {
	copyUrl, err := url.ParseRequestURI(r.URL.String())
	if err != nil {
		return r.URL.Path
	}
	copyUrl.RawQuery = GetLogSafeQueryString(r)
	return copyUrl.String()
}
