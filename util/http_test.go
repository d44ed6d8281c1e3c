package util

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetLogSafeQueryStringTruncates(t *testing.T) {
	long := strings.Repeat("a", 300)
	r := httptest.NewRequest("GET", "/api/qr?data="+long+"&size=300", nil)

	qs := GetLogSafeQueryString(r)
	assert.Contains(t, qs, "size=300")
	assert.Contains(t, qs, "data="+strings.Repeat("a", maxLoggedValueLength)+"...")
	assert.NotContains(t, qs, long)
}

func TestGetLogSafeUrl(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/preview?url=https%3A%2F%2Fexample.org", nil)
	assert.Equal(t, "/api/preview?url=https%3A%2F%2Fexample.org", GetLogSafeUrl(r))
}
