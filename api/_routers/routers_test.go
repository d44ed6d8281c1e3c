package _routers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/scoophq/scoop/api/_responses"
	"github.com/scoophq/scoop/common"
	"github.com/scoophq/scoop/common/config"
	"github.com/scoophq/scoop/common/rcontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chain(name string, fn GeneratorFn) http.Handler {
	return NewInstallMetadataRouter(name,
		NewInstallHeadersRouter(
			NewRemoteAddressRouter(
				NewMetricsRequestRouter(
					NewRContextRouter(fn, NewMetricsResponseRouter(nil)),
				),
			),
		))
}

func TestStatusCodeFor(t *testing.T) {
	cases := []struct {
		res      *_responses.ErrorResponse
		expected int
	}{
		{_responses.BadRequest("nope"), http.StatusBadRequest},
		{_responses.HostNotAllowed("nope"), http.StatusBadRequest},
		{_responses.NotFoundError(), http.StatusNotFound},
		{_responses.MethodNotAllowed(), http.StatusMethodNotAllowed},
		{_responses.RateLimitReached(), http.StatusTooManyRequests},
		{_responses.InternalServerError("boom"), http.StatusInternalServerError},
		{_responses.UpstreamError(http.StatusNotFound, "gone"), http.StatusNotFound},
		{_responses.UpstreamError(http.StatusServiceUnavailable, "down"), http.StatusServiceUnavailable},
		{_responses.UpstreamError(http.StatusNotModified, "cached"), http.StatusBadGateway},
		{_responses.UpstreamError(http.StatusMultipleChoices, "pick one"), http.StatusBadGateway},
		{&_responses.ErrorResponse{Message: "x", InternalCode: common.ErrCodeUpstream}, http.StatusBadGateway},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, statusCodeFor(c.res), c.res.Message)
	}
}

func TestErrorResponseIsJson(t *testing.T) {
	config.SetForTesting(config.NewDefaultMainConfig())
	h := chain("test", func(r *http.Request, rctx rcontext.RequestContext) interface{} {
		return _responses.BadRequest("Invalid or missing URL")
	})

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", "/api/preview", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(w.Header().Get("X-Request-Id"), "REQ-"))
	assert.JSONEq(t, `{"error":"Invalid or missing URL"}`, w.Body.String())
}

func TestUpstreamNotModifiedIsBadGateway(t *testing.T) {
	config.SetForTesting(config.NewDefaultMainConfig())
	h := chain("test", func(r *http.Request, rctx rcontext.RequestContext) interface{} {
		return _responses.UpstreamError(http.StatusNotModified, "Failed to fetch preview: 304 Not Modified")
	})

	w := httptest.NewRecorder()
	require.NotPanics(t, func() {
		h.ServeHTTP(w, httptest.NewRequest("GET", "/api/preview", nil))
	})
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.JSONEq(t, `{"error":"Failed to fetch preview: 304 Not Modified"}`, w.Body.String())
}

func TestDownloadResponseHeaders(t *testing.T) {
	config.SetForTesting(config.NewDefaultMainConfig())
	h := chain("test", func(r *http.Request, rctx rcontext.RequestContext) interface{} {
		return &_responses.DownloadResponse{
			ContentType:       "image/png",
			Filename:          "QR_Code_example.png",
			SizeBytes:         4,
			Data:              io.NopCloser(strings.NewReader("\x89PNG")),
			TargetDisposition: "attachment",
		}
	})

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", "/api/qr", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=QR_Code_example.png", w.Header().Get("Content-Disposition"))
	assert.Equal(t, "4", w.Header().Get("Content-Length"))
	assert.Equal(t, "\x89PNG", w.Body.String())
}

func TestHtmlResponseClearsCsp(t *testing.T) {
	config.SetForTesting(config.NewDefaultMainConfig())
	h := chain("test", func(r *http.Request, rctx rcontext.RequestContext) interface{} {
		return &_responses.HtmlResponse{HTML: "<p>hi</p>"}
	})

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", "/api/qr/page", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=UTF-8", w.Header().Get("Content-Type"))
	assert.Empty(t, w.Header().Get("Content-Security-Policy"))
	assert.Equal(t, "<p>hi</p>", w.Body.String())
}

func TestRemoteAddressFromForwardedHeader(t *testing.T) {
	cfg := config.NewDefaultMainConfig()
	cfg.General.TrustAnyForward = true
	config.SetForTesting(cfg)

	seen := ""
	h := NewRemoteAddressRouter(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.RemoteAddr
	}))
	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	h.ServeHTTP(httptest.NewRecorder(), r)
	assert.Equal(t, "203.0.113.9", seen)
}
