package _routers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/alioygur/is"
	"github.com/getsentry/sentry-go"
	"github.com/scoophq/scoop/api/_responses"
	"github.com/scoophq/scoop/common"
	"github.com/scoophq/scoop/common/config"
	"github.com/scoophq/scoop/common/rcontext"
)

type GeneratorFn = func(r *http.Request, ctx rcontext.RequestContext) interface{}

type RContextRouter struct {
	generatorFn GeneratorFn
	next        http.Handler
}

func NewRContextRouter(generatorFn GeneratorFn, next http.Handler) *RContextRouter {
	return &RContextRouter{generatorFn: generatorFn, next: next}
}

func (c *RContextRouter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := GetLogger(r)
	rctx := rcontext.RequestContext{
		Context: r.Context(),
		Log:     log,
		Config:  *config.Get(),
		Request: r,
	}

	var res interface{}
	res = c.generatorFn(r, rctx)
	if res == nil {
		res = &_responses.EmptyResponse{}
	}

	shouldCache := true
	wrappedRes, isNoCache := res.(*_responses.DoNotCacheResponse)
	if isNoCache {
		shouldCache = false
		res = wrappedRes.Payload
	}

	headers := w.Header()
	if !shouldCache {
		headers.Set("Cache-Control", "no-store")
	}

	// Check for HTML response and reply accordingly
	if htmlRes, isHtml := res.(*_responses.HtmlResponse); isHtml {
		log.Infof("Replying with result: %T <%d chars of html>", res, len(htmlRes.HTML))

		headers.Set("Content-Type", "text/html; charset=UTF-8")

		// Clear the CSP because we're serving HTML
		headers.Set("Content-Security-Policy", "")

		r = writeStatusCode(w, r, http.StatusOK)
		if _, err := w.Write([]byte(htmlRes.HTML)); err != nil {
			log.Warn("Error sending HtmlResponse: ", err)
		}
		if c.next != nil {
			c.next.ServeHTTP(w, r)
		}
		return // don't continue
	}

	proposedStatusCode := http.StatusOK
	var stream io.ReadCloser
	expectedBytes := int64(0)
	var contentType string
	if downloadRes, isDownload := res.(*_responses.DownloadResponse); isDownload {
		log.Infof("Replying with result: %T <%s, %d bytes>", res, downloadRes.ContentType, downloadRes.SizeBytes)
		contentType = downloadRes.ContentType
		expectedBytes = downloadRes.SizeBytes

		disposition := downloadRes.TargetDisposition
		if disposition == "" {
			disposition = "inline"
		}
		fname := downloadRes.Filename
		if fname == "" {
			exts, err := mime.ExtensionsByType(contentType)
			if err != nil {
				exts = nil
				log.Warn("Unexpected error inferring file extension: ", err)
			}
			ext := ""
			if len(exts) > 0 {
				ext = exts[0]
			}
			fname = "file" + ext
		}
		if is.ASCII(fname) {
			headers.Set("Content-Disposition", disposition+"; filename="+url.QueryEscape(fname))
		} else {
			headers.Set("Content-Disposition", disposition+"; filename*=utf-8''"+url.QueryEscape(fname))
		}
		stream = downloadRes.Data
	} else {
		log.Infof("Replying with result: %T %+v", res, res)
	}

	// Try to find a suitable error code, if one is needed
	if errRes, isError := res.(_responses.ErrorResponse); isError {
		res = &errRes // just fix it
	}
	if errRes, isError := res.(*_responses.ErrorResponse); isError {
		proposedStatusCode = statusCodeFor(errRes)
	}

	// Prepare a stream if one isn't set, and assume JSON
	if stream == nil {
		contentType = "application/json"
		b, err := json.Marshal(res)
		if err != nil {
			panic(err) // blow up this request
		}
		stream = io.NopCloser(bytes.NewReader(b))
		expectedBytes = int64(len(b))
	}

	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		sentry.CaptureException(err)
		log.Warn("Failed to parse content type header on reply: ", err)
	} else {
		if !strings.HasPrefix(mediaType, "text/") && mediaType != "application/json" {
			delete(params, "charset")
		}
		contentType = mime.FormatMediaType(mediaType, params)
	}
	headers.Set("Content-Type", contentType)

	if expectedBytes > 0 {
		headers.Set("Content-Length", strconv.FormatInt(expectedBytes, 10))
	}

	r = writeStatusCode(w, r, proposedStatusCode)

	defer stream.Close()
	if r.Method != http.MethodHead {
		written, err := io.Copy(w, stream)
		if err != nil {
			panic(err) // blow up this request
		}
		if expectedBytes > 0 && written != expectedBytes {
			panic(errors.New(fmt.Sprintf("mismatch transfer size: %d expected, %d sent", expectedBytes, written)))
		}
	}

	if c.next != nil {
		c.next.ServeHTTP(w, r)
	}
}

func statusCodeFor(errRes *_responses.ErrorResponse) int {
	if errRes.StatusCode > 0 {
		return errRes.StatusCode
	}
	switch errRes.InternalCode {
	case common.ErrCodeNotFound:
		return http.StatusNotFound
	case common.ErrCodeBadRequest, common.ErrCodeHostNotAllowed:
		return http.StatusBadRequest
	case common.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case common.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case common.ErrCodeUpstream:
		return http.StatusBadGateway
	default: // Treat as unknown (a generic server error)
		return http.StatusInternalServerError
	}
}

func GetStatusCode(r *http.Request) int {
	x, ok := r.Context().Value(common.ContextStatusCode).(int)
	if !ok {
		return http.StatusOK
	}
	return x
}

func writeStatusCode(w http.ResponseWriter, r *http.Request, statusCode int) *http.Request {
	w.WriteHeader(statusCode)
	return r.WithContext(context.WithValue(r.Context(), common.ContextStatusCode, statusCode))
}
