package v1

import (
	"bytes"
	"errors"
	"html/template"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/getsentry/sentry-go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/scoophq/scoop/api/_responses"
	"github.com/scoophq/scoop/common"
	"github.com/scoophq/scoop/common/rcontext"
	"github.com/scoophq/scoop/metrics"
	"github.com/scoophq/scoop/qr"
	"github.com/scoophq/scoop/templating"
)

const pngContentType = "image/png"

func pngResponse(b []byte, data string, download bool) *_responses.DownloadResponse {
	return &_responses.DownloadResponse{
		ContentType:       pngContentType,
		Filename:          qr.Filename(data),
		SizeBytes:         int64(len(b)),
		Data:              io.NopCloser(bytes.NewReader(b)),
		TargetDisposition: disposition(download),
	}
}

func defaultLevel(rctx rcontext.RequestContext) qr.Level {
	l, err := qr.ParseLevel(rctx.Config.QR.DefaultLevel, qr.LevelM)
	if err != nil {
		rctx.Log.Warn("Invalid default error correction level in config, using M")
		return qr.LevelM
	}
	return l
}

func GenerateQr(r *http.Request, rctx rcontext.RequestContext) interface{} {
	params := r.URL.Query()

	data := params.Get("data")
	if data == "" {
		return _responses.BadRequest("Missing data parameter")
	}

	size := rctx.Config.QR.DefaultSize
	if sizeStr := params.Get("size"); sizeStr != "" {
		var err error
		size, err = strconv.Atoi(sizeStr)
		if err != nil {
			return _responses.BadRequest("Invalid size parameter")
		}
	}
	size = qr.ClampSize(size, rctx.Config.QR.MinSize, rctx.Config.QR.MaxSize)

	level, err := qr.ParseLevel(params.Get("level"), defaultLevel(rctx))
	if err != nil {
		return _responses.BadRequest("Invalid level parameter")
	}

	rctx.Log.Debugf("Rendering %dpx code at level %s", size, qr.LevelName(level))
	b, err := qr.RenderPNG(data, size, level)
	if err != nil {
		rctx.Log.Error("Error generating QR code: ", err)
		sentry.CaptureException(err)
		return _responses.InternalServerError("Failed to generate QR code")
	}

	metrics.QrCodesGenerated.With(prometheus.Labels{"kind": "plain"}).Inc()
	return pngResponse(b, data, parseBool(params.Get("download"), false))
}

func QrPage(r *http.Request, rctx rcontext.RequestContext) interface{} {
	data, found, err := rawDataParam(r.URL.RawQuery)
	if err != nil {
		return _responses.BadRequest("Invalid data parameter")
	}
	if !found || data == "" {
		return _responses.BadRequest("Missing data parameter")
	}

	b, err := qr.RenderPNG(data, rctx.Config.QR.DefaultSize, defaultLevel(rctx))
	if err != nil {
		if errors.Is(err, common.ErrMissingData) {
			return _responses.BadRequest("Missing data parameter")
		}
		rctx.Log.Error("Error generating QR code: ", err)
		sentry.CaptureException(err)
		return _responses.InternalServerError("Failed to generate QR code")
	}

	tmpl, err := templating.GetTemplate("qr_page")
	if err != nil {
		rctx.Log.Error("Error loading QR page template: ", err)
		sentry.CaptureException(err)
		return _responses.InternalServerError("Failed to generate QR code")
	}

	model := &templating.QrPageModel{
		Target:    strings.SplitN(data, "?", 2)[0],
		Data:      data,
		ImageUri:  template.URL(qr.DataUri(b)),
		Filename:  qr.Filename(data),
		CreateUrl: rctx.Config.General.UiOrigin,
	}
	html := bytes.Buffer{}
	if err = tmpl.Execute(&html, model); err != nil {
		rctx.Log.Error("Error rendering QR page: ", err)
		sentry.CaptureException(err)
		return _responses.InternalServerError("Failed to generate QR code")
	}

	metrics.QrCodesGenerated.With(prometheus.Labels{"kind": "page"}).Inc()
	return &_responses.HtmlResponse{HTML: html.String()}
}
