package v1

import (
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/scoophq/scoop/api/_responses"
	"github.com/scoophq/scoop/branding"
	"github.com/scoophq/scoop/common/rcontext"
	"github.com/scoophq/scoop/metrics"
)

type VariantsResponse struct {
	Variants []branding.Variant `json:"variants"`
}

func GenerateBrandedQr(r *http.Request, rctx rcontext.RequestContext) interface{} {
	params := r.URL.Query()

	data := params.Get("data")
	if data == "" {
		return _responses.BadRequest("Missing data parameter")
	}

	opts := branding.NewOptions(
		params.Get("frameColor"),
		params.Get("gradientColor"),
		params.Get("textColor"),
		params.Get("caption"),
		parseBool(params.Get("showFrame"), true),
	)

	b, err := branding.RenderPNG(data, opts, rctx)
	if err != nil {
		rctx.Log.Error("Error generating branded QR code: ", err)
		sentry.CaptureException(err)
		return _responses.InternalServerError("Failed to generate QR code")
	}

	metrics.QrCodesGenerated.With(prometheus.Labels{"kind": "branded"}).Inc()
	return pngResponse(b, data, parseBool(params.Get("download"), false))
}

func GenerateVariants(r *http.Request, rctx rcontext.RequestContext) interface{} {
	params := r.URL.Query()

	data := params.Get("data")
	if data == "" {
		return _responses.BadRequest("Missing data parameter")
	}

	variants, err := branding.RenderVariants(data, params.Get("caption"), parseBool(params.Get("showFrame"), true), rctx)
	if err != nil {
		rctx.Log.Error("Error generating QR variants: ", err)
		sentry.CaptureException(err)
		return _responses.InternalServerError("Failed to generate QR code")
	}

	metrics.QrCodesGenerated.With(prometheus.Labels{"kind": "variant"}).Add(float64(len(variants)))
	return &VariantsResponse{Variants: variants}
}
