package v1

import (
	"errors"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/scoophq/scoop/api/_responses"
	"github.com/scoophq/scoop/common"
	"github.com/scoophq/scoop/common/rcontext"
	"github.com/scoophq/scoop/url_previewing"
	"github.com/scoophq/scoop/url_previewing/m"
)

func PreviewUrl(r *http.Request, rctx rcontext.RequestContext) interface{} {
	urlStr := r.URL.Query().Get("url")

	preview, err := url_previewing.Generate(urlStr, rctx)
	if err != nil {
		var upstreamErr *m.UpstreamStatusError
		if errors.Is(err, common.ErrInvalidUrl) {
			return _responses.BadRequest("Invalid or missing URL")
		} else if errors.Is(err, common.ErrHostNotAllowed) {
			rctx.Log.Warn("Refusing to preview: ", err)
			return _responses.HostNotAllowed("Host not allowed")
		} else if errors.As(err, &upstreamErr) {
			rctx.Log.Info("Upstream replied ", upstreamErr.Status)
			return _responses.UpstreamError(upstreamErr.StatusCode, "Failed to fetch preview: "+upstreamErr.Status)
		}

		rctx.Log.Error("Error fetching preview: ", err)
		if !errors.Is(err, common.ErrHostNotFound) && !errors.Is(err, common.ErrMediaTooLarge) {
			sentry.CaptureException(err)
		}
		return _responses.InternalServerError("Failed to fetch preview")
	}

	return &preview
}
