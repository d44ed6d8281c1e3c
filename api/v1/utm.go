package v1

import (
	"net/http"

	"github.com/scoophq/scoop/api/_responses"
	"github.com/scoophq/scoop/common/rcontext"
	"github.com/scoophq/scoop/utm"
)

type UtmResponse struct {
	Url string `json:"url"`
}

func BuildUtmUrl(r *http.Request, rctx rcontext.RequestContext) interface{} {
	params := r.URL.Query()

	built, err := utm.Build(params.Get("url"), utm.UtmParams{
		Source:   params.Get("source"),
		Medium:   params.Get("medium"),
		Campaign: params.Get("campaign"),
		Term:     params.Get("term"),
		Content:  params.Get("content"),
	})
	if err != nil {
		return _responses.BadRequest("Invalid or missing URL")
	}

	return &UtmResponse{Url: built}
}
