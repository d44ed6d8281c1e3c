package custom

import (
	"net/http"

	"github.com/scoophq/scoop/api/_responses"
	"github.com/scoophq/scoop/common/rcontext"
)

type HealthzResponse struct {
	OK     bool   `json:"ok"`
	Status string `json:"status"`
}

func GetHealthz(r *http.Request, rctx rcontext.RequestContext) interface{} {
	return &_responses.DoNotCacheResponse{
		Payload: &HealthzResponse{
			OK:     true,
			Status: "Probably not dead",
		},
	}
}
