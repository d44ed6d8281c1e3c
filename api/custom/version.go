package custom

import (
	"net/http"

	"github.com/scoophq/scoop/api/_responses"
	"github.com/scoophq/scoop/common/rcontext"
	"github.com/scoophq/scoop/common/version"
)

type VersionResponse struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
}

func GetVersion(r *http.Request, rctx rcontext.RequestContext) interface{} {
	version.SetDefaults()
	return &_responses.DoNotCacheResponse{
		Payload: &VersionResponse{
			Version:   version.Version,
			GitCommit: version.GitCommit,
		},
	}
}
