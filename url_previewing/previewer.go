package url_previewing

import (
	"github.com/scoophq/scoop/common/rcontext"
	"github.com/scoophq/scoop/url_previewing/m"
	"github.com/scoophq/scoop/url_previewing/p"
	"github.com/sirupsen/logrus"
)

// Generate validates the URL before any network traffic and then builds the preview.
func Generate(rawUrl string, ctx rcontext.RequestContext) (m.LinkPreview, error) {
	urlPayload, err := m.ParseUrl(rawUrl)
	if err != nil {
		return m.LinkPreview{}, err
	}

	ctx = ctx.LogWithFields(logrus.Fields{"previewUrl": urlPayload.ParsedUrl.String()})
	return p.GenerateOpenGraphPreview(urlPayload, ctx)
}
