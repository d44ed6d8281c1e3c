package m

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/scoophq/scoop/common"
)

var ErrPreviewUnsupported = errors.New("preview not supported by this previewer")

// LinkPreview is the best-effort summary of a page. Missing values are empty strings.
type LinkPreview struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	OgImage     string `json:"ogImage"`
	Favicon     string `json:"favicon"`
	SiteName    string `json:"siteName"`
	Url         string `json:"url"`
}

type UrlPayload struct {
	UrlString string
	ParsedUrl *url.URL
}

// ParseUrl accepts only absolute http(s) URLs with a host.
func ParseUrl(raw string) (*UrlPayload, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, common.ErrInvalidUrl
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", common.ErrInvalidUrl, err.Error())
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, common.ErrInvalidUrl
	}
	if parsed.Hostname() == "" {
		return nil, common.ErrInvalidUrl
	}
	return &UrlPayload{
		UrlString: raw,
		ParsedUrl: parsed,
	}, nil
}

// UpstreamStatusError is returned when the target answers with a non-2xx status.
type UpstreamStatusError struct {
	StatusCode int
	Status     string
}

func (e *UpstreamStatusError) Error() string {
	return e.Status
}
