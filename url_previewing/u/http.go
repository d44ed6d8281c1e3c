package u

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/ryanuber/go-glob"
	"github.com/scoophq/scoop/common"
	"github.com/scoophq/scoop/common/rcontext"
	"github.com/scoophq/scoop/url_previewing/m"
	"github.com/scoophq/scoop/util"
	"github.com/scoophq/scoop/util/cleanup"
	"github.com/scoophq/scoop/util/readers"
	"golang.org/x/net/proxy"
)

type HtmlContent struct {
	HTML        string
	ContentType string
	FinalUrl    *url.URL
}

func getProxy(dialer *net.Dialer, ctx rcontext.RequestContext) (proxy.Dialer, error) {
	proxyUrl, err := url.Parse(ctx.Config.UrlPreviews.ProxyURL)
	if err != nil {
		return nil, fmt.Errorf("error parsing proxy url: %w", err)
	}
	return proxy.FromURL(proxyUrl, dialer)
}

func newClient(ctx rcontext.RequestContext) *http.Client {
	timeout := time.Duration(ctx.Config.Timeouts.UrlPreviews) * time.Second
	dialer := &net.Dialer{
		Timeout:   timeout,
		KeepAlive: timeout,
	}

	dialContext := func(ctx2 context.Context, network, addr string) (conn net.Conn, e error) {
		if network != "tcp" && network != "tcp4" && network != "tcp6" {
			return nil, errors.New("invalid network: expected tcp")
		}

		safeIp, safePort, err := getSafeAddress(addr, ctx)
		if err != nil {
			return nil, err
		}

		if ctx.Config.UrlPreviews.ProxyURL != "" {
			proxyDialer, err := getProxy(dialer, ctx)
			if err != nil {
				return nil, fmt.Errorf("error creating proxy: %w", err)
			}
			if contextDialer, ok := proxyDialer.(proxy.ContextDialer); ok {
				return contextDialer.DialContext(ctx2, network, net.JoinHostPort(safeIp.String(), safePort))
			} else {
				return nil, errors.New("failed proxy type assertion to ContextDialer")
			}
		}

		return dialer.DialContext(ctx2, network, net.JoinHostPort(safeIp.String(), safePort))
	}

	maxRedirects := ctx.Config.UrlPreviews.MaxRedirects
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			DisableKeepAlives: true,
			DialContext:       dialContext,
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) > maxRedirects {
				return common.ErrTooManyRedirects
			}
			return nil
		},
	}
}

func doHttpGet(urlPayload *m.UrlPayload, ctx rcontext.RequestContext) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlPayload.ParsedUrl.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", ctx.Config.UrlPreviews.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")
	return newClient(ctx).Do(req)
}

func isSupportedType(contentType string, supportedTypes []string) bool {
	for _, supportedType := range supportedTypes {
		if glob.Glob(supportedType, contentType) {
			return true
		}
	}
	return false
}

// DownloadHtmlContent fetches the page, returning m.ErrPreviewUnsupported (with the
// final URL still populated) when the content type is not one we parse.
func DownloadHtmlContent(urlPayload *m.UrlPayload, supportedTypes []string, ctx rcontext.RequestContext) (*HtmlContent, error) {
	ctx.Log.Info("Fetching remote content...")
	resp, err := doHttpGet(urlPayload, ctx)
	if err != nil {
		return nil, err
	}
	defer cleanup.DumpAndCloseStream(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		ctx.Log.Warn("Received status code ", resp.StatusCode)
		return nil, &m.UpstreamStatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	content := &HtmlContent{
		ContentType: resp.Header.Get("Content-Type"),
		FinalUrl:    resp.Request.URL,
	}

	if !isSupportedType(content.ContentType, supportedTypes) {
		ctx.Log.Info("Unsupported content type for preview: ", content.ContentType)
		return content, m.ErrPreviewUnsupported
	}

	maxBytes := ctx.Config.UrlPreviews.MaxPageSizeBytes
	var reader io.ReadCloser = resp.Body
	if maxBytes > 0 {
		if resp.ContentLength > maxBytes {
			ctx.Log.Warnf("Page is %s which is larger than the %s limit", humanize.Bytes(uint64(resp.ContentLength)), humanize.Bytes(uint64(maxBytes)))
			return nil, common.ErrMediaTooLarge
		}
		reader = readers.LimitReaderWithOverrunError(resp.Body, maxBytes)
	}

	raw, err := io.ReadAll(reader)
	if err != nil {
		if errors.Is(err, common.ErrMediaTooLarge) {
			ctx.Log.Warnf("Page exceeded the %s limit while reading", humanize.Bytes(uint64(maxBytes)))
		}
		return nil, err
	}
	content.HTML = util.ToUtf8(raw, content.ContentType)
	return content, nil
}
