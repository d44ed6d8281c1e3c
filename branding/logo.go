package branding

import (
	"errors"
	"fmt"
	"image"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rubyist/circuitbreaker"
	"github.com/scoophq/scoop/common"
	"github.com/scoophq/scoop/common/rcontext"
	"github.com/scoophq/scoop/metrics"
	"github.com/scoophq/scoop/util/cleanup"
	"github.com/scoophq/scoop/util/readers"
)

// Logo is either a FoundLogo or a NoLogo. The compositor handles both.
type Logo interface {
	isLogo()
}

type FoundLogo struct {
	Image image.Image
}

type NoLogo struct {
	Reason string
}

func (FoundLogo) isLogo() {}
func (NoLogo) isLogo()    {}

var breakers = &sync.Map{}

func getBreaker(serviceHost string, backoffAt int) *circuit.Breaker {
	cbRaw, hasCb := breakers.Load(serviceHost)
	if hasCb {
		return cbRaw.(*circuit.Breaker)
	}
	if backoffAt <= 0 {
		backoffAt = 10
	}
	cb, _ := breakers.LoadOrStore(serviceHost, circuit.NewConsecutiveBreaker(int64(backoffAt)))
	return cb.(*circuit.Breaker)
}

// DomainFor extracts the host the logo should be looked up for. Payloads without
// a scheme are treated as https links; anything else has no domain.
func DomainFor(data string) string {
	data = strings.TrimSpace(data)
	if data == "" || strings.ContainsAny(data, " \t\n") {
		return ""
	}
	if !strings.Contains(data, "://") {
		data = "https://" + data
	}
	parsed, err := url.Parse(data)
	if err != nil {
		return ""
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return ""
	}
	host := parsed.Hostname()
	if !strings.Contains(host, ".") && host != "localhost" {
		return ""
	}
	return host
}

func serviceUrl(template string, domain string) string {
	return strings.ReplaceAll(template, "{domain}", url.QueryEscape(domain))
}

// FetchLogo never fails: every problem is folded into a NoLogo.
func FetchLogo(data string, ctx rcontext.RequestContext) Logo {
	logo := fetchLogo(data, ctx)
	if nl, ok := logo.(NoLogo); ok {
		ctx.Log.Debug("No logo for branded code: ", nl.Reason)
		metrics.LogoLookups.With(prometheus.Labels{"result": "missing"}).Inc()
	} else {
		metrics.LogoLookups.With(prometheus.Labels{"result": "found"}).Inc()
	}
	return logo
}

func fetchLogo(data string, ctx rcontext.RequestContext) Logo {
	domain := DomainFor(data)
	if domain == "" {
		return NoLogo{Reason: "payload has no domain"}
	}

	cfg := ctx.Config.Branding
	if cfg.FaviconService == "" {
		return NoLogo{Reason: "favicon service disabled"}
	}
	target := serviceUrl(cfg.FaviconService, domain)
	parsed, err := url.Parse(target)
	if err != nil {
		return NoLogo{Reason: "invalid favicon service url: " + err.Error()}
	}

	timeout := time.Duration(ctx.Config.Timeouts.Favicons) * time.Second
	if timeout <= 0 {
		timeout = 3 * time.Second
	}

	// The breaker may abandon the call on timeout, so the body is handed over on a channel
	downloaded := make(chan []byte, 1)
	cb := getBreaker(parsed.Host, cfg.BackoffAt)
	err = cb.CallContext(ctx, func() error {
		body, err := downloadLogo(target, timeout, ctx)
		if err != nil {
			return err
		}
		downloaded <- body
		return nil
	}, timeout)
	if err != nil {
		if errors.Is(err, circuit.ErrBreakerOpen) {
			return NoLogo{Reason: "favicon service circuit open"}
		}
		return NoLogo{Reason: err.Error()}
	}

	img, err := DecodeLogo(<-downloaded)
	if err != nil {
		return NoLogo{Reason: err.Error()}
	}
	return FoundLogo{Image: img}
}

func downloadLogo(target string, timeout time.Duration, ctx rcontext.RequestContext) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", ctx.Config.Branding.UserAgent)

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer cleanup.DumpAndCloseStream(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("favicon service replied %s", resp.Status)
	}

	var reader io.ReadCloser = resp.Body
	if ctx.Config.Branding.MaxLogoBytes > 0 {
		if resp.ContentLength > ctx.Config.Branding.MaxLogoBytes {
			return nil, common.ErrMediaTooLarge
		}
		reader = readers.LimitReaderWithOverrunError(resp.Body, ctx.Config.Branding.MaxLogoBytes)
	}
	return io.ReadAll(reader)
}
