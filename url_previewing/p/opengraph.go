package p

import (
	"errors"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dyatlov/go-opengraph/opengraph"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/scoophq/scoop/common/rcontext"
	"github.com/scoophq/scoop/metrics"
	"github.com/scoophq/scoop/url_previewing/m"
	"github.com/scoophq/scoop/url_previewing/u"
)

var ogSupportedTypes = []string{"text/*"}

func GenerateOpenGraphPreview(urlPayload *m.UrlPayload, ctx rcontext.RequestContext) (m.LinkPreview, error) {
	supportedTypes := ctx.Config.UrlPreviews.PreviewTypes
	if len(supportedTypes) == 0 {
		supportedTypes = ogSupportedTypes
	}

	content, err := u.DownloadHtmlContent(urlPayload, supportedTypes, ctx)
	if err != nil {
		if errors.Is(err, m.ErrPreviewUnsupported) && content != nil {
			// Not a page we can read, but the favicon guess still holds
			metrics.UrlPreviewsGenerated.With(prometheus.Labels{"type": "unsupported"}).Inc()
			return m.LinkPreview{
				Favicon: resolveFavicon(content.FinalUrl, ""),
				Url:     urlPayload.UrlString,
			}, nil
		}
		ctx.Log.Warn("Error downloading content: ", err)
		return m.LinkPreview{}, err
	}

	preview, err := ExtractPreview(content.HTML, content.FinalUrl, ctx.Config.UrlPreviews.OpenGraphFirst)
	if err != nil {
		ctx.Log.Error("Error parsing page: ", err)
		return m.LinkPreview{}, err
	}
	preview.Url = urlPayload.UrlString

	metrics.UrlPreviewsGenerated.With(prometheus.Labels{"type": "opengraph"}).Inc()
	return preview, nil
}

// ExtractPreview reads the metadata out of an already downloaded page. Title and
// description prefer the document's own tags unless openGraphFirst is set. Relative
// image and icon references are resolved against pageUrl.
func ExtractPreview(html string, pageUrl *url.URL, openGraphFirst bool) (m.LinkPreview, error) {
	og := opengraph.NewOpenGraph()
	if err := og.ProcessHTML(strings.NewReader(html)); err != nil {
		return m.LinkPreview{}, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return m.LinkPreview{}, err
	}

	titleTag := strings.TrimSpace(doc.Find("title").First().Text())
	metaDescription := metaContent(doc, "name", "description")
	twitterTitle := twitterContent(doc, "twitter:title")
	twitterDescription := twitterContent(doc, "twitter:description")

	preview := m.LinkPreview{
		SiteName: strings.TrimSpace(og.SiteName),
	}
	if openGraphFirst {
		preview.Title = firstNonEmpty(og.Title, titleTag, twitterTitle)
		preview.Description = firstNonEmpty(og.Description, metaDescription, twitterDescription)
	} else {
		preview.Title = firstNonEmpty(titleTag, og.Title, twitterTitle)
		preview.Description = firstNonEmpty(metaDescription, og.Description, twitterDescription)
	}

	imageUrl := ""
	if len(og.Images) > 0 && og.Images[0] != nil {
		imageUrl = og.Images[0].URL
	}
	imageUrl = firstNonEmpty(imageUrl, twitterContent(doc, "twitter:image"), twitterContent(doc, "twitter:image:src"))
	preview.OgImage = resolveReference(pageUrl, imageUrl)

	iconHref, _ := doc.Find(`link[rel="icon"]`).First().Attr("href")
	if strings.TrimSpace(iconHref) == "" {
		iconHref, _ = doc.Find(`link[rel="shortcut icon"]`).First().Attr("href")
	}
	preview.Favicon = resolveFavicon(pageUrl, iconHref)

	return preview, nil
}

func metaContent(doc *goquery.Document, attr string, name string) string {
	v, _ := doc.Find(`meta[` + attr + `="` + name + `"]`).First().Attr("content")
	return strings.TrimSpace(v)
}

func twitterContent(doc *goquery.Document, name string) string {
	// Twitter cards are documented with name=, but property= is common in the wild
	return firstNonEmpty(metaContent(doc, "name", name), metaContent(doc, "property", name))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func resolveReference(base *url.URL, ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	parsed, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	if base == nil {
		return parsed.String()
	}
	return base.ResolveReference(parsed).String()
}

func resolveFavicon(base *url.URL, href string) string {
	if strings.TrimSpace(href) == "" {
		href = "/favicon.ico"
	}
	resolved := resolveReference(base, href)
	if base != nil && !strings.HasPrefix(resolved, "http") && !strings.HasPrefix(resolved, "data:") {
		return resolveReference(base, "/favicon.ico")
	}
	return resolved
}
