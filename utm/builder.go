package utm

import (
	"net/url"
	"strings"

	"github.com/scoophq/scoop/common"
)

type UtmParams struct {
	Source   string `json:"source"`
	Medium   string `json:"medium"`
	Campaign string `json:"campaign"`
	Term     string `json:"term"`
	Content  string `json:"content"`
}

type pair struct {
	key   string
	value string
}

func (p UtmParams) pairs() []pair {
	all := []pair{
		{"utm_source", p.Source},
		{"utm_medium", p.Medium},
		{"utm_campaign", p.Campaign},
		{"utm_term", p.Term},
		{"utm_content", p.Content},
	}
	set := make([]pair, 0, len(all))
	for _, kv := range all {
		if v := strings.TrimSpace(kv.value); v != "" {
			set = append(set, pair{kv.key, v})
		}
	}
	return set
}

// NormalizeBase prepends https:// when no scheme is present and checks the result
// is an absolute http(s) URL with a host.
func NormalizeBase(base string) (*url.URL, error) {
	base = strings.TrimSpace(base)
	if base == "" {
		return nil, common.ErrInvalidUrl
	}
	if !strings.HasPrefix(strings.ToLower(base), "http://") && !strings.HasPrefix(strings.ToLower(base), "https://") {
		if strings.Contains(base, "://") {
			return nil, common.ErrInvalidUrl
		}
		base = "https://" + base
	}

	u, err := url.Parse(base)
	if err != nil || u.Host == "" || strings.ContainsAny(u.Host, " \t") {
		return nil, common.ErrInvalidUrl
	}
	return u, nil
}

// Build appends the non-empty params to base. Existing query parameters keep
// their order; a utm_* key that is being set replaces any existing value.
func Build(base string, params UtmParams) (string, error) {
	u, err := NormalizeBase(base)
	if err != nil {
		return "", err
	}

	toSet := params.pairs()
	replaced := make(map[string]bool, len(toSet))
	for _, kv := range toSet {
		replaced[kv.key] = true
	}

	parts := make([]string, 0)
	if u.RawQuery != "" {
		for _, part := range strings.Split(u.RawQuery, "&") {
			if part == "" {
				continue
			}
			key := part
			if i := strings.Index(part, "="); i >= 0 {
				key = part[:i]
			}
			if k, err := url.QueryUnescape(key); err == nil {
				key = k
			}
			if replaced[key] {
				continue
			}
			parts = append(parts, part)
		}
	}
	for _, kv := range toSet {
		parts = append(parts, kv.key+"="+url.QueryEscape(kv.value))
	}

	u.RawQuery = strings.Join(parts, "&")
	u.ForceQuery = false
	return u.String(), nil
}
