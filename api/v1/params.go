package v1

import (
	"net/url"
	"strconv"
	"strings"
)

func parseBool(s string, def bool) bool {
	if s == "" {
		return def
	}
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return b
}

func disposition(download bool) string {
	if download {
		return "attachment"
	}
	return "inline"
}

// rawDataParam returns everything after the first data= key in the raw query,
// percent-decoded but otherwise untouched. Unencoded '&' in the payload survive.
func rawDataParam(rawQuery string) (string, bool, error) {
	idx := -1
	if strings.HasPrefix(rawQuery, "data=") {
		idx = 0
	} else if i := strings.Index(rawQuery, "&data="); i >= 0 {
		idx = i + 1
	}
	if idx < 0 {
		return "", false, nil
	}

	raw := rawQuery[idx+len("data="):]
	if raw == "" {
		return "", false, nil
	}
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return "", true, err
	}
	return decoded, true, nil
}
