package m

import (
	"errors"
	"testing"

	"github.com/scoophq/scoop/common"
	"github.com/stretchr/testify/assert"
)

func TestParseUrl(t *testing.T) {
	valid := []string{
		"https://example.org",
		"http://example.org/path?q=1#frag",
		"https://sub.example.org:8443/",
	}
	for _, v := range valid {
		p, err := ParseUrl(v)
		assert.NoError(t, err, v)
		assert.Equal(t, v, p.UrlString)
	}

	invalid := []string{
		"",
		"   ",
		"not a url",
		"example.org",
		"ftp://example.org/file",
		"javascript:alert(1)",
		"https://",
		"/relative/path",
	}
	for _, v := range invalid {
		_, err := ParseUrl(v)
		assert.True(t, errors.Is(err, common.ErrInvalidUrl), v)
	}
}
