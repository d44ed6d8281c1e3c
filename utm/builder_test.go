package utm

import (
	"errors"
	"testing"

	"github.com/scoophq/scoop/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAppendsInOrder(t *testing.T) {
	res, err := Build("https://example.org/landing", UtmParams{
		Content:  "banner",
		Source:   "newsletter",
		Campaign: "spring sale",
		Medium:   "email",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://example.org/landing?utm_source=newsletter&utm_medium=email&utm_campaign=spring+sale&utm_content=banner", res)
}

func TestBuildAddsScheme(t *testing.T) {
	res, err := Build("example.org", UtmParams{Source: "x"})
	require.NoError(t, err)
	assert.Equal(t, "https://example.org?utm_source=x", res)
}

func TestBuildWithoutParams(t *testing.T) {
	res, err := Build("http://example.org/a", UtmParams{Source: "  "})
	require.NoError(t, err)
	assert.Equal(t, "http://example.org/a", res)
}

func TestBuildPreservesQueryAndFragment(t *testing.T) {
	res, err := Build("https://example.org/p?b=2&a=1&utm_source=old#section", UtmParams{Source: "new", Term: "shoes"})
	require.NoError(t, err)
	assert.Equal(t, "https://example.org/p?b=2&a=1&utm_source=new&utm_term=shoes#section", res)
}

func TestBuildKeepsUnsetUtmKeys(t *testing.T) {
	res, err := Build("https://example.org/?utm_medium=social", UtmParams{Source: "ig"})
	require.NoError(t, err)
	assert.Equal(t, "https://example.org/?utm_medium=social&utm_source=ig", res)
}

func TestBuildEscapesValues(t *testing.T) {
	res, err := Build("https://example.org", UtmParams{Campaign: "a&b=c"})
	require.NoError(t, err)
	assert.Equal(t, "https://example.org?utm_campaign=a%26b%3Dc", res)
}

func TestBuildRejectsInvalid(t *testing.T) {
	for _, base := range []string{"", "   ", "not a url", "ftp://example.org", "https://"} {
		_, err := Build(base, UtmParams{Source: "x"})
		assert.True(t, errors.Is(err, common.ErrInvalidUrl), "expected rejection for %q", base)
	}
}
