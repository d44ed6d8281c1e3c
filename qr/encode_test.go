package qr

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/makiuchi-d/gozxing"
	zxqr "github.com/makiuchi-d/gozxing/qrcode"
	"github.com/scoophq/scoop/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, img image.Image) string {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	require.NoError(t, err)
	res, err := zxqr.NewQRCodeReader().Decode(bmp, nil)
	require.NoError(t, err)
	return res.GetText()
}

func TestRenderPNGRoundTrip(t *testing.T) {
	payloads := []string{
		"https://example.org/landing?utm_source=news&utm_medium=email",
		"hello world",
		"WIFI:S:scoop;T:WPA;P:secret;;",
		strings.Repeat("0123456789", 20),
	}
	for _, p := range payloads {
		b, err := RenderPNG(p, 300, LevelM)
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(b))
		require.NoError(t, err)
		assert.Equal(t, p, decode(t, img))
	}
}

func TestRenderPNGIsDeterministic(t *testing.T) {
	a, err := RenderPNG("https://example.org", 300, LevelM)
	require.NoError(t, err)
	b, err := RenderPNG("https://example.org", 300, LevelM)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(a, b))

	c, err := RenderPNG("https://example.org", 300, LevelH)
	require.NoError(t, err)
	assert.False(t, bytes.Equal(a, c))
}

func TestRenderImageSize(t *testing.T) {
	img, err := RenderImage("https://example.org", 300, LevelM)
	require.NoError(t, err)
	assert.Equal(t, 300, img.Bounds().Dx())
	assert.Equal(t, 300, img.Bounds().Dy())
}

func TestMissingData(t *testing.T) {
	_, err := RenderPNG("", 300, LevelM)
	assert.True(t, errors.Is(err, common.ErrMissingData))

	_, err = RenderImage("", 300, LevelM)
	assert.True(t, errors.Is(err, common.ErrMissingData))
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"":  LevelM,
		"l": LevelL,
		"M": LevelM,
		"q": LevelQ,
		"H": LevelH,
	}
	for in, expected := range cases {
		l, err := ParseLevel(in, LevelM)
		assert.NoError(t, err, in)
		assert.Equal(t, expected, l, in)
	}

	_, err := ParseLevel("X", LevelM)
	assert.Error(t, err)
	assert.Equal(t, "H", LevelName(LevelH))
}

func TestClampSize(t *testing.T) {
	assert.Equal(t, 64, ClampSize(10, 64, 2048))
	assert.Equal(t, 2048, ClampSize(99999, 64, 2048))
	assert.Equal(t, 300, ClampSize(300, 64, 2048))
	assert.Equal(t, 5, ClampSize(5, 0, 0))
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "QR_Code_https_example.org_landing.png", Filename("https://example.org/landing?utm_source=x"))
	assert.Equal(t, "QR_Code_hello_world.png", Filename("hello world"))
	assert.Equal(t, "QR_Code.png", Filename("?only=query"))
	assert.True(t, len(Filename(strings.Repeat("a", 500))) <= len("QR_Code_.png")+maxFilenameLength)
}

func TestDataUri(t *testing.T) {
	assert.Equal(t, "data:image/png;base64,AQID", DataUri([]byte{1, 2, 3}))
}
