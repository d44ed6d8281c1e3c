package branding

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/makiuchi-d/gozxing"
	zxqr "github.com/makiuchi-d/gozxing/qrcode"
	"github.com/scoophq/scoop/qr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const brandedPayload = "https://example.org/landing"

func decodeBranded(t *testing.T, img image.Image) string {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	require.NoError(t, err)
	hints := map[gozxing.DecodeHintType]interface{}{
		gozxing.DecodeHintType_TRY_HARDER: true,
	}
	res, err := zxqr.NewQRCodeReader().Decode(bmp, hints)
	require.NoError(t, err)
	return res.GetText()
}

func baseImage(t *testing.T) image.Image {
	img, err := qr.RenderImage(brandedPayload, 512, qr.LevelH)
	require.NoError(t, err)
	return img
}

func TestComposeWithoutFrame(t *testing.T) {
	base := baseImage(t)
	img, err := Compose(base, NoLogo{Reason: "test"}, NewOptions("", "", "", "", false))
	require.NoError(t, err)

	assert.Equal(t, base.Bounds().Dx(), img.Bounds().Dx())
	assert.Equal(t, base.Bounds().Dy(), img.Bounds().Dy())

	// The centre holds the neutral placeholder
	c := color.RGBAModel.Convert(img.At(256, 256)).(color.RGBA)
	assert.Equal(t, noLogoColor, c)

	assert.Equal(t, brandedPayload, decodeBranded(t, img))
}

func TestComposeWithFrameAndCaption(t *testing.T) {
	base := baseImage(t)
	opts := NewOptions("#1e3a8a", "#9333ea", "#ffffff", "Scan for the menu", true)
	img, err := Compose(base, NoLogo{Reason: "test"}, opts)
	require.NoError(t, err)

	assert.Greater(t, img.Bounds().Dx(), base.Bounds().Dx())
	assert.Greater(t, img.Bounds().Dy(), img.Bounds().Dx())

	assert.Equal(t, brandedPayload, decodeBranded(t, img))
}

func TestComposeFrameWithoutCaptionIsSquare(t *testing.T) {
	img, err := Compose(baseImage(t), NoLogo{}, NewOptions("#000000", "", "", "", true))
	require.NoError(t, err)
	assert.Equal(t, img.Bounds().Dx(), img.Bounds().Dy())
}

func TestComposeWithLogo(t *testing.T) {
	logoImg := image.NewRGBA(image.Rect(0, 0, 40, 20))
	for x := 0; x < 40; x++ {
		for y := 0; y < 20; y++ {
			logoImg.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}

	img, err := Compose(baseImage(t), FoundLogo{Image: logoImg}, NewOptions("", "", "", "", false))
	require.NoError(t, err)

	c := color.RGBAModel.Convert(img.At(256, 256)).(color.RGBA)
	assert.Equal(t, uint8(255), c.R)
	assert.Equal(t, uint8(0), c.G)

	assert.Equal(t, brandedPayload, decodeBranded(t, img))
}

func TestFitCaptionTruncates(t *testing.T) {
	long := "This caption goes on and on well past anything that could fit under a code"
	runes := []rune(long)
	assert.Greater(t, len(runes), maxCaptionRunes)

	img, err := Compose(baseImage(t), NoLogo{}, NewOptions("", "", "", long, true))
	require.NoError(t, err)
	assert.NotNil(t, img)
}

func TestRenderPNGFallsBackToNoLogo(t *testing.T) {
	ctx := testContext("")
	b, err := RenderPNG(brandedPayload, NewOptions("", "", "", "Hello", true), ctx)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(b))
	require.NoError(t, err)
	assert.Equal(t, brandedPayload, decodeBranded(t, img))
}

func TestRenderPNGRejectsEmptyData(t *testing.T) {
	_, err := RenderPNG("", NewOptions("", "", "", "", false), testContext(""))
	assert.Error(t, err)
}

func TestRenderVariants(t *testing.T) {
	ctx := testContext("")
	variants, err := RenderVariants(brandedPayload, "Hi", true, ctx)
	require.NoError(t, err)
	require.Len(t, variants, len(ctx.Config.Branding.Palettes))

	for i, v := range variants {
		assert.Equal(t, ctx.Config.Branding.Palettes[i].Name, v.Name)
		assert.Contains(t, v.Image, "data:image/png;base64,")
	}
}

func TestRenderVariantsWithoutPalettes(t *testing.T) {
	ctx := testContext("")
	ctx.Config.Branding.Palettes = nil
	_, err := RenderVariants(brandedPayload, "", false, ctx)
	assert.Error(t, err)
}
