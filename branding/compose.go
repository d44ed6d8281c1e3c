package branding

import (
	"image"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	framePaddingRatio = 0.0625
	cardPaddingRatio  = 0.047
	frameRadiusRatio  = 0.07
	cardRadiusRatio   = 0.045
	captionRatio      = 0.14
	captionFontRatio  = 0.055
	holeRadiusRatio   = 0.11
	logoInsetRatio    = 0.012
	maxCaptionRunes   = 48
)

var fontOnce = &sync.Once{}
var captionFont *truetype.Font
var captionFontErr error

func captionFace(size float64) (font.Face, error) {
	fontOnce.Do(func() {
		captionFont, captionFontErr = truetype.Parse(goregular.TTF)
	})
	if captionFontErr != nil {
		return nil, captionFontErr
	}
	return truetype.NewFace(captionFont, &truetype.Options{Size: size}), nil
}

type layout struct {
	width    int
	height   int
	qrX      int
	qrY      int
	qrSize   int
	framePad float64
	cardPad  float64
	caption  float64
}

func computeLayout(qrSize int, opts Options) layout {
	l := layout{qrSize: qrSize, width: qrSize, height: qrSize}
	if !opts.ShowFrame {
		return l
	}
	size := float64(qrSize)
	l.framePad = size * framePaddingRatio
	l.cardPad = size * cardPaddingRatio
	if opts.Caption != "" {
		l.caption = size * captionRatio
	}
	l.width = int(size + 2*(l.framePad+l.cardPad))
	l.height = l.width + int(l.caption)
	l.qrX = int(l.framePad + l.cardPad)
	l.qrY = l.qrX
	return l
}

// Compose lays the QR image onto the branded canvas. The QR is expected to be
// square and generated with the highest error correction level, since the
// centre is always cut out.
func Compose(qrImage image.Image, logo Logo, opts Options) (image.Image, error) {
	qrSize := qrImage.Bounds().Dx()
	l := computeLayout(qrSize, opts)
	dc := gg.NewContext(l.width, l.height)

	if opts.ShowFrame {
		drawFrame(dc, l, opts)
	}

	dc.DrawImage(qrImage, l.qrX, l.qrY)

	cx := float64(l.qrX) + float64(qrSize)/2
	cy := float64(l.qrY) + float64(qrSize)/2
	holeRadius := float64(qrSize) * holeRadiusRatio
	dc.SetColor(cardColor)
	dc.DrawCircle(cx, cy, holeRadius)
	dc.Fill()

	logoRadius := holeRadius - float64(qrSize)*logoInsetRatio
	drawLogo(dc, logo, cx, cy, logoRadius)

	if opts.ShowFrame && opts.Caption != "" {
		if err := drawCaption(dc, l, opts); err != nil {
			return nil, err
		}
	}

	return dc.Image(), nil
}

func drawFrame(dc *gg.Context, l layout, opts Options) {
	w := float64(l.width)
	h := float64(l.height)
	size := float64(l.qrSize)

	if opts.GradientColor != nil {
		grad := gg.NewLinearGradient(0, 0, w, h)
		grad.AddColorStop(0, opts.FrameColor)
		grad.AddColorStop(1, *opts.GradientColor)
		dc.SetFillStyle(grad)
	} else {
		dc.SetColor(opts.FrameColor)
	}
	dc.DrawRoundedRectangle(0, 0, w, h, size*frameRadiusRatio)
	dc.Fill()

	cardSize := size + 2*l.cardPad
	dc.SetColor(cardColor)
	dc.DrawRoundedRectangle(l.framePad, l.framePad, cardSize, cardSize, size*cardRadiusRatio)
	dc.Fill()
}

func drawLogo(dc *gg.Context, logo Logo, cx float64, cy float64, radius float64) {
	if radius <= 0 {
		return
	}

	found, ok := logo.(FoundLogo)
	if !ok || found.Image == nil {
		dc.SetColor(noLogoColor)
		dc.DrawCircle(cx, cy, radius)
		dc.Fill()
		return
	}

	d := int(radius * 2)
	resized := imaging.Fill(found.Image, d, d, imaging.Center, imaging.Lanczos)

	dc.Push()
	dc.DrawCircle(cx, cy, radius)
	dc.Clip()
	dc.DrawImageAnchored(resized, int(cx), int(cy), 0.5, 0.5)
	dc.ResetClip()
	dc.Pop()
}

func drawCaption(dc *gg.Context, l layout, opts Options) error {
	size := float64(l.qrSize)
	face, err := captionFace(size * captionFontRatio)
	if err != nil {
		return err
	}
	dc.SetFontFace(face)

	maxWidth := float64(l.width) - 2*l.framePad
	text := fitCaption(dc, opts.Caption, maxWidth)

	cardBottom := float64(l.width) - l.framePad
	y := cardBottom + (float64(l.height)-cardBottom)/2
	dc.SetColor(opts.TextColor)
	dc.DrawStringAnchored(text, float64(l.width)/2, y, 0.5, 0.5)
	return nil
}

func fitCaption(dc *gg.Context, caption string, maxWidth float64) string {
	runes := []rune(caption)
	if len(runes) > maxCaptionRunes {
		runes = append(runes[:maxCaptionRunes-1], '…')
	}
	for len(runes) > 1 {
		if w, _ := dc.MeasureString(string(runes)); w <= maxWidth {
			break
		}
		runes = append(runes[:len(runes)-2], '…')
	}
	return string(runes)
}
