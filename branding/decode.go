package branding

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/gabriel-vasile/mimetype"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

const svgRasterSize = 256

var ErrUnsupportedLogo = errors.New("unsupported logo format")

var rasterTypes = []string{
	"image/png",
	"image/jpeg",
	"image/gif",
	"image/webp",
	"image/bmp",
}

func DecodeLogo(b []byte) (image.Image, error) {
	mt := mimetype.Detect(b)
	if mt.Is("image/svg+xml") {
		return decodeSvg(b)
	}
	for _, t := range rasterTypes {
		if mt.Is(t) {
			img, _, err := image.Decode(bytes.NewReader(b))
			return img, err
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedLogo, mt.String())
}

func decodeSvg(b []byte) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	icon.SetTarget(0, 0, svgRasterSize, svgRasterSize)

	rgba := image.NewRGBA(image.Rect(0, 0, svgRasterSize, svgRasterSize))
	draw.Draw(rgba, rgba.Bounds(), image.Transparent, image.Point{}, draw.Src)
	scanner := rasterx.NewScannerGV(svgRasterSize, svgRasterSize, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(svgRasterSize, svgRasterSize, scanner), 1)
	return rgba, nil
}
