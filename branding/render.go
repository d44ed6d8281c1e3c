package branding

import (
	"bytes"
	"image"

	"github.com/disintegration/imaging"
	"github.com/scoophq/scoop/common/rcontext"
	"github.com/scoophq/scoop/pool"
	"github.com/scoophq/scoop/qr"
)

// compose is swapped out in tests to force the plain fallback.
var compose = Compose

func canvasSize(ctx rcontext.RequestContext) int {
	if ctx.Config.Branding.CanvasSize > 0 {
		return ctx.Config.Branding.CanvasSize
	}
	return 512
}

// RenderPNG composes a branded code for data on the render pool. The logo is
// looked up on the favicon service first; if composition fails a plain H-level
// code is returned instead.
func RenderPNG(data string, opts Options, ctx rcontext.RequestContext) ([]byte, error) {
	base, err := qr.RenderImage(data, canvasSize(ctx), qr.LevelH)
	if err != nil {
		return nil, err
	}
	logo := FetchLogo(data, ctx)

	res, err := pool.Render(ctx, func() (interface{}, error) {
		return renderComposed(data, base, logo, opts, ctx)
	})
	if err != nil {
		return nil, err
	}
	return res.([]byte), nil
}

func renderComposed(data string, base image.Image, logo Logo, opts Options, ctx rcontext.RequestContext) ([]byte, error) {
	composed, err := compose(base, logo, opts)
	if err == nil {
		buf := &bytes.Buffer{}
		if err = imaging.Encode(buf, composed, imaging.PNG); err == nil {
			return buf.Bytes(), nil
		}
	}

	ctx.Log.Warn("Branded composition failed, falling back to a plain code: ", err)
	return qr.RenderPNG(data, canvasSize(ctx), qr.LevelH)
}
