package branding

import (
	"errors"

	"github.com/scoophq/scoop/common/config"
	"github.com/scoophq/scoop/common/rcontext"
	"github.com/scoophq/scoop/pool"
	"github.com/scoophq/scoop/qr"
	"golang.org/x/sync/errgroup"
)

type Variant struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

func optionsForPalette(p config.PaletteConfig, caption string, showFrame bool) Options {
	return NewOptions(p.FrameColor, p.GradientColor, p.TextColor, caption, showFrame)
}

// RenderVariants composes one code per configured palette. The base code and the
// logo are shared by every variant; the compositions run on the render pool.
func RenderVariants(data string, caption string, showFrame bool, ctx rcontext.RequestContext) ([]Variant, error) {
	palettes := ctx.Config.Branding.Palettes
	if len(palettes) == 0 {
		return nil, errors.New("no palettes configured")
	}

	base, err := qr.RenderImage(data, canvasSize(ctx), qr.LevelH)
	if err != nil {
		return nil, err
	}
	logo := FetchLogo(data, ctx)

	variants := make([]Variant, len(palettes))
	g, gctx := errgroup.WithContext(ctx)
	for i, p := range palettes {
		i := i
		p := p
		g.Go(func() error {
			res, err := pool.Render(gctx, func() (interface{}, error) {
				return renderComposed(data, base, logo, optionsForPalette(p, caption, showFrame), ctx)
			})
			if err != nil {
				return err
			}
			variants[i] = Variant{Name: p.Name, Image: qr.DataUri(res.([]byte))}
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}
	return variants, nil
}
