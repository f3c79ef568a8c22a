package viewer

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"sync"

	"github.com/golang/freetype/truetype"
	"github.com/philipparndt/prints/pkg/stl"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// supersample is the factor previews are rendered at before being scaled
// down, which smooths facet edges.
const supersample = 2

var captionFace = sync.OnceValues(func() (font.Face, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse caption font: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{Size: 14, DPI: 72, Hinting: font.HintingFull}), nil
})

// Preview renders a square anti-aliased image of model, size pixels wide,
// with an optional caption in the bottom left corner.
func Preview(model *stl.Model, size int, caption string) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid preview size %d", size)
	}

	hi := RenderImage(model, size*supersample, size*supersample)
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(img, img.Bounds(), hi, hi.Bounds(), xdraw.Src, nil)

	if caption != "" {
		face, err := captionFace()
		if err != nil {
			return nil, err
		}
		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(color.White),
			Face: face,
			Dot:  fixed.P(8, size-8),
		}
		d.DrawString(caption)
	}
	return img, nil
}

// WritePNG encodes a preview of model as PNG.
func WritePNG(w io.Writer, model *stl.Model, size int, caption string) error {
	img, err := Preview(model, size, caption)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}
