// Package render draws a QR Code symbol into concrete output formats: a PNG
// raster image and a Unicode half-block terminal rendering. Both read the
// symbol only through its public Size/GetModule accessors, so neither
// needs to know anything about the encoding pipeline that produced it.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
)

// Symbol is the subset of qrcode.QrCode this package depends on.
type Symbol interface {
	GetModule(x, y int32) bool
	Size() int32
}

// ErrInvalidScale is returned by WritePNG when scale is less than 1.
var ErrInvalidScale = fmt.Errorf("render: scale must be at least 1")

// WritePNG writes sym to w as a PNG raster image. Each module becomes a
// scale x scale block of pixels, and a quiet zone of border light modules
// is added around the outside.
func WritePNG(w io.Writer, sym Symbol, border int32, scale int) error {
	if scale < 1 {
		return ErrInvalidScale
	}
	if border < 0 {
		return fmt.Errorf("render: border must be non-negative")
	}

	size := sym.Size()
	dim := int(size+2*border) * scale

	img := image.NewPaletted(image.Rect(0, 0, dim, dim), color.Palette{
		color.White,
		color.Black,
	})
	for i := range img.Pix {
		img.Pix[i] = 0 // Index 0 is white
	}

	for y := int32(0); y < size; y++ {
		for x := int32(0); x < size; x++ {
			if !sym.GetModule(x, y) {
				continue
			}
			startX := int(x+border) * scale
			startY := int(y+border) * scale
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					img.SetColorIndex(startX+dx, startY+dy, 1) // Index 1 is black
				}
			}
		}
	}

	return png.Encode(w, img)
}

// WriteTerminal writes sym to w as Unicode half-block characters (▀▄█ and
// space), two module rows per terminal line, with a quiet zone of border
// light modules added around the outside.
func WriteTerminal(w io.Writer, sym Symbol, border int32) error {
	if border < 0 {
		return fmt.Errorf("render: border must be non-negative")
	}

	size := sym.Size()
	full := size + 2*border

	get := func(x, y int32) bool {
		xx, yy := x-border, y-border
		return sym.GetModule(xx, yy)
	}

	for y := int32(0); y < full; y += 2 {
		for x := int32(0); x < full; x++ {
			top := get(x, y)
			bottom := false
			if y+1 < full {
				bottom = get(x, y+1)
			}
			var err error
			switch {
			case top && bottom:
				_, err = fmt.Fprint(w, "█")
			case top && !bottom:
				_, err = fmt.Fprint(w, "▀")
			case !top && bottom:
				_, err = fmt.Fprint(w, "▄")
			default:
				_, err = fmt.Fprint(w, " ")
			}
			if err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
