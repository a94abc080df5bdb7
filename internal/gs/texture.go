package gs

import (
	"image"

	"golang.org/x/image/draw"
)

// Texture is a decoded texture in tightly packed, non premultiplied RGBA,
// top row first.
type Texture struct {
	Width  int
	Height int
	Pix    []uint8
}

// Image copies t into an image. With flip set the rows are stored bottom
// up, which is what most 3D tools expect.
func (t *Texture) Image(flip bool) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, t.Width, t.Height))
	stride := t.Width * 4
	for y := 0; y < t.Height; y++ {
		row := y
		if flip {
			row = t.Height - 1 - y
		}
		copy(img.Pix[y*img.Stride:y*img.Stride+stride], t.Pix[row*stride:(row+1)*stride])
	}
	return img
}

// Scale enlarges img by an integer factor without filtering.
func Scale(img image.Image, factor int) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
