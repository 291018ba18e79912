// Package vision holds the pure image functions used by type detection
// and the raster pipeline: grayscale conversion, Sobel edge maps, edge
// density and binarizing thresholds. All functions are side-effect free.
package vision

import (
	"image"

	"github.com/disintegration/imaging"
)

// edgeCutoff is the Sobel magnitude above which a pixel counts as part
// of an edge when computing density.
const edgeCutoff = 64

// Grayscale converts an image to grayscale luminance values.
func Grayscale(img image.Image) *image.Gray {
	nrgba := imaging.Grayscale(img)
	bounds := nrgba.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	gray := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			// imaging.Grayscale equalizes all three channels; take red.
			gray.Pix[y*gray.Stride+x] = nrgba.Pix[y*nrgba.Stride+x*4]
		}
	}
	return gray
}

// SobelMagnitude computes the gradient magnitude of the image, clamped
// to [0,255]. Border pixels use edge-replicated sampling so small images
// are measured over their full area.
func SobelMagnitude(img image.Image) *image.Gray {
	gray := Grayscale(img)
	bounds := gray.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	out := image.NewGray(image.Rect(0, 0, w, h))
	if w == 0 || h == 0 {
		return out
	}

	at := func(x, y int) int {
		if x < 0 {
			x = 0
		} else if x >= w {
			x = w - 1
		}
		if y < 0 {
			y = 0
		} else if y >= h {
			y = h - 1
		}
		return int(gray.Pix[y*gray.Stride+x])
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			gx := -at(x-1, y-1) + at(x+1, y-1) +
				-2*at(x-1, y) + 2*at(x+1, y) +
				-at(x-1, y+1) + at(x+1, y+1)
			gy := -at(x-1, y-1) - 2*at(x, y-1) - at(x+1, y-1) +
				at(x-1, y+1) + 2*at(x, y+1) + at(x+1, y+1)

			if gx < 0 {
				gx = -gx
			}
			if gy < 0 {
				gy = -gy
			}
			mag := gx + gy
			if mag > 255 {
				mag = 255
			}
			out.Pix[y*out.Stride+x] = uint8(mag)
		}
	}
	return out
}

// EdgeDensity returns the fraction of pixels identified as edges, in [0,1].
func EdgeDensity(img image.Image) float64 {
	mag := SobelMagnitude(img)
	bounds := mag.Bounds()
	total := bounds.Dx() * bounds.Dy()
	if total == 0 {
		return 0
	}

	edges := 0
	for y := 0; y < bounds.Dy(); y++ {
		row := mag.Pix[y*mag.Stride : y*mag.Stride+bounds.Dx()]
		for _, v := range row {
			if v >= edgeCutoff {
				edges++
			}
		}
	}
	return float64(edges) / float64(total)
}

// Binarize maps every pixel at or above threshold to white and the rest
// to black.
func Binarize(gray *image.Gray, threshold uint8) *image.Gray {
	bounds := gray.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	out := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if gray.Pix[y*gray.Stride+x] >= threshold {
				out.Pix[y*out.Stride+x] = 255
			}
		}
	}
	return out
}
