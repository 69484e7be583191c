package signature

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// Point is a position in surface-local CSS pixels
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Ink describes how strokes are rendered
type Ink struct {
	Color color.RGBA
	Width float64 // CSS pixels
}

// DefaultInk is a 2.5px dark navy pen
var DefaultInk = Ink{
	Color: color.RGBA{R: 0x1a, G: 0x1a, B: 0x2e, A: 0xff},
	Width: 2.5,
}

// kappa places cubic control points for a quarter circle
const kappa = 0.5522847498

// Surface is a transparent raster scaled by a device pixel ratio
type Surface struct {
	ratio float64
	ink   Ink
	img   *image.RGBA
	src   *image.Uniform
}

// NewSurface allocates a width x height (CSS pixels) surface at the given pixel ratio
func NewSurface(width, height, ratio float64, ink Ink) *Surface {
	w := int(math.Round(width * ratio))
	h := int(math.Round(height * ratio))
	return &Surface{
		ratio: ratio,
		ink:   ink,
		img:   image.NewRGBA(image.Rect(0, 0, w, h)),
		src:   image.NewUniform(ink.Color),
	}
}

// Image returns the backing raster. It is mutated by later strokes.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// PixelRatio is the device pixels per CSS pixel
func (s *Surface) PixelRatio() float64 {
	return s.ratio
}

// Clear makes every pixel transparent
func (s *Surface) Clear() {
	clear(s.img.Pix)
}

// Blank reports whether no pixel has been inked
func (s *Surface) Blank() bool {
	for i := 3; i < len(s.img.Pix); i += 4 {
		if s.img.Pix[i] != 0 {
			return false
		}
	}
	return true
}

// StrokeSegment renders a line from a to b with round caps. Consecutive segments
// sharing an endpoint therefore meet with a round join.
func (s *Surface) StrokeSegment(a, b Point) {
	ax, ay := a.X*s.ratio, a.Y*s.ratio
	bx, by := b.X*s.ratio, b.Y*s.ratio
	r := s.ink.Width * s.ratio / 2
	if r <= 0 {
		return
	}

	bbox := image.Rect(
		int(math.Floor(math.Min(ax, bx)-r)),
		int(math.Floor(math.Min(ay, by)-r)),
		int(math.Ceil(math.Max(ax, bx)+r)),
		int(math.Ceil(math.Max(ay, by)+r)),
	)
	if !bbox.Overlaps(s.img.Bounds()) {
		return
	}

	z := vector.NewRasterizer(bbox.Dx(), bbox.Dy())
	ox, oy := float64(bbox.Min.X), float64(bbox.Min.Y)
	capsule(z, ax-ox, ay-oy, bx-ox, by-oy, r)

	mask := image.NewAlpha(image.Rect(0, 0, bbox.Dx(), bbox.Dy()))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	draw.DrawMask(s.img, bbox, s.src, image.Point{}, mask, image.Point{}, draw.Over)
}

// capsule adds the outline of a segment of radius r with semicircular ends
func capsule(z *vector.Rasterizer, ax, ay, bx, by, r float64) {
	dx, dy := bx-ax, by-ay
	length := math.Hypot(dx, dy)
	if length == 0 {
		dx, dy = 1, 0
	} else {
		dx, dy = dx/length, dy/length
	}
	// unit normal
	nx, ny := -dy, dx

	moveTo(z, ax+nx*r, ay+ny*r)
	lineTo(z, bx+nx*r, by+ny*r)
	quarter(z, bx, by, nx, ny, dx, dy, r)
	quarter(z, bx, by, dx, dy, -nx, -ny, r)
	lineTo(z, ax-nx*r, ay-ny*r)
	quarter(z, ax, ay, -nx, -ny, -dx, -dy, r)
	quarter(z, ax, ay, -dx, -dy, nx, ny, r)
	z.ClosePath()
}

// quarter adds a 90 degree arc around (cx, cy) from direction u to direction v
func quarter(z *vector.Rasterizer, cx, cy, ux, uy, vx, vy, r float64) {
	k := kappa * r
	z.CubeTo(
		float32(cx+ux*r+vx*k), float32(cy+uy*r+vy*k),
		float32(cx+vx*r+ux*k), float32(cy+vy*r+uy*k),
		float32(cx+vx*r), float32(cy+vy*r),
	)
}

func moveTo(z *vector.Rasterizer, x, y float64) {
	z.MoveTo(float32(x), float32(y))
}

func lineTo(z *vector.Rasterizer, x, y float64) {
	z.LineTo(float32(x), float32(y))
}
