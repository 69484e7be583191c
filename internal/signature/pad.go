package signature

import (
	"errors"
	"fmt"
	"image"
)

var ErrInvalidSize = errors.New("signature surface must have a positive size")

// Listener receives the surface encoding after every completed stroke, and ""
// after a reset
type Listener func(dataURL string)

// Options configures a Pad
type Options struct {
	Width      float64 // CSS pixels
	Height     float64 // CSS pixels
	PixelRatio float64 // device pixels per CSS pixel, 1 when unset
	Ink        Ink     // DefaultInk when unset
}

// Pad turns pointer events into ink on a Surface. A Pad handles a single input
// stream and is not safe for concurrent use.
type Pad struct {
	surface  *Surface
	listener Listener
	drawing  bool
	path     []Point
	dataURL  string
}

func NewPad(opts Options, listener Listener) (*Pad, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: %gx%g", ErrInvalidSize, opts.Width, opts.Height)
	}
	if opts.PixelRatio <= 0 {
		opts.PixelRatio = 1
	}
	if opts.Ink.Width <= 0 {
		opts.Ink = DefaultInk
	}
	if listener == nil {
		listener = func(string) {}
	}
	return &Pad{
		surface:  NewSurface(opts.Width, opts.Height, opts.PixelRatio, opts.Ink),
		listener: listener,
	}, nil
}

// PointerDown begins a new path at pt
func (p *Pad) PointerDown(pt Point) {
	p.drawing = true
	p.path = append(p.path[:0], pt)
}

// PointerMove extends the active path to pt and renders the new segment
func (p *Pad) PointerMove(pt Point) {
	if !p.drawing {
		return
	}
	last := p.path[len(p.path)-1]
	p.path = append(p.path, pt)
	p.surface.StrokeSegment(last, pt)
}

// PointerUp ends the active path and emits the encoded surface. Without an
// active path it does nothing.
func (p *Pad) PointerUp() error {
	if !p.drawing {
		return nil
	}
	p.drawing = false
	p.path = p.path[:0]

	dataURL, err := EncodeDataURL(p.surface.Image())
	if err != nil {
		return fmt.Errorf("encode signature: %w", err)
	}
	p.dataURL = dataURL
	p.listener(dataURL)
	return nil
}

// PointerLeave behaves like PointerUp
func (p *Pad) PointerLeave() error {
	return p.PointerUp()
}

// Reset clears the surface and any active path, then emits the empty result
func (p *Pad) Reset() {
	p.surface.Clear()
	p.drawing = false
	p.path = p.path[:0]
	p.dataURL = ""
	p.listener("")
}

// Drawing reports whether a path is active
func (p *Pad) Drawing() bool {
	return p.drawing
}

// HasSignature reports whether a stroke has completed since the last reset
func (p *Pad) HasSignature() bool {
	return p.dataURL != ""
}

// DataURL is the last emitted encoding, "" after a reset
func (p *Pad) DataURL() string {
	return p.dataURL
}

// Path returns a copy of the active path
func (p *Pad) Path() []Point {
	return append([]Point(nil), p.path...)
}

// Image is the live surface raster
func (p *Pad) Image() image.Image {
	return p.surface.Image()
}

// Blank reports whether the surface holds no ink
func (p *Pad) Blank() bool {
	return p.surface.Blank()
}
