package signature

import (
	"image"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type emissions struct {
	values []string
}

func (e *emissions) listen(dataURL string) {
	e.values = append(e.values, dataURL)
}

func newTestPad(t *testing.T, ratio float64) (*Pad, *emissions) {
	t.Helper()
	em := &emissions{}
	pad, err := NewPad(Options{Width: 200, Height: 160, PixelRatio: ratio}, em.listen)
	require.NoError(t, err)
	return pad, em
}

func alphaAt(img image.Image, x, y int) uint32 {
	_, _, _, a := img.At(x, y).RGBA()
	return a
}

func drawLine(t *testing.T, pad *Pad, from, to Point) {
	t.Helper()
	pad.PointerDown(from)
	pad.PointerMove(Point{X: (from.X + to.X) / 2, Y: (from.Y + to.Y) / 2})
	pad.PointerMove(to)
	require.NoError(t, pad.PointerUp())
}

func TestPad_StrokeEmitsEncodedSurface(t *testing.T) {
	pad, em := newTestPad(t, 1)

	drawLine(t, pad, Point{X: 10, Y: 20}, Point{X: 100, Y: 20})

	require.Len(t, em.values, 1)
	assert.True(t, strings.HasPrefix(em.values[0], DataURLPrefix))
	assert.Equal(t, em.values[0], pad.DataURL())
	assert.True(t, pad.HasSignature())

	img, err := DecodeImage(em.values[0])
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 200, 160), img.Bounds())
	assert.Greater(t, alphaAt(img, 50, 19), uint32(0xc000))
	assert.Zero(t, alphaAt(img, 50, 60))
	assert.Zero(t, alphaAt(img, 150, 20), "nothing beyond the stroke end")
}

func TestPad_MoveRendersIncrementally(t *testing.T) {
	pad, em := newTestPad(t, 1)

	pad.PointerDown(Point{X: 10, Y: 50})
	assert.True(t, pad.Blank(), "a down alone draws nothing")

	pad.PointerMove(Point{X: 60, Y: 50})
	assert.False(t, pad.Blank())
	assert.Greater(t, alphaAt(pad.Image(), 30, 49), uint32(0))
	assert.Empty(t, em.values, "nothing is emitted until the stroke ends")
	assert.Len(t, pad.Path(), 2)
}

func TestPad_InkColor(t *testing.T) {
	pad, _ := newTestPad(t, 1)
	drawLine(t, pad, Point{X: 10, Y: 20}, Point{X: 100, Y: 20})

	c := pad.Image().(*image.RGBA).RGBAAt(50, 19)
	assert.Equal(t, DefaultInk.Color.R, c.R)
	assert.Equal(t, DefaultInk.Color.G, c.G)
	assert.Equal(t, DefaultInk.Color.B, c.B)
}

func TestPad_UpWithoutDownIsNoop(t *testing.T) {
	pad, em := newTestPad(t, 1)

	require.NoError(t, pad.PointerUp())
	require.NoError(t, pad.PointerLeave())
	pad.PointerMove(Point{X: 20, Y: 20})

	assert.Empty(t, em.values)
	assert.True(t, pad.Blank())
	assert.False(t, pad.HasSignature())
}

func TestPad_LeaveEndsStroke(t *testing.T) {
	pad, em := newTestPad(t, 1)

	pad.PointerDown(Point{X: 10, Y: 10})
	pad.PointerMove(Point{X: 40, Y: 40})
	require.NoError(t, pad.PointerLeave())

	assert.Len(t, em.values, 1)
	assert.False(t, pad.Drawing())

	// moves after leaving are ignored until the next down
	pad.PointerMove(Point{X: 150, Y: 150})
	assert.Zero(t, alphaAt(pad.Image(), 150, 150))
}

func TestPad_ResetIsIdempotent(t *testing.T) {
	pad, em := newTestPad(t, 1)
	drawLine(t, pad, Point{X: 10, Y: 20}, Point{X: 100, Y: 20})

	pad.Reset()
	pad.Reset()

	require.Len(t, em.values, 3)
	assert.Equal(t, "", em.values[1])
	assert.Equal(t, "", em.values[2])
	assert.True(t, pad.Blank())
	assert.Equal(t, "", pad.DataURL())
	assert.False(t, pad.HasSignature())
}

func TestPad_ResetDuringStrokeDropsPath(t *testing.T) {
	pad, em := newTestPad(t, 1)
	pad.PointerDown(Point{X: 10, Y: 10})
	pad.PointerMove(Point{X: 50, Y: 10})

	pad.Reset()
	require.NoError(t, pad.PointerUp())

	assert.Equal(t, []string{""}, em.values)
	assert.Empty(t, pad.Path())
}

func TestPad_NoLeakageAfterReset(t *testing.T) {
	pad, em := newTestPad(t, 1)

	drawLine(t, pad, Point{X: 10, Y: 20}, Point{X: 100, Y: 20})
	pad.Reset()
	drawLine(t, pad, Point{X: 10, Y: 120}, Point{X: 100, Y: 120})

	require.Len(t, em.values, 3)
	img, err := DecodeImage(em.values[2])
	require.NoError(t, err)
	assert.Zero(t, alphaAt(img, 50, 19), "first stroke is gone")
	assert.Greater(t, alphaAt(img, 50, 119), uint32(0xc000))
}

func TestPad_PixelRatioScalesSurface(t *testing.T) {
	pad, em := newTestPad(t, 2)

	drawLine(t, pad, Point{X: 10, Y: 20}, Point{X: 100, Y: 20})

	img, err := DecodeImage(em.values[0])
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 400, 320), img.Bounds())
	// the 2.5px pen is 5 device pixels wide at ratio 2
	assert.Greater(t, alphaAt(img, 100, 38), uint32(0xc000))
	assert.Greater(t, alphaAt(img, 100, 41), uint32(0xc000))
	assert.Zero(t, alphaAt(img, 100, 45))
}

func TestPad_DotOnlyStrokeStillEmits(t *testing.T) {
	pad, em := newTestPad(t, 1)
	pad.PointerDown(Point{X: 10, Y: 10})
	require.NoError(t, pad.PointerUp())

	require.Len(t, em.values, 1)
	assert.NotEmpty(t, em.values[0])
}

func TestNewPad_InvalidSize(t *testing.T) {
	_, err := NewPad(Options{Width: 0, Height: 160}, nil)
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestSurface_StrokeOutsideIsClipped(t *testing.T) {
	s := NewSurface(50, 50, 1, DefaultInk)
	s.StrokeSegment(Point{X: -20, Y: 25}, Point{X: 10, Y: 25})
	assert.False(t, s.Blank())

	far := NewSurface(50, 50, 1, DefaultInk)
	far.StrokeSegment(Point{X: 500, Y: 500}, Point{X: 600, Y: 600})
	assert.True(t, far.Blank())
}
