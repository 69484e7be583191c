package signature

import (
	"encoding/json"
	"fmt"
	"io"
)

// Stroke is the sequence of pointer positions between a down and an up
type Stroke []Point

// Recording is a captured signature: the pad geometry plus its strokes
type Recording struct {
	Width      float64  `json:"width"`
	Height     float64  `json:"height"`
	PixelRatio float64  `json:"pixelRatio,omitempty"`
	Strokes    []Stroke `json:"strokes"`
}

// LoadRecording decodes a JSON recording
func LoadRecording(r io.Reader) (*Recording, error) {
	var rec Recording
	if err := json.NewDecoder(r).Decode(&rec); err != nil {
		return nil, fmt.Errorf("decode recording: %w", err)
	}
	return &rec, nil
}

// Capture replays the recording on a fresh pad and returns the final data URL,
// "" when the recording has no strokes
func (r *Recording) Capture() (string, error) {
	pad, err := NewPad(Options{Width: r.Width, Height: r.Height, PixelRatio: r.PixelRatio}, nil)
	if err != nil {
		return "", err
	}
	if err := Replay(pad, r.Strokes); err != nil {
		return "", err
	}
	return pad.DataURL(), nil
}

// Replay drives pad with strokes: a down at each stroke's first point, a move
// through every following point, then an up. Empty strokes are skipped.
func Replay(pad *Pad, strokes []Stroke) error {
	for _, stroke := range strokes {
		if len(stroke) == 0 {
			continue
		}
		pad.PointerDown(stroke[0])
		for _, pt := range stroke[1:] {
			pad.PointerMove(pt)
		}
		if err := pad.PointerUp(); err != nil {
			return err
		}
	}
	return nil
}
