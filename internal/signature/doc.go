// Package signature digitizes a hand-drawn signature.
//
// A Pad receives pointer events in surface-local CSS pixels. Each move while the
// pointer is down is rendered immediately onto a Surface, whose backing image is
// scaled by the device pixel ratio so stroke width and geometry look the same on
// every display density. When the pointer is released the whole surface is
// emitted as a PNG data URL; Reset clears it and emits the empty result.
//
//	pad, _ := signature.NewPad(signature.Options{Width: 600, Height: 160, PixelRatio: 2}, func(dataURL string) {
//	    form.SetSignature(dataURL)
//	})
//	pad.PointerDown(signature.Point{X: 10, Y: 80})
//	pad.PointerMove(signature.Point{X: 120, Y: 60})
//	_ = pad.PointerUp()
package signature
