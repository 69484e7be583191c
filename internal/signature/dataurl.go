package signature

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/png"
	"strings"
)

// DataURLPrefix precedes the base64 PNG bytes
const DataURLPrefix = "data:image/png;base64,"

var ErrNotPNGDataURL = errors.New("not a PNG data URL")

// EncodeDataURL encodes img as a PNG data URL
func EncodeDataURL(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return DataURLPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// DecodeDataURL returns the PNG bytes carried by dataURL
func DecodeDataURL(dataURL string) ([]byte, error) {
	encoded, ok := strings.CutPrefix(dataURL, DataURLPrefix)
	if !ok {
		return nil, ErrNotPNGDataURL
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotPNGDataURL, err)
	}
	return data, nil
}

// DecodeImage decodes dataURL into an image
func DecodeImage(dataURL string) (image.Image, error) {
	data, err := DecodeDataURL(dataURL)
	if err != nil {
		return nil, err
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode png: %w", err)
	}
	return img, nil
}
