package pipeline

import (
	"bytes"
	"image"
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
)

// decodeImage turns an encoded byte buffer into an image. Only PNG and
// JPEG are registered; other formats fail as undecodable.
func decodeImage(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return img, nil
}
