package app

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"sync"

	"game_store/internal/models"
)

const defaultPictureName = "no-image.jpg"

var (
	defaultPictureOnce sync.Once
	defaultPicture     []byte
)

// DefaultPicture returns the placeholder image sent when a user clears a game picture
// without choosing a new one. The backend always receives an explicit image field.
func DefaultPicture() *models.File {
	defaultPictureOnce.Do(func() {
		img := image.NewRGBA(image.Rect(0, 0, 64, 64))
		fill := color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}
		for y := 0; y < 64; y++ {
			for x := 0; x < 64; x++ {
				img.Set(x, y, fill)
			}
		}

		var buf bytes.Buffer
		// Encoding an in-memory RGBA image cannot fail.
		_ = jpeg.Encode(&buf, img, &jpeg.Options{Quality: 80})
		defaultPicture = buf.Bytes()
	})

	content := make([]byte, len(defaultPicture))
	copy(content, defaultPicture)
	return &models.File{Name: defaultPictureName, ContentType: "image/jpeg", Content: content}
}
