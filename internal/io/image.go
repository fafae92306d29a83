package ioutils

import (
	"bytes"
	"image"
	"image/jpeg"
	_ "image/png" // PNG decoder registration

	"golang.org/x/image/draw"
)

// ImageService processes downloaded cover art for the local mirror.
//
// Example usage:
//
//	svc := NewImageService()
//
//	data, _ := client.DownloadBytes(ctx, release.CoverURL)
//	thumb, _ := svc.JPEGThumbnail(data, 640)
type ImageService struct{}

// NewImageService creates a new ImageService.
func NewImageService() *ImageService {
	return &ImageService{}
}

// JPEGThumbnail scales an image to fit within maxSize pixels on its
// longer side, preserving aspect ratio, and returns it JPEG-encoded.
//
// Images already within bounds are not upscaled, only re-encoded, so the
// mirror holds a uniform format regardless of what the catalog serves.
// The Catmull-Rom algorithm is used for high-quality scaling.
//
// Example:
//
//	thumb, err := svc.JPEGThumbnail(coverData, 640)
//	// A 1200x800 cover becomes 640x427; a 300x300 cover stays 300x300.
func (s *ImageService) JPEGThumbnail(data []byte, maxSize int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width > maxSize || height > maxSize {
		if width > height {
			height = height * maxSize / width
			width = maxSize
		} else {
			width = width * maxSize / height
			height = maxSize
		}
		if width < 1 {
			width = 1
		}
		if height < 1 {
			height = 1
		}

		dst := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
