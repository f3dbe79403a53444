package ioutils

import (
	"bytes"
	"context"
	"image"
	"image/jpeg"
	_ "image/png" // PNG decoder registration

	"github.com/handiism/mp3-organizer/internal/model"
	"golang.org/x/image/draw"
)

// jpegQuality is used when a resized cover is re-encoded.
const jpegQuality = 90

// ImageService shrinks album covers before they are embedded.
//
// Large scans make every tagged MP3 of an album several megabytes bigger;
// FitCover bounds them to a maximum edge length.
//
// Example usage:
//
//	svc := NewImageService()
//	cover, _ := FindCover(albumDir)
//	small, err := svc.FitCover(ctx, cover, 1000)
type ImageService struct{}

// NewImageService creates a new ImageService.
func NewImageService() *ImageService {
	return &ImageService{}
}

// FitCover returns cover unchanged when it already fits within maxSize×maxSize
// (or when maxSize <= 0), and a resized JPEG copy otherwise.
//
// The aspect ratio is preserved. The returned cover keeps the original file
// name; its MIME type becomes image/jpeg when resized.
func (s *ImageService) FitCover(ctx context.Context, cover *model.CoverImage, maxSize int) (*model.CoverImage, error) {
	if cover == nil || maxSize <= 0 {
		return cover, nil
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(cover.Data))
	if err != nil {
		return nil, err
	}
	if cfg.Width <= maxSize && cfg.Height <= maxSize {
		return cover, nil
	}

	data, err := s.ResizeImage(ctx, cover.Data, maxSize, maxSize)
	if err != nil {
		return nil, err
	}
	return &model.CoverImage{
		FileName: cover.FileName,
		Data:     data,
		MIMEType: model.MIMEJPEG,
	}, nil
}

// ResizeImage resizes an image to fit within the specified maximum dimensions.
//
// The aspect ratio is preserved. If the image is already smaller than the
// maximum dimensions, it will still be processed (re-encoded as JPEG).
//
// Parameters:
//   - ctx: Context for cancellation (currently unused)
//   - data: Original image data (JPEG or PNG)
//   - maxWidth: Maximum width in pixels
//   - maxHeight: Maximum height in pixels
//
// Returns the resized image as JPEG-encoded bytes.
//
// The Catmull-Rom algorithm is used for high-quality resizing.
//
// Example:
//
//	// Resize to fit within 1000x1000, maintaining aspect ratio
//	resized, err := svc.ResizeImage(ctx, imageData, 1000, 1000)
//	// A 1500x1000 image becomes 1000x666
//	// A 800x600 image remains 800x600 (but re-encoded)
func (s *ImageService) ResizeImage(ctx context.Context, data []byte, maxWidth, maxHeight int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width > maxWidth || height > maxHeight {
		ratio := float64(width) / float64(height)
		if float64(maxWidth)/float64(maxHeight) > ratio {
			width = int(float64(maxHeight) * ratio)
			height = maxHeight
		} else {
			height = int(float64(maxWidth) / ratio)
			width = maxWidth
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
