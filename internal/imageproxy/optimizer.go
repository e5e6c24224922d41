package imageproxy

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	_ "image/gif"
	_ "image/png"

	"github.com/disintegration/imaging"
)

// Downscale presets. Thumbnails trade quality for weight since they render
// small in the grid; medium keeps enough detail for the item page.
const (
	maxSizeThumb  = 300
	maxSizeMedium = 800

	qualityThumb  = 60
	qualityMedium = 75
)

// Sizes lists the accepted downscale presets.
var Sizes = map[string]bool{"thumb": true, "medium": true}

// Optimize re-encodes an image to JPEG, downscaled to the given preset
// ("thumb" or "medium") while keeping aspect ratio. Images already within
// bounds are only re-encoded. Returns the new bytes and their content type.
func Optimize(data []byte, size string) ([]byte, string, error) {
	var maxDim, quality int
	switch size {
	case "thumb":
		maxDim, quality = maxSizeThumb, qualityThumb
	case "medium":
		maxDim, quality = maxSizeMedium, qualityMedium
	default:
		return nil, "", fmt.Errorf("unknown image size %q", size)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxDim || bounds.Dy() > maxDim {
		img = imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, "", fmt.Errorf("encode image: %w", err)
	}
	return buf.Bytes(), "image/jpeg", nil
}
