package thumbnail

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/bcart01v/atlas-atlas-files-manager/internal/core/domain"
)

// decodeImage decodes an original blob and keeps its format so variants are
// re-encoded the same way. Importing imaging registers the bmp/tiff decoders
// alongside the stdlib jpeg/png/gif ones.
func decodeImage(data []byte) (image.Image, imaging.Format, error) {
	img, formatName, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, 0, err
	}

	format, err := imaging.FormatFromExtension(formatName)
	if err != nil {
		// Decodable but not encodable (e.g. webp): fall back to jpeg variants
		format = imaging.JPEG
	}
	return img, format, nil
}

// writeVariant resizes the image to the target width, preserving aspect
// ratio, and overwrites the variant object at <blobKey>_<width>.
func (t *thumbnailService) writeVariant(ctx context.Context, record *domain.FileRecord, img image.Image, format imaging.Format, width int) error {
	resized := imaging.Resize(img, width, 0, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, format); err != nil {
		return fmt.Errorf("could not encode %d variant: %w", width, err)
	}

	key := record.VariantKey(width)
	contentType := "image/" + strings.ToLower(format.String())
	if err := t.storage.Put(ctx, key, buf.Bytes(), contentType); err != nil {
		return fmt.Errorf("could not store %d variant: %w", width, err)
	}
	return nil
}
