// internal/convert/image.go
package convert

import (
	"fmt"

	"assetmirror/internal/assets"
)

// ImageCopier mirrors image files byte-for-byte into the dedicated image
// tree. No intermediate files are needed since this is a pure copy.
type ImageCopier struct {
	mapper *assets.Mapper
}

// NewImageCopier returns an ImageCopier writing through mapper.
func NewImageCopier(mapper *assets.Mapper) *ImageCopier {
	return &ImageCopier{mapper: mapper}
}

func (c *ImageCopier) Name() string { return "ImageCopier" }

// Convert copies the image at path unmodified to the mapped destination.
func (c *ImageCopier) Convert(path string) (Result, error) {
	dest, err := c.mapper.ImageDest(path)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrPathMapping, err)
	}
	if _, err := CopyFile(path, dest); err != nil {
		return Result{}, err
	}
	return Result{Written: true}, nil
}
