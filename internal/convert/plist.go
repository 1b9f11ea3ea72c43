// internal/convert/plist.go
package convert

import (
	"fmt"
	"os"
	"strings"

	"howett.net/plist"

	"assetmirror/internal/assets"
)

// normalizedSuffix marks a file that is already the output of a previous
// normalization pass, so re-scanning a tree that contains outputs skips
// them.
const normalizedSuffix = ".xml.plist"

// PlistNormalizer re-encodes a property-list file (binary or XML) into
// canonical XML at the mirrored destination. Plists under a non-English
// locale bundle and already-normalized files are skipped.
type PlistNormalizer struct {
	mapper *assets.Mapper
}

// NewPlistNormalizer returns a PlistNormalizer writing through mapper.
func NewPlistNormalizer(mapper *assets.Mapper) *PlistNormalizer {
	return &PlistNormalizer{mapper: mapper}
}

func (c *PlistNormalizer) Name() string { return "PlistNormalizer" }

// Convert normalizes the plist at path. Exclusions are checked before any
// conversion work; a decode, encode, or write failure leaves no partial
// file at the destination.
func (c *PlistNormalizer) Convert(path string) (Result, error) {
	rel, err := c.mapper.Rel(path)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrPathMapping, err)
	}

	if assets.ForeignLocaleBundle(rel) {
		return Result{Reason: "non-english locale bundle"}, nil
	}
	if strings.HasSuffix(strings.ToLower(rel), normalizedSuffix) {
		return Result{Reason: "already normalized"}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}

	var value interface{}
	if _, err := plist.Unmarshal(data, &value); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}

	canonical, err := plist.MarshalIndent(value, plist.XMLFormat, "\t")
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrEncodeFailed, err)
	}

	dest, err := c.mapper.PlistDest(path)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrPathMapping, err)
	}

	err = WriteFileAtomic(dest, func(f *os.File) error {
		if _, err := f.Write(canonical); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteFailed, err)
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	return Result{Written: true}, nil
}
