// Package assets classifies source files and derives their destination
// paths. Classification is purely suffix-based; nothing in this package
// touches the filesystem.
package assets

import (
	"path/filepath"
	"strings"
)

// Category identifies which converter, if any, applies to a source file.
type Category int

const (
	Unclassified Category = iota // no converter applies
	LocTable                     // multi-locale string table
	Image                        // copied verbatim
	PropertyList                 // normalized to XML
)

func (c Category) String() string {
	switch c {
	case LocTable:
		return "loctable"
	case Image:
		return "image"
	case PropertyList:
		return "plist"
	default:
		return "unclassified"
	}
}

// MetadataPlist is the bundle metadata file name excluded from processing
// when the skip-metadata option is set.
const MetadataPlist = "Info.plist"

// Extensions holds the filename suffixes recognized per category.
type Extensions struct {
	LocTable     []string
	Image        []string
	PropertyList []string
}

// DefaultExtensions returns the standard suffix sets.
func DefaultExtensions() Extensions {
	return Extensions{
		LocTable:     []string{".loctable"},
		Image:        []string{".png", ".jpg", ".heif", ".ico"},
		PropertyList: []string{".plist"},
	}
}

// Classifier assigns a Category to a path by its filename suffix alone.
// Matching is case-insensitive.
type Classifier struct {
	byExt        map[string]Category
	skipMetadata bool
}

// NewClassifier builds a Classifier over the given suffix sets. When
// skipMetadata is true, files named Info.plist are Unclassified no matter
// their suffix.
func NewClassifier(exts Extensions, skipMetadata bool) *Classifier {
	byExt := make(map[string]Category)
	for _, e := range exts.LocTable {
		byExt[strings.ToLower(e)] = LocTable
	}
	for _, e := range exts.Image {
		byExt[strings.ToLower(e)] = Image
	}
	for _, e := range exts.PropertyList {
		byExt[strings.ToLower(e)] = PropertyList
	}
	return &Classifier{byExt: byExt, skipMetadata: skipMetadata}
}

// Classify returns the category for path. Only the base name is examined.
func (c *Classifier) Classify(path string) Category {
	base := filepath.Base(path)
	if c.skipMetadata && base == MetadataPlist {
		return Unclassified
	}
	cat, ok := c.byExt[strings.ToLower(filepath.Ext(base))]
	if !ok {
		return Unclassified
	}
	return cat
}

// Match reports whether path carries any recognized suffix. The discoverer
// uses it to filter candidates before classification; the skip-metadata
// exception does not apply here so excluded files are still accounted for.
func (c *Classifier) Match(path string) bool {
	_, ok := c.byExt[strings.ToLower(filepath.Ext(path))]
	return ok
}
