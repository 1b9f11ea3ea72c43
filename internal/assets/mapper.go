// internal/assets/mapper.go
package assets

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Mapper derives destination paths from source paths. Every pipeline write
// target comes out of a Mapper; source paths are never spliced in place.
// Relative paths are recomputed on each call rather than cached.
//
// Source paths differing only by letter case are not disambiguated: on a
// case-insensitive destination filesystem the last writer wins. That edge
// is deliberately left open.
type Mapper struct {
	sourceRoot string
	destRoot   string
	imagesRoot string
}

// NewMapper builds a Mapper for one run. The image tree is namespaced by
// the source root's base name so several source trees can be mirrored into
// one destination without colliding.
func NewMapper(sourceRoot, destRoot string) *Mapper {
	sourceRoot = filepath.Clean(sourceRoot)
	destRoot = filepath.Clean(destRoot)
	return &Mapper{
		sourceRoot: sourceRoot,
		destRoot:   destRoot,
		imagesRoot: filepath.Join(destRoot, "images", filepath.Base(sourceRoot)),
	}
}

// SourceRoot returns the cleaned source root.
func (m *Mapper) SourceRoot() string { return m.sourceRoot }

// DestRoot returns the cleaned destination root.
func (m *Mapper) DestRoot() string { return m.destRoot }

// Rel strips the source-root prefix from path. Paths that resolve outside
// the source root are rejected rather than mapped.
func (m *Mapper) Rel(path string) (string, error) {
	rel, err := filepath.Rel(m.sourceRoot, filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("relativize %s: %w", path, err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path %s escapes source root %s", path, m.sourceRoot)
	}
	return rel, nil
}

// StringsDest returns where the English strings extracted from the
// loctable at path land: <dest>/<dir>/en.lproj/<name>.strings.
func (m *Mapper) StringsDest(path string) (string, error) {
	rel, err := m.Rel(path)
	if err != nil {
		return "", err
	}
	name := strings.TrimSuffix(filepath.Base(rel), filepath.Ext(rel)) + ".strings"
	return filepath.Join(m.destRoot, filepath.Dir(rel), EnglishBundle, name), nil
}

// PlistDest returns where the normalized form of the plist at path lands:
// <dest>/<dir>/<name>.xml.plist. The double suffix marks the file as
// already normalized so later scans skip it.
func (m *Mapper) PlistDest(path string) (string, error) {
	rel, err := m.Rel(path)
	if err != nil {
		return "", err
	}
	name := strings.TrimSuffix(filepath.Base(rel), filepath.Ext(rel)) + ".xml.plist"
	return filepath.Join(m.destRoot, filepath.Dir(rel), name), nil
}

// ImageDest returns where a verbatim image copy lands:
// <dest>/images/<source-root-name>/<rel>.
func (m *Mapper) ImageDest(path string) (string, error) {
	rel, err := m.Rel(path)
	if err != nil {
		return "", err
	}
	return filepath.Join(m.imagesRoot, rel), nil
}
