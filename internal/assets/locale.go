package assets

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
)

// EnglishBundle is the locale-bundle directory extracted strings are
// written under.
const EnglishBundle = "en.lproj"

const lprojSuffix = ".lproj"

// legacyLocaleNames maps pre-ISO bundle names still found in older bundles
// to their modern codes.
var legacyLocaleNames = map[string]string{
	"english": "en",
}

var englishBase, _ = language.English.Base()

// ForeignLocaleBundle reports whether rel contains a locale-bundle
// component for a language other than English. Paths outside any locale
// bundle and paths under an English bundle (en.lproj, en_GB.lproj, legacy
// English.lproj) return false. Bundle names that do not parse as a
// language (Base.lproj) count as foreign, so only English content is ever
// exported.
func ForeignLocaleBundle(rel string) bool {
	for _, comp := range strings.Split(filepath.ToSlash(rel), "/") {
		name, ok := strings.CutSuffix(comp, lprojSuffix)
		if !ok || name == "" {
			continue
		}
		if !isEnglish(name) {
			return true
		}
	}
	return false
}

func isEnglish(name string) bool {
	if code, ok := legacyLocaleNames[strings.ToLower(name)]; ok {
		name = code
	}
	tag, err := language.Parse(strings.ReplaceAll(name, "_", "-"))
	if err != nil {
		return false
	}
	base, _ := tag.Base()
	return base == englishBase
}
