// Package loctable decodes multi-locale string-table files. A loctable is
// a property list (usually binary-encoded) keyed by locale code, where
// each value is a dictionary of string key to localized text.
package loctable

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"howett.net/plist"
)

// Entry is one key/value pair from a locale's string table.
type Entry struct {
	Key   string
	Value string
}

// Table is the decoded content of one loctable file.
type Table struct {
	locales map[string]map[string]string
}

// DecodeFile reads and decodes the loctable at path.
func DecodeFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read loctable: %w", err)
	}
	return Decode(data)
}

// Decode decodes loctable bytes in any property-list encoding. Top-level
// entries whose value is not a dictionary (provenance markers and similar)
// are ignored; non-string values inside a locale are stringified.
func Decode(data []byte) (*Table, error) {
	var raw map[string]interface{}
	if _, err := plist.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode loctable: %w", err)
	}

	locales := make(map[string]map[string]string, len(raw))
	for locale, v := range raw {
		dict, ok := v.(map[string]interface{})
		if !ok {
			continue
		}
		entries := make(map[string]string, len(dict))
		for key, val := range dict {
			switch s := val.(type) {
			case string:
				entries[key] = s
			default:
				entries[key] = fmt.Sprint(val)
			}
		}
		locales[locale] = entries
	}
	return &Table{locales: locales}, nil
}

// Locales returns the locale codes present, sorted.
func (t *Table) Locales() []string {
	codes := make([]string, 0, len(t.locales))
	for code := range t.locales {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return codes
}

// Strings returns the entries for locale sorted by key, and whether the
// locale is present at all. Sorting makes output deterministic across
// runs; the decoded dictionary carries no declared order to preserve.
func (t *Table) Strings(locale string) ([]Entry, bool) {
	dict, ok := t.locales[locale]
	if !ok {
		return nil, false
	}
	entries := make([]Entry, 0, len(dict))
	for k, v := range dict {
		entries = append(entries, Entry{Key: k, Value: v})
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		return strings.Compare(a.Key, b.Key)
	})
	return entries, true
}
