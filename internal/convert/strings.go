// internal/convert/strings.go
package convert

import (
	"fmt"
	"os"
	"strings"

	"assetmirror/internal/assets"
	"assetmirror/internal/loctable"
)

// StringsTable extracts the English entries of a loctable file into a
// .strings file under an en.lproj destination directory. A table with no
// English locale is a valid skip, not an error.
type StringsTable struct {
	mapper *assets.Mapper
}

// NewStringsTable returns a StringsTable writing through mapper.
func NewStringsTable(mapper *assets.Mapper) *StringsTable {
	return &StringsTable{mapper: mapper}
}

func (c *StringsTable) Name() string { return "StringsTableConverter" }

// Convert decodes the loctable at path and, when an "en" locale is
// present, materializes its entries atomically at the mapped destination.
// All-or-nothing: a decode or write failure leaves no partial file.
func (c *StringsTable) Convert(path string) (Result, error) {
	table, err := loctable.DecodeFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}

	entries, ok := table.Strings("en")
	if !ok {
		return Result{Reason: "no english strings"}, nil
	}

	dest, err := c.mapper.StringsDest(path)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrPathMapping, err)
	}

	err = WriteFileAtomic(dest, func(f *os.File) error {
		for _, e := range entries {
			line := fmt.Sprintf("\"%s\" = \"%s\";\n", escapeStrings(e.Key), escapeStrings(e.Value))
			if _, err := f.WriteString(line); err != nil {
				return fmt.Errorf("%w: %v", ErrWriteFailed, err)
			}
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	return Result{Written: true}, nil
}

// escapeStrings escapes the characters that break the .strings quoted
// literal form.
func escapeStrings(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\t", `\t`)
	return r.Replace(s)
}
