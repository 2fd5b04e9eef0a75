// Package names resolves stage and enemy ids to display names. Tables are
// plain text files with one name per line, the line number being the id.
package names

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// MaxEntries is the number of distinct ids a one byte id can address.
const MaxEntries = 256

var (
	ErrUnknownEncoding = errors.New("unknown name table encoding")
	ErrTooManyEntries  = errors.New("name table has more entries than ids")
)

// Lookup returns the display name of id, if there is one.
type Lookup func(id uint8) (string, bool)

// None is a Lookup that never finds a name.
func None(uint8) (string, bool) {
	return "", false
}

// Name returns the name of id according to lookup, or fallback when lookup is
// nil or has no entry.
func Name(lookup Lookup, id uint8, fallback string) string {
	if lookup == nil {
		return fallback
	}
	if name, ok := lookup(id); ok {
		return name
	}
	return fallback
}

// Table is a list of names indexed by id.
type Table []string

// Lookup implements Lookup. Empty lines are treated as missing entries.
func (t Table) Lookup(id uint8) (string, bool) {
	if int(id) >= len(t) || t[id] == "" {
		return "", false
	}
	return t[id], true
}

var encodings = map[string]encoding.Encoding{
	"utf-8":        unicode.UTF8BOM,
	"utf-16le":     unicode.UTF16(unicode.LittleEndian, unicode.UseBOM),
	"shift-jis":    japanese.ShiftJIS,
	"windows-1252": charmap.Windows1252,
}

// Encoding returns the character encoding called name.
func Encoding(name string) (encoding.Encoding, error) {
	key := strings.ReplaceAll(strings.ToLower(name), "_", "-")
	switch key {
	case "", "utf8":
		key = "utf-8"
	case "sjis", "shiftjis":
		key = "shift-jis"
	case "cp1252":
		key = "windows-1252"
	}

	enc, ok := encodings[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	return enc, nil
}

// Load reads a name table from r, decoding it with enc.
func Load(r io.Reader, enc encoding.Encoding) (Table, error) {
	scanner := bufio.NewScanner(transform.NewReader(r, enc.NewDecoder()))

	var table Table
	for scanner.Scan() {
		table = append(table, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading name table: %w", err)
	}

	// Trailing blank lines are not entries.
	for len(table) > 0 && table[len(table)-1] == "" {
		table = table[:len(table)-1]
	}
	if len(table) > MaxEntries {
		return nil, fmt.Errorf("%w: %d lines", ErrTooManyEntries, len(table))
	}
	return table, nil
}

// LoadFile reads the name table at path in the encoding called encodingName.
func LoadFile(path, encodingName string) (Table, error) {
	enc, err := Encoding(encodingName)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening name table: %w", err)
	}
	defer f.Close()

	table, err := Load(f, enc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}
