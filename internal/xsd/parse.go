package xsd

import (
	"encoding/xml"
	"errors"
	"fmt"
	"os"
)

// ErrParse marks a malformed schema document. Parse failures are fatal to
// the whole run: wrap, never swallow.
var ErrParse = errors.New("schema parse error")

// Parse decodes one schema document. The path is recorded on the result and
// used in error messages only; no file access happens here.
func Parse(data []byte, path string) (*Document, error) {
	var doc Document

	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, path, err)
	}

	doc.Path = path

	return &doc, nil
}

// ParseFile reads and decodes the schema document at path.
func ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema file %s: %w", path, err)
	}

	return Parse(data, path)
}
