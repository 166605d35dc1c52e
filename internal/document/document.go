// Package document provides generic YAML document reading for campaign
// content. A Document is a decoded key/value tree; Record is one entity's
// map within it. Typed field accessors supply explicit defaults and never
// fail on absent optional fields.
package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Record is a single decoded entity map within a document.
type Record map[string]any

// Document is a decoded top-level YAML tree.
type Document struct {
	// Name is the file name the document was read from.
	Name string
	root Record
}

// Read loads and decodes the named YAML document under root.
//
// Precondition: name must be a plain file name, not a path.
// Postcondition: Returns a Document with a non-nil tree, or a single
// recoverable error if the file is absent, empty, or malformed.
func Read(root, name string) (Document, error) {
	path := filepath.Join(root, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("reading document %s: %w", path, err)
	}
	return Decode(name, data)
}

// Exists reports whether the named document is present under root.
func Exists(root, name string) bool {
	info, err := os.Stat(filepath.Join(root, name))
	return err == nil && !info.IsDir()
}

// Decode parses raw YAML bytes into a Document.
//
// Postcondition: Returns a Document whose tree is non-nil, or an error if
// data is empty, malformed, or not a mapping at the top level.
func Decode(name string, data []byte) (Document, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Document{}, fmt.Errorf("document %s is empty", name)
	}
	var tree map[string]any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return Document{}, fmt.Errorf("parsing document %s: %w", name, err)
	}
	if tree == nil {
		return Document{}, fmt.Errorf("document %s has no top-level mapping", name)
	}
	return Document{Name: name, root: Record(tree)}, nil
}

// Root returns the document's top-level record.
//
// Postcondition: Returns a non-nil Record for a successfully decoded document.
func (d Document) Root() Record {
	return d.root
}

// Records returns the list of entity records under key, skipping list
// entries that are not mappings. The second return reports how many entries
// were skipped.
//
// Postcondition: every returned Record is non-nil.
func (d Document) Records(key string) ([]Record, int) {
	return d.root.Records(key)
}
