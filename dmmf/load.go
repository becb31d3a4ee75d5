package dmmf

import (
	"encoding/json"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/satishbabariya/prisma-class-validator-go/internal/errors"
)

// Load decodes a JSON DMMF document.
func Load(r io.Reader) (*Document, error) {
	dec := json.NewDecoder(r)
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "decode dmmf json")
	}
	return &doc, nil
}

// LoadYAML decodes a YAML document with the same shape as the JSON form.
func LoadYAML(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "decode dmmf yaml")
	}
	return &doc, nil
}

// IsDocumentPath reports whether path looks like a serialized DMMF document
// rather than a schema source file.
func IsDocumentPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// LoadFile reads a JSON or YAML document from fs, picking the decoder by extension.
func LoadFile(fs afero.Fs, path string) (*Document, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	var doc *Document
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		doc, err = LoadYAML(f)
	case ".json":
		doc, err = Load(f)
	default:
		return nil, errors.Newf("unsupported document extension %q (want .json, .yaml or .yml)", filepath.Ext(path))
	}
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return doc, nil
}
