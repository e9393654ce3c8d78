package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// SupportedMajor is the catalog document major version this build reads.
const SupportedMajor = "v1"

//go:embed data/catalog.yaml
var builtinCatalog []byte

// document is the on-disk shape of a catalog file.
type document struct {
	Version    string     `yaml:"version"`
	Categories []Category `yaml:"categories"`
}

// Default returns the built-in question bank.
func Default() (*Catalog, error) {
	c, err := Parse(builtinCatalog)
	if err != nil {
		return nil, fmt.Errorf("load built-in catalog: %w", err)
	}
	return c, nil
}

// LoadFile reads and parses a catalog YAML file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a catalog document, validating it against the catalog
// schema, the supported version and the structural rules of New.
func Parse(data []byte) (*Catalog, error) {
	var tree any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}
	if err := validateDocument(tree); err != nil {
		return nil, err
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := checkVersion(doc.Version); err != nil {
		return nil, err
	}

	return New(doc.Categories)
}

// checkVersion rejects documents whose major version this build cannot read.
func checkVersion(v string) error {
	if !semver.IsValid(v) {
		return fmt.Errorf("invalid catalog version %q", v)
	}
	if major := semver.Major(v); major != SupportedMajor {
		return fmt.Errorf("unsupported catalog version %s: want %s.x", v, SupportedMajor)
	}
	return nil
}
