package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.toml
var defaultCatalog []byte

var (
	// ErrUnknownFamily is returned when a family key is not in the catalog.
	ErrUnknownFamily = errors.New("unknown family")
	// ErrUnknownSection is returned when a section key is not in a family.
	ErrUnknownSection = errors.New("unknown section")
)

// Catalog is the full set of reference material.
type Catalog struct {
	Families []Family `toml:"family" yaml:"families"`
}

// Family groups the sections describing one kind of model.
type Family struct {
	Key      string    `toml:"key" yaml:"key"`
	Title    string    `toml:"title" yaml:"title"`
	Summary  string    `toml:"summary" yaml:"summary"`
	Sections []Section `toml:"section" yaml:"sections"`
}

// Section is one tab of a family page.
type Section struct {
	Key        string   `toml:"key" yaml:"key"`
	Title      string   `toml:"title" yaml:"title"`
	Paragraphs []string `toml:"paragraphs" yaml:"paragraphs"`
	Lists      []List   `toml:"list" yaml:"lists"`
	Metrics    []Metric `toml:"metric" yaml:"metrics"`
}

// List is a headed bullet list.
type List struct {
	Heading string   `toml:"heading" yaml:"heading"`
	Items   []string `toml:"items" yaml:"items"`
}

// Metric describes one evaluation measure.
type Metric struct {
	Name        string `toml:"name" yaml:"name"`
	Formula     string `toml:"formula" yaml:"formula"`
	Range       string `toml:"range" yaml:"range"`
	Better      string `toml:"better" yaml:"better"`
	Description string `toml:"description" yaml:"description"`
}

// Default returns the catalog compiled into the binary.
func Default() (Catalog, error) {
	return Decode(defaultCatalog, "toml")
}

// Load reads a catalog file. An empty path returns Default. The format is
// picked from the extension: .toml, .yaml or .yml.
func Load(path string) (Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog: %w", err)
	}
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	return Decode(data, format)
}

// Decode parses and validates catalog data. Unknown fields are rejected.
func Decode(data []byte, format string) (Catalog, error) {
	var c Catalog
	switch format {
	case "toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&c); err != nil {
			return Catalog{}, fmt.Errorf("parse catalog: %w", err)
		}
	case "yaml", "yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&c); err != nil {
			return Catalog{}, fmt.Errorf("parse catalog: %w", err)
		}
	default:
		return Catalog{}, fmt.Errorf("parse catalog: unsupported format %q", format)
	}
	c.normalize()
	if err := c.Validate(); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

func (c *Catalog) normalize() {
	for i := range c.Families {
		f := &c.Families[i]
		f.Key = normalizeKey(f.Key)
		for j := range f.Sections {
			f.Sections[j].Key = normalizeKey(f.Sections[j].Key)
		}
	}
}

// Validate checks that the catalog has families and sections with unique,
// non-empty keys.
func (c Catalog) Validate() error {
	if len(c.Families) == 0 {
		return fmt.Errorf("catalog: no families defined")
	}
	families := make(map[string]struct{}, len(c.Families))
	for i, f := range c.Families {
		key := strings.TrimSpace(f.Key)
		if key == "" {
			return fmt.Errorf("catalog: family[%d]: key is required", i)
		}
		if _, dup := families[key]; dup {
			return fmt.Errorf("catalog: family %q defined twice", key)
		}
		families[key] = struct{}{}

		if len(f.Sections) == 0 {
			return fmt.Errorf("catalog: family %q: no sections defined", key)
		}
		sections := make(map[string]struct{}, len(f.Sections))
		for j, s := range f.Sections {
			skey := strings.TrimSpace(s.Key)
			if skey == "" {
				return fmt.Errorf("catalog: family %q section[%d]: key is required", key, j)
			}
			if _, dup := sections[skey]; dup {
				return fmt.Errorf("catalog: family %q: section %q defined twice", key, skey)
			}
			sections[skey] = struct{}{}
		}
	}
	return nil
}

// FamilyKeys returns family keys in catalog order.
func (c Catalog) FamilyKeys() []string {
	keys := make([]string, 0, len(c.Families))
	for _, f := range c.Families {
		keys = append(keys, f.Key)
	}
	return keys
}

// Family looks up a family by key, ignoring case and surrounding space.
func (c Catalog) Family(key string) (Family, error) {
	want := normalizeKey(key)
	for _, f := range c.Families {
		if f.Key == want {
			return f, nil
		}
	}
	return Family{}, unknownKey(ErrUnknownFamily, key, c.FamilyKeys())
}

// SectionKeys returns section keys in display order.
func (f Family) SectionKeys() []string {
	keys := make([]string, 0, len(f.Sections))
	for _, s := range f.Sections {
		keys = append(keys, s.Key)
	}
	return keys
}

// Section looks up a section by key, ignoring case and surrounding space.
func (f Family) Section(key string) (Section, error) {
	want := normalizeKey(key)
	for _, s := range f.Sections {
		if s.Key == want {
			return s, nil
		}
	}
	return Section{}, unknownKey(ErrUnknownSection, key, f.SectionKeys())
}

// HasSection reports whether key names one of the family's sections.
func (f Family) HasSection(key string) bool {
	_, err := f.Section(key)
	return err == nil
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

func unknownKey(sentinel error, key string, candidates []string) error {
	if s, ok := Suggest(key, candidates); ok {
		return fmt.Errorf("%w %q (did you mean %q?)", sentinel, key, s)
	}
	return fmt.Errorf("%w %q (choose from %s)", sentinel, key, strings.Join(candidates, ", "))
}
