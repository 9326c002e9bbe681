// Package gen loads header declarations from YAML and generates typed Go
// header types from them.
//
// A declaration file looks like:
//
//	package: headers
//	headers:
//	  - name: Vlan
//	    size: 4
//	    fields:
//	      - pcp: 0-2
//	      - cfi: 3-3
//	      - vid: 4-15
//	      - etype: 16-31
//	    default: [0x00, 0x0a, 0x08, 0x00]
//
// Field ranges are MSB-0 bit indices, start first. A single index such as
// "cfi: 3" is shorthand for a one bit field. Omitting default zero-fills
// the header.
package gen

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"firestige.xyz/hdrkit/pkg/header"
)

// File is one declaration file.
type File struct {
	Package string       `yaml:"package"`
	Headers []HeaderDecl `yaml:"headers"`
}

// HeaderDecl declares one header kind.
type HeaderDecl struct {
	Name    string      `yaml:"name"`
	Size    int         `yaml:"size"`
	Fields  []FieldDecl `yaml:"fields"`
	Default []int       `yaml:"default"`
}

// FieldDecl is a `name: start-end` entry.
type FieldDecl struct {
	Name  string
	Start int
	End   int
}

// UnmarshalYAML decodes a single-key mapping such as `vid: 4-15`.
func (f *FieldDecl) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode || len(value.Content) != 2 {
		return fmt.Errorf("line %d: field must be a single `name: start-end` entry", value.Line)
	}
	key, rng := value.Content[0], value.Content[1]
	if rng.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: field %s: range must be a scalar", rng.Line, key.Value)
	}

	start, end, err := parseRange(rng.Value)
	if err != nil {
		return fmt.Errorf("line %d: field %s: %w", rng.Line, key.Value, err)
	}
	f.Name, f.Start, f.End = key.Value, start, end
	return nil
}

func parseRange(s string) (int, int, error) {
	lo, hi, found := strings.Cut(s, "-")
	start, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return 0, 0, fmt.Errorf("bad range %q", s)
	}
	if !found {
		return start, start, nil
	}
	end, err := strconv.Atoi(strings.TrimSpace(hi))
	if err != nil {
		return 0, 0, fmt.Errorf("bad range %q", s)
	}
	return start, end, nil
}

// Load reads and parses a declaration file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema file %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes a declaration document. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", header.ErrInvalidSchema)
		}
		return nil, err
	}
	return &f, nil
}

// Schemas validates every declaration and returns the schemas in file order.
func (f *File) Schemas() ([]*header.Schema, error) {
	seen := make(map[string]bool, len(f.Headers))
	schemas := make([]*header.Schema, 0, len(f.Headers))
	for _, d := range f.Headers {
		if seen[d.Name] {
			return nil, fmt.Errorf("%w: duplicate header %q", header.ErrInvalidSchema, d.Name)
		}
		seen[d.Name] = true

		s, err := d.Schema()
		if err != nil {
			return nil, err
		}
		schemas = append(schemas, s)
	}
	return schemas, nil
}

// Schema validates the declaration.
func (d HeaderDecl) Schema() (*header.Schema, error) {
	var defaults []byte
	if len(d.Default) > 0 {
		defaults = make([]byte, len(d.Default))
		for i, v := range d.Default {
			if v < 0 || v > 0xff {
				return nil, fmt.Errorf("%w: %s: default byte %d is %d", header.ErrInvalidSchema, d.Name, i, v)
			}
			defaults[i] = byte(v)
		}
	}

	fields := make([]header.Field, len(d.Fields))
	for i, fd := range d.Fields {
		fields[i] = header.Field{Name: fd.Name, Start: fd.Start, End: fd.End}
	}
	return header.NewSchema(d.Name, d.Size, fields, defaults)
}
