// Package header declares fixed-layout binary headers as named MSB-0 bit
// ranges and reads and writes those fields over an owned byte buffer.
//
// A Schema describes one header kind. Raw is an instance of any schema with
// name-based field access; generated typed headers embed *Raw and add one
// accessor pair per field. Every instance satisfies Header, so heterogeneous
// headers can live in one slice and be narrowed back with As.
package header

import (
	"fmt"
	"go/token"

	"firestige.xyz/hdrkit/pkg/bitfield"
)

// Field is a named bit range. Start is the MSB-0 index of the field's most
// significant bit and End that of its least significant bit.
type Field struct {
	Name  string
	Start int
	End   int
}

// Size returns the field width in bits.
func (f Field) Size() int {
	return bitfield.Width(f.End, f.Start)
}

// LSB returns the first bit index of the field.
func (f Field) LSB() int {
	return f.Start
}

// MSB returns the last bit index of the field.
func (f Field) MSB() int {
	return f.End
}

// Wide reports whether the field is only reachable as a byte run.
func (f Field) Wide() bool {
	return f.Size() > bitfield.MaxWidth
}

func (f Field) String() string {
	return fmt.Sprintf("%s: %d-%d", f.Name, f.Start, f.End)
}

// Schema is the immutable description of a header kind.
type Schema struct {
	name     string
	size     int
	fields   []Field
	index    map[string]int
	defaults []byte
}

// NewSchema validates a header declaration. A nil defaults slice means a
// zero-filled header. Fields may overlap; fields wider than 64 bits must be
// a whole number of bytes.
func NewSchema(name string, size int, fields []Field, defaults []byte) (*Schema, error) {
	if !token.IsIdentifier(name) {
		return nil, fmt.Errorf("%w: name %q is not an identifier", ErrInvalidSchema, name)
	}
	if size <= 0 {
		return nil, fmt.Errorf("%w: %s: size %d", ErrInvalidSchema, name, size)
	}
	if defaults == nil {
		defaults = make([]byte, size)
	}
	if len(defaults) != size {
		return nil, fmt.Errorf("%w: %s: %d default bytes for %d byte header", ErrSizeMismatch, name, len(defaults), size)
	}

	s := &Schema{
		name:     name,
		size:     size,
		fields:   make([]Field, len(fields)),
		index:    make(map[string]int, len(fields)),
		defaults: append([]byte(nil), defaults...),
	}
	copy(s.fields, fields)

	for i, f := range s.fields {
		if err := s.checkField(f); err != nil {
			return nil, err
		}
		if _, ok := s.index[f.Name]; ok {
			return nil, fmt.Errorf("%w: %s: duplicate field %q", ErrInvalidSchema, name, f.Name)
		}
		s.index[f.Name] = i
	}
	return s, nil
}

// MustSchema is like NewSchema but panics on an invalid declaration. It is
// meant for package-level schema variables.
func MustSchema(name string, size int, fields []Field, defaults []byte) *Schema {
	s, err := NewSchema(name, size, fields, defaults)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Schema) checkField(f Field) error {
	if !token.IsIdentifier(f.Name) {
		return fmt.Errorf("%w: %s: field name %q is not an identifier", ErrInvalidSchema, s.name, f.Name)
	}
	if f.Start < 0 || f.Start > f.End {
		return fmt.Errorf("%w: %s: field %s has an invalid range", ErrInvalidSchema, s.name, f)
	}
	if f.End >= s.size*8 {
		return fmt.Errorf("%w: %s: field %s ends past bit %d", ErrInvalidSchema, s.name, f, s.size*8-1)
	}
	if f.Wide() && f.Size()%8 != 0 {
		return fmt.Errorf("%w: %s: field %s is wider than %d bits and not a byte run", ErrInvalidSchema, s.name, f, bitfield.MaxWidth)
	}
	return nil
}

// Name returns the schema identifier.
func (s *Schema) Name() string {
	return s.name
}

// Size returns the header length in bytes.
func (s *Schema) Size() int {
	return s.size
}

// Fields returns the fields in declaration order.
func (s *Schema) Fields() []Field {
	return append([]Field(nil), s.fields...)
}

// Field looks a field up by name.
func (s *Schema) Field(name string) (Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// Defaults returns a copy of the default header bytes.
func (s *Schema) Defaults() []byte {
	return append([]byte(nil), s.defaults...)
}
