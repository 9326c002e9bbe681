package header

import (
	"fmt"

	"firestige.xyz/hdrkit/pkg/bitfield"
)

// Raw is a header instance of any schema. It owns a buffer of exactly
// Schema().Size() bytes.
type Raw struct {
	schema *Schema
	buf    []byte
}

var _ Header = (*Raw)(nil)

// NewRaw returns an instance holding the schema defaults.
func NewRaw(s *Schema) *Raw {
	return &Raw{schema: s, buf: s.Defaults()}
}

// FromBytes returns an instance holding a copy of b.
func FromBytes(s *Schema, b []byte) (*Raw, error) {
	if len(b) != s.size {
		return nil, fmt.Errorf("%w: %s needs %d bytes, got %d", ErrSizeMismatch, s.name, s.size, len(b))
	}
	return &Raw{schema: s, buf: append([]byte(nil), b...)}, nil
}

// Schema returns the schema the instance conforms to.
func (r *Raw) Schema() *Schema {
	return r.schema
}

func (r *Raw) Name() string {
	return r.schema.name
}

func (r *Raw) Len() int {
	return r.schema.size
}

// AsSlice exposes the underlying bytes. Writes through the slice modify the
// header.
func (r *Raw) AsSlice() []byte {
	return r.buf
}

// Bits reads bits lsb..=msb. See bitfield.ReadBits.
func (r *Raw) Bits(msb, lsb int) uint64 {
	return bitfield.ReadBits(r.buf, msb, lsb)
}

// SetBits writes the low msb-lsb+1 bits of v. See bitfield.WriteBits.
func (r *Raw) SetBits(msb, lsb int, v uint64) {
	bitfield.WriteBits(r.buf, msb, lsb, v)
}

// Bytes reads a byte run. See bitfield.ReadBytes.
func (r *Raw) Bytes(msb, lsb int) []byte {
	return bitfield.ReadBytes(r.buf, msb, lsb)
}

// SetBytes writes a byte run. See bitfield.WriteBytes.
func (r *Raw) SetBytes(msb, lsb int, v []byte) {
	bitfield.WriteBytes(r.buf, msb, lsb, v)
}

// Get reads a field by name.
func (r *Raw) Get(name string) (uint64, error) {
	f, err := r.scalar(name)
	if err != nil {
		return 0, err
	}
	return r.Bits(f.End, f.Start), nil
}

// Set writes a field by name, truncating v to the field width.
func (r *Raw) Set(name string, v uint64) error {
	f, err := r.scalar(name)
	if err != nil {
		return err
	}
	r.SetBits(f.End, f.Start, v)
	return nil
}

// GetBytes reads a byte-multiple field by name.
func (r *Raw) GetBytes(name string) ([]byte, error) {
	f, ok := r.schema.Field(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrUnknownField, r.schema.name, name)
	}
	if f.Size()%8 != 0 {
		return nil, fmt.Errorf("%w: %s.%s is %d bits, not a byte run", ErrSizeMismatch, r.schema.name, name, f.Size())
	}
	return r.Bytes(f.End, f.Start), nil
}

// SetBytesOf writes a byte-multiple field by name.
func (r *Raw) SetBytesOf(name string, v []byte) error {
	f, ok := r.schema.Field(name)
	if !ok {
		return fmt.Errorf("%w: %s.%s", ErrUnknownField, r.schema.name, name)
	}
	if len(v)*8 != f.Size() {
		return fmt.Errorf("%w: %s.%s is %d bits, got %d bytes", ErrSizeMismatch, r.schema.name, name, f.Size(), len(v))
	}
	r.SetBytes(f.End, f.Start, v)
	return nil
}

func (r *Raw) scalar(name string) (Field, error) {
	f, ok := r.schema.Field(name)
	if !ok {
		return Field{}, fmt.Errorf("%w: %s.%s", ErrUnknownField, r.schema.name, name)
	}
	if f.Wide() {
		return Field{}, fmt.Errorf("%w: %s.%s is %d bits", ErrFieldTooWide, r.schema.name, name, f.Size())
	}
	return f, nil
}

// Copy returns an independent instance with the same bytes.
func (r *Raw) Copy() *Raw {
	return &Raw{schema: r.schema, buf: append([]byte(nil), r.buf...)}
}

func (r *Raw) Clone() Header {
	return r.Copy()
}

func (r *Raw) ToOwned() Header {
	return r
}
