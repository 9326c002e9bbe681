package header

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndNew(t *testing.T) {
	s := MustSchema("RegistryRaw", 2, []Field{{Name: "v", Start: 0, End: 15}}, []byte{0xab, 0xcd})
	Register(s, nil)

	got, ok := Lookup("RegistryRaw")
	require.True(t, ok)
	assert.Same(t, s, got)

	h, err := New("RegistryRaw")
	require.NoError(t, err)
	r := As[*Raw](h)
	assert.Equal(t, []byte{0xab, 0xcd}, r.AsSlice())

	h2, err := New("RegistryRaw")
	require.NoError(t, err)
	assert.NotSame(t, h, h2)

	assert.Contains(t, Names(), "RegistryRaw")
}

func TestRegisterCustomConstructor(t *testing.T) {
	s := MustSchema("RegistryProbe", 1, nil, nil)
	Register(s, func() Header { return &probe{NewRaw(s)} })

	h, err := New("RegistryProbe")
	require.NoError(t, err)
	_, ok := TryAs[*probe](h)
	assert.True(t, ok)
}

func TestRegisterDuplicatePanics(t *testing.T) {
	s := MustSchema("RegistryDup", 1, nil, nil)
	Register(s, nil)

	assert.Panics(t, func() { Register(s, nil) })
	assert.Panics(t, func() { Register(nil, nil) })
}

func TestNewUnknown(t *testing.T) {
	_, err := New("NoSuchHeader")
	assert.ErrorIs(t, err, ErrUnknownSchema)

	_, ok := Lookup("NoSuchHeader")
	assert.False(t, ok)
}

func TestNamesSorted(t *testing.T) {
	Register(MustSchema("RegistryZed", 1, nil, nil), nil)
	Register(MustSchema("RegistryAlpha", 1, nil, nil), nil)

	names := Names()
	assert.IsNonDecreasing(t, names)
}
