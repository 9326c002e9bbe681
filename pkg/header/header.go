package header

import (
	"fmt"
	"strings"
)

// Header is the schema-agnostic view of any header instance. Typed field
// access is recovered by narrowing with As or TryAs.
//
// Implementations hold nothing but a byte buffer, so a Header may be handed
// to another goroutine. Concurrent mutation of one instance needs external
// locking.
type Header interface {
	Name() string
	Len() int
	AsSlice() []byte
	Show()
	Clone() Header
	ToOwned() Header
}

// As narrows h to the concrete header type T. It panics if h holds a
// different kind of header.
//
// Narrowing is by Go type, not by schema: a *Raw built with NewRaw or
// FromBytes never narrows to a generated type, even when it carries that
// type's schema. Use the generated New<T> and <T>FromBytes constructors to
// obtain typed instances.
func As[T Header](h Header) T {
	v, ok := h.(T)
	if !ok {
		panic(fmt.Sprintf("Header is not a %s", typeName[T]()))
	}
	return v
}

// TryAs narrows h to T, reporting whether h holds a T.
func TryAs[T Header](h Header) (T, bool) {
	v, ok := h.(T)
	return v, ok
}

func typeName[T any]() string {
	name := fmt.Sprintf("%T", *new(T))
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
