package elasticemail

import (
	"fmt"
	"strings"
)

// enumNames maps the values of a closed enumeration to their API names.
type enumNames[T ~int] struct {
	kind  string
	names map[T]string
}

func (e enumNames[T]) valid(v T) bool {
	_, ok := e.names[v]
	return ok
}

func (e enumNames[T]) name(v T) string {
	if s, ok := e.names[v]; ok {
		return s
	}
	return fmt.Sprintf("%s(%d)", e.kind, int(v))
}

// parse accepts names only, case-insensitively. Numeric codes are rejected.
func (e enumNames[T]) parse(s string) (T, error) {
	for v, name := range e.names {
		if strings.EqualFold(name, s) {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown %s %q", ErrInvalidEnum, e.kind, s)
}

func (e enumNames[T]) check(v T) error {
	if !e.valid(v) {
		return fmt.Errorf("%w: %s", ErrInvalidEnum, e.name(v))
	}
	return nil
}
