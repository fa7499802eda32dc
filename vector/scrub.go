package vector

import (
	"reflect"
	"sync"
)

var scrubNeeded sync.Map // reflect.Type -> bool

// scrub clears dead slots so they retain no references. Element types without
// pointers skip the clear, their dead bits are unreachable either way. The
// decision is made once per element type and cached.
func scrub[T any](s []T) {
	if len(s) == 0 {
		return
	}
	t := reflect.TypeFor[T]()
	need, ok := scrubNeeded.Load(t)
	if !ok {
		need, _ = scrubNeeded.LoadOrStore(t, holdsPointers(t))
	}
	if need.(bool) {
		clear(s)
	}
}

func holdsPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return t.Len() > 0 && holdsPointers(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if holdsPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		return true
	}
}
