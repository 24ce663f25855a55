package discover

import (
	"reflect"

	"github.com/matzehuels/dotwalk/pkg/errors"
)

// handleKey keys objects that supplied their own identity handle.
type handleKey struct {
	typ    reflect.Type
	handle any
}

// mapKey keys map-typed objects, which are not comparable, by address.
type mapKey struct {
	typ  reflect.Type
	addr uintptr
}

// identity returns the memo key for obj. Two objects share a key only if
// they are the same object.
func identity(obj any) (any, error) {
	if obj == nil {
		return nil, errors.New(errors.ErrCodeProtocol, "nil object in relation list")
	}
	if id, ok := obj.(Identifier); ok {
		h := id.Identity()
		if h == nil || !reflect.TypeOf(h).Comparable() {
			return nil, errors.New(errors.ErrCodeNoIdentity, "%T: identity handle %v is not comparable", obj, h)
		}
		return handleKey{typ: reflect.TypeOf(obj), handle: h}, nil
	}

	v := reflect.ValueOf(obj)
	switch v.Kind() {
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return obj, nil
	case reflect.Map:
		return mapKey{typ: v.Type(), addr: v.Pointer()}, nil
	}
	return nil, errors.New(errors.ErrCodeNoIdentity,
		"%T has no identity; pass a pointer or implement discover.Identifier", obj)
}
