package transform

import (
	"reflect"
)

// TypeID identifies the type a transform produces.
// The zero TypeID means no type was supplied.
type TypeID struct {
	rt reflect.Type
}

// TypeOf returns the TypeID of T.
func TypeOf[T any]() TypeID {
	return TypeID{rt: reflect.TypeFor[T]()}
}

// TypeFor returns the TypeID of rt. A nil rt yields the zero TypeID.
func TypeFor(rt reflect.Type) TypeID {
	return TypeID{rt: rt}
}

// IsZero returns true if no type is identified.
func (t TypeID) IsZero() bool {
	return t.rt == nil
}

// Reflect returns the underlying reflect.Type, or nil for the zero TypeID.
func (t TypeID) Reflect() reflect.Type {
	return t.rt
}

// IsConcrete returns true if values of the type can be constructed,
// which is every type except interfaces.
func (t TypeID) IsConcrete() bool {
	return t.rt != nil && t.rt.Kind() != reflect.Interface
}

// AssignableTo returns true if a value of t can be used where other is expected.
func (t TypeID) AssignableTo(other TypeID) bool {
	if t.rt == nil || other.rt == nil {
		return false
	}

	return t.rt.AssignableTo(other.rt)
}

// String returns the Go spelling of the type, e.g. "*int32".
func (t TypeID) String() string {
	if t.rt == nil {
		return "<none>"
	}

	return t.rt.String()
}
