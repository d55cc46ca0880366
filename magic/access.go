package magic

import (
	"reflect"
	"unsafe"
)

// fieldTarget is one field of one target, resolved right before assignment.
type fieldTarget struct {
	owner reflect.Value
	field reflect.StructField
}

// accessToken grants write access to a field. Tokens for unexported fields
// hold a relaxed view of the field that is dropped on release.
type accessToken struct {
	value   reflect.Value
	relaxed bool
}

// acquire returns a token to write ft, relaxing access when the field is unexported.
func (ft fieldTarget) acquire() (*accessToken, error) {
	fv := ft.owner.Field(ft.field.Index[0])
	if fv.CanSet() {
		return &accessToken{value: fv}, nil
	}

	if !fv.CanAddr() {
		return nil, &AccessViolationError{Field: ft.field.Name, Reason: "target is not addressable, pass a pointer"}
	}

	relaxed := reflect.NewAt(fv.Type(), unsafe.Pointer(fv.UnsafeAddr())).Elem()

	return &accessToken{value: relaxed, relaxed: true}, nil
}

// set assigns v, it fails once the token has been released.
func (t *accessToken) set(field string, v reflect.Value) error {
	if !t.value.IsValid() {
		return &AccessViolationError{Field: field, Reason: "access token released"}
	}

	t.value.Set(v)

	return nil
}

// release drops the relaxed view, later sets fail.
func (t *accessToken) release() {
	t.value = reflect.Value{}
	t.relaxed = false
}
