package iteratee

import (
	"fmt"
	"reflect"

	"github.com/hasbyte1/go-underscore/value"
)

// adapter invokes an arbitrary Go func with dynamic arguments.
type adapter struct {
	fn       reflect.Value
	typ      reflect.Type
	receiver any
	bound    bool
	limit    int
}

func newAdapter(fn, context any, arity Arity) (*adapter, error) {
	if !value.IsCallable(fn) {
		return nil, fmt.Errorf("%w: %T is not a function", ErrTypeMismatch, fn)
	}
	rv := reflect.ValueOf(fn)
	return &adapter{
		fn:       rv,
		typ:      rv.Type(),
		receiver: context,
		bound:    context != nil,
		limit:    arity.limit(),
	}, nil
}

// call forwards at most limit arguments (plus the receiver), drops what the
// func does not declare and zero-fills what it declares but was not given.
func (a *adapter) call(args ...any) any {
	if a.limit >= 0 && len(args) > a.limit {
		args = args[:a.limit]
	}
	if a.bound {
		args = append([]any{a.receiver}, args...)
	}
	in := a.typ.NumIn()
	fixed := in
	if a.typ.IsVariadic() {
		fixed = in - 1
	} else if len(args) > in {
		args = args[:in]
	}
	values := make([]reflect.Value, 0, max(fixed, len(args)))
	for i := 0; i < fixed; i++ {
		pt := a.typ.In(i)
		if i < len(args) {
			values = append(values, adapt(args[i], pt))
		} else {
			values = append(values, reflect.Zero(pt))
		}
	}
	if a.typ.IsVariadic() {
		et := a.typ.In(in - 1).Elem()
		for i := fixed; i < len(args); i++ {
			values = append(values, adapt(args[i], et))
		}
	}
	out := a.fn.Call(values)
	if len(out) == 0 {
		return value.Undefined
	}
	return out[0].Interface()
}

func adapt(v any, pt reflect.Type) reflect.Value {
	if v == nil {
		return reflect.Zero(pt)
	}
	rv := reflect.ValueOf(v)
	if rv.Type().AssignableTo(pt) {
		return rv
	}
	if value.IsUndefined(v) {
		return reflect.Zero(pt)
	}
	if rv.Kind() == reflect.Pointer && !rv.IsNil() && rv.Elem().Type().AssignableTo(pt) {
		return rv.Elem()
	}
	if isNumeric(rv.Kind()) && isNumeric(pt.Kind()) {
		return rv.Convert(pt)
	}
	if rv.Kind() == pt.Kind() && rv.Type().ConvertibleTo(pt) {
		return rv.Convert(pt)
	}
	panic(fmt.Errorf("%w: cannot use %T as %s", ErrTypeMismatch, v, pt))
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
