package value

import (
	"reflect"
	"strings"
	"sync"
	"unsafe"

	"github.com/viant/tagly/format/text"
	"github.com/viant/xunsafe"
)

type (
	structField struct {
		key   string
		field *xunsafe.Field
	}

	structInfo struct {
		fields []structField
		index  map[string]int
	}
)

var structCache = struct {
	mu    sync.RWMutex
	infos map[reflect.Type]*structInfo
}{infos: make(map[reflect.Type]*structInfo)}

func structInfoOf(t reflect.Type) *structInfo {
	structCache.mu.RLock()
	info, ok := structCache.infos[t]
	structCache.mu.RUnlock()
	if ok {
		return info
	}
	info = &structInfo{index: make(map[string]int)}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		key, ok := fieldKey(sf)
		if !ok {
			continue
		}
		pos := len(info.fields)
		info.fields = append(info.fields, structField{key: key, field: xunsafe.NewField(sf)})
		info.index[key] = pos
		if _, taken := info.index[sf.Name]; !taken {
			info.index[sf.Name] = pos
		}
	}
	structCache.mu.Lock()
	structCache.infos[t] = info
	structCache.mu.Unlock()
	return info
}

// fieldKey returns the json tag name when present, otherwise the lowerCamel
// form of the Go field name. Fields tagged json:"-" are not enumerated.
func fieldKey(sf reflect.StructField) (string, bool) {
	if tag, ok := sf.Tag.Lookup("json"); ok {
		if tag == "-" {
			return "", false
		}
		if name, _, _ := strings.Cut(tag, ","); name != "" {
			return name, true
		}
	}
	return text.DetectCaseFormat(sf.Name).Format(sf.Name, text.CaseFormatLowerCamel), true
}

// structPointer returns an addressable pointer to the struct held by v,
// copying struct values so their fields can be read through xunsafe.
// Objects and Sequence implementers are collections in their own right and
// are never read field by field.
func structPointer(v any) (unsafe.Pointer, reflect.Type, bool) {
	switch v.(type) {
	case nil, *Object, Sequence:
		return nil, nil, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
			return nil, nil, false
		}
		return xunsafe.AsPointer(v), rv.Elem().Type(), true
	case reflect.Struct:
		holder := reflect.New(rv.Type())
		holder.Elem().Set(rv)
		return xunsafe.AsPointer(holder.Interface()), rv.Type(), true
	}
	return nil, nil, false
}

type structReader struct {
	ptr  unsafe.Pointer
	info *structInfo
}

func newStructReader(v any) (structReader, bool) {
	ptr, t, ok := structPointer(v)
	if !ok {
		return structReader{}, false
	}
	return structReader{ptr: ptr, info: structInfoOf(t)}, true
}

func (r structReader) keys() []any {
	out := make([]any, len(r.info.fields))
	for i, f := range r.info.fields {
		out[i] = f.key
	}
	return out
}

func (r structReader) lookup(key any) (any, bool) {
	name, ok := key.(string)
	if !ok {
		name = ToKey(key)
	}
	pos, ok := r.info.index[name]
	if !ok {
		return Undefined, false
	}
	return r.info.fields[pos].field.Value(r.ptr), true
}
