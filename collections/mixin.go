package collections

import (
	"fmt"
	"reflect"
	"sort"
	"sync"
)

// MixinFunc extends [Collection] under a name. It receives the chain's
// current value and the arguments given to [Collection.Call]; the chain
// continues with what it returns.
type MixinFunc func(wrapped any, args ...any) any

type mixinTable struct {
	mu  sync.RWMutex
	fns map[string]MixinFunc
}

var mixins mixinTable

// builtinMethods lists the method names of *Collection. A mixin may not
// take one of them, so Call never resolves differently from a method.
var builtinMethods = sync.OnceValue(func() map[string]struct{} {
	t := reflect.TypeOf((*Collection)(nil))
	names := make(map[string]struct{}, t.NumMethod())
	for i := 0; i < t.NumMethod(); i++ {
		names[t.Method(i).Name] = struct{}{}
	}
	return names
})

// Mixin registers fn as the chain operation name, replacing an earlier
// mixin of that name. It fails with [ErrInvalidMixin] for an empty name, a
// nil fn, or a name that is already a [Collection] method.
//
//	collections.Mixin("evens", func(wrapped any, _ ...any) any {
//	    return collections.Filter(wrapped, func(n int) bool { return n%2 == 0 }, nil)
//	})
//	c, _ := collections.Chain([]int{1, 2, 3, 4}).Call("evens") // wraps [2 4]
func Mixin(name string, fn MixinFunc) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty name", ErrInvalidMixin)
	case fn == nil:
		return fmt.Errorf("%w: %q has no function", ErrInvalidMixin, name)
	}
	if _, taken := builtinMethods()[name]; taken {
		return fmt.Errorf("%w: %q is a Collection method", ErrInvalidMixin, name)
	}
	mixins.mu.Lock()
	defer mixins.mu.Unlock()
	if mixins.fns == nil {
		mixins.fns = make(map[string]MixinFunc)
	}
	mixins.fns[name] = fn
	return nil
}

// HasMixin reports whether name is registered.
func HasMixin(name string) bool {
	_, ok := lookupMixin(name)
	return ok
}

// Mixins returns the registered names in ascending order.
func Mixins() []string {
	mixins.mu.RLock()
	defer mixins.mu.RUnlock()
	names := make([]string, 0, len(mixins.fns))
	for name := range mixins.fns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResetMixins unregisters every mixin.
func ResetMixins() {
	mixins.mu.Lock()
	defer mixins.mu.Unlock()
	mixins.fns = nil
}

func lookupMixin(name string) (MixinFunc, bool) {
	mixins.mu.RLock()
	defer mixins.mu.RUnlock()
	fn, ok := mixins.fns[name]
	return fn, ok
}

// CallMixin applies the mixin name to obj without a chain.
func CallMixin(name string, obj any, args ...any) (any, error) {
	fn, ok := lookupMixin(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMixinNotFound, name)
	}
	return fn(obj, args...), nil
}

// Call continues the chain with the mixin name. The receiver is left
// unchanged; a missing mixin fails with [ErrMixinNotFound].
func (c *Collection) Call(name string, args ...any) (*Collection, error) {
	out, err := CallMixin(name, c.wrapped, args...)
	if err != nil {
		return nil, err
	}
	return c.chain(out), nil
}
