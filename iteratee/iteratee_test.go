package iteratee_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-underscore/iteratee"
	"github.com/hasbyte1/go-underscore/value"
)

type user struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Resolution
// ─────────────────────────────────────────────────────────────────────────────

func TestNormalize_Identity(t *testing.T) {
	for _, spec := range []any{nil, value.Undefined} {
		cb := iteratee.Normalize(spec, nil, iteratee.ArityThree)
		assert.Equal(t, 7, cb(7, 0, nil))
	}
}

func TestNormalize_Property(t *testing.T) {
	cb := iteratee.Normalize("name", nil, iteratee.ArityThree)
	assert.Equal(t, "ann", cb(map[string]any{"name": "ann"}, 0, nil))
	assert.Equal(t, "bob", cb(user{Name: "bob"}, 0, nil))
	assert.Equal(t, value.Undefined, cb(nil, 0, nil))
	assert.Equal(t, value.Undefined, cb(42, 0, nil))

	idx := iteratee.Normalize(1, nil, iteratee.ArityThree)
	assert.Equal(t, "b", idx([]string{"a", "b"}, 0, nil))
}

func TestNormalize_KeyPath(t *testing.T) {
	doc := value.ObjectOf("a", value.ObjectOf("b", []any{10, 20}))
	cb := iteratee.Normalize([]any{"a", "b", 1}, nil, iteratee.ArityThree)
	assert.Equal(t, 20, cb(doc, 0, nil))

	missing := iteratee.Normalize([]string{"a", "x", "y"}, nil, iteratee.ArityThree)
	assert.Equal(t, value.Undefined, missing(doc, 0, nil))
}

func TestNormalize_Matcher(t *testing.T) {
	cb := iteratee.Normalize(map[string]any{"age": 30}, nil, iteratee.ArityThree)
	assert.Equal(t, true, cb(user{Name: "a", Age: 30}, 0, nil))
	assert.Equal(t, false, cb(user{Name: "a", Age: 31}, 0, nil))
	assert.Equal(t, false, cb(nil, 0, nil))
}

func TestNormalize_Func(t *testing.T) {
	var seen []any
	cb := iteratee.Normalize(func(v, k, c any) any {
		seen = append(seen, v, k, c)
		return nil
	}, nil, iteratee.ArityThree)
	cb("x", 1, "coll")
	assert.Equal(t, []any{"x", 1, "coll"}, seen)
}

func TestNormalize_TypedFunc(t *testing.T) {
	cb := iteratee.Normalize(func(n int, i int) int { return n * i }, nil, iteratee.ArityThree)
	assert.Equal(t, 6, cb(3, 2, nil))

	// untyped numbers are converted to the declared parameter type
	cb = iteratee.Normalize(func(f float64) float64 { return f / 2 }, nil, iteratee.ArityThree)
	assert.Equal(t, 1.5, cb(3, 0, nil))

	// missing declared parameters are zero-filled
	cb = iteratee.Normalize(func(a, b, c, d string) string { return a + d }, nil, iteratee.ArityThree)
	assert.Equal(t, "x", cb("x", value.Undefined, value.Undefined))
}

func TestNormalize_NoReturn(t *testing.T) {
	calls := 0
	cb := iteratee.Normalize(func(any) { calls++ }, nil, iteratee.ArityThree)
	assert.Equal(t, value.Undefined, cb(1, 0, nil))
	assert.Equal(t, 1, calls)
}

func TestNormalize_ArityOne(t *testing.T) {
	parse := func(s string, base ...int) int64 {
		b := 10
		if len(base) > 0 && base[0] != 0 {
			b = base[0]
		}
		n, err := strconv.ParseInt(s, b, 64)
		if err != nil {
			return -1
		}
		return n
	}

	capped := iteratee.Normalize(parse, nil, iteratee.ArityOne)
	assert.Equal(t, int64(10), capped("10", 2, nil))

	uncapped := iteratee.Normalize(parse, nil, iteratee.ArityThree)
	assert.Equal(t, int64(2), uncapped("10", 2, nil))

	generic := iteratee.Normalize(func(v, k, c any) any { return k }, nil, iteratee.ArityOne)
	assert.Equal(t, value.Undefined, generic("a", 5, nil))
}

func TestNormalize_Bound(t *testing.T) {
	type counter struct{ step int }
	add := func(c *counter, v int) int { return v + c.step }

	cb := iteratee.Normalize(add, &counter{step: 10}, iteratee.ArityThree)
	assert.Equal(t, 11, cb(1, 0, nil))

	cb = iteratee.Normalize(iteratee.Bound{Fn: add, Context: &counter{step: 5}}, nil, iteratee.ArityThree)
	assert.Equal(t, 6, cb(1, 0, nil))
}

func TestNormalize_TypeMismatchPanics(t *testing.T) {
	cb := iteratee.Normalize(func(n int) int { return n }, nil, iteratee.ArityOne)
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, iteratee.ErrTypeMismatch))
	}()
	cb("not a number", 0, nil)
}

func TestIteratee(t *testing.T) {
	cb := iteratee.Iteratee("length", nil)
	assert.Equal(t, 3, cb([]int{1, 2, 3}, 0, nil))
}

// ─────────────────────────────────────────────────────────────────────────────
// Func / ReducerOf
// ─────────────────────────────────────────────────────────────────────────────

func TestFunc(t *testing.T) {
	f, err := iteratee.Func(func(a, b int) int { return a - b }, nil, iteratee.ArityUnbounded)
	require.NoError(t, err)
	assert.Equal(t, 3, f(5, 2, 100))

	_, err = iteratee.Func(42, nil, iteratee.ArityUnbounded)
	assert.ErrorIs(t, err, iteratee.ErrTypeMismatch)
}

func TestReducerOf(t *testing.T) {
	r, err := iteratee.ReducerOf(func(memo, v int) int { return memo + v }, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, r(2, 3, 0, nil))

	r, err = iteratee.ReducerOf(func(memo, v, k, c any) any { return k }, nil)
	require.NoError(t, err)
	assert.Equal(t, "key", r(nil, nil, "key", nil))

	_, err = iteratee.ReducerOf("nope", nil)
	assert.ErrorIs(t, err, iteratee.ErrTypeMismatch)
}

// ─────────────────────────────────────────────────────────────────────────────
// Property / DeepGet / Matcher
// ─────────────────────────────────────────────────────────────────────────────

func TestDeepGet(t *testing.T) {
	doc := map[string]any{"a": map[string]any{"b": nil}}
	testCases := []struct {
		description string
		path        []any
		expect      any
	}{
		{description: "empty path", path: nil, expect: value.Undefined},
		{description: "one level", path: []any{"a"}, expect: doc["a"]},
		{description: "null leaf", path: []any{"a", "b"}, expect: nil},
		{description: "through null", path: []any{"a", "b", "c"}, expect: value.Undefined},
		{description: "missing", path: []any{"z", "q"}, expect: value.Undefined},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, iteratee.DeepGet(doc, testCase.path), testCase.description)
	}
}

func TestMatcher_Snapshot(t *testing.T) {
	attrs := map[string]any{"a": 1}
	pred := iteratee.Matcher(attrs)
	attrs["a"] = 2
	attrs["b"] = 3
	assert.Equal(t, true, pred(map[string]any{"a": 1}, 0, nil))
}

func TestIsMatch(t *testing.T) {
	testCases := []struct {
		description string
		obj         any
		attrs       any
		expect      bool
	}{
		{description: "empty attrs, nil obj", obj: nil, attrs: map[string]any{}, expect: true},
		{description: "nil obj", obj: nil, attrs: map[string]any{"a": 1}, expect: false},
		{description: "subset", obj: value.ObjectOf("a", 1, "b", 2), attrs: map[string]any{"a": 1}, expect: true},
		{description: "numeric kinds", obj: map[string]int{"a": 1}, attrs: map[string]any{"a": 1.0}, expect: true},
		{description: "missing key", obj: map[string]any{"b": 1}, attrs: map[string]any{"a": value.Undefined}, expect: false},
		{description: "struct", obj: user{Name: "x"}, attrs: value.ObjectOf("name", "x"), expect: true},
		{description: "struct mismatch", obj: &user{Name: "x"}, attrs: value.ObjectOf("name", "y"), expect: false},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, iteratee.IsMatch(testCase.obj, testCase.attrs), testCase.description)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Strategy override
// ─────────────────────────────────────────────────────────────────────────────

func TestSetIteratee(t *testing.T) {
	t.Cleanup(iteratee.ResetIteratee)

	iteratee.SetIteratee(func(spec, _ any) iteratee.Callback {
		if s, ok := spec.(string); ok && s == "double" {
			return func(v, _, _ any) any { return v.(int) * 2 }
		}
		return nil
	})

	assert.Equal(t, 8, iteratee.Normalize("double", nil, iteratee.ArityThree)(4, 0, nil))
	// nil result falls back to the builtin rules
	assert.Equal(t, 1, iteratee.Normalize("a", nil, iteratee.ArityThree)(map[string]any{"a": 1}, 0, nil))

	iteratee.ResetIteratee()
	assert.Equal(t, value.Undefined, iteratee.Normalize("double", nil, iteratee.ArityThree)(4, 0, nil))
}
