package functions

import (
	"encoding/binary"
	"fmt"
	"hash"
	"io"
	"sync"

	"golang.org/x/crypto/blake2b"

	"github.com/hasbyte1/go-underscore/value"
)

// Memo is a memoized function created by [Memoize].
type Memo struct {
	fn     Func
	hasher Func

	mu    sync.RWMutex
	cache map[[blake2b.Size256]byte]any
}

// Memoize returns a [Memo] that caches fn's results. The cache key is
// hasher's result when hasher is non-nil, otherwise the first argument.
// Keys are compared by their [Fingerprint], so 1 and 1.0 share an entry
// while composite keys compare by content.
func Memoize(fn, hasher any) (*Memo, error) {
	f, err := Lift(fn)
	if err != nil {
		return nil, fmt.Errorf("memoize: %w", err)
	}
	m := &Memo{fn: f, cache: make(map[[blake2b.Size256]byte]any)}
	if hasher != nil {
		h, err := Lift(hasher)
		if err != nil {
			return nil, fmt.Errorf("memoize: hasher: %w", err)
		}
		m.hasher = h
	}
	return m, nil
}

// MustMemoize is like [Memoize] but panics on error.
func MustMemoize(fn, hasher any) *Memo {
	m, err := Memoize(fn, hasher)
	if err != nil {
		panic(err)
	}
	return m
}

// Call returns the cached result for args' key, computing and storing it
// on a miss. Concurrent misses on the same key may each call fn; the first
// result stored wins.
func (m *Memo) Call(args ...any) any {
	addr := m.address(args)

	m.mu.RLock()
	cached, ok := m.cache[addr]
	m.mu.RUnlock()
	if ok {
		return cached
	}

	result := m.fn(args...)

	m.mu.Lock()
	defer m.mu.Unlock()
	if cached, ok := m.cache[addr]; ok {
		return cached
	}
	m.cache[addr] = result
	return result
}

// Func returns Call as a [Func].
func (m *Memo) Func() Func { return m.Call }

// Has reports whether a result is cached for args' key.
func (m *Memo) Has(args ...any) bool {
	addr := m.address(args)
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.cache[addr]
	return ok
}

// Len returns the number of cached results.
func (m *Memo) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.cache)
}

// Reset drops every cached result.
func (m *Memo) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	clear(m.cache)
}

func (m *Memo) address(args []any) [blake2b.Size256]byte {
	var key any = value.Undefined
	switch {
	case m.hasher != nil:
		key = m.hasher(args...)
	case len(args) > 0:
		key = args[0]
	}
	return Fingerprint(key)
}

// ─────────────────────────────────────────────────────────────────────────────
// Fingerprints
// ─────────────────────────────────────────────────────────────────────────────

// maxFingerprintDepth bounds the walk into nested keys; deeper values are
// written as scalars, so self-referencing structures terminate.
const maxFingerprintDepth = 32

const (
	tagScalar   byte = 's'
	tagSequence byte = 'a'
	tagMapping  byte = 'o'
)

// Fingerprint returns the BLAKE2b-256 digest of key's structure. Scalars are
// taken in their [value.ToKey] form, so 1, 1.0 and "1" agree. Slices,
// arrays and [value.Sequence]s are walked element by element, and mappings
// ([*value.Object], Go maps, structs) key by key, with every part
// length-prefixed: []any{"a b"} and []any{"a", "b"} differ even though they
// print alike. The key is streamed into the hash and never materialized, so
// any key costs 32 bytes of cache.
func Fingerprint(key any) [blake2b.Size256]byte {
	h, _ := blake2b.New256(nil)
	writeKey(h, key, 0)
	var sum [blake2b.Size256]byte
	h.Sum(sum[:0])
	return sum
}

func writeKey(h hash.Hash, key any, depth int) {
	if depth >= maxFingerprintDepth {
		writeScalar(h, key)
		return
	}
	switch {
	case isIndexed(key):
		v := value.ViewOf(key)
		writeHeader(h, tagSequence, v.Len())
		for i := 0; i < v.Len(); i++ {
			writeKey(h, v.At(i), depth+1)
		}
	case isKeyed(key):
		v := value.KeyedViewOf(key)
		writeHeader(h, tagMapping, v.Len())
		for i := 0; i < v.Len(); i++ {
			writeScalar(h, v.Key(i))
			writeKey(h, v.At(i), depth+1)
		}
	default:
		writeScalar(h, key)
	}
}

func isIndexed(key any) bool {
	if _, ok := key.(value.Sequence); ok {
		return value.IsSequenceLike(key)
	}
	return value.IsSequenceValue(key)
}

// isKeyed reports mappings. Other Stringers, such as time.Time, are scalars.
func isKeyed(key any) bool {
	if _, ok := key.(*value.Object); ok {
		return !value.IsAbsent(key)
	}
	if _, ok := key.(fmt.Stringer); ok {
		return false
	}
	return value.Classify(key) == value.ShapeMapping
}

func writeScalar(h hash.Hash, key any) {
	s := value.ToKey(key)
	writeHeader(h, tagScalar, len(s))
	_, _ = io.WriteString(h, s)
}

func writeHeader(h hash.Hash, tag byte, n int) {
	var buf [1 + binary.MaxVarintLen64]byte
	buf[0] = tag
	end := 1 + binary.PutUvarint(buf[1:], uint64(n))
	_, _ = h.Write(buf[:end])
}
