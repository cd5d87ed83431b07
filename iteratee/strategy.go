package iteratee

import "sync"

// Strategy replaces the builtin normalization. Returning nil falls back to
// [Builtin].
type Strategy func(spec, context any) Callback

var (
	strategyMu sync.RWMutex
	strategy   Strategy
)

// SetIteratee installs s as the process-wide normalization strategy.
func SetIteratee(s Strategy) {
	strategyMu.Lock()
	defer strategyMu.Unlock()
	strategy = s
}

// ResetIteratee restores the builtin normalization.
func ResetIteratee() {
	SetIteratee(nil)
}

func current() Strategy {
	strategyMu.RLock()
	defer strategyMu.RUnlock()
	return strategy
}
