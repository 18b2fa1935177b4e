package redfish

import "context"

type cacheKey struct{}

type cacheEntry struct {
	value any
	err   error
}

// requestCache memoizes driver lookups for the lifetime of one request. A
// request is served by one goroutine, so it carries no lock.
type requestCache map[string]cacheEntry

// WithRequestCache returns a context carrying a fresh, empty cache. The
// first middleware of every request calls it.
func WithRequestCache(ctx context.Context) context.Context {
	return context.WithValue(ctx, cacheKey{}, requestCache{})
}

// remember returns the cached result of key, computing it with fn on the
// first call. Without a cache on ctx fn always runs.
func remember[T any](ctx context.Context, key string, fn func() (T, error)) (T, error) {
	cache, ok := ctx.Value(cacheKey{}).(requestCache)
	if !ok {
		return fn()
	}

	if e, hit := cache[key]; hit {
		v, _ := e.value.(T)

		return v, e.err
	}

	v, err := fn()
	cache[key] = cacheEntry{value: v, err: err}

	return v, err
}
