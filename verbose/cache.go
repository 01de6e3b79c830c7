package verbose

import (
	"go.dw1.io/fastcache"
)

// Cache memoizes Compile for patterns that are built repeatedly, keyed by
// their structural Key. Every entry is compiled with the options given to
// NewCache. A Cache is safe for concurrent use.
type Cache struct {
	opts    []Option
	entries *fastcache.Cache[string, *Regexp]
}

// NewCache returns a cache holding up to size compiled patterns.
func NewCache(size int, opts ...Option) *Cache {
	return &Cache{
		opts:    append([]Option(nil), opts...),
		entries: fastcache.New[string, *Regexp](size),
	}
}

// Compile returns the cached compilation of t, compiling it on a miss.
// Failures are not cached.
func (c *Cache) Compile(t Term) (*Regexp, error) {
	p := New(t)
	if err := p.Err(); err != nil {
		return nil, err
	}

	key := string(p.Key())
	if re, ok := c.entries.Get(key); ok {
		return re, nil
	}

	re, err := Compile(p, c.opts...)
	if err != nil {
		return nil, err
	}
	c.entries.Set(key, re)
	return re, nil
}
