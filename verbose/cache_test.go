package verbose

import (
	"errors"
	"sync"
	"testing"
)

func TestCacheReusesEqualPatterns(t *testing.T) {
	rec := &recordingEngine{inner: DefaultEngine}
	cache := NewCache(16, WithEngine(rec))

	first, err := cache.Compile(New(LineStart, AnyDigit))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	second, err := cache.Compile(LineStart.Then(AnyDigit))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if first != second {
		t.Fatalf("structurally equal patterns compiled twice")
	}
	if len(rec.patterns) != 3 {
		t.Fatalf("engine saw %d compilations, want 3", len(rec.patterns))
	}

	// Same rendering, different structure.
	a, _ := cache.Compile(New(Literal("a"), Raw("a")))
	b, _ := cache.Compile(New(Raw("a"), Literal("a")))
	if a == b {
		t.Fatalf("structurally different patterns shared an entry")
	}
}

func TestCacheDoesNotStoreFailures(t *testing.T) {
	calls := 0
	cache := NewCache(4, WithEngine(EngineFunc(func(p string, f Flags) (Matcher, error) {
		calls++
		return nil, errors.New("refused")
	})))

	for range 2 {
		if _, err := cache.Compile(Any); !errors.Is(err, ErrPatternSyntax) {
			t.Fatalf("err = %v", err)
		}
	}
	if calls != 2 {
		t.Fatalf("engine called %d times, want 2", calls)
	}

	if _, err := cache.Compile(Alternation()); !errors.Is(err, ErrConfiguration) {
		t.Fatalf("err = %v", err)
	}
}

func TestCacheConcurrentUse(t *testing.T) {
	cache := NewCache(8)
	p := New(OneOrMore(AnyWord), Whitespace)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			re, err := cache.Compile(p)
			if err != nil {
				t.Errorf("compile: %v", err)
				return
			}
			if m, ok := re.Search("hello world"); !ok || m.String() != "hello " {
				t.Errorf("search = %q, %v", m.String(), ok)
			}
		}()
	}
	wg.Wait()
}
