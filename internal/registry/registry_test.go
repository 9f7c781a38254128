package registry

import (
	"errors"
	"sync"
	"testing"
)

func TestInsertAndMutate(t *testing.T) {
	type entry struct {
		Name  string
		Value int
	}

	r := New[*entry]()
	h := r.Insert(&entry{Name: "glass", Value: 42})

	if h != 0 {
		t.Errorf("first handle should be 0, got %d", h)
	}

	found, err := r.Mutate(h, func(e *entry) error {
		if e.Name != "glass" || e.Value != 42 {
			t.Errorf("Mutate saw wrong entry: %+v", e)
		}
		e.Value = 43
		return nil
	})
	if !found {
		t.Fatal("Mutate should find inserted entry")
	}
	if err != nil {
		t.Fatalf("Mutate returned unexpected error: %v", err)
	}

	_, _ = r.Mutate(h, func(e *entry) error {
		if e.Value != 43 {
			t.Errorf("mutation did not stick: %+v", e)
		}
		return nil
	})
}

func TestMutateNonExistent(t *testing.T) {
	r := New[int]()
	found, err := r.Mutate(999999, func(int) error {
		t.Error("fn should not run for a missing handle")
		return nil
	})
	if found {
		t.Error("Mutate of missing handle should report found=false")
	}
	if err != nil {
		t.Errorf("Mutate of missing handle should return nil error, got %v", err)
	}
}

func TestEvict(t *testing.T) {
	r := New[string]()
	h := r.Insert("attached")

	found, err := r.Evict(h, nil)
	if !found || err != nil {
		t.Fatalf("Evict: found=%v err=%v", found, err)
	}

	if found, _ := r.Mutate(h, func(string) error { return nil }); found {
		t.Error("entry should be gone after Evict")
	}
	if r.Len() != 0 {
		t.Errorf("Len after Evict = %d, want 0", r.Len())
	}
}

func TestEvictRemovesDespiteError(t *testing.T) {
	r := New[string]()
	h := r.Insert("attached")

	boom := errors.New("native teardown failed")
	found, err := r.Evict(h, func(string) error { return boom })
	if !found {
		t.Fatal("Evict should find the entry")
	}
	if !errors.Is(err, boom) {
		t.Errorf("Evict should surface fn's error, got %v", err)
	}
	if r.Len() != 0 {
		t.Error("entry must be dropped even when fn fails")
	}
}

func TestDrain(t *testing.T) {
	r := New[int]()
	for i := 0; i < 5; i++ {
		r.Insert(i)
	}

	boom := errors.New("first failure")
	calls := 0
	err := r.Drain(func(_ int32, v int) error {
		calls++
		if calls == 1 {
			return boom
		}
		return nil
	})
	if calls != 5 {
		t.Errorf("Drain visited %d entries, want 5", calls)
	}
	if !errors.Is(err, boom) {
		t.Errorf("Drain should return the first error, got %v", err)
	}
	if r.Len() != 0 {
		t.Errorf("Len after Drain = %d, want 0", r.Len())
	}

	// Handles keep climbing after a drain.
	if h := r.Insert(99); h != 5 {
		t.Errorf("handle after Drain = %d, want 5", h)
	}
}

func TestConcurrentAccess(t *testing.T) {
	const numGoroutines = 100
	const numOps = 100

	r := New[int]()

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < numOps; j++ {
				h := r.Insert(id)
				found, _ := r.Mutate(h, func(v int) error {
					if v != id {
						t.Errorf("Mutate saw %d, want %d", v, id)
					}
					return nil
				})
				if !found {
					t.Errorf("Mutate lost handle %d", h)
				}
				if found, _ := r.Evict(h, nil); !found {
					t.Errorf("Evict lost handle %d", h)
				}
			}
		}(i)
	}

	wg.Wait()

	if r.Len() != 0 {
		t.Errorf("Len after concurrent churn = %d, want 0", r.Len())
	}
}

func TestHandlesAreUnique(t *testing.T) {
	r := New[int]()
	seen := make(map[int32]bool)

	for i := 0; i < 1000; i++ {
		h := r.Insert(i)
		if seen[h] {
			t.Errorf("handle %d was returned twice", h)
		}
		seen[h] = true
	}
}
