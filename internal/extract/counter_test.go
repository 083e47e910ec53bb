package extract

import (
	"sync"
	"testing"
)

func TestCounter_ConcurrentUniqueness(t *testing.T) {
	const (
		goroutines = 50
		perRoutine = 200
	)

	counter := NewCounter()
	ids := make(chan int64, goroutines*perRoutine)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perRoutine; j++ {
				ids <- counter.Next()
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, goroutines*perRoutine)
	for id := range ids {
		if seen[id] {
			t.Fatalf("identifier %d allocated twice", id)
		}
		seen[id] = true
	}
	if len(seen) != goroutines*perRoutine {
		t.Errorf("expected %d unique identifiers, got %d", goroutines*perRoutine, len(seen))
	}
}
