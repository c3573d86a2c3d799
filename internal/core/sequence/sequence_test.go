package sequence

import (
	"sync"
	"testing"
)

func TestNext_StartsAtOne(t *testing.T) {
	s := New()

	if got := s.Next(); got != 1 {
		t.Errorf("first Next() = %d, want 1", got)
	}
	if got := s.Next(); got != 2 {
		t.Errorf("second Next() = %d, want 2", got)
	}
	if got := s.Peek(); got != 3 {
		t.Errorf("Peek() = %d, want 3", got)
	}
}

func TestNext_ConcurrentUnique(t *testing.T) {
	s := New()
	const workers = 16
	const perWorker = 100

	var wg sync.WaitGroup
	var mu sync.Mutex
	seen := make(map[int64]bool, workers*perWorker)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				id := s.Next()
				mu.Lock()
				if seen[id] {
					t.Errorf("identifier %d allocated twice", id)
				}
				seen[id] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if len(seen) != workers*perWorker {
		t.Errorf("allocated %d identifiers, want %d", len(seen), workers*perWorker)
	}
	// All ids must form the contiguous range 1..N.
	for id := int64(1); id <= int64(workers*perWorker); id++ {
		if !seen[id] {
			t.Errorf("identifier %d missing from allocated set", id)
		}
	}
}

func TestRestore(t *testing.T) {
	tests := []struct {
		name    string
		restore int64
		used    int64 // Next() calls before Restore
		want    int64 // next allocated id after Restore
	}{
		{"fresh sequence", 41, 0, 42},
		{"restore below current is ignored", 1, 5, 6},
		{"restore to zero keeps position", 0, 3, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			for i := int64(0); i < tt.used; i++ {
				s.Next()
			}
			s.Restore(tt.restore)
			if got := s.Next(); got != tt.want {
				t.Errorf("Next() after Restore(%d) = %d, want %d", tt.restore, got, tt.want)
			}
		})
	}
}
