package core

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

func TestForEachVisitsEveryItem(t *testing.T) {
	items := make([]int, 1000)
	for i := range items {
		items[i] = i + 1
	}

	var sum atomic.Int64
	err := ForEach(context.Background(), items, 4, func(_ context.Context, v int) error {
		sum.Add(int64(v))
		return nil
	})
	if err != nil {
		t.Fatalf("ForEach returned error: %v", err)
	}
	if sum.Load() != 500500 {
		t.Errorf("Expected sum 500500, got %d", sum.Load())
	}
}

func TestForEachEmpty(t *testing.T) {
	called := false
	err := ForEach(context.Background(), nil, 0, func(context.Context, int) error {
		called = true
		return nil
	})
	if err != nil || called {
		t.Errorf("Expected no call and no error, got called=%v err=%v", called, err)
	}
}

func TestForEachMoreWorkersThanItems(t *testing.T) {
	var count atomic.Int32
	err := ForEach(context.Background(), []string{"a", "b"}, 16, func(context.Context, string) error {
		count.Add(1)
		return nil
	})
	if err != nil {
		t.Fatalf("ForEach returned error: %v", err)
	}
	if count.Load() != 2 {
		t.Errorf("Expected 2 calls, got %d", count.Load())
	}
}

func TestForEachReturnsFirstError(t *testing.T) {
	boom := errors.New("boom")
	items := []int{1, 2, 3, 4, 5, 6, 7, 8}
	err := ForEach(context.Background(), items, 2, func(_ context.Context, v int) error {
		if v == 5 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Errorf("Expected boom error, got %v", err)
	}
}

func TestForEachCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var count atomic.Int32
	err := ForEach(ctx, []int{1, 2, 3}, 1, func(context.Context, int) error {
		count.Add(1)
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if count.Load() != 0 {
		t.Errorf("Expected no calls after cancellation, got %d", count.Load())
	}
}

func TestMapKeepsOrder(t *testing.T) {
	items := []int{3, 1, 4, 1, 5, 9, 2, 6}
	out, err := Map(context.Background(), items, 3, func(v int) int { return v * 10 })
	if err != nil {
		t.Fatalf("Map returned error: %v", err)
	}
	for i, v := range items {
		if out[i] != v*10 {
			t.Errorf("Expected out[%d] = %d, got %d", i, v*10, out[i])
		}
	}
}

func TestWorkersDefaultsToCPUCount(t *testing.T) {
	if Workers(0) < 1 {
		t.Error("Expected at least one worker")
	}
	if Workers(3) != 3 {
		t.Errorf("Expected 3 workers, got %d", Workers(3))
	}
}
