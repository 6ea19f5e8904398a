package scripting

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestGojaEngine_ContextCancellation(t *testing.T) {
	engine := NewEngine()

	ctx, cancel := context.WithTimeout(context.Background(), 25*time.Millisecond)
	defer cancel()

	if _, err := engine.Execute(ctx, "while (true) {}"); err == nil || !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected context deadline error, got %v", err)
	}

	if _, err := engine.Execute(context.Background(), "1 + 1"); err != nil {
		t.Fatalf("engine should recover after cancellation, got %v", err)
	}
}

func TestGojaEngine_ImmediateCancel(t *testing.T) {
	engine := NewEngine()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := engine.Execute(ctx, "42"); err == nil || !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled error, got %v", err)
	}
}

func TestGojaEngine_Func(t *testing.T) {
	engine := NewEngine()
	if _, err := engine.Execute(context.Background(), "function half(v) { return v / 2 }; var n = 3"); err != nil {
		t.Fatal(err)
	}

	half, err := engine.Func("half")
	if err != nil {
		t.Fatal(err)
	}
	if got, err := half(5); err != nil || got != 2.5 {
		t.Fatalf("half(5) = %v, %v", got, err)
	}

	if _, err := engine.Func("n"); !errors.Is(err, ErrNotFunction) {
		t.Fatalf("expected ErrNotFunction, got %v", err)
	}
	if _, err := engine.Func("missing"); !errors.Is(err, ErrNotFunction) {
		t.Fatalf("expected ErrNotFunction, got %v", err)
	}
}

func TestGojaEngine_ConcurrentCalls(t *testing.T) {
	engine := NewEngine()
	if _, err := engine.Execute(context.Background(), "function sq(v) { return v * v }"); err != nil {
		t.Fatal(err)
	}
	sq, err := engine.Func("sq")
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if got, err := sq(float64(i)); err != nil || got != float64(i*i) {
					t.Errorf("sq(%d) = %v, %v", i, got, err)
					return
				}
			}
		}(i)
	}
	wg.Wait()
}
