package adt_test

import (
	"errors"
	"testing"

	"github.com/randomizedcoder/adt-complexity-bench/internal/adt"
)

func TestQueue_FIFO(t *testing.T) {
	q := adt.NewQueue[int]()

	q.Enqueue(1)
	q.Enqueue(2)
	got, err := q.Dequeue()
	if err != nil || got != 1 {
		t.Fatalf("expected Dequeue() = 1, got %d (%v)", got, err)
	}

	for i := 3; i < 8; i++ {
		if err := q.Enqueue(i); err != nil {
			t.Fatalf("expected Enqueue(%d) = nil, got %v", i, err)
		}
	}

	for want := 2; want < 8; want++ {
		got, err := q.Dequeue()
		if err != nil {
			t.Fatalf("expected Dequeue() = nil error for item %d, got %v", want, err)
		}
		if got != want {
			t.Errorf("FIFO violation: expected %d, got %d", want, got)
		}
	}
}

func TestQueue_GrowsAcrossWrap(t *testing.T) {
	q := adt.NewQueue[int]()

	// Advance head so the live region wraps before the ring grows.
	for i := 0; i < 6; i++ {
		q.Enqueue(-1)
	}
	for i := 0; i < 6; i++ {
		q.Dequeue()
	}

	const n = 100
	for i := 0; i < n; i++ {
		q.Enqueue(i)
	}
	if q.Len() != n {
		t.Fatalf("expected Len() = %d, got %d", n, q.Len())
	}
	if q.Cap() < n || q.Cap()&(q.Cap()-1) != 0 {
		t.Errorf("expected power-of-two Cap() >= %d, got %d", n, q.Cap())
	}
	for want := 0; want < n; want++ {
		got, _ := q.Dequeue()
		if got != want {
			t.Fatalf("FIFO violation after growth: expected %d, got %d", want, got)
		}
	}
}

func TestQueue_Bounded(t *testing.T) {
	q := adt.NewBoundedQueue[int](2)
	if err := q.Enqueue(1); err != nil {
		t.Errorf("expected Enqueue(1) = nil, got %v", err)
	}
	if err := q.Enqueue(2); err != nil {
		t.Errorf("expected Enqueue(2) = nil, got %v", err)
	}
	if !q.IsFull() {
		t.Error("expected IsFull() = true")
	}
	if err := q.Enqueue(3); !errors.Is(err, adt.ErrFull) {
		t.Errorf("expected Enqueue(3) = ErrFull on full queue, got %v", err)
	}
	if q.Len() != 2 {
		t.Errorf("expected Len() = 2, got %d", q.Len())
	}
}

func TestQueue_SearchPosition(t *testing.T) {
	q := adt.NewQueue[string]()
	for _, v := range []string{"A", "B", "C", "D"} {
		q.Enqueue(v)
	}
	q.Dequeue()

	if got := q.Search("B"); got != 0 {
		t.Errorf("expected Search(B) = 0 (front), got %d", got)
	}
	if got := q.Search("D"); got != 2 {
		t.Errorf("expected Search(D) = 2, got %d", got)
	}
	if got := q.Search("A"); got != adt.NotFound {
		t.Errorf("expected Search(A) = NotFound after dequeue, got %d", got)
	}
}

func TestQueue_String(t *testing.T) {
	q := adt.NewQueue[string]()
	if q.String() != "empty queue" {
		t.Errorf("expected %q, got %q", "empty queue", q.String())
	}
	q.Enqueue("A")
	q.Enqueue("B")
	if want := "front [A B] rear"; q.String() != want {
		t.Errorf("expected %q, got %q", want, q.String())
	}
}

func TestQueue_WithCapacity(t *testing.T) {
	q := adt.NewQueueWithCapacity[int](1025)
	if q.Cap() != 2048 {
		t.Errorf("expected Cap() = 2048, got %d", q.Cap())
	}
	for i := 0; i < 1025; i++ {
		q.Enqueue(i)
	}
	if q.Cap() != 2048 {
		t.Errorf("expected no growth within capacity, got Cap() = %d", q.Cap())
	}
	if got, _ := q.Dequeue(); got != 0 {
		t.Errorf("expected Dequeue() = 0, got %d", got)
	}
}
