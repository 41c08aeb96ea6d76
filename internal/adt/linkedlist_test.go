package adt_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/randomizedcoder/adt-complexity-bench/internal/adt"
)

func buildList(vals ...int) *adt.LinkedList[int] {
	l := adt.NewLinkedList[int]()
	for _, v := range vals {
		l.InsertTail(v)
	}
	return l
}

func TestLinkedList_InsertOrder(t *testing.T) {
	l := adt.NewLinkedList[int]()
	for _, v := range []int{30, 20, 10} {
		l.InsertHead(v)
	}
	l.InsertTail(40)
	l.InsertTail(50)
	if err := l.InsertAt(2, 25); err != nil {
		t.Fatalf("expected InsertAt(2) = nil, got %v", err)
	}

	want := []int{10, 20, 25, 30, 40, 50}
	if got := l.Values(); !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	for i, v := range want {
		got, err := l.Access(i)
		if err != nil || got != v {
			t.Errorf("expected Access(%d) = %d, got %d (%v)", i, v, got, err)
		}
	}
	if want := "10 -> 20 -> 25 -> 30 -> 40 -> 50 -> nil"; l.String() != want {
		t.Errorf("expected %q, got %q", want, l.String())
	}
}

func TestLinkedList_AccessOutOfRange(t *testing.T) {
	l := buildList(1, 2, 3)

	for _, i := range []int{-1, 3, 100} {
		_, err := l.Access(i)
		if !errors.Is(err, adt.ErrIndexOutOfRange) {
			t.Errorf("expected Access(%d) = ErrIndexOutOfRange, got %v", i, err)
		}
		var ie *adt.IndexError
		if !errors.As(err, &ie) || ie.Index != i || ie.Len != 3 {
			t.Errorf("expected *IndexError{Index: %d, Len: 3}, got %#v", i, ie)
		}
	}

	if _, err := adt.NewLinkedList[int]().Access(0); !errors.Is(err, adt.ErrIndexOutOfRange) {
		t.Errorf("expected Access(0) on empty list = ErrIndexOutOfRange, got %v", err)
	}
}

func TestLinkedList_InsertAtBounds(t *testing.T) {
	l := buildList(1, 2)
	if err := l.InsertAt(3, 9); !errors.Is(err, adt.ErrIndexOutOfRange) {
		t.Errorf("expected InsertAt(3) = ErrIndexOutOfRange, got %v", err)
	}
	if err := l.InsertAt(2, 3); err != nil {
		t.Errorf("expected InsertAt(Len()) = nil, got %v", err)
	}
	// Appending through InsertAt must move the tail.
	l.InsertTail(4)
	if got := l.Values(); !slices.Equal(got, []int{1, 2, 3, 4}) {
		t.Errorf("expected [1 2 3 4], got %v", got)
	}
}

func TestLinkedList_DeleteMaintainsTail(t *testing.T) {
	l := buildList(1, 2, 3)

	// Deleting the last node moves tail back.
	if err := l.Delete(3); err != nil {
		t.Fatalf("expected Delete(3) = nil, got %v", err)
	}
	l.InsertTail(4)
	if got := l.Values(); !slices.Equal(got, []int{1, 2, 4}) {
		t.Errorf("expected [1 2 4], got %v", got)
	}

	// Emptying the list clears tail.
	for _, v := range []int{1, 2, 4} {
		if err := l.Delete(v); err != nil {
			t.Fatalf("expected Delete(%d) = nil, got %v", v, err)
		}
	}
	if !l.IsEmpty() {
		t.Fatalf("expected empty list, got %v", l.Values())
	}
	l.InsertTail(5)
	if got := l.Values(); !slices.Equal(got, []int{5}) {
		t.Errorf("expected [5] after re-inserting into emptied list, got %v", got)
	}
	if got, _ := l.Access(0); got != 5 {
		t.Errorf("expected Access(0) = 5, got %d", got)
	}
}

func TestLinkedList_DeleteMissing(t *testing.T) {
	l := buildList(1, 2, 3)
	if err := l.Delete(7); !errors.Is(err, adt.ErrNotFound) {
		t.Errorf("expected Delete(7) = ErrNotFound, got %v", err)
	}
	if l.Len() != 3 {
		t.Errorf("expected Len() = 3 after failed delete, got %d", l.Len())
	}
	if err := adt.NewLinkedList[int]().Delete(1); !errors.Is(err, adt.ErrNotFound) {
		t.Errorf("expected Delete on empty list = ErrNotFound, got %v", err)
	}
}

func TestLinkedList_DeleteFirstMatchOnly(t *testing.T) {
	l := buildList(1, 2, 1, 3)
	l.Delete(1)
	if got := l.Values(); !slices.Equal(got, []int{2, 1, 3}) {
		t.Errorf("expected [2 1 3], got %v", got)
	}
}

// TestLinkedList_LengthLaw checks that n inserts and d successful deletes
// leave Len() == n - d.
func TestLinkedList_LengthLaw(t *testing.T) {
	l := adt.NewLinkedList[int]()
	n, d := 0, 0
	for i := 0; i < 50; i++ {
		if i%2 == 0 {
			l.InsertHead(i)
		} else {
			l.InsertTail(i)
		}
		n++
	}
	for i := 0; i < 50; i += 3 {
		if l.Delete(i) == nil {
			d++
		}
	}
	if l.Delete(1000) == nil {
		d++
	}
	if l.Len() != n-d {
		t.Errorf("expected Len() = %d, got %d", n-d, l.Len())
	}
	if len(l.Values()) != l.Len() {
		t.Errorf("Values() length %d disagrees with Len() %d", len(l.Values()), l.Len())
	}
}

func TestLinkedList_PeekAndClear(t *testing.T) {
	l := buildList(7, 8)
	if v, err := l.Peek(); err != nil || v != 7 {
		t.Errorf("expected Peek() = 7, got %d (%v)", v, err)
	}
	l.Clear()
	if _, err := l.Peek(); !errors.Is(err, adt.ErrEmpty) {
		t.Errorf("expected Peek() = ErrEmpty after Clear(), got %v", err)
	}
	if l.String() != "empty list" {
		t.Errorf("expected %q, got %q", "empty list", l.String())
	}
}

func TestLinkedList_AllStopsEarly(t *testing.T) {
	l := buildList(1, 2, 3, 4)
	var seen []int
	for v := range l.All() {
		seen = append(seen, v)
		if v == 2 {
			break
		}
	}
	if !slices.Equal(seen, []int{1, 2}) {
		t.Errorf("expected [1 2], got %v", seen)
	}
}
