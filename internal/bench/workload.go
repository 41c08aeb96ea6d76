package bench

import (
	"fmt"

	"github.com/randomizedcoder/adt-complexity-bench/internal/adt"
	"github.com/randomizedcoder/adt-complexity-bench/internal/complexity"
)

// Op performs the operation under test exactly once.
type Op func() error

// Setup builds a fresh structure holding size elements and returns the
// operation to time against it. Setup runs outside the timing window and
// must itself be O(size).
type Setup func(size int) (Op, error)

// Workload is one benchmarked (structure, operation) pair.
type Workload struct {
	Structure string
	Operation string
	Setup     Setup
}

// Key returns "<structure>_<operation>".
func (w Workload) Key() string {
	return Key(w.Structure, w.Operation)
}

// Key builds the results-collection key for a (structure, operation).
func Key(structure, operation string) string {
	return complexity.Normalize(structure) + "_" + complexity.Normalize(operation)
}

// expectFound turns a Search miss into an error; the workloads always
// search for a value that setup inserted.
func expectFound(what string, pos int) error {
	if pos == adt.NotFound {
		return fmt.Errorf("%s: target missing after setup", what)
	}
	return nil
}

// filledStack and filledQueue leave room for one more element, so a timed
// insert never pays for growing the backing storage.
func filledStack(n int) *adt.Stack[int] {
	s := adt.NewStackWithCapacity[int](n + 1)
	for i := 0; i < n; i++ {
		_ = s.Push(i)
	}
	return s
}

func filledQueue(n int) *adt.Queue[int] {
	q := adt.NewQueueWithCapacity[int](n + 1)
	for i := 0; i < n; i++ {
		_ = q.Enqueue(i)
	}
	return q
}

func filledList(n int) *adt.LinkedList[int] {
	l := adt.NewLinkedList[int]()
	for i := 0; i < n; i++ {
		l.InsertTail(i)
	}
	return l
}

// DefaultWorkloads returns the representative O(1) and O(n) operations of
// every structure. Search, delete and access target the worst-case element:
// the stack bottom, the queue rear and the list tail.
func DefaultWorkloads() []Workload {
	return []Workload{
		// Stack
		{complexity.Stack, "push", func(n int) (Op, error) {
			s := filledStack(n)
			return func() error { return s.Push(n) }, nil
		}},
		{complexity.Stack, "pop", func(n int) (Op, error) {
			s := filledStack(n)
			return func() error { _, err := s.Pop(); return err }, nil
		}},
		{complexity.Stack, "peek", func(n int) (Op, error) {
			s := filledStack(n)
			return func() error { _, err := s.Peek(); return err }, nil
		}},
		{complexity.Stack, "search", func(n int) (Op, error) {
			s := filledStack(n)
			return func() error { return expectFound("stack search", s.Search(0)) }, nil
		}},

		// Queue
		{complexity.Queue, "enqueue", func(n int) (Op, error) {
			q := filledQueue(n)
			return func() error { return q.Enqueue(n) }, nil
		}},
		{complexity.Queue, "dequeue", func(n int) (Op, error) {
			q := filledQueue(n)
			return func() error { _, err := q.Dequeue(); return err }, nil
		}},
		{complexity.Queue, "peek", func(n int) (Op, error) {
			q := filledQueue(n)
			return func() error { _, err := q.Peek(); return err }, nil
		}},
		{complexity.Queue, "search", func(n int) (Op, error) {
			q := filledQueue(n)
			return func() error { return expectFound("queue search", q.Search(n-1)) }, nil
		}},

		// Linked list
		{complexity.LinkedList, "insert_head", func(n int) (Op, error) {
			l := filledList(n)
			return func() error { l.InsertHead(n); return nil }, nil
		}},
		{complexity.LinkedList, "insert_tail", func(n int) (Op, error) {
			l := filledList(n)
			return func() error { l.InsertTail(n); return nil }, nil
		}},
		{complexity.LinkedList, "search", func(n int) (Op, error) {
			l := filledList(n)
			return func() error { return expectFound("linked list search", l.Search(n-1)) }, nil
		}},
		{complexity.LinkedList, "delete", func(n int) (Op, error) {
			l := filledList(n)
			return func() error { return l.Delete(n - 1) }, nil
		}},
		{complexity.LinkedList, "access", func(n int) (Op, error) {
			l := filledList(n)
			return func() error { _, err := l.Access(n - 1); return err }, nil
		}},
	}
}

// SelectWorkloads returns the default workloads with the given keys, in
// key order. An empty keys selects every default workload.
func SelectWorkloads(keys []string) ([]Workload, error) {
	all := DefaultWorkloads()
	if len(keys) == 0 {
		return all, nil
	}
	byKey := make(map[string]Workload, len(all))
	for _, w := range all {
		byKey[w.Key()] = w
	}
	out := make([]Workload, 0, len(keys))
	for _, k := range keys {
		w, ok := byKey[complexity.Normalize(k)]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownWorkload, k)
		}
		out = append(out, w)
	}
	return out, nil
}
