package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/randomizedcoder/adt-complexity-bench/internal/adt"
)

var demos = map[string]func(io.Writer) error{
	"stack": demoStack,
	"queue": demoQueue,
	"list":  demoList,
}

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "demo [stack|queue|list]",
		Short:     "Walk through each structure's operations step by step",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"stack", "queue", "list"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 1 {
				return demos[args[0]](out)
			}
			for i, name := range []string{"stack", "queue", "list"} {
				if i > 0 {
					fmt.Fprintln(out)
				}
				if err := demos[name](out); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func step(w io.Writer, op string, state fmt.Stringer) {
	fmt.Fprintf(w, "  %-22s %s\n", op, state)
}

func demoHeader(w io.Writer, title string) {
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("=", len(title)))
}

func demoStack(w io.Writer) error {
	demoHeader(w, "Stack (LIFO)")
	s := adt.NewStack[int]()
	step(w, "new", s)
	for _, v := range []int{10, 20, 30, 40} {
		if err := s.Push(v); err != nil {
			return err
		}
		step(w, fmt.Sprintf("push %d", v), s)
	}
	top, err := s.Peek()
	if err != nil {
		return err
	}
	step(w, fmt.Sprintf("peek -> %d", top), s)
	v, err := s.Pop()
	if err != nil {
		return err
	}
	step(w, fmt.Sprintf("pop -> %d", v), s)
	step(w, fmt.Sprintf("search 10 -> %d", s.Search(10)), s)

	bounded := adt.NewBoundedStack[int](2)
	_ = bounded.Push(1)
	_ = bounded.Push(2)
	if err := bounded.Push(3); err != nil {
		step(w, "bounded(2) push 3", errState{err})
	}
	return nil
}

func demoQueue(w io.Writer) error {
	demoHeader(w, "Queue (FIFO)")
	q := adt.NewQueue[string]()
	step(w, "new", q)
	for _, v := range []string{"A", "B", "C", "D"} {
		if err := q.Enqueue(v); err != nil {
			return err
		}
		step(w, "enqueue "+v, q)
	}
	front, err := q.Peek()
	if err != nil {
		return err
	}
	step(w, "peek -> "+front, q)
	v, err := q.Dequeue()
	if err != nil {
		return err
	}
	step(w, "dequeue -> "+v, q)
	step(w, fmt.Sprintf("search C -> %d", q.Search("C")), q)

	empty := adt.NewQueue[string]()
	if _, err := empty.Dequeue(); err != nil {
		step(w, "dequeue on empty", errState{err})
	}
	return nil
}

func demoList(w io.Writer) error {
	demoHeader(w, "Linked List")
	l := adt.NewLinkedList[int]()
	step(w, "new", l)
	l.InsertTail(10)
	step(w, "insert tail 10", l)
	l.InsertTail(30)
	step(w, "insert tail 30", l)
	l.InsertHead(5)
	step(w, "insert head 5", l)
	if err := l.InsertAt(2, 20); err != nil {
		return err
	}
	step(w, "insert 20 at 2", l)
	step(w, fmt.Sprintf("search 30 -> %d", l.Search(30)), l)
	v, err := l.Access(1)
	if err != nil {
		return err
	}
	step(w, fmt.Sprintf("access 1 -> %d", v), l)
	if err := l.Delete(10); err != nil {
		return err
	}
	step(w, "delete 10", l)
	if err := l.Delete(99); err != nil {
		step(w, "delete 99", errState{err})
	}
	return nil
}

// errState lets step print an error in place of a structure.
type errState struct{ err error }

func (e errState) String() string { return "error: " + e.err.Error() }
