// Command pushpop times the O(1) insert/remove cycle of each structure at a
// fixed occupancy: Stack push+pop, Queue enqueue+dequeue and Linked List
// head insert+delete.
//
// Usage:
//
//	go run ./cmd/pushpop -n 10000000 -fill 1024
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/randomizedcoder/adt-complexity-bench/internal/adt"
)

type cycle struct {
	name string
	run  func(fill, n int) (time.Duration, error)
}

func main() {
	iterations := flag.Int("n", 10_000_000, "number of insert/remove cycles")
	fill := flag.Int("fill", 1024, "elements present before timing starts")
	flag.Parse()

	if *iterations < 1 || *fill < 0 {
		fmt.Fprintln(os.Stderr, "pushpop: -n must be >= 1 and -fill >= 0")
		os.Exit(2)
	}

	fmt.Printf("Timing insert + remove cycles (%d iterations, fill=%d)\n", *iterations, *fill)
	fmt.Println("─────────────────────────────────────────────────")

	cycles := []cycle{
		{"Stack", stackCycle},
		{"Queue", queueCycle},
		{"LinkedList", listCycle},
	}

	perOp := make([]float64, len(cycles))
	fmt.Printf("\nResults (insert + remove per iteration):\n")
	for i, c := range cycles {
		d, err := c.run(*fill, *iterations)
		if err != nil {
			fmt.Fprintf(os.Stderr, "pushpop: %s: %v\n", c.name, err)
			os.Exit(1)
		}
		perOp[i] = float64(d.Nanoseconds()) / float64(*iterations)
		fmt.Printf("  %-11s %v (%.2f ns/op)\n", c.name+":", d, perOp[i])
	}

	fastest := 0
	for i := range perOp {
		if perOp[i] < perOp[fastest] {
			fastest = i
		}
	}
	fmt.Printf("\nRelative to %s:\n", cycles[fastest].name)
	for i, c := range cycles {
		fmt.Printf("  %-11s %.2fx\n", c.name+":", perOp[i]/perOp[fastest])
	}

	fmt.Printf("\nThroughput (theoretical max):\n")
	for i, c := range cycles {
		fmt.Printf("  %-11s %.2f M ops/sec\n", c.name+":", 1000/perOp[i])
	}
}

func stackCycle(fill, n int) (time.Duration, error) {
	s := adt.NewStack[int]()
	for i := 0; i < fill; i++ {
		if err := s.Push(i); err != nil {
			return 0, err
		}
	}
	start := time.Now()
	for i := 0; i < n; i++ {
		_ = s.Push(i)
		if _, err := s.Pop(); err != nil {
			return 0, err
		}
	}
	return time.Since(start), nil
}

func queueCycle(fill, n int) (time.Duration, error) {
	q := adt.NewQueue[int]()
	for i := 0; i < fill; i++ {
		if err := q.Enqueue(i); err != nil {
			return 0, err
		}
	}
	start := time.Now()
	for i := 0; i < n; i++ {
		_ = q.Enqueue(i)
		if _, err := q.Dequeue(); err != nil {
			return 0, err
		}
	}
	return time.Since(start), nil
}

// listCycle deletes the value it just inserted at the head, so Delete
// matches on the first node.
func listCycle(fill, n int) (time.Duration, error) {
	l := adt.NewLinkedList[int]()
	for i := 0; i < fill; i++ {
		l.InsertTail(i)
	}
	start := time.Now()
	for i := 0; i < n; i++ {
		l.InsertHead(-1)
		if err := l.Delete(-1); err != nil {
			return 0, err
		}
	}
	return time.Since(start), nil
}
