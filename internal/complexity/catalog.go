package complexity

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Structure names used as catalog keys.
const (
	Stack      = "stack"
	Queue      = "queue"
	LinkedList = "linked_list"
	Array      = "array"
)

var (
	// ErrUnknownOperation is returned for any (structure, operation) pair
	// that is not registered.
	ErrUnknownOperation = errors.New("complexity: unknown operation")

	// ErrUnknownStructure is additionally matched when the structure
	// itself is not registered.
	ErrUnknownStructure = errors.New("complexity: unknown structure")
)

// Record is the complexity metadata for one operation. Records are
// values; the catalog never hands out references to its own storage.
type Record struct {
	Structure   string `json:"structure" yaml:"structure"`
	Operation   string `json:"operation" yaml:"operation"`
	Best        Class  `json:"best" yaml:"best"`
	Average     Class  `json:"average" yaml:"average"`
	Worst       Class  `json:"worst" yaml:"worst"`
	Space       Class  `json:"space" yaml:"space"`
	Amortized   bool   `json:"amortized,omitempty" yaml:"amortized,omitempty"`
	Explanation string `json:"explanation" yaml:"explanation"`
}

// WorstLabel renders the worst case, marking amortized bounds with "*".
func (r Record) WorstLabel() string {
	if r.Amortized {
		return r.Worst.String() + "*"
	}
	return r.Worst.String()
}

// Catalog is a read-only lookup table of complexity records.
type Catalog struct {
	records    map[string]map[string]Record
	structures []string            // registration order
	operations map[string][]string // registration order per structure
	baseline   []Record
}

// NewCatalog builds a catalog from records. Later duplicates replace
// earlier ones. Records for Array are kept apart as the baseline and are
// not returned by Get.
func NewCatalog(records ...Record) *Catalog {
	c := &Catalog{
		records:    make(map[string]map[string]Record),
		operations: make(map[string][]string),
	}
	for _, r := range records {
		r.Structure = Normalize(r.Structure)
		r.Operation = Normalize(r.Operation)
		if r.Structure == Array {
			c.baseline = append(c.baseline, r)
			continue
		}
		ops, ok := c.records[r.Structure]
		if !ok {
			ops = make(map[string]Record)
			c.records[r.Structure] = ops
			c.structures = append(c.structures, r.Structure)
		}
		if _, dup := ops[r.Operation]; !dup {
			c.operations[r.Structure] = append(c.operations[r.Structure], r.Operation)
		}
		ops[r.Operation] = r
	}
	return c
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	return NewCatalog(builtinRecords...)
})

// Default returns the built-in catalog for Stack, Queue and LinkedList.
func Default() *Catalog {
	return defaultCatalog()
}

// DisplayName returns the human name of a catalog structure.
func DisplayName(structure string) string {
	switch structure {
	case Stack:
		return "Stack"
	case Queue:
		return "Queue"
	case LinkedList:
		return "Linked List"
	case Array:
		return "Array"
	}
	return structure
}

// Normalize lower-cases a name and replaces spaces and dashes with
// underscores, so "Linked List" and "linked-list" both become "linked_list".
func Normalize(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(name)
}

// Get returns the record for (structure, operation).
func (c *Catalog) Get(structure, operation string) (Record, error) {
	s, op := Normalize(structure), Normalize(operation)
	ops, ok := c.records[s]
	if !ok {
		return Record{}, fmt.Errorf("%w: %w %q", ErrUnknownOperation, ErrUnknownStructure, structure)
	}
	r, ok := ops[op]
	if !ok {
		return Record{}, fmt.Errorf("%w %q for %s", ErrUnknownOperation, operation, s)
	}
	return r, nil
}

// Structures returns the registered structure names in registration order.
func (c *Catalog) Structures() []string {
	return slices.Clone(c.structures)
}

// Operations returns every record of a structure in registration order.
func (c *Catalog) Operations(structure string) ([]Record, error) {
	s := Normalize(structure)
	ops, ok := c.records[s]
	if !ok {
		return nil, fmt.Errorf("%w: %w %q", ErrUnknownOperation, ErrUnknownStructure, structure)
	}
	out := make([]Record, 0, len(ops))
	for _, op := range c.operations[s] {
		out = append(out, ops[op])
	}
	return out, nil
}

// ArrayBaseline returns the dynamic-array records kept for comparison.
func (c *Catalog) ArrayBaseline() []Record {
	return slices.Clone(c.baseline)
}

// operationAliases maps a generic operation kind to each structure's
// own operation name.
var operationAliases = map[string]map[string]string{
	"insert": {Stack: "push", Queue: "enqueue", LinkedList: "insert_head"},
	"delete": {Stack: "pop", Queue: "dequeue", LinkedList: "delete"},
	"search": {Stack: "search", Queue: "search", LinkedList: "search"},
}

// Compare returns, per structure, the record for the named operation.
//
// "insert", "delete" and "search" are generic kinds resolved through
// each structure's equivalent operation. Any other name is looked up
// directly in every structure that registers it. The result is empty,
// not an error, when no structure has the operation.
func (c *Catalog) Compare(operation string) map[string]Record {
	op := Normalize(operation)
	out := make(map[string]Record)
	if aliases, ok := operationAliases[op]; ok {
		for s, name := range aliases {
			if r, err := c.Get(s, name); err == nil {
				out[s] = r
			}
		}
		return out
	}
	for _, s := range c.structures {
		if r, ok := c.records[s][op]; ok {
			out[s] = r
		}
	}
	return out
}

// Estimate is one case of a Prediction.
type Estimate struct {
	Class        Class `json:"complexity"`
	EstimatedOps int   `json:"estimated_ops"`
}

// Prediction is the operation-count forecast for one input size.
type Prediction struct {
	Structure string   `json:"structure"`
	Operation string   `json:"operation"`
	InputSize int      `json:"input_size"`
	Best      Estimate `json:"best_case"`
	Average   Estimate `json:"average_case"`
	Worst     Estimate `json:"worst_case"`
	Space     Class    `json:"space"`
}

// Predict converts the record's classes into operation counts for n.
//
// Example: Predict("linked_list", 10000, "search").Worst.EstimatedOps == 10000.
func (c *Catalog) Predict(structure string, n int, operation string) (Prediction, error) {
	r, err := c.Get(structure, operation)
	if err != nil {
		return Prediction{}, err
	}
	return Prediction{
		Structure: r.Structure,
		Operation: r.Operation,
		InputSize: n,
		Best:      Estimate{Class: r.Best, EstimatedOps: r.Best.Ops(n)},
		Average:   Estimate{Class: r.Average, EstimatedOps: r.Average.Ops(n)},
		Worst:     Estimate{Class: r.Worst, EstimatedOps: r.Worst.Ops(n)},
		Space:     r.Space,
	}, nil
}
