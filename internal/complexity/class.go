// Package complexity holds the theoretical Big-O metadata for every
// benchmarked operation.
//
// A Catalog maps (structure, operation) to an immutable Record with the
// best, average and worst time class, the space class and an explanation.
// Class converts a Big-O class into an estimated operation count and a
// canonical growth curve, which the growth analyzer and chart data use as
// the theoretical reference.
package complexity

import (
	"fmt"
	"math"
	"strings"
)

// Class is a Big-O complexity class.
type Class int

const (
	Constant     Class = iota // O(1)
	Logarithmic               // O(log n)
	Linear                    // O(n)
	Linearithmic              // O(n log n)
	Quadratic                 // O(n²)
	Cubic                     // O(n³)
	Exponential               // O(2ⁿ)
	Factorial                 // O(n!)
)

var classNames = [...]string{
	Constant:     "O(1)",
	Logarithmic:  "O(log n)",
	Linear:       "O(n)",
	Linearithmic: "O(n log n)",
	Quadratic:    "O(n²)",
	Cubic:        "O(n³)",
	Exponential:  "O(2ⁿ)",
	Factorial:    "O(n!)",
}

// Classes lists every class in growth order.
var Classes = []Class{Constant, Logarithmic, Linear, Linearithmic, Quadratic, Cubic, Exponential, Factorial}

func (c Class) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return fmt.Sprintf("Class(%d)", int(c))
	}
	return classNames[c]
}

// MarshalText renders the class in Big-O notation.
func (c Class) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText accepts anything ParseClass accepts.
func (c *Class) UnmarshalText(b []byte) error {
	parsed, err := ParseClass(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseClass parses Big-O notation such as "O(n)", "O(n^2)", "o(n log n)".
// A trailing "*" (amortized marker) is ignored.
func ParseClass(s string) (Class, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.TrimSuffix(norm, "*")
	norm = strings.ReplaceAll(norm, " ", "")
	switch norm {
	case "o(1)":
		return Constant, nil
	case "o(logn)":
		return Logarithmic, nil
	case "o(n)":
		return Linear, nil
	case "o(nlogn)":
		return Linearithmic, nil
	case "o(n²)", "o(n^2)":
		return Quadratic, nil
	case "o(n³)", "o(n^3)":
		return Cubic, nil
	case "o(2ⁿ)", "o(2^n)":
		return Exponential, nil
	case "o(n!)":
		return Factorial, nil
	}
	return 0, fmt.Errorf("complexity: unknown class %q", s)
}

// Eval returns the canonical curve f(n) for the class.
// log is base 2. Results may be +Inf for the explosive classes.
func (c Class) Eval(n float64) float64 {
	if n < 1 {
		n = 1
	}
	switch c {
	case Constant:
		return 1
	case Logarithmic:
		return math.Max(1, math.Log2(n))
	case Linear:
		return n
	case Linearithmic:
		return math.Max(1, n*math.Log2(n))
	case Quadratic:
		return n * n
	case Cubic:
		return n * n * n
	case Exponential:
		return math.Exp2(n)
	case Factorial:
		g, _ := math.Lgamma(n + 1)
		return math.Exp(g)
	}
	return n
}

// Ops estimates the number of elementary operations for input size n:
// O(1) → 1, O(log n) → ceil(log2 n), O(n) → n, O(n²) → n², and so on.
// The estimate is at least 1 and saturates at math.MaxInt.
func (c Class) Ops(n int) int {
	if n < 1 {
		return 1
	}
	if c == Logarithmic {
		return max(1, int(math.Ceil(math.Log2(float64(n)))))
	}
	v := math.Ceil(c.Eval(float64(n)) - 1e-9) // absorb Lgamma rounding
	if v >= math.MaxInt || math.IsInf(v, 1) || math.IsNaN(v) {
		return math.MaxInt
	}
	return max(1, int(v))
}

// Ratio is the growth factor the class predicts from size n1 to n2,
// i.e. Eval(n2)/Eval(n1).
func (c Class) Ratio(n1, n2 int) float64 {
	return c.Eval(float64(n2)) / c.Eval(float64(n1))
}
