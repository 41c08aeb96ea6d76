package complexity

import "strings"

// Recommendation pairs a structure with the reason it suits a use case.
type Recommendation struct {
	Structure string
	Reason    string
}

var recommendationRules = []struct {
	keywords []string
	rec      Recommendation
}{
	{
		keywords: []string{"undo", "redo", "backtrack", "reverse", "nested", "recursive", "dfs", "depth"},
		rec: Recommendation{Stack,
			"LIFO access matches undo/redo and backtracking; push and pop are O(1)."},
	},
	{
		keywords: []string{"schedule", "buffer", "bfs", "breadth", "order", "first come", "fifo", "request"},
		rec: Recommendation{Queue,
			"FIFO access matches scheduling and buffering; enqueue and dequeue are O(1)."},
	},
	{
		keywords: []string{"insert", "delete", "dynamic", "unknown size", "frequent add", "frequent remove", "middle"},
		rec: Recommendation{LinkedList,
			"Nodes are allocated on demand and head insertion is O(1) with no shifting."},
	},
}

var generalRecommendations = []Recommendation{
	{Stack, "Use when the most recent item is needed first (LIFO)."},
	{Queue, "Use when items are served in arrival order (FIFO)."},
	{LinkedList, "Use when size is unknown and insertions/deletions are frequent."},
}

// Recommend matches keywords in a free-text use case and returns the
// suitable structures in rule order. Without a match it returns general
// guidance for all three.
func Recommend(useCase string) []Recommendation {
	text := strings.ToLower(useCase)
	var out []Recommendation
	for _, rule := range recommendationRules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				out = append(out, rule.rec)
				break
			}
		}
	}
	if len(out) == 0 {
		out = append(out, generalRecommendations...)
	}
	return out
}
