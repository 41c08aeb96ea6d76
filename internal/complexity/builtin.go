package complexity

var builtinRecords = []Record{
	// Stack
	{
		Structure: Stack, Operation: "push",
		Best: Constant, Average: Constant, Worst: Constant, Space: Constant, Amortized: true,
		Explanation: "Push appends at the top of the backing slice. " +
			"A single push is O(n) when the slice has to grow, amortized O(1).",
	},
	{
		Structure: Stack, Operation: "pop",
		Best: Constant, Average: Constant, Worst: Constant, Space: Constant,
		Explanation: "Pop removes the last slice element. No traversal, the top is always the end.",
	},
	{
		Structure: Stack, Operation: "peek",
		Best: Constant, Average: Constant, Worst: Constant, Space: Constant,
		Explanation: "Peek reads the last slice element without modifying the stack.",
	},
	{
		Structure: Stack, Operation: "search",
		Best: Constant, Average: Linear, Worst: Linear, Space: Constant,
		Explanation: "Search scans from the top. Best case when the value is on top; " +
			"worst case when it is at the bottom or absent.",
	},

	// Queue
	{
		Structure: Queue, Operation: "enqueue",
		Best: Constant, Average: Constant, Worst: Constant, Space: Constant, Amortized: true,
		Explanation: "Enqueue writes at the tail slot of the ring buffer. " +
			"The ring doubles when full, which makes the bound amortized.",
	},
	{
		Structure: Queue, Operation: "dequeue",
		Best: Constant, Average: Constant, Worst: Constant, Space: Constant,
		Explanation: "Dequeue reads the head slot and advances the head index. " +
			"A slice that re-slices or shifts from the front would be O(n).",
	},
	{
		Structure: Queue, Operation: "peek",
		Best: Constant, Average: Constant, Worst: Constant, Space: Constant,
		Explanation: "Peek reads the head slot directly.",
	},
	{
		Structure: Queue, Operation: "search",
		Best: Constant, Average: Linear, Worst: Linear, Space: Constant,
		Explanation: "Search walks from front to rear. Best case at the front; " +
			"worst case at the rear or absent.",
	},

	// Linked list
	{
		Structure: LinkedList, Operation: "insert_head",
		Best: Constant, Average: Constant, Worst: Constant, Space: Constant,
		Explanation: "A new node points at the old head and becomes the head. No traversal.",
	},
	{
		Structure: LinkedList, Operation: "insert_tail",
		Best: Constant, Average: Constant, Worst: Constant, Space: Constant,
		Explanation: "The tail pointer makes appending O(1). Without it the list would be walked, O(n).",
	},
	{
		Structure: LinkedList, Operation: "insert_position",
		Best: Constant, Average: Linear, Worst: Linear, Space: Constant,
		Explanation: "The list is walked to the node before the position. O(1) at the head.",
	},
	{
		Structure: LinkedList, Operation: "delete",
		Best: Constant, Average: Linear, Worst: Linear, Space: Constant,
		Explanation: "The value has to be found before it can be unlinked. O(1) when it is the head.",
	},
	{
		Structure: LinkedList, Operation: "search",
		Best: Constant, Average: Linear, Worst: Linear, Space: Constant,
		Explanation: "Linear walk from the head; nodes have no random access.",
	},
	{
		Structure: LinkedList, Operation: "access",
		Best: Constant, Average: Linear, Worst: Linear, Space: Constant,
		Explanation: "Reaching index i means following i next pointers, unlike an array's base+offset.",
	},

	// Dynamic array baseline
	{
		Structure: Array, Operation: "access",
		Best: Constant, Average: Constant, Worst: Constant, Space: Constant,
		Explanation: "Address is base + index*elemSize, independent of length.",
	},
	{
		Structure: Array, Operation: "insert_end",
		Best: Constant, Average: Constant, Worst: Linear, Space: Constant,
		Explanation: "Amortized O(1) append; O(n) when the backing array is reallocated and copied.",
	},
	{
		Structure: Array, Operation: "insert_beginning",
		Best: Linear, Average: Linear, Worst: Linear, Space: Constant,
		Explanation: "Every existing element shifts one slot right.",
	},
	{
		Structure: Array, Operation: "search",
		Best: Constant, Average: Linear, Worst: Linear, Space: Constant,
		Explanation: "Unsorted arrays need a linear scan; sorted ones allow O(log n) binary search.",
	},
}
