// Command adtbench demonstrates the Stack, Queue and Linked List ADTs,
// prints their complexity catalog and measures how their operations grow
// with input size.
//
// Usage:
//
//	adtbench demo [stack|queue|list]
//	adtbench catalog table [structure]
//	adtbench catalog compare insert
//	adtbench catalog predict linked_list 10000 search
//	adtbench bench --sizes 100,200,400,800 --iterations 50 --plot
//	adtbench export -o findings.md --bench
//	adtbench menu
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
