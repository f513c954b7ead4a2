// Command algoscope generates, plays back and serves step-by-step
// visualizations of sorting, graph traversal, search-tree and hash-map
// algorithms.
package main

func main() {
	Execute()
}
