// Command kopt runs the k-opt Euclidean TSP local-search optimizer over
// TSPLIB coordinate and tour files.
package main

func main() {
	execute()
}
