// Package main provides the entry point for the MIX emulator.
// MIX is Knuth's hypothetical decimal-friendly computer from TAOCP.
//
// For the full CLI, use: go run ./cmd/mix
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("mix - Knuth's MIX emulator")
	fmt.Println("")
	fmt.Println("Usage: mix run [--verbose] <path>")
	fmt.Println("")
	fmt.Println("<path> ending in .mixal is assembled before running;")
	fmt.Println("any other path is read as a binary image.")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/mix' for the full CLI.")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: you provided arguments. Use 'go run ./cmd/mix' instead.")
	}
}
