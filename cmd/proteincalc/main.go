// Command proteincalc runs the protein calculator from the terminal.
// Usage: go run ./cmd/proteincalc daily --weight 80 --age 30 --activity-level very_active
package main

import (
	"os"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
