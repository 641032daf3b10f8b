// Command noteful is the operator CLI for a Noteful database: seeding demo
// data, listing notes and managing user accounts without going through HTTP.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
