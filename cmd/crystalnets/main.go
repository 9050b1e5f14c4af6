// Command crystalnets is the CLI front-end over package engine/batch: it
// recognizes the periodic net of a crystal structure file (or a bare
// genome string) against a topology archive.
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:]))
}
