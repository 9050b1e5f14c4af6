package main

import (
	"context"
	"fmt"
	"io"

	"github.com/crystalnets-go/crystalnets/archive"
	"github.com/crystalnets-go/crystalnets/batch"
	"github.com/crystalnets-go/crystalnets/engine"
)

// runBatch fans multiple input files out over batch.Run and reports
// each file's outcome; a single failing input does not change the
// exit code contribution of the others.
func runBatch(ctx context.Context, paths []string, arc *archive.Archive, opts engine.Options, concurrency int, stdout, stderr io.Writer) int {
	results := batch.Run(ctx, paths, opts, arc, concurrency)

	code := exitRecognized
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(stderr, "error: %s: %v\n", r.Path, r.Err)
			code = exitInputError
			continue
		}
		fmt.Fprintf(stdout, "%s:\n", r.Path)
		sub := printResults(r.Results, stdout)
		if sub != exitRecognized && code == exitRecognized {
			code = sub
		}
	}
	return code
}
