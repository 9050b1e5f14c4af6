// Package batch fans a list of input files out over a bounded worker
// pool, running engine.Run on each independently so that one bad input
// does not abort the others.
package batch
