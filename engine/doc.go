// Package engine wires cif, cell, chem, ingest, sanitize, canon, and
// archive together into the data flow from a raw CIF record to one
// recognized (or "UNKNOWN") identifier per connected component.
package engine
