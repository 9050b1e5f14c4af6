package archive

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// FormatVersion is the CrystalNets.jl-compatible stamp this package
// writes into every archive it serializes.
const FormatVersion = "1.0.0"

const stampPrefix = "Made by CrystalNets.jl v"

// Load parses a ".arc" text archive: newline-delimited "key <genome>"
// / "id <identifier>" record pairs, comment lines starting with '#'
// ignored, and an optional leading format stamp. Its absence marks
// the result an "external archive" whose keys may not
// already follow the canonical convention.
func Load(r io.Reader) (*Archive, error) {
	a := New()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	stamped := false
	sawFirstLine := false
	pendingGenome := ""
	havePending := false

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !sawFirstLine {
			sawFirstLine = true
			if strings.HasPrefix(line, stampPrefix) {
				stamped = true
				continue
			}
		}

		switch {
		case strings.HasPrefix(line, "key "):
			pendingGenome = strings.TrimSpace(strings.TrimPrefix(line, "key "))
			havePending = true
		case strings.HasPrefix(line, "id "):
			if !havePending {
				return nil, fmt.Errorf("%w: id record without preceding key", ErrMalformedRecord)
			}
			id := strings.TrimSpace(strings.TrimPrefix(line, "id "))
			if err := a.insertLocked(id, pendingGenome, false); err != nil {
				return nil, err
			}
			havePending = false
		default:
			return nil, fmt.Errorf("%w: unrecognized line %q", ErrMalformedRecord, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if havePending {
		return nil, fmt.Errorf("%w: key record without a following id", ErrMalformedRecord)
	}

	a.external = !stamped
	return a, nil
}

// LoadFile opens path and parses it with Load.
func LoadFile(path string) (*Archive, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Write serializes a to w in canonical ".arc" form, stamped and with
// entries sorted by identifier for a deterministic byte-for-byte
// output across runs.
func Write(w io.Writer, a *Archive) error {
	a.mu.RLock()
	ids := make([]string, 0, len(a.idToGenome))
	for id := range a.idToGenome {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	genomeByID := make(map[string]string, len(a.idToGenome))
	for id, g := range a.idToGenome {
		genomeByID[id] = g
	}
	a.mu.RUnlock()

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%s%s\n", stampPrefix, FormatVersion); err != nil {
		return err
	}
	for _, id := range ids {
		if _, err := fmt.Fprintf(bw, "key %s\nid %s\n", genomeByID[id], id); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile serializes a to path, creating or truncating it.
func WriteFile(path string, a *Archive) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Write(f, a)
}

// Reload replaces a's contents in place with a fresh parse of path,
// used by Watcher when the backing file changes on disk.
func (a *Archive) Reload(path string) error {
	fresh, err := LoadFile(path)
	if err != nil {
		return err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.genomeToID = fresh.genomeToID
	a.idToGenome = fresh.idToGenome
	a.external = fresh.external
	return nil
}
