package archive

import (
	"fmt"
	"sort"
	"sync"
)

// Archive is the process-global genome <-> identifier index. Reads
// (Lookup, ReverseLookup, Len) take a shared lock; writes (Insert,
// Merge, Reload) take an exclusive one, so the archive is safe to
// share across concurrently running worker-pool jobs.
type Archive struct {
	mu         sync.RWMutex
	genomeToID map[string]string
	idToGenome map[string]string
	external   bool
}

// New returns an empty archive.
func New() *Archive {
	return &Archive{
		genomeToID: make(map[string]string),
		idToGenome: make(map[string]string),
	}
}

// Lookup returns the identifier archived under genome, if any.
func (a *Archive) Lookup(genome string) (string, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	id, ok := a.genomeToID[genome]
	return id, ok
}

// ReverseLookup returns the genome archived under id, if any.
func (a *Archive) ReverseLookup(id string) (string, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	genome, ok := a.idToGenome[id]
	return genome, ok
}

// Len returns the number of distinct genome entries.
func (a *Archive) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.genomeToID)
}

// IsExternal reports whether this archive was loaded without the
// "Made by CrystalNets.jl" stamp, meaning its keys are not guaranteed
// to already be in canonical convention.
func (a *Archive) IsExternal() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.external
}

// Insert records genome -> id (and its inverse). Without override, it
// rejects an id that already maps to a different genome, or a genome
// that already maps to a different id.
func (a *Archive) Insert(id, genome string, override bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.insertLocked(id, genome, override)
}

func (a *Archive) insertLocked(id, genome string, override bool) error {
	if existingID, ok := a.genomeToID[genome]; ok && existingID != id && !override {
		return fmt.Errorf("genome already mapped to %q: %w", existingID, ErrConflict)
	}
	if existingGenome, ok := a.idToGenome[id]; ok && existingGenome != genome && !override {
		return fmt.Errorf("id %q already mapped to a different genome: %w", id, ErrConflict)
	}
	a.genomeToID[genome] = id
	a.idToGenome[id] = genome
	return nil
}

// Recanonicalize rewrites every entry's genome key by passing it
// through canonicalize, then clears the external flag. It is how a
// stamp-less archive (one Load could not confirm already uses the
// canonical convention) gets its keys into a form that will actually
// match genomes this program computes.
func (a *Archive) Recanonicalize(canonicalize func(genome string) (string, error)) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	newGenomeToID := make(map[string]string, len(a.genomeToID))
	newIDToGenome := make(map[string]string, len(a.idToGenome))
	for genome, id := range a.genomeToID {
		canonical, err := canonicalize(genome)
		if err != nil {
			return fmt.Errorf("recanonicalizing entry %q: %w", id, err)
		}
		if existing, ok := newGenomeToID[canonical]; ok && existing != id {
			id = existing + ", " + id
		}
		newGenomeToID[canonical] = id
		newIDToGenome[id] = canonical
	}

	a.genomeToID = newGenomeToID
	a.idToGenome = newIDToGenome
	a.external = false
	return nil
}

// Merge folds other's entries into a. When both archives map the same
// genome to different identifiers, the two are combined into one
// alias string joined by ", ", and a description of each such merge is
// returned for the caller to log.
func (a *Archive) Merge(other *Archive) []string {
	other.mu.RLock()
	entries := make(map[string]string, len(other.genomeToID))
	for genome, id := range other.genomeToID {
		entries[genome] = id
	}
	other.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	var notes []string
	genomes := make([]string, 0, len(entries))
	for genome := range entries {
		genomes = append(genomes, genome)
	}
	sort.Strings(genomes)

	for _, genome := range genomes {
		id := entries[genome]
		existing, ok := a.genomeToID[genome]
		if !ok {
			a.genomeToID[genome] = id
			a.idToGenome[id] = genome
			continue
		}
		if existing == id {
			continue
		}
		merged := existing + ", " + id
		delete(a.idToGenome, existing)
		a.genomeToID[genome] = merged
		a.idToGenome[merged] = genome
		notes = append(notes, fmt.Sprintf("%s + %s -> %s", existing, id, merged))
	}
	return notes
}
