package indexkit

import (
	"fmt"
	"sort"
	"strings"
)

// Barcode constraints for all kits. These are the configured index
// validation rule: alphabet, fixed length, uniqueness within a kit.
const (
	// BarcodeAlphabet is the set of bases a barcode sequence may contain.
	BarcodeAlphabet = "ACGT"

	// BarcodeLength is the fixed length of every barcode sequence.
	BarcodeLength = 8
)

// Kit is a named table of sequencing indexes.
// Kits are read-only after construction.
type Kit struct {
	// Name identifies the kit (e.g. "agilent-sureselect").
	Name string `yaml:"name"`

	// Indexes maps index name to barcode sequence.
	Indexes map[string]string `yaml:"indexes"`
}

// Has reports whether the kit defines the given index name.
func (k *Kit) Has(name string) bool {
	_, ok := k.Indexes[name]
	return ok
}

// Sequence returns the barcode sequence for an index name.
// The boolean is false if the name is not in the kit.
func (k *Kit) Sequence(name string) (string, bool) {
	seq, ok := k.Indexes[name]
	return seq, ok
}

// Names returns all index names in the kit, sorted for stable output.
func (k *Kit) Names() []string {
	names := make([]string, 0, len(k.Indexes))
	for name := range k.Indexes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks the kit against the barcode constraints.
// Returns the first violation found; a loaded kit is either fully valid
// or rejected outright.
func (k *Kit) Validate() error {
	if strings.TrimSpace(k.Name) == "" {
		return fmt.Errorf("kit name is required")
	}
	if len(k.Indexes) == 0 {
		return fmt.Errorf("kit %q defines no indexes", k.Name)
	}

	seen := make(map[string]string, len(k.Indexes))
	for _, name := range k.Names() {
		seq := k.Indexes[name]
		if len(seq) != BarcodeLength {
			return fmt.Errorf("kit %q: index %q: sequence %q has length %d, want %d",
				k.Name, name, seq, len(seq), BarcodeLength)
		}
		for _, b := range seq {
			if !strings.ContainsRune(BarcodeAlphabet, b) {
				return fmt.Errorf("kit %q: index %q: sequence %q contains %q, allowed alphabet is %s",
					k.Name, name, seq, string(b), BarcodeAlphabet)
			}
		}
		if prev, dup := seen[seq]; dup {
			return fmt.Errorf("kit %q: indexes %q and %q share sequence %q",
				k.Name, prev, name, seq)
		}
		seen[seq] = name
	}
	return nil
}
