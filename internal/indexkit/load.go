package indexkit

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadYAML reads a kit definition from a YAML file:
//
//	name: my-kit
//	indexes:
//	  P7_i1: TAAGGCGA
//	  ...
//
// The kit is validated before being returned.
func LoadYAML(path string) (*Kit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read kit file: %w", err)
	}

	var kit Kit
	if err := yaml.Unmarshal(data, &kit); err != nil {
		return nil, fmt.Errorf("parse kit file %s: %w", path, err)
	}
	if err := kit.Validate(); err != nil {
		return nil, fmt.Errorf("invalid kit file %s: %w", path, err)
	}
	return &kit, nil
}

// MarshalYAML renders a kit as YAML suitable for LoadYAML.
func MarshalYAML(kit *Kit) ([]byte, error) {
	return yaml.Marshal(kit)
}

// LoadTSV imports a vendor index listing: a tab-separated file with two
// columns [name, sequence]. Blank lines and #-comments are skipped, and
// sequences are uppercased before validation.
func LoadTSV(path, kitName string) (*Kit, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open index file: %w", err)
	}
	defer fh.Close()

	kit := &Kit{Name: kitName, Indexes: make(map[string]string)}
	sc := bufio.NewScanner(fh)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		f := strings.Split(line, "\t")
		if len(f) != 2 {
			return nil, fmt.Errorf("%s:%d: want 2 tab-separated fields [name, sequence], got %d", path, ln, len(f))
		}
		name := strings.TrimSpace(f[0])
		seq := strings.ToUpper(strings.TrimSpace(f[1]))
		if _, dup := kit.Indexes[name]; dup {
			return nil, fmt.Errorf("%s:%d: duplicate index name %q", path, ln, name)
		}
		kit.Indexes[name] = seq
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read index file: %w", err)
	}
	if err := kit.Validate(); err != nil {
		return nil, fmt.Errorf("invalid index file %s: %w", path, err)
	}
	return kit, nil
}
