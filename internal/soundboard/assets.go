package soundboard

import (
	"os"
	"path/filepath"
	"strings"
)

// AssetMap maps a lowercased keyword to an asset path. The keyword is
// the file's basename without extension, so `ding.mp3` serves the
// keyword "ding". When two files share a basename the later directory
// entry wins (ReadDir returns sorted order).
type AssetMap map[string]string

// Discover scans dir for assets and builds the keyword mapping. A
// missing directory yields an empty map.
func Discover(dir string) AssetMap {
	mapping := AssetMap{}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return mapping
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := filepath.Ext(name)
		if ext == "" {
			continue
		}
		key := strings.ToLower(strings.TrimSuffix(name, ext))
		mapping[key] = filepath.Join(dir, name)
	}
	return mapping
}

// Lookup resolves a label against the mapping, case-insensitively.
func (m AssetMap) Lookup(label string) (string, bool) {
	path, ok := m[strings.ToLower(label)]
	return path, ok
}
