package files

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultPattern matches markdown files.
const DefaultPattern = "*.md"

// Entry is one enumerated filesystem item.
type Entry struct {
	Path  string
	Name  string
	IsDir bool
}

// List enumerates the given paths. Directories are scanned one level deep,
// or fully when recursive is set. File names are matched against pattern
// using filepath.Match syntax; directories are always reported so callers
// can filter them out themselves.
func List(paths []string, pattern string, recursive bool) ([]Entry, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	// Validate the pattern up front rather than on every name.
	if _, err := filepath.Match(pattern, "probe"); err != nil {
		return nil, fmt.Errorf("bad filter %q: %w", pattern, err)
	}

	var entries []Entry
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", p, err)
		}
		if !info.IsDir() {
			if matched, _ := filepath.Match(pattern, filepath.Base(p)); matched {
				entries = append(entries, Entry{Path: p, Name: filepath.Base(p)})
			}
			continue
		}
		if recursive {
			walkErr := filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if d.IsDir() {
					if path != p {
						entries = append(entries, Entry{Path: path, Name: d.Name(), IsDir: true})
					}
					return nil
				}
				if matched, _ := filepath.Match(pattern, d.Name()); matched {
					entries = append(entries, Entry{Path: path, Name: d.Name()})
				}
				return nil
			})
			if walkErr != nil {
				return nil, fmt.Errorf("walk %s: %w", p, walkErr)
			}
			continue
		}
		dirEntries, err := os.ReadDir(p)
		if err != nil {
			return nil, fmt.Errorf("read dir %s: %w", p, err)
		}
		for _, d := range dirEntries {
			full := filepath.Join(p, d.Name())
			if d.IsDir() {
				entries = append(entries, Entry{Path: full, Name: d.Name(), IsDir: true})
				continue
			}
			if matched, _ := filepath.Match(pattern, d.Name()); matched {
				entries = append(entries, Entry{Path: full, Name: d.Name()})
			}
		}
	}
	return entries, nil
}

// Files returns only the non-directory entries.
func Files(entries []Entry) []Entry {
	var out []Entry
	for _, e := range entries {
		if !e.IsDir {
			out = append(out, e)
		}
	}
	return out
}
