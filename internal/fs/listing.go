package fs

import (
	"os"
	"path/filepath"
)

// Filesystem access points, overridable in tests.
var (
	openDirFn = os.Open
	statFn    = os.Stat
)

// IsRoot reports whether path is the filesystem root.
func IsRoot(path string) bool {
	clean := filepath.Clean(path)
	return filepath.Dir(clean) == clean
}

// List enumerates path and returns its entries. It never fails: an
// enumeration error yields a single KindError entry carrying the message.
func List(path string, showHidden bool) EntryList {
	names, err := ReadNames(path)
	if err != nil {
		return EntryList{errorEntry(err)}
	}

	entries := make(EntryList, 0, len(names)+1)
	if !IsRoot(path) {
		entries = append(entries, parentEntry())
	}

	for _, name := range names {
		if !showHidden && IsHidden(name) {
			continue
		}
		entries = append(entries, NewEntry(name, Probe(filepath.Join(path, name))))
	}
	return entries
}

// ReadNames returns the names in path in directory stream order.
func ReadNames(path string) ([]string, error) {
	dir, err := openDirFn(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = dir.Close()
	}()

	return dir.Readdirnames(-1)
}

// Probe classifies fullPath, following symlinks. A failed stat yields
// KindInaccessible.
func Probe(fullPath string) Kind {
	info, err := statFn(fullPath)
	if err != nil {
		return KindInaccessible
	}
	if info.IsDir() {
		return KindDirectory
	}
	return KindFile
}
