// Package source is the file-reading helper collaborator named in spec
// §1/§6: it owns opening a module's backing file and closing the handle
// on every exit path, and nothing else. Deliberately thin — the module
// system and CLI are the only callers.
package source

import (
	"io"
	"os"
)

// Exists reports whether path exists and is not a directory (it does not
// check readability) — used by
// the import search-path walk to test candidates without reading them.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// ReadFile reads path's full contents as a string, closing the handle
// before returning on every path (success or failure), per spec §5's
// resource-scoping rule.
func ReadFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ReadAll reads every byte available from r (a file handle or any other
// reader the embedder hands in) as a string — the "file handle" entry
// point of spec §6's "run source (by path, file handle, or string)".
func ReadAll(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
