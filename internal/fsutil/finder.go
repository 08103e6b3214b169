// Package fsutil locates script files on disk.
package fsutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ScriptExtensions are the suffixes picked up when a directory is compiled.
var ScriptExtensions = []string{".hcl", ".hcl.json"}

// ErrNoScripts is returned for a directory without any script file.
var ErrNoScripts = errors.New("no script files found")

// FindFilesByExtension recursively searches rootPath for files ending with
// any of the given extensions. Paths are returned in lexical order.
func FindFilesByExtension(rootPath string, extensions ...string) ([]string, error) {
	if len(extensions) == 0 {
		panic("at least one extension is required")
	}

	var files []string
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		for _, ext := range extensions {
			if strings.HasSuffix(d.Name(), ext) {
				files = append(files, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// ResolveScripts turns a script argument into the files to compile. A regular
// file is used as is, whatever its extension. A directory yields every script
// file below it.
func ResolveScripts(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read script: %w", err)
	}

	if !info.IsDir() {
		return []string{path}, nil
	}

	files, err := FindFilesByExtension(path, ScriptExtensions...)
	if err != nil {
		return nil, fmt.Errorf("cannot read script directory %s: %w", path, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoScripts, path)
	}
	return files, nil
}
