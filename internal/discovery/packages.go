package discovery

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// GroupByPackage groups test files by their parent directory. Each group
// corresponds to one package invocation of the test runner.
func GroupByPackage(testFiles []string) map[string][]string {
	groups := make(map[string][]string)
	for _, file := range testFiles {
		dir := filepath.Dir(file)
		groups[dir] = append(groups[dir], file)
	}
	return groups
}

// PackageDirs returns the group keys in sorted order for deterministic
// processing.
func PackageDirs(groups map[string][]string) []string {
	dirs := make([]string, 0, len(groups))
	for dir := range groups {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)
	return dirs
}

// NonTestSources returns the non-test .go files in a package directory.
// Files the toolchain ignores (names starting with "_" or ".") are skipped.
func NonTestSources(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list package dir %s: %w", dir, err)
	}

	var sources []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".go") {
			continue
		}
		if strings.HasSuffix(name, "_test.go") {
			continue
		}
		if strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".") {
			continue
		}
		sources = append(sources, filepath.Join(dir, name))
	}
	return sources, nil
}

// LoadSourceFiles reads every given file into a path -> content map, used
// to resolve test names back to the files that declare them.
func LoadSourceFiles(paths []string) (map[string]string, error) {
	contents := make(map[string]string, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read source file %s: %w", p, err)
		}
		contents[p] = string(data)
	}
	return contents, nil
}

// ImportPath derives the slash-separated import path for a package
// directory relative to the project root, prefixed with the module path
// when one is known.
func ImportPath(projectRoot, dir, modulePath string) string {
	rel, err := filepath.Rel(projectRoot, dir)
	if err != nil {
		rel = dir
	}
	rel = filepath.ToSlash(rel)
	if modulePath == "" {
		return rel
	}
	if rel == "." {
		return modulePath
	}
	return path.Join(modulePath, rel)
}
