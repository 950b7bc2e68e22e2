package builder

import (
	"path"
	"path/filepath"
	"strings"
)

// IsExcluded checks if a root-relative path matches any of the exclude patterns
func IsExcluded(rel string, excludes []string) bool {
	for _, pattern := range excludes {
		if matchPattern(rel, pattern) {
			return true
		}
	}
	return false
}

// matchPattern checks if a path matches a pattern. A pattern without a slash
// also matches the file name alone, and "**" matches any number of directories.
func matchPattern(name, pattern string) bool {
	name = filepath.ToSlash(name)
	pattern = filepath.ToSlash(pattern)

	if prefix, suffix, ok := strings.Cut(pattern, "**"); ok {
		prefix = strings.TrimSuffix(prefix, "/")
		suffix = strings.TrimPrefix(suffix, "/")

		rest := name
		if prefix != "" {
			if name != prefix && !strings.HasPrefix(name, prefix+"/") {
				return false
			}
			rest = strings.TrimPrefix(strings.TrimPrefix(name, prefix), "/")
		}
		if suffix == "" {
			return true
		}

		// Try the suffix against every tail of the remaining path
		segments := strings.Split(rest, "/")
		for i := range segments {
			if matched, _ := path.Match(suffix, strings.Join(segments[i:], "/")); matched {
				return true
			}
		}
		return false
	}

	if matched, _ := path.Match(pattern, name); matched {
		return true
	}
	matched, _ := path.Match(pattern, path.Base(name))
	return matched
}
