// Package path provides pure, lexical operations on the forward-slash paths
// used throughout the filesystem contract. None of these operations consult
// the filesystem; they operate only on the byte content of the path string.
package path

import (
	"strings"
)

// Separator is the path component separator used by the filesystem contract,
// independent of the separator used by the host operating system.
const Separator = '/'

// IsAbsolute returns true if and only if path begins with a separator.
func IsAbsolute(path string) bool {
	return len(path) > 0 && path[0] == Separator
}

// split breaks a path into its separator-delimited components, discarding any
// empty components produced by repeated separators.
func split(path string) []string {
	raw := strings.Split(path, string(Separator))
	components := make([]string, 0, len(raw))
	for _, c := range raw {
		if c != "" {
			components = append(components, c)
		}
	}
	return components
}

// Split breaks path into its separator-delimited components, discarding any
// empty components produced by repeated or leading separators. It performs
// no lexical resolution; callers that need "." and ".." resolved should
// normalize first.
func Split(path string) []string {
	return split(path)
}

// Normalize collapses repeated separators and resolves "." and ".."
// components lexically. It returns an empty string if path is empty, and "."
// if a relative path resolves to nothing.
//
// For absolute paths, a leading ".." is discarded rather than treated as an
// error, since there is no parent of the root to ascend to. For relative
// paths, a ".." is preserved whenever there is no preceding real component to
// cancel it against.
func Normalize(path string) string {
	if path == "" {
		return ""
	}

	absolute := IsAbsolute(path)
	components := split(path)

	result := make([]string, 0, len(components))
	for _, c := range components {
		switch c {
		case ".":
			continue
		case "..":
			if len(result) > 0 && result[len(result)-1] != ".." {
				result = result[:len(result)-1]
				continue
			}
			if absolute {
				// Cannot ascend above the root; discard.
				continue
			}
			result = append(result, "..")
		default:
			result = append(result, c)
		}
	}

	if absolute {
		return "/" + strings.Join(result, "/")
	}
	if len(result) == 0 {
		return "."
	}
	return strings.Join(result, "/")
}

// GetDirectoryName returns the longest prefix of path before its final
// separator. It returns an empty string if path contains no separator. The
// result is not normalized.
func GetDirectoryName(path string) string {
	if index := strings.LastIndexByte(path, Separator); index != -1 {
		return path[:index]
	}
	return ""
}

// GetBaseName returns the suffix of path following its final separator, or
// the entire path if it contains no separator.
func GetBaseName(path string) string {
	if index := strings.LastIndexByte(path, Separator); index != -1 {
		return path[index+1:]
	}
	return path
}

// Join joins path components with the contract's separator, normalizing the
// result.
func Join(components ...string) string {
	return Normalize(strings.Join(components, string(Separator)))
}
