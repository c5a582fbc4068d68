// Package fsx sanitizes request paths into safe filesystem paths, with
// no dependency on GOOS-specific path semantics.
package fsx

import (
	"path/filepath"
	"strings"
)

// illegalChars mirrors Windows' reserved filename characters; rejecting
// them uniformly on every platform keeps a request path's meaning from
// depending on which OS the server happens to run on.
const illegalChars = `<>:"/\|?*`

// SanitizePath splits a request path into filesystem components,
// resolving "." and ".." segments and rejecting anything that could
// escape the document root: drive/UNC prefixes, ".." segments that
// climb above the root, dot-files, and any component containing an
// illegalChars rune. Leading '/' and '\' characters are stripped rather
// than rejected, except that a path beginning with "//" or `\\` is
// treated as a UNC prefix and rejected.
//
// It returns ok == false when the path is invalid outright. A valid but
// empty result (path was "", "/", or all "." segments) maps to
// "index.html".
func SanitizePath(requestPath string) (relPath string, ok bool) {
	trimmed := strings.TrimLeft(requestPath, `/\`)
	if hasDrivePrefix(requestPath) || hasDrivePrefix(trimmed) {
		return "", false
	}

	segments := splitComponents(trimmed)
	components := make([]string, 0, len(segments))

	for _, seg := range segments {
		switch seg {
		case "", ".":
			// skip
		case "..":
			if len(components) == 0 {
				return "", false
			}
			components = components[:len(components)-1]
		default:
			name, valid := checkFilename(seg)
			if !valid {
				return "", false
			}
			components = append(components, name)
		}
	}

	if len(components) == 0 {
		return "index.html", true
	}
	return filepath.Join(components...), true
}

// splitComponents splits on both '/' and '\', regardless of GOOS, so
// the set of accepted paths never depends on which platform the server
// happens to be running on.
func splitComponents(path string) []string {
	replaced := strings.Map(func(r rune) rune {
		if r == '\\' {
			return '/'
		}
		return r
	}, path)
	return strings.Split(replaced, "/")
}

// hasDrivePrefix reports whether path begins with a Windows drive
// letter ("C:") or UNC-style double separator, either of which would
// let a request target an absolute location outside the document root.
func hasDrivePrefix(path string) bool {
	if len(path) >= 2 && path[1] == ':' {
		c := path[0]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			return true
		}
	}
	return strings.HasPrefix(path, `\\`) || strings.HasPrefix(path, "//")
}

// checkFilename rejects empty names, dot-files, and any name containing
// a character from illegalChars.
func checkFilename(name string) (string, bool) {
	if name == "" || strings.HasPrefix(name, ".") {
		return "", false
	}
	if strings.ContainsAny(name, illegalChars) {
		return "", false
	}
	return name, true
}
