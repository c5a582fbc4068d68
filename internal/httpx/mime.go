package httpx

import (
	"path/filepath"
	"strings"
)

// mimeTypes maps a lowercase filename extension (without the leading
// dot) to its content-type string. image/jpg is intentionally
// non-standard (not image/jpeg), preserved verbatim for bit-compat with
// the original server this is modeled on.
var mimeTypes = map[string]string{
	"bin":  "application/octet-stream",
	"dat":  "application/octet-stream",
	"exe":  "application/octet-stream",
	"bz2":  "application/x-bzip2",
	"tbz2": "application/x-bzip2",
	"css":  "text/css",
	"gif":  "image/gif",
	"gz":   "application/gzip",
	"tgz":  "application/gzip",
	"htm":  "text/html",
	"html": "text/html",
	"jpe":  "image/jpg",
	"jpeg": "image/jpg",
	"jpg":  "image/jpg",
	"js":   "text/javascript",
	"pdf":  "application/pdf",
	"png":  "image/png",
	"tar":  "application/x-tar",
	"txt":  "text/plain",
	"xz":   "application/x-xz",
	"txz":  "application/x-xz",
	"zip":  "application/zip",
}

// ContentTypeForPath resolves path's filename extension to a content
// type, case-insensitively. It returns ok == false for an extensionless
// name or an extension absent from the table.
func ContentTypeForPath(path string) (contentType string, ok bool) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", false
	}
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	contentType, ok = mimeTypes[ext]
	return contentType, ok
}
