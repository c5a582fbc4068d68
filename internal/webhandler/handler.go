// Package webhandler turns a parsed request into a response by
// resolving it against a document root on disk.
package webhandler

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/dEajL3kA/rusty-httpd/internal/fsx"
	"github.com/dEajL3kA/rusty-httpd/internal/httpx"
)

// Handler serves static files rooted at a canonicalized document root.
// It holds no per-request state and is safe for concurrent use by every
// worker in the pool.
type Handler struct {
	rootPath string
	log      *zap.Logger
}

// New canonicalizes rootPath and verifies it names a directory.
func New(rootPath string, log *zap.Logger) (*Handler, error) {
	abs, err := filepath.Abs(rootPath)
	if err != nil {
		return nil, fmt.Errorf("webhandler: resolve public path: %w", err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, fmt.Errorf("webhandler: public directory not found: %w", err)
	}
	info, err := os.Stat(resolved)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("webhandler: public path %q is not a directory", resolved)
	}
	log.Info("public path", zap.String("path", resolved))
	return &Handler{rootPath: resolved, log: log}, nil
}

// Handle dispatches a parsed request to a response. It never returns a
// nil *httpx.Response; parse-level and I/O-level failures both resolve
// to one of the four canned error pages.
func (h *Handler) Handle(req *httpx.Request) *httpx.Response {
	switch req.Method {
	case httpx.MethodGet:
		return h.createResponse(req.Path, true)
	case httpx.MethodHead:
		return h.createResponse(req.Path, false)
	default:
		h.log.Warn("method not allowed", zap.String("method", string(req.Method)))
		return errorMethodNotAllowed()
	}
}

// HandleParseError maps a request-parse failure to the response it
// produces: httpx.ParseError always maps to 400, anything else to 500.
func HandleParseError(err error) *httpx.Response {
	if httpx.IsParseError(err) {
		return errorBadRequest()
	}
	return errorInternal()
}

// createResponse resolves requestPath against the document root and
// serves the named file, or the appropriate error page when it can't.
// transmitData is false for HEAD requests: the body is never read, but
// Content-Length still reflects the file's size.
func (h *Handler) createResponse(requestPath string, transmitData bool) *httpx.Response {
	relPath, ok := fsx.SanitizePath(requestPath)
	if !ok {
		h.log.Warn("request path is invalid", zap.String("path", requestPath))
		return errorNotFound()
	}

	fullPath := filepath.Join(h.rootPath, relPath)
	info, err := os.Stat(fullPath)
	if err != nil {
		h.log.Warn("requested resource not found", zap.String("path", fullPath), zap.Error(err))
		return errorNotFound()
	}

	if info.IsDir() {
		h.log.Warn("directory listing is forbidden", zap.String("path", fullPath))
		return errorForbidden()
	}

	return h.serveFile(fullPath, info, transmitData)
}

// serveFile builds the successful 200 response for a regular file.
// transmitData selects whether the body is actually attached (GET) or
// just reflected in Content-Length (HEAD).
func (h *Handler) serveFile(fullPath string, info os.FileInfo, transmitData bool) *httpx.Response {
	contentType, _ := httpx.ContentTypeForPath(fullPath)

	if !transmitData {
		size := info.Size()
		return httpx.NewResponse(httpx.StatusOK, &size, contentType)
	}

	h.log.Info("sending file", zap.String("path", fullPath))
	file, err := os.Open(fullPath)
	if err != nil {
		h.log.Warn("file could not be read", zap.String("path", fullPath), zap.Error(err))
		return errorInternal()
	}

	resp, err := httpx.ResponseFromFile(httpx.StatusOK, file, contentType)
	if err != nil {
		file.Close()
		h.log.Warn("file could not be stat'd", zap.String("path", fullPath), zap.Error(err))
		return errorInternal()
	}
	return resp
}
