package webhandler

import "github.com/dEajL3kA/rusty-httpd/internal/httpx"

const contentTypeHTML = "text/html"

func errorForbidden() *httpx.Response {
	const html = "<!doctype html><title>Error 403</title><h1>403 Forbidden</h1><h3>You don't have permission to access the requested resource on this server.</h3>\n"
	return httpx.ResponseFromText(httpx.StatusForbidden, html, contentTypeHTML)
}

func errorNotFound() *httpx.Response {
	const html = "<!doctype html><title>Error 404</title><h1>404 Not Found</h1><h3>The requested resource could not be found on this server, but may be available in the future.</h3>\n"
	return httpx.ResponseFromText(httpx.StatusNotFound, html, contentTypeHTML)
}

func errorMethodNotAllowed() *httpx.Response {
	const html = "<!doctype html><title>Error 405</title><h1>405 Method Not Allowed</h1><h3>The request method is known by the server, but is not supported by the target resource.</h3>\n"
	return httpx.ResponseFromText(httpx.StatusMethodNotAllowed, html, contentTypeHTML)
}

func errorBadRequest() *httpx.Response {
	const html = "<!doctype html><title>Error 400</title><h1>400 Bad Request</h1><h3>The server could not understand the request due to invalid syntax.</h3>\n"
	return httpx.ResponseFromText(httpx.StatusBadRequest, html, contentTypeHTML)
}

func errorInternal() *httpx.Response {
	const html = "<!doctype html><title>Error 500</title><h1>500 Internal Server Error</h1><h3>The server encountered an internal error and was unable to complete your request.</h3>\n"
	return httpx.ResponseFromText(httpx.StatusInternalServerError, html, contentTypeHTML)
}
