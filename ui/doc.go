// Package ui exposes MemoChat over HTTP.
//
// The handler is a plain http.Handler built on net/http's ServeMux, meant to
// be mounted into an existing server:
//
//	handler := ui.NewHandler(client, &ui.Config{PageSize: 50})
//	http.Handle("/api/", http.StripPrefix("/api", handler))
//
// Responses follow a single envelope: {"data": ...} on success and
// {"error": {"code", "message"}} on failure. Assistant replies carry both the
// raw markdown text and a sanitized HTML rendering, so browser clients never
// have to run their own markdown pipeline.
package ui
