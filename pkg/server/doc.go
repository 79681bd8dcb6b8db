// Package server exposes manifest rendering over HTTP.
//
// # Routes
//
//	GET  /healthz                 build information
//	GET  /v1/attributes?match=    known DOT attribute names
//	POST /v1/render               manifest in, DOT or image out
//
// The render endpoint reads a manifest from the request body. The
// Content-Type header selects the manifest format (application/toml,
// application/json or application/yaml). Query parameters:
//
//	format      dot (default), svg, png, jpg or pdf
//	engine      Graphviz layout engine, default dot
//	directed    override the manifest's directed flag
//	strict      override the manifest's strict flag
//	responsive  scale SVG output with its container
//
// Failures are returned as JSON:
//
//	{"error": {"code": "INVALID_REFERENCE", "message": "...", "request_id": "..."}}
//
// Every response carries an X-Request-ID header. The server does not log;
// requests are reported to the HTTP hooks of package observability.
package server
