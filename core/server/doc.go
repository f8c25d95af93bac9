// Package server holds the HTTP server configuration.
//
// The start command reads the listen port, the API key protecting every route and the
// upload body limit from here. The API key check is skipped when no key is configured.
package server
